package constants

import (
	"path/filepath"
	"strings"
)

// Batas upload file (submission tugas, foto profil, logo sekolah).
const MaxUploadSize = 2 << 20 // 2MB

// Ekstensi yang boleh diupload per kategori.
var (
	AllowedDocumentExts = []string{".pdf", ".doc", ".docx", ".ppt", ".pptx", ".txt"}
	AllowedImageExts    = []string{".png", ".jpg", ".jpeg", ".webp"}
)

// IsAllowedExt cek ekstensi file terhadap allowlist (case-insensitive).
func IsAllowedExt(filename string, allowed []string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}
