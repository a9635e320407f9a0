package helper

import (
	"mime/multipart"
	"testing"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/helpers/authz"
)

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		size     int64
		allowed  []string
		wantErr  bool
	}{
		{"pdf valid", "tugas.pdf", 1 << 20, constants.AllowedDocumentExts, false},
		{"docx valid", "Tugas Akhir.DOCX", 100, constants.AllowedDocumentExts, false},
		{"exe ditolak", "virus.exe", 100, constants.AllowedDocumentExts, true},
		{"tanpa ekstensi", "README", 100, constants.AllowedDocumentExts, true},
		{"kegedean", "tugas.pdf", constants.MaxUploadSize + 1, constants.AllowedDocumentExts, true},
		{"pas di batas", "tugas.pdf", constants.MaxUploadSize, constants.AllowedDocumentExts, false},
		{"gambar di allowlist dokumen", "foto.png", 100, constants.AllowedDocumentExts, true},
		{"gambar di allowlist gambar", "foto.png", 100, constants.AllowedImageExts, false},
	}

	for _, tt := range tests {
		fh := &multipart.FileHeader{Filename: tt.filename, Size: tt.size}
		err := ValidateUpload(fh, tt.allowed)
		if tt.wantErr && err == nil {
			t.Errorf("%s: harus gagal validasi", tt.name)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("%s: harus lolos, dapat %v", tt.name, err)
		}
		if tt.wantErr && err != nil && !authz.IsValidation(err) {
			t.Errorf("%s: error harus ValidationError, dapat %T", tt.name, err)
		}
	}

	if err := ValidateUpload(nil, constants.AllowedDocumentExts); err == nil {
		t.Error("file nil harus gagal validasi")
	}
}
