package controller

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiscardUpload(t *testing.T) {
	t.Run("file submission yang batal ikut terhapus", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "jawaban.pdf")
		if err := os.WriteFile(path, []byte("isi"), 0o644); err != nil {
			t.Fatalf("tulis file: %v", err)
		}

		discardUpload(path)

		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("file %s masih ada setelah dibuang", path)
		}
	})

	t.Run("path kosong tidak apa-apa", func(t *testing.T) {
		discardUpload("")
	})

	t.Run("file sudah hilang tidak apa-apa", func(t *testing.T) {
		discardUpload(filepath.Join(t.TempDir(), "tidak-ada.pdf"))
	})
}
