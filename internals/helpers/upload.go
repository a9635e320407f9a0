// file: internals/helpers/upload.go
package helper

import (
	"fmt"
	"mime/multipart"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/helpers/authz"
)

// ValidateUpload cek ukuran + ekstensi SEBELUM ada write apapun ke storage.
func ValidateUpload(fh *multipart.FileHeader, allowedExts []string) error {
	if fh == nil {
		return authz.NewValidationError("file tidak ditemukan di request")
	}
	if fh.Size > constants.MaxUploadSize {
		return authz.NewValidationError(fmt.Sprintf("ukuran file maksimal %dMB", constants.MaxUploadSize>>20))
	}
	if !constants.IsAllowedExt(fh.Filename, allowedExts) {
		return authz.NewValidationError("tipe file tidak diizinkan: " + fh.Filename)
	}
	return nil
}
