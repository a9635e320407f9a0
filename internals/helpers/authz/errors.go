// internals/helpers/authz/errors.go
package authz

import "errors"

// Taksonomi error untuk akses data ber-tenant. Controller memetakan error ini
// ke envelope JSON via helper.JsonAuthzError — jangan bikin error ad-hoc di
// bawah layer ini.
var (
	// Entity dengan id tersebut tidak ada.
	ErrNotFound = errors.New("resource not found")

	// Target entity milik sekolah lain. Ke caller dibalas seperti not found
	// supaya tenant lain tidak bisa di-enumerate; alasan asli cukup di log.
	ErrCrossTenant = errors.New("cross-tenant access denied")

	// Role benar sekolahnya tapi tidak punya permission untuk aksi ini.
	ErrForbidden = errors.New("forbidden")

	// User ada tapi baris profil role-nya (teacher/student/admin) hilang.
	// Data-integrity error: pembuatan user+profil harus satu transaksi.
	ErrProfileMissing = errors.New("role profile record missing")

	// Tabrakan natural key di luar jalur upsert.
	ErrConflict = errors.New("conflict on unique key")
)

// ValidationError untuk input yang tidak lolos aturan domain (file kegedean,
// ekstensi salah, submit lewat due date, dsb).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

// IsValidation cek apakah err termasuk ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
