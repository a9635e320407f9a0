package constants

import "fmt"

// Role tags untuk tabel users. super_admin satu-satunya role tanpa school_id.
const (
	RoleSuperAdmin  = "super_admin"
	RoleSeniorAdmin = "senior_admin"
	RoleJuniorAdmin = "junior_admin"
	RoleTeacher     = "teacher"
	RoleStudent     = "student"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess   = "❌ Hanya admin sekolah yang boleh mengakses fitur %s."
	ErrOnlySeniorCanAccess   = "❌ Hanya senior admin yang boleh mengakses fitur %s."
	ErrOnlyTeachersCanAccess = "❌ Hanya teacher yang boleh mengakses fitur %s."
	ErrOnlyStudentsCanAccess = "❌ Hanya student yang boleh mengakses fitur %s."
	ErrOnlySuperCanAccess    = "❌ Hanya super admin yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorSenior(feature string) string {
	return fmt.Sprintf(ErrOnlySeniorCanAccess, feature)
}

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

func RoleErrorSuper(feature string) string {
	return fmt.Sprintf(ErrOnlySuperCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleSuperAdmin,
		RoleSeniorAdmin,
		RoleJuniorAdmin,
		RoleTeacher,
		RoleStudent,
	}

	// Role yang wajib punya school_id
	SchoolScopedRoles = []string{
		RoleSeniorAdmin,
		RoleJuniorAdmin,
		RoleTeacher,
		RoleStudent,
	}

	AdminRoles = []string{
		RoleSeniorAdmin,
		RoleJuniorAdmin,
	}

	SeniorOnly = []string{
		RoleSeniorAdmin,
	}

	TeacherOnly = []string{
		RoleTeacher,
	}

	StudentOnly = []string{
		RoleStudent,
	}
)

// IsValidRole cek role dikenal atau tidak.
func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
