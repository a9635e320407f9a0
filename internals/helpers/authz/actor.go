// internals/helpers/authz/actor.go
package authz

import (
	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
)

// Actor adalah identitas yang sudah terverifikasi dari JWT, di-thread secara
// eksplisit ke setiap pemeriksaan — tidak ada state global per-request.
type Actor struct {
	UserID   uuid.UUID
	Role     string
	SchoolID *uuid.UUID // nil hanya untuk super_admin
}

func (a Actor) IsSuperAdmin() bool  { return a.Role == constants.RoleSuperAdmin }
func (a Actor) IsSeniorAdmin() bool { return a.Role == constants.RoleSeniorAdmin }
func (a Actor) IsJuniorAdmin() bool { return a.Role == constants.RoleJuniorAdmin }
func (a Actor) IsTeacher() bool     { return a.Role == constants.RoleTeacher }
func (a Actor) IsStudent() bool     { return a.Role == constants.RoleStudent }

func (a Actor) IsSchoolAdmin() bool {
	return a.IsSeniorAdmin() || a.IsJuniorAdmin()
}

// Valid menjaga invariant: role == super_admin ⇔ school_id == nil.
func (a Actor) Valid() bool {
	if a.UserID == uuid.Nil || !constants.IsValidRole(a.Role) {
		return false
	}
	if a.IsSuperAdmin() {
		return a.SchoolID == nil
	}
	return a.SchoolID != nil && *a.SchoolID != uuid.Nil
}
