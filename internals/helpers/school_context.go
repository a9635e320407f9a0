// file: internals/helpers/school_context.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/helpers/authz"
)

// Keys di c.Locals, diisi oleh middleware auth setelah verifikasi JWT.
const (
	LocUserID   = "user_id"
	LocUserRole = "user_role"
	LocSchoolID = "school_id"
)

// GetUserID ambil user id dari Locals (string UUID).
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	v, ok := c.Locals(LocUserID).(string)
	if !ok || strings.TrimSpace(v) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing user id")
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid user id")
	}
	return id, nil
}

// GetRole ambil role dari Locals.
func GetRole(c *fiber.Ctx) (string, error) {
	v, ok := c.Locals(LocUserRole).(string)
	if !ok || strings.TrimSpace(v) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing role")
	}
	return strings.ToLower(strings.TrimSpace(v)), nil
}

// GetSchoolID ambil school id aktif dari Locals. nil untuk super_admin.
func GetSchoolID(c *fiber.Ctx) (*uuid.UUID, error) {
	v, ok := c.Locals(LocSchoolID).(string)
	if !ok || strings.TrimSpace(v) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid school id")
	}
	return &id, nil
}

// GetActor membangun authz.Actor dari Locals. Satu-satunya jalan masuk
// identitas ke layer service — tidak ada yang baca Locals di bawah controller.
func GetActor(c *fiber.Ctx) (authz.Actor, error) {
	userID, err := GetUserID(c)
	if err != nil {
		return authz.Actor{}, err
	}
	role, err := GetRole(c)
	if err != nil {
		return authz.Actor{}, err
	}
	schoolID, err := GetSchoolID(c)
	if err != nil {
		return authz.Actor{}, err
	}
	a := authz.Actor{UserID: userID, Role: role, SchoolID: schoolID}
	if !a.Valid() {
		// role super_admin wajib tanpa school_id, role lain wajib punya
		return authz.Actor{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - inconsistent claims")
	}
	return a, nil
}

// RequireSchoolActor: shortcut untuk endpoint yang wajib ber-tenant.
func RequireSchoolActor(c *fiber.Ctx) (authz.Actor, uuid.UUID, error) {
	a, err := GetActor(c)
	if err != nil {
		return authz.Actor{}, uuid.Nil, err
	}
	if a.Role == constants.RoleSuperAdmin || a.SchoolID == nil {
		return authz.Actor{}, uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Endpoint ini khusus akun sekolah")
	}
	return a, *a.SchoolID, nil
}
