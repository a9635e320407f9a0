// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authDTO "schoolku_backend/internals/features/users/auth/dto"
	authRepo "schoolku_backend/internals/features/users/auth/repository"
	authService "schoolku_backend/internals/features/users/auth/service"
	helper "schoolku_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	Service *authService.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		Service: authService.NewAuthService(authRepo.NewAuthRepository(db)),
	}
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	resp, err := ctl.Service.Login(&req)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	helper.SetRawAccessToken(c, resp.AccessToken)
	return helper.JsonOK(c, "Login berhasil", resp)
}

// POST /api/auth/refresh-token
func (ctl *AuthController) RefreshToken(c *fiber.Ctx) error {
	var req authDTO.RefreshRequest
	if err := c.BodyParser(&req); err != nil || req.RefreshToken == "" {
		// fallback cookie
		if cookieTok := helper.GetRefreshTokenFromCookie(c); cookieTok != "" {
			req.RefreshToken = cookieTok
		} else {
			return helper.JsonError(c, fiber.StatusBadRequest, "Refresh token wajib diisi")
		}
	}

	resp, err := ctl.Service.RefreshToken(req.RefreshToken)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	helper.SetRawAccessToken(c, resp.AccessToken)
	return helper.JsonOK(c, "Token diperbarui", resp)
}

// POST /api/auth/logout
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	actor, err := helper.GetActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	rawToken := helper.GetRawAccessToken(c)
	if rawToken == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak ditemukan")
	}

	if err := ctl.Service.Logout(actor.UserID, rawToken); err != nil {
		return helper.JsonAuthzError(c, err)
	}

	c.ClearCookie("access_token", "refresh_token")
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// POST /api/auth/change-password
func (ctl *AuthController) ChangePassword(c *fiber.Ctx) error {
	actor, err := helper.GetActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	var req authDTO.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	if err := ctl.Service.ChangePassword(actor.UserID, &req); err != nil {
		return helper.JsonAuthzError(c, err)
	}

	return helper.JsonOK(c, "Password berhasil diganti", nil)
}

// GET /api/auth/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	actor, err := helper.GetActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	user, err := ctl.Service.Repo.FindUserByID(actor.UserID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.JsonOK(c, "OK", authDTO.LoginUserDTO{
		ID:       user.ID,
		UserName: user.UserName,
		FullName: user.FullName,
		Role:     user.Role,
		SchoolID: user.SchoolID,
	})
}
