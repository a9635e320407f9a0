// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	authDTO "schoolku_backend/internals/features/users/auth/dto"
	authRepo "schoolku_backend/internals/features/users/auth/repository"
	userModel "schoolku_backend/internals/features/users/user/model"
)

// Semua kegagalan login jatuh ke satu pesan generik — tidak membedakan
// "user tidak ada", "password salah", atau "sekolah nonaktif".
const msgInvalidCredentials = "Username atau password salah"

type AuthService struct {
	Repo *authRepo.AuthRepository
}

func NewAuthService(repo *authRepo.AuthRepository) *AuthService {
	return &AuthService{Repo: repo}
}

/* ======================= LOGIN ======================= */

// Login: tenant dipilih SAAT login.
// - school_id kosong → namespace global, hanya super_admin.
// - school_id terisi → sekolah harus ada & aktif, lookup (username, school).
func (s *AuthService) Login(req *authDTO.LoginRequest) (*authDTO.LoginResponse, error) {
	var user *userModel.UserModel

	if req.SchoolID == nil {
		found, err := s.Repo.FindGlobalUser(req.UserName)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Println("[ERROR] Login lookup gagal:", err)
			}
			BurnPasswordCheck(req.Password)
			return nil, fiber.NewError(fiber.StatusUnauthorized, msgInvalidCredentials)
		}
		if found.Role != constants.RoleSuperAdmin {
			// Akun sekolah tidak boleh login lewat jalur global
			BurnPasswordCheck(req.Password)
			return nil, fiber.NewError(fiber.StatusUnauthorized, msgInvalidCredentials)
		}
		user = found
	} else {
		if _, err := s.Repo.FindActiveSchool(*req.SchoolID); err != nil {
			BurnPasswordCheck(req.Password)
			return nil, fiber.NewError(fiber.StatusUnauthorized, msgInvalidCredentials)
		}
		found, err := s.Repo.FindSchoolUser(req.UserName, *req.SchoolID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Println("[ERROR] Login lookup gagal:", err)
			}
			BurnPasswordCheck(req.Password)
			return nil, fiber.NewError(fiber.StatusUnauthorized, msgInvalidCredentials)
		}
		user = found
	}

	if !user.IsActive {
		BurnPasswordCheck(req.Password)
		return nil, fiber.NewError(fiber.StatusUnauthorized, msgInvalidCredentials)
	}

	if !ComparePassword(user.Password, req.Password) {
		return nil, fiber.NewError(fiber.StatusUnauthorized, msgInvalidCredentials)
	}

	return s.issueTokens(user)
}

func (s *AuthService) issueTokens(user *userModel.UserModel) (*authDTO.LoginResponse, error) {
	accessToken, err := GenerateAccessToken(user)
	if err != nil {
		log.Println("[ERROR] Gagal generate access token:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}

	refreshToken, err := GenerateRefreshToken(user)
	if err != nil {
		log.Println("[ERROR] Gagal generate refresh token:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}

	if err := s.Repo.SaveRefreshToken(user.ID, HashRefreshToken(refreshToken), time.Now().Add(RefreshTokenTTL)); err != nil {
		log.Println("[ERROR] Gagal simpan refresh token:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan sesi")
	}

	return &authDTO.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: authDTO.LoginUserDTO{
			ID:       user.ID,
			UserName: user.UserName,
			FullName: user.FullName,
			Role:     user.Role,
			SchoolID: user.SchoolID,
		},
	}, nil
}

/* ======================= REFRESH ======================= */

// RefreshToken: rotasi — token lama dihapus, pasangan baru diterbitkan.
func (s *AuthService) RefreshToken(raw string) (*authDTO.LoginResponse, error) {
	userIDStr, err := ParseRefreshToken(raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak valid")
	}

	stored, err := s.Repo.FindRefreshToken(HashRefreshToken(raw))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak valid")
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil || stored.UserID != userID {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak valid")
	}

	user, err := s.Repo.FindUserByID(userID)
	if err != nil || !user.IsActive {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak valid")
	}

	if err := s.Repo.DeleteRefreshTokensByUser(userID); err != nil {
		log.Println("[ERROR] Gagal rotasi refresh token:", err)
	}

	return s.issueTokens(user)
}

/* ======================= LOGOUT ======================= */

func (s *AuthService) Logout(userID uuid.UUID, accessToken string) error {
	if err := s.Repo.BlacklistToken(accessToken, AccessTokenExpiry(accessToken)); err != nil {
		log.Println("[ERROR] Gagal blacklist token:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal logout")
	}
	if err := s.Repo.DeleteRefreshTokensByUser(userID); err != nil {
		log.Println("[ERROR] Gagal hapus refresh token:", err)
	}
	return nil
}

/* ======================= CHANGE PASSWORD ======================= */

func (s *AuthService) ChangePassword(userID uuid.UUID, req *authDTO.ChangePasswordRequest) error {
	user, err := s.Repo.FindUserByID(userID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
	}

	if !ComparePassword(user.Password, req.OldPassword) {
		return fiber.NewError(fiber.StatusUnauthorized, "Password lama salah")
	}

	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses password")
	}

	if err := s.Repo.DB.Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Update("password", hashed).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengganti password")
	}

	// Semua sesi lama dipaksa login ulang
	return s.Repo.DeleteRefreshTokensByUser(userID)
}
