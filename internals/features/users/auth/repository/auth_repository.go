// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	schoolModel "schoolku_backend/internals/features/schools/school/model"
	authModel "schoolku_backend/internals/features/users/auth/model"
	userModel "schoolku_backend/internals/features/users/user/model"
)

type AuthRepository struct {
	DB *gorm.DB
}

func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{DB: db}
}

// FindGlobalUser: lookup namespace global (super_admin, school_id NULL).
func (r *AuthRepository) FindGlobalUser(username string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	err := r.DB.Where("user_name = ? AND school_id IS NULL", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindSchoolUser: lookup dalam scope satu sekolah.
func (r *AuthRepository) FindSchoolUser(username string, schoolID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	err := r.DB.Where("user_name = ? AND school_id = ?", username, schoolID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindActiveSchool: sekolah harus ada DAN aktif sebelum login diproses.
func (r *AuthRepository) FindActiveSchool(schoolID uuid.UUID) (*schoolModel.SchoolModel, error) {
	var school schoolModel.SchoolModel
	err := r.DB.Where("school_id = ? AND school_is_active = TRUE", schoolID).First(&school).Error
	if err != nil {
		return nil, err
	}
	return &school, nil
}

func (r *AuthRepository) SaveRefreshToken(userID uuid.UUID, hashedToken string, expiresAt time.Time) error {
	return r.DB.Create(&authModel.RefreshTokenModel{
		UserID:    userID,
		Token:     hashedToken,
		ExpiresAt: expiresAt,
	}).Error
}

func (r *AuthRepository) FindRefreshToken(hashedToken string) (*authModel.RefreshTokenModel, error) {
	var rt authModel.RefreshTokenModel
	err := r.DB.Where("token = ? AND expires_at > ?", hashedToken, time.Now()).First(&rt).Error
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *AuthRepository) DeleteRefreshTokensByUser(userID uuid.UUID) error {
	return r.DB.Where("user_id = ?", userID).Delete(&authModel.RefreshTokenModel{}).Error
}

func (r *AuthRepository) BlacklistToken(token string, expiredAt time.Time) error {
	return r.DB.Create(&authModel.TokenBlacklistModel{
		Token:     token,
		ExpiredAt: expiredAt,
	}).Error
}

func (r *AuthRepository) FindUserByID(userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := r.DB.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
