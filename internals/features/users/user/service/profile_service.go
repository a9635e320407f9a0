// internals/features/users/user/service/profile_service.go
package service

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	userDTO "schoolku_backend/internals/features/users/user/dto"
	userModel "schoolku_backend/internals/features/users/user/model"
	"schoolku_backend/internals/helpers/authz"
)

func toUserResponse(u *userModel.UserModel) userDTO.UserResponse {
	return userDTO.UserResponse{
		ID:        u.ID,
		UserName:  u.UserName,
		FullName:  u.FullName,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		SchoolID:  u.SchoolID,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// ResolveProfile memuat profil sesuai role user.
// Profil hilang untuk role yang mewajibkannya = data rusak
// (ErrProfileMissing, bukan 404) — pembuatan user+profil selalu satu
// transaksi, jadi kondisi ini tidak bisa lahir dari kode ini sendiri.
func ResolveProfile(db *gorm.DB, user *userModel.UserModel) (*userDTO.ProfileResponse, error) {
	resp := &userDTO.ProfileResponse{User: toUserResponse(user)}

	switch user.Role {
	case constants.RoleTeacher:
		var t userModel.TeacherModel
		if err := db.First(&t, "teacher_user_id = ?", user.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("[ERROR] Profil guru hilang untuk user %s", user.ID)
				return nil, authz.ErrProfileMissing
			}
			return nil, err
		}
		resp.Teacher = t

	case constants.RoleStudent:
		var s userModel.StudentModel
		if err := db.First(&s, "student_user_id = ?", user.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("[ERROR] Profil siswa hilang untuk user %s", user.ID)
				return nil, authz.ErrProfileMissing
			}
			return nil, err
		}
		resp.Student = s

	case constants.RoleSeniorAdmin, constants.RoleJuniorAdmin:
		var a userModel.SchoolAdminModel
		if err := db.First(&a, "school_admin_user_id = ?", user.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("[ERROR] Profil admin hilang untuk user %s", user.ID)
				return nil, authz.ErrProfileMissing
			}
			return nil, err
		}
		resp.Admin = a

	case constants.RoleSuperAdmin:
		// super_admin tidak punya profil sekolah

	default:
		return nil, authz.ErrProfileMissing
	}

	return resp, nil
}
