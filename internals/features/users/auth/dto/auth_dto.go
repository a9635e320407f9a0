// internals/features/users/auth/dto/auth_dto.go
package dto

import "github.com/google/uuid"

// LoginRequest: school_id dipilih SAAT LOGIN. Kosong = login super_admin
// (namespace global). Terisi = login ke sekolah tsb.
type LoginRequest struct {
	UserName string     `json:"user_name" validate:"required,min=3,max=50"`
	Password string     `json:"password" validate:"required,min=8"`
	SchoolID *uuid.UUID `json:"school_id" validate:"omitempty"`
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         LoginUserDTO `json:"user"`
}

type LoginUserDTO struct {
	ID       uuid.UUID  `json:"id"`
	UserName string     `json:"user_name"`
	FullName string     `json:"full_name"`
	Role     string     `json:"role"`
	SchoolID *uuid.UUID `json:"school_id,omitempty"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}
