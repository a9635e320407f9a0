// internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

/* ======================= CREATE ======================= */

type CreateTeacherRequest struct {
	UserName string  `json:"user_name" validate:"required,min=3,max=50"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	FullName string  `json:"full_name" validate:"required,min=3,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`

	SubjectIDs []uuid.UUID `json:"subject_ids" validate:"omitempty,dive,required"`
	DateJoined *time.Time  `json:"date_joined"`
}

type CreateStudentRequest struct {
	UserName string  `json:"user_name" validate:"required,min=3,max=50"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	FullName string  `json:"full_name" validate:"required,min=3,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`

	AdmissionNumber string      `json:"admission_number" validate:"required,min=2,max=40"`
	ClassLevelID    *uuid.UUID  `json:"class_level_id"`
	ElectiveIDs     []uuid.UUID `json:"elective_ids" validate:"omitempty,dive,required"`
	DateAdmitted    *time.Time  `json:"date_admitted"`
}

type CreateJuniorAdminRequest struct {
	UserName string  `json:"user_name" validate:"required,min=3,max=50"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	FullName string  `json:"full_name" validate:"required,min=3,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

/* ======================= UPDATE ======================= */

type UpdateUserRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=3,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
	IsActive *bool   `json:"is_active"`
}

type AssignSubjectsRequest struct {
	SubjectIDs []uuid.UUID `json:"subject_ids" validate:"required,dive,required"`
}

/* ======================= BULK ======================= */

// Bulk create siswa: baris gagal dilaporkan, baris valid tetap masuk.
type BulkCreateStudentsRequest struct {
	Students []CreateStudentRequest `json:"students" validate:"required,min=1,max=200,dive"`
}

type BulkRowError struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

type BulkCreateStudentsResponse struct {
	CreatedCount int            `json:"created_count"`
	FailedCount  int            `json:"failed_count"`
	Errors       []BulkRowError `json:"errors,omitempty"`
}

/* ======================= RESPONSE ======================= */

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	UserName  string     `json:"user_name"`
	FullName  string     `json:"full_name"`
	Email     *string    `json:"email,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	Role      string     `json:"role"`
	SchoolID  *uuid.UUID `json:"school_id,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
}

// ProfileResponse: user + profil role-nya (salah satu field terisi).
type ProfileResponse struct {
	User    UserResponse `json:"user"`
	Teacher any          `json:"teacher,omitempty"`
	Student any          `json:"student,omitempty"`
	Admin   any          `json:"admin,omitempty"`
}
