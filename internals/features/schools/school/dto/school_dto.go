// internals/features/schools/school/dto/school_dto.go
package dto

import (
	"gorm.io/datatypes"
)

// RegisterSchoolRequest: sekolah + senior admin pertama dibuat dalam
// SATU transaksi.
type RegisterSchoolRequest struct {
	SchoolName string `json:"school_name" validate:"required,min=3,max=120"`
	SchoolType string `json:"school_type" validate:"required,oneof=primary secondary combined"`

	SchoolPhone   *string `json:"school_phone" validate:"omitempty,max=30"`
	SchoolEmail   *string `json:"school_email" validate:"omitempty,email"`
	SchoolAddress *string `json:"school_address"`
	SchoolCity    *string `json:"school_city" validate:"omitempty,max=80"`
	SchoolLGA     *string `json:"school_lga" validate:"omitempty,max=80"`

	AdminUserName string  `json:"admin_user_name" validate:"required,min=3,max=50"`
	AdminPassword string  `json:"admin_password" validate:"required,min=8,max=72"`
	AdminFullName string  `json:"admin_full_name" validate:"required,min=3,max=100"`
	AdminEmail    *string `json:"admin_email" validate:"omitempty,email"`
}

type UpdateSchoolRequest struct {
	SchoolName         *string         `json:"school_name" validate:"omitempty,min=3,max=120"`
	SchoolMotto        *string         `json:"school_motto"`
	SchoolVision       *string         `json:"school_vision"`
	SchoolMission      *string         `json:"school_mission"`
	SchoolAbout        *string         `json:"school_about"`
	SchoolPrimaryColor *string         `json:"school_primary_color" validate:"omitempty,max=20"`
	SchoolPhone        *string         `json:"school_phone" validate:"omitempty,max=30"`
	SchoolEmail        *string         `json:"school_email" validate:"omitempty,email"`
	SchoolAddress      *string         `json:"school_address"`
	SchoolCity         *string         `json:"school_city" validate:"omitempty,max=80"`
	SchoolLGA          *string         `json:"school_lga" validate:"omitempty,max=80"`
	SchoolHomepage     *datatypes.JSON `json:"school_homepage"`
}

// Ringkasan operasional satu sekolah untuk dashboard admin.
type SchoolAnalyticsResponse struct {
	TotalTeachers    int64 `json:"total_teachers"`
	TotalStudents    int64 `json:"total_students"`
	TotalClassLevels int64 `json:"total_class_levels"`
	TotalAssignments int64 `json:"total_assignments"`

	FeesExpectedIDR    int64 `json:"fees_expected_idr"`
	FeesCollectedIDR   int64 `json:"fees_collected_idr"`
	FeesOutstandingIDR int64 `json:"fees_outstanding_idr"`

	SubscriptionDaysRemaining int `json:"subscription_days_remaining"`
}

// Ringkasan platform untuk super_admin.
type PlatformAnalyticsResponse struct {
	TotalSchools        int64 `json:"total_schools"`
	ActiveSchools       int64 `json:"active_schools"`
	TotalUsers          int64 `json:"total_users"`
	TotalStudents       int64 `json:"total_students"`
	ActiveSubscriptions int64 `json:"active_subscriptions"`
}
