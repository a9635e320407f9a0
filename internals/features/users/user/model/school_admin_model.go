// internals/features/users/user/model/school_admin_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profil admin sekolah. is_senior=true → senior_admin (akses penuh),
// false → junior_admin (read-only untuk data user & langganan).
type SchoolAdminModel struct {
	SchoolAdminID       uuid.UUID `gorm:"column:school_admin_id;type:uuid;default:gen_random_uuid();primaryKey" json:"school_admin_id"`
	SchoolAdminUserID   uuid.UUID `gorm:"column:school_admin_user_id;type:uuid;not null;uniqueIndex" json:"school_admin_user_id"`
	SchoolAdminSchoolID uuid.UUID `gorm:"column:school_admin_school_id;type:uuid;not null;index" json:"school_admin_school_id"`

	SchoolAdminIsSenior bool `gorm:"column:school_admin_is_senior;not null;default:false" json:"school_admin_is_senior"`

	SchoolAdminCreatedAt time.Time      `gorm:"column:school_admin_created_at;not null;autoCreateTime" json:"school_admin_created_at"`
	SchoolAdminUpdatedAt time.Time      `gorm:"column:school_admin_updated_at;not null;autoUpdateTime" json:"school_admin_updated_at"`
	SchoolAdminDeletedAt gorm.DeletedAt `gorm:"column:school_admin_deleted_at;index" json:"school_admin_deleted_at,omitempty"`
}

func (SchoolAdminModel) TableName() string { return "school_admins" }
