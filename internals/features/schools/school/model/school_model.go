// internals/features/schools/school/model/school_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NOTE:
// - school_homepage: JSONB untuk konten landing page (galeri, info pendaftaran)
// - soft delete pakai gorm.DeletedAt (map ke TIMESTAMPTZ)
type SchoolModel struct {
	SchoolID   uuid.UUID `gorm:"column:school_id;type:uuid;default:gen_random_uuid();primaryKey" json:"school_id"`
	SchoolName string    `gorm:"column:school_name;type:varchar(120);not null" json:"school_name"`

	// primary | secondary | combined
	SchoolType string `gorm:"column:school_type;type:varchar(20);not null;default:'combined'" json:"school_type"`
	// basic | pro | enterprise
	SchoolSubscriptionTier string `gorm:"column:school_subscription_tier;type:varchar(20);not null;default:'basic'" json:"school_subscription_tier"`

	SchoolMotto        *string `gorm:"column:school_motto;type:text" json:"school_motto,omitempty"`
	SchoolVision       *string `gorm:"column:school_vision;type:text" json:"school_vision,omitempty"`
	SchoolMission      *string `gorm:"column:school_mission;type:text" json:"school_mission,omitempty"`
	SchoolAbout        *string `gorm:"column:school_about;type:text" json:"school_about,omitempty"`
	SchoolPrimaryColor *string `gorm:"column:school_primary_color;type:varchar(20)" json:"school_primary_color,omitempty"`

	SchoolPhone   *string `gorm:"column:school_phone;type:varchar(30)" json:"school_phone,omitempty"`
	SchoolEmail   *string `gorm:"column:school_email;type:varchar(120)" json:"school_email,omitempty"`
	SchoolAddress *string `gorm:"column:school_address;type:text" json:"school_address,omitempty"`
	SchoolCity    *string `gorm:"column:school_city;type:varchar(80)" json:"school_city,omitempty"`
	SchoolLGA     *string `gorm:"column:school_lga;type:varchar(80)" json:"school_lga,omitempty"`

	// Konten homepage fleksibel (galeri, pengumuman, info pendaftaran)
	SchoolHomepage datatypes.JSON `gorm:"column:school_homepage;type:jsonb" json:"school_homepage,omitempty"`

	SchoolIsActive  bool           `gorm:"column:school_is_active;not null;default:true" json:"school_is_active"`
	SchoolCreatedAt time.Time      `gorm:"column:school_created_at;not null;autoCreateTime" json:"school_created_at"`
	SchoolUpdatedAt time.Time      `gorm:"column:school_updated_at;not null;autoUpdateTime" json:"school_updated_at"`
	SchoolDeletedAt gorm.DeletedAt `gorm:"column:school_deleted_at;index" json:"school_deleted_at,omitempty"`
}

func (SchoolModel) TableName() string { return "schools" }
