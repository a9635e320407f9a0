// internals/features/academics/subject/model/class_level_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tingkat kelas per sekolah (JSS1, SS2, dst). Nama unik per sekolah,
// class_level_order untuk urutan tampilan.
type ClassLevelModel struct {
	ClassLevelID       uuid.UUID `gorm:"column:class_level_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_level_id"`
	ClassLevelSchoolID uuid.UUID `gorm:"column:class_level_school_id;type:uuid;not null;index;uniqueIndex:idx_class_levels_school_name" json:"class_level_school_id"`

	ClassLevelName  string `gorm:"column:class_level_name;type:varchar(50);not null;uniqueIndex:idx_class_levels_school_name" json:"class_level_name"`
	ClassLevelOrder int    `gorm:"column:class_level_order;not null;default:0" json:"class_level_order"`

	ClassLevelCreatedAt time.Time      `gorm:"column:class_level_created_at;not null;autoCreateTime" json:"class_level_created_at"`
	ClassLevelUpdatedAt time.Time      `gorm:"column:class_level_updated_at;not null;autoUpdateTime" json:"class_level_updated_at"`
	ClassLevelDeletedAt gorm.DeletedAt `gorm:"column:class_level_deleted_at;index" json:"class_level_deleted_at,omitempty"`
}

func (ClassLevelModel) TableName() string { return "class_levels" }
