// internals/features/academics/subject/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Katalog mapel GLOBAL (bukan per sekolah) — kode unik lintas platform.
// category: core | science | art | commercial | religious | other
type SubjectModel struct {
	SubjectID   uuid.UUID `gorm:"column:subject_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subject_id"`
	SubjectCode string    `gorm:"column:subject_code;type:varchar(20);not null;uniqueIndex" json:"subject_code"`
	SubjectName string    `gorm:"column:subject_name;type:varchar(100);not null" json:"subject_name"`

	SubjectCategory string  `gorm:"column:subject_category;type:varchar(30);not null;default:'core';index" json:"subject_category"`
	SubjectDesc     *string `gorm:"column:subject_desc;type:text" json:"subject_desc,omitempty"`

	SubjectCreatedAt time.Time      `gorm:"column:subject_created_at;not null;autoCreateTime" json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"column:subject_updated_at;not null;autoUpdateTime" json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index" json:"subject_deleted_at,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }
