// internals/features/academics/subject/model/class_subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Kurikulum: mapel apa diajarkan di tingkat mana, siapa gurunya.
// Pair (class_level, subject) unik. Guru nullable (belum ditugaskan).
type ClassSubjectModel struct {
	ClassSubjectID           uuid.UUID `gorm:"column:class_subject_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_subject_id"`
	ClassSubjectClassLevelID uuid.UUID `gorm:"column:class_subject_class_level_id;type:uuid;not null;uniqueIndex:idx_class_subjects_pair" json:"class_subject_class_level_id"`
	ClassSubjectSubjectID    uuid.UUID `gorm:"column:class_subject_subject_id;type:uuid;not null;uniqueIndex:idx_class_subjects_pair" json:"class_subject_subject_id"`

	ClassSubjectTeacherID    *uuid.UUID `gorm:"column:class_subject_teacher_id;type:uuid;index" json:"class_subject_teacher_id,omitempty"`
	ClassSubjectIsCompulsory bool       `gorm:"column:class_subject_is_compulsory;not null;default:true" json:"class_subject_is_compulsory"`

	ClassSubjectCreatedAt time.Time      `gorm:"column:class_subject_created_at;not null;autoCreateTime" json:"class_subject_created_at"`
	ClassSubjectUpdatedAt time.Time      `gorm:"column:class_subject_updated_at;not null;autoUpdateTime" json:"class_subject_updated_at"`
	ClassSubjectDeletedAt gorm.DeletedAt `gorm:"column:class_subject_deleted_at;index" json:"class_subject_deleted_at,omitempty"`
}

func (ClassSubjectModel) TableName() string { return "class_subjects" }
