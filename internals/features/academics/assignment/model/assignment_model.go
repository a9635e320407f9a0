// internals/features/academics/assignment/model/assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tugas dibuat guru untuk pair (tingkat kelas, mapel) yang dia ampu.
// Saat create, baris student_assignments di-generate untuk semua siswa
// tingkat tsb dalam satu transaksi.
type AssignmentModel struct {
	AssignmentID           uuid.UUID `gorm:"column:assignment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"assignment_id"`
	AssignmentSchoolID     uuid.UUID `gorm:"column:assignment_school_id;type:uuid;not null;index" json:"assignment_school_id"`
	AssignmentClassLevelID uuid.UUID `gorm:"column:assignment_class_level_id;type:uuid;not null;index" json:"assignment_class_level_id"`
	AssignmentSubjectID    uuid.UUID `gorm:"column:assignment_subject_id;type:uuid;not null;index" json:"assignment_subject_id"`
	AssignmentTeacherID    uuid.UUID `gorm:"column:assignment_teacher_id;type:uuid;not null;index" json:"assignment_teacher_id"`

	AssignmentTitle    string  `gorm:"column:assignment_title;type:varchar(200);not null" json:"assignment_title"`
	AssignmentDesc     *string `gorm:"column:assignment_desc;type:text" json:"assignment_desc,omitempty"`
	AssignmentMaxScore int     `gorm:"column:assignment_max_score;not null;default:100" json:"assignment_max_score"`

	AssignmentDueDate time.Time `gorm:"column:assignment_due_date;not null" json:"assignment_due_date"`

	AssignmentCreatedAt time.Time      `gorm:"column:assignment_created_at;not null;autoCreateTime" json:"assignment_created_at"`
	AssignmentUpdatedAt time.Time      `gorm:"column:assignment_updated_at;not null;autoUpdateTime" json:"assignment_updated_at"`
	AssignmentDeletedAt gorm.DeletedAt `gorm:"column:assignment_deleted_at;index" json:"assignment_deleted_at,omitempty"`
}

func (AssignmentModel) TableName() string { return "assignments" }
