// internals/features/academics/assignment/model/student_assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Satu baris per (assignment, student) — unik.
// Submission lewat deadline DITOLAK di server; is_submitted tetap false.
type StudentAssignmentModel struct {
	StudentAssignmentID           uuid.UUID `gorm:"column:student_assignment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_assignment_id"`
	StudentAssignmentAssignmentID uuid.UUID `gorm:"column:student_assignment_assignment_id;type:uuid;not null;uniqueIndex:idx_student_assignments_pair" json:"student_assignment_assignment_id"`
	StudentAssignmentStudentID    uuid.UUID `gorm:"column:student_assignment_student_id;type:uuid;not null;index;uniqueIndex:idx_student_assignments_pair" json:"student_assignment_student_id"`

	StudentAssignmentIsSubmitted bool       `gorm:"column:student_assignment_is_submitted;not null;default:false" json:"student_assignment_is_submitted"`
	StudentAssignmentSubmittedAt *time.Time `gorm:"column:student_assignment_submitted_at" json:"student_assignment_submitted_at,omitempty"`

	StudentAssignmentText    *string `gorm:"column:student_assignment_text;type:text" json:"student_assignment_text,omitempty"`
	StudentAssignmentFileURL *string `gorm:"column:student_assignment_file_url;type:text" json:"student_assignment_file_url,omitempty"`

	StudentAssignmentScore   *int    `gorm:"column:student_assignment_score" json:"student_assignment_score,omitempty"`
	StudentAssignmentComment *string `gorm:"column:student_assignment_comment;type:text" json:"student_assignment_comment,omitempty"`

	StudentAssignmentCreatedAt time.Time      `gorm:"column:student_assignment_created_at;not null;autoCreateTime" json:"student_assignment_created_at"`
	StudentAssignmentUpdatedAt time.Time      `gorm:"column:student_assignment_updated_at;not null;autoUpdateTime" json:"student_assignment_updated_at"`
	StudentAssignmentDeletedAt gorm.DeletedAt `gorm:"column:student_assignment_deleted_at;index" json:"student_assignment_deleted_at,omitempty"`
}

func (StudentAssignmentModel) TableName() string { return "student_assignments" }
