// internals/features/academics/result/model/result_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Nilai ujian/CA. Natural key (student, subject, exam_type, date_taken)
// unik — RecordResult pakai ON CONFLICT upsert di key ini, jadi input
// ganda idempoten dan guru terakhir yang menulis menang.
// exam_type contoh: ca1, ca2, exam, term1_overall.
type ResultModel struct {
	ResultID       uuid.UUID `gorm:"column:result_id;type:uuid;default:gen_random_uuid();primaryKey" json:"result_id"`
	ResultSchoolID uuid.UUID `gorm:"column:result_school_id;type:uuid;not null;index" json:"result_school_id"`

	ResultStudentID uuid.UUID `gorm:"column:result_student_id;type:uuid;not null;uniqueIndex:idx_results_natural_key" json:"result_student_id"`
	ResultSubjectID uuid.UUID `gorm:"column:result_subject_id;type:uuid;not null;uniqueIndex:idx_results_natural_key" json:"result_subject_id"`
	ResultExamType  string    `gorm:"column:result_exam_type;type:varchar(40);not null;uniqueIndex:idx_results_natural_key" json:"result_exam_type"`
	ResultDateTaken time.Time `gorm:"column:result_date_taken;type:date;not null;uniqueIndex:idx_results_natural_key" json:"result_date_taken"`

	ResultScore    float64 `gorm:"column:result_score;not null" json:"result_score"`
	ResultMaxScore float64 `gorm:"column:result_max_score;not null;default:100" json:"result_max_score"`

	// Posisi peringkat "3/25" — hanya diisi untuk exam_type term{N}_overall
	ResultPosition *string `gorm:"column:result_position;type:varchar(20)" json:"result_position,omitempty"`
	ResultComment  *string `gorm:"column:result_comment;type:text" json:"result_comment,omitempty"`

	ResultRecordedBy uuid.UUID `gorm:"column:result_recorded_by;type:uuid;not null" json:"result_recorded_by"`

	ResultCreatedAt time.Time      `gorm:"column:result_created_at;not null;autoCreateTime" json:"result_created_at"`
	ResultUpdatedAt time.Time      `gorm:"column:result_updated_at;not null;autoUpdateTime" json:"result_updated_at"`
	ResultDeletedAt gorm.DeletedAt `gorm:"column:result_deleted_at;index" json:"result_deleted_at,omitempty"`
}

func (ResultModel) TableName() string { return "results" }
