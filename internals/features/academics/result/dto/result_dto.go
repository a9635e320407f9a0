// internals/features/academics/result/dto/result_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type RecordResultRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	SubjectID uuid.UUID `json:"subject_id" validate:"required"`

	ExamType  string    `json:"exam_type" validate:"required,min=2,max=40"`
	DateTaken time.Time `json:"date_taken" validate:"required"`

	Score    float64 `json:"score" validate:"gte=0"`
	MaxScore float64 `json:"max_score" validate:"required,gt=0"`
	Comment  *string `json:"comment" validate:"omitempty,max=2000"`
}

/* ======================= BATCH ======================= */

// Header batch dibagi semua baris; baris gagal dilaporkan per-index,
// baris valid tetap tersimpan (partial success).
type BatchResultRow struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	ExamType  string    `json:"exam_type" validate:"required,min=2,max=40"`
	Score     float64   `json:"score" validate:"gte=0"`
}

type BatchUploadRequest struct {
	ClassLevelID uuid.UUID `json:"class_level_id" validate:"required"`
	SubjectID    uuid.UUID `json:"subject_id" validate:"required"`

	Term      int       `json:"term" validate:"required,gte=1,lte=3"`
	MaxScore  float64   `json:"max_score" validate:"required,gt=0"`
	DateTaken time.Time `json:"date_taken" validate:"required"`

	Rows []BatchResultRow `json:"rows" validate:"required,min=1,max=500,dive"`
}

type BatchRowError struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

type BatchUploadResponse struct {
	SavedCount  int             `json:"saved_count"`
	FailedCount int             `json:"failed_count"`
	Errors      []BatchRowError `json:"errors,omitempty"`
}

/* ======================= READ ======================= */

type StudentResultRow struct {
	ResultID  uuid.UUID `json:"result_id"`
	SubjectID uuid.UUID `json:"subject_id"`
	ExamType  string    `json:"exam_type"`
	DateTaken time.Time `json:"date_taken"`
	Score     float64   `json:"score"`
	MaxScore  float64   `json:"max_score"`
	Position  *string   `json:"position,omitempty"`
	Comment   *string   `json:"comment,omitempty"`
}
