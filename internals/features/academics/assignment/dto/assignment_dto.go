// internals/features/academics/assignment/dto/assignment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAssignmentRequest struct {
	ClassLevelID uuid.UUID `json:"class_level_id" validate:"required"`
	SubjectID    uuid.UUID `json:"subject_id" validate:"required"`

	Title    string  `json:"title" validate:"required,min=3,max=200"`
	Desc     *string `json:"desc"`
	MaxScore int     `json:"max_score" validate:"required,gt=0,lte=1000"`

	DueDate time.Time `json:"due_date" validate:"required"`
}

type SubmitAssignmentRequest struct {
	Text *string `json:"text" validate:"omitempty,max=20000"`
}

type GradeSubmissionRequest struct {
	Score   int     `json:"score" validate:"gte=0"`
	Comment *string `json:"comment" validate:"omitempty,max=2000"`
}

type CreateAssignmentResponse struct {
	AssignmentID uuid.UUID `json:"assignment_id"`
	StudentCount int       `json:"student_count"`
}
