// internals/features/academics/subject/dto/subject_dto.go
package dto

import "github.com/google/uuid"

type CreateSubjectRequest struct {
	SubjectCode     string  `json:"subject_code" validate:"required,min=2,max=20"`
	SubjectName     string  `json:"subject_name" validate:"required,min=2,max=100"`
	SubjectCategory string  `json:"subject_category" validate:"required,oneof=core science art commercial religious other"`
	SubjectDesc     *string `json:"subject_desc"`
}

type UpdateSubjectRequest struct {
	SubjectName     *string `json:"subject_name" validate:"omitempty,min=2,max=100"`
	SubjectCategory *string `json:"subject_category" validate:"omitempty,oneof=core science art commercial religious other"`
	SubjectDesc     *string `json:"subject_desc"`
}

type CreateClassLevelRequest struct {
	ClassLevelName  string `json:"class_level_name" validate:"required,min=1,max=50"`
	ClassLevelOrder int    `json:"class_level_order" validate:"gte=0"`
}

type CreateClassSubjectRequest struct {
	ClassSubjectClassLevelID uuid.UUID  `json:"class_subject_class_level_id" validate:"required"`
	ClassSubjectSubjectID    uuid.UUID  `json:"class_subject_subject_id" validate:"required"`
	ClassSubjectTeacherID    *uuid.UUID `json:"class_subject_teacher_id"`
	ClassSubjectIsCompulsory *bool      `json:"class_subject_is_compulsory"`
}

type AssignClassTeacherRequest struct {
	ClassSubjectTeacherID *uuid.UUID `json:"class_subject_teacher_id"`
}
