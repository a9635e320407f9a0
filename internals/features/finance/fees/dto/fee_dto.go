// internals/features/finance/fees/dto/fee_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFeeStructureRequest struct {
	ClassLevelID uuid.UUID `json:"class_level_id" validate:"required"`
	AcademicYear string    `json:"academic_year" validate:"required,min=4,max=12"`

	TuitionIDR     int `json:"tuition_idr" validate:"gte=0"`
	DevelopmentIDR int `json:"development_idr" validate:"gte=0"`
	OtherIDR       int `json:"other_idr" validate:"gte=0"`
}

type AssignStudentFeeRequest struct {
	StudentID      uuid.UUID `json:"student_id" validate:"required"`
	FeeStructureID uuid.UUID `json:"fee_structure_id" validate:"required"`
	// Override nominal (beasiswa/diskon); kosong = total struktur
	AmountDueIDR *int `json:"amount_due_idr" validate:"omitempty,gt=0"`
}

type RecordPaymentRequest struct {
	StudentFeeID uuid.UUID `json:"student_fee_id" validate:"required"`
	AmountIDR    int       `json:"amount_idr" validate:"required,gt=0"`
	Method       string    `json:"method" validate:"required,oneof=cash transfer pos online"`
	PaidAt       *time.Time `json:"paid_at"`
}

type RecordPaymentResponse struct {
	ReceiptNo      string `json:"receipt_no"`
	AmountPaidIDR  int    `json:"amount_paid_idr"`
	OutstandingIDR int    `json:"outstanding_idr"`
	Status         string `json:"status"`
}

type StudentFeeSummary struct {
	StudentFeeID   uuid.UUID `json:"student_fee_id"`
	AcademicYear   string    `json:"academic_year"`
	AmountDueIDR   int       `json:"amount_due_idr"`
	AmountPaidIDR  int       `json:"amount_paid_idr"`
	OutstandingIDR int       `json:"outstanding_idr"`
	Status         string    `json:"status"`
}
