// internals/features/finance/fees/model/student_fee_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FeeStatusPending = "pending"
	FeeStatusPartial = "partial"
	FeeStatusPaid    = "paid"
)

// Tagihan siswa terhadap satu fee structure. amount_paid TIDAK pernah
// diubah tanpa baris fee_payments; update selalu di bawah
// SELECT ... FOR UPDATE dalam satu transaksi.
type StudentFeeModel struct {
	StudentFeeID             uuid.UUID `gorm:"column:student_fee_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_fee_id"`
	StudentFeeSchoolID       uuid.UUID `gorm:"column:student_fee_school_id;type:uuid;not null;index" json:"student_fee_school_id"`
	StudentFeeStudentID      uuid.UUID `gorm:"column:student_fee_student_id;type:uuid;not null;uniqueIndex:idx_student_fees_pair" json:"student_fee_student_id"`
	StudentFeeFeeStructureID uuid.UUID `gorm:"column:student_fee_fee_structure_id;type:uuid;not null;uniqueIndex:idx_student_fees_pair" json:"student_fee_fee_structure_id"`

	StudentFeeAmountDueIDR  int    `gorm:"column:student_fee_amount_due_idr;not null" json:"student_fee_amount_due_idr"`
	StudentFeeAmountPaidIDR int    `gorm:"column:student_fee_amount_paid_idr;not null;default:0" json:"student_fee_amount_paid_idr"`
	StudentFeeStatus        string `gorm:"column:student_fee_status;type:varchar(10);not null;default:'pending';index" json:"student_fee_status"`

	StudentFeeCreatedAt time.Time      `gorm:"column:student_fee_created_at;not null;autoCreateTime" json:"student_fee_created_at"`
	StudentFeeUpdatedAt time.Time      `gorm:"column:student_fee_updated_at;not null;autoUpdateTime" json:"student_fee_updated_at"`
	StudentFeeDeletedAt gorm.DeletedAt `gorm:"column:student_fee_deleted_at;index" json:"student_fee_deleted_at,omitempty"`
}

func (StudentFeeModel) TableName() string { return "student_fees" }

// ComputeFeeStatus: status murni fungsi dari (paid, due).
func ComputeFeeStatus(paidIDR, dueIDR int) string {
	switch {
	case dueIDR > 0 && paidIDR >= dueIDR:
		return FeeStatusPaid
	case paidIDR > 0:
		return FeeStatusPartial
	default:
		return FeeStatusPending
	}
}

// OutstandingIDR: sisa tagihan, tidak pernah negatif di payload API.
func OutstandingIDR(paidIDR, dueIDR int) int {
	if out := dueIDR - paidIDR; out > 0 {
		return out
	}
	return 0
}
