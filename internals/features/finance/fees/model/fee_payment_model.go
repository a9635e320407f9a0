// internals/features/finance/fees/model/fee_payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event pembayaran — append-only, tidak pernah di-update.
// Nomor kuitansi unik global.
type FeePaymentModel struct {
	FeePaymentID           uuid.UUID `gorm:"column:fee_payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_payment_id"`
	FeePaymentStudentFeeID uuid.UUID `gorm:"column:fee_payment_student_fee_id;type:uuid;not null;index" json:"fee_payment_student_fee_id"`

	FeePaymentReceiptNo string `gorm:"column:fee_payment_receipt_no;type:varchar(40);not null;uniqueIndex" json:"fee_payment_receipt_no"`
	FeePaymentAmountIDR int    `gorm:"column:fee_payment_amount_idr;not null" json:"fee_payment_amount_idr"`

	// cash | transfer | pos | online
	FeePaymentMethod     string    `gorm:"column:fee_payment_method;type:varchar(20);not null;default:'cash'" json:"fee_payment_method"`
	FeePaymentRecordedBy uuid.UUID `gorm:"column:fee_payment_recorded_by;type:uuid;not null" json:"fee_payment_recorded_by"`
	FeePaymentPaidAt     time.Time `gorm:"column:fee_payment_paid_at;not null" json:"fee_payment_paid_at"`

	FeePaymentCreatedAt time.Time      `gorm:"column:fee_payment_created_at;not null;autoCreateTime" json:"fee_payment_created_at"`
	FeePaymentDeletedAt gorm.DeletedAt `gorm:"column:fee_payment_deleted_at;index" json:"fee_payment_deleted_at,omitempty"`
}

func (FeePaymentModel) TableName() string { return "fee_payments" }
