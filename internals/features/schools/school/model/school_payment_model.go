// internals/features/schools/school/model/school_payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ledger pembayaran langganan sekolah (checkout via Midtrans Snap).
// Status: pending | completed | failed | refunded
type SchoolPaymentModel struct {
	SchoolPaymentID       uuid.UUID `gorm:"column:school_payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"school_payment_id"`
	SchoolPaymentSchoolID uuid.UUID `gorm:"column:school_payment_school_id;type:uuid;not null;index" json:"school_payment_school_id"`

	// Order ID yang dikirim ke Midtrans, unik global
	SchoolPaymentOrderID   string `gorm:"column:school_payment_order_id;type:varchar(64);not null;uniqueIndex" json:"school_payment_order_id"`
	SchoolPaymentAmountIDR int    `gorm:"column:school_payment_amount_idr;not null" json:"school_payment_amount_idr"`

	// Tier yang dibeli + durasi bulan
	SchoolPaymentTier   string `gorm:"column:school_payment_tier;type:varchar(20);not null" json:"school_payment_tier"`
	SchoolPaymentMonths int    `gorm:"column:school_payment_months;not null;default:1" json:"school_payment_months"`

	SchoolPaymentStatus    string     `gorm:"column:school_payment_status;type:varchar(20);not null;default:'pending';index" json:"school_payment_status"`
	SchoolPaymentMethod    *string    `gorm:"column:school_payment_method;type:varchar(40)" json:"school_payment_method,omitempty"`
	SchoolPaymentSnapToken *string    `gorm:"column:school_payment_snap_token;type:text" json:"school_payment_snap_token,omitempty"`
	SchoolPaymentPaidAt    *time.Time `gorm:"column:school_payment_paid_at" json:"school_payment_paid_at,omitempty"`

	SchoolPaymentCreatedAt time.Time      `gorm:"column:school_payment_created_at;not null;autoCreateTime" json:"school_payment_created_at"`
	SchoolPaymentUpdatedAt time.Time      `gorm:"column:school_payment_updated_at;not null;autoUpdateTime" json:"school_payment_updated_at"`
	SchoolPaymentDeletedAt gorm.DeletedAt `gorm:"column:school_payment_deleted_at;index" json:"school_payment_deleted_at,omitempty"`
}

func (SchoolPaymentModel) TableName() string { return "school_payments" }
