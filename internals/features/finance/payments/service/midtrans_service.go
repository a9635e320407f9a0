// internals/features/finance/payments/service/midtrans_service.go
package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	schoolModel "schoolku_backend/internals/features/schools/school/model"
	"schoolku_backend/internals/helpers/authz"
)

// Harga langganan per bulan per tier (IDR).
var tierMonthlyPriceIDR = map[string]int{
	"basic":      150000,
	"pro":        350000,
	"enterprise": 750000,
}

type PaymentService struct {
	DB   *gorm.DB
	Snap snap.Client
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	var client snap.Client
	client.New(configs.MidtransServerKey, midtrans.Sandbox)
	return &PaymentService{DB: db, Snap: client}
}

// TierPriceIDR: total harga tier × durasi. Tier tak dikenal = error.
func TierPriceIDR(tier string, months int) (int, error) {
	monthly, ok := tierMonthlyPriceIDR[tier]
	if !ok {
		return 0, authz.NewValidationError("tier langganan tidak dikenal")
	}
	if months < 1 || months > 24 {
		return 0, authz.NewValidationError("durasi langganan 1-24 bulan")
	}
	return monthly * months, nil
}

/* ======================= CHECKOUT ======================= */

// CreateSubscriptionCheckout: senior admin saja (junior tidak boleh ubah
// langganan). Buat baris pembayaran pending + Snap token Midtrans.
func (s *PaymentService) CreateSubscriptionCheckout(actor authz.Actor, schoolID uuid.UUID, tier string, months int) (*schoolModel.SchoolPaymentModel, error) {
	if err := authz.EnsureCanChangeSubscription(actor, schoolID); err != nil {
		return nil, err
	}

	amount, err := TierPriceIDR(tier, months)
	if err != nil {
		return nil, err
	}

	var school schoolModel.SchoolModel
	if err := s.DB.First(&school, "school_id = ?", schoolID).Error; err != nil {
		return nil, authz.ErrNotFound
	}

	orderID := fmt.Sprintf("SUB-%s-%d", strings.ToUpper(uuid.New().String()[:12]), time.Now().Unix())
	payment := schoolModel.SchoolPaymentModel{
		SchoolPaymentSchoolID:  schoolID,
		SchoolPaymentOrderID:   orderID,
		SchoolPaymentAmountIDR: amount,
		SchoolPaymentTier:      tier,
		SchoolPaymentMonths:    months,
		SchoolPaymentStatus:    "pending",
	}
	if err := s.DB.Create(&payment).Error; err != nil {
		return nil, err
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(amount),
		},
		Items: &[]midtrans.ItemDetails{{
			ID:    tier,
			Name:  fmt.Sprintf("Langganan %s %d bulan - %s", tier, months, school.SchoolName),
			Price: int64(amount),
			Qty:   1,
		}},
	}

	snapResp, snapErr := s.Snap.CreateTransaction(snapReq)
	if snapErr != nil {
		log.Println("[ERROR] Midtrans snap gagal:", snapErr.GetMessage())
		return nil, errors.New("gagal membuat transaksi pembayaran")
	}

	if err := s.DB.Model(&schoolModel.SchoolPaymentModel{}).
		Where("school_payment_id = ?", payment.SchoolPaymentID).
		Update("school_payment_snap_token", snapResp.Token).Error; err != nil {
		return nil, err
	}
	payment.SchoolPaymentSnapToken = &snapResp.Token

	return &payment, nil
}

/* ======================= WEBHOOK ======================= */

// HandleNotification memproses callback Midtrans. Idempoten: order yang
// sudah completed tidak diproses dua kali.
func (s *PaymentService) HandleNotification(orderID, transactionStatus, fraudStatus, paymentType string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var payment schoolModel.SchoolPaymentModel
		if err := tx.Where("school_payment_order_id = ?", orderID).First(&payment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return authz.ErrNotFound
			}
			return err
		}
		if payment.SchoolPaymentStatus == "completed" {
			return nil
		}

		var newStatus string
		switch transactionStatus {
		case "capture":
			if fraudStatus == "accept" {
				newStatus = "completed"
			} else {
				newStatus = "pending"
			}
		case "settlement":
			newStatus = "completed"
		case "deny", "cancel", "expire":
			newStatus = "failed"
		case "refund", "partial_refund":
			newStatus = "refunded"
		default:
			newStatus = "pending"
		}

		updates := map[string]any{
			"school_payment_status": newStatus,
			"school_payment_method": paymentType,
		}
		if newStatus == "completed" {
			now := time.Now()
			updates["school_payment_paid_at"] = now
		}
		if err := tx.Model(&schoolModel.SchoolPaymentModel{}).
			Where("school_payment_id = ?", payment.SchoolPaymentID).
			Updates(updates).Error; err != nil {
			return err
		}

		if newStatus != "completed" {
			return nil
		}

		// Perpanjang langganan + naikkan tier dalam transaksi yang sama
		var sub schoolModel.SubscriptionModel
		if err := tx.Where("subscription_school_id = ?", payment.SchoolPaymentSchoolID).
			First(&sub).Error; err != nil {
			return err
		}

		base := time.Now()
		if sub.SubscriptionEndDate.After(base) {
			base = sub.SubscriptionEndDate
		}
		if err := tx.Model(&schoolModel.SubscriptionModel{}).
			Where("subscription_id = ?", sub.SubscriptionID).
			Updates(map[string]any{
				"subscription_end_date": base.AddDate(0, payment.SchoolPaymentMonths, 0),
				"subscription_is_active": true,
			}).Error; err != nil {
			return err
		}

		return tx.Model(&schoolModel.SchoolModel{}).
			Where("school_id = ?", payment.SchoolPaymentSchoolID).
			Update("school_subscription_tier", payment.SchoolPaymentTier).Error
	})
}
