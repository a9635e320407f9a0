// internals/features/finance/payments/controller/payment_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentService "schoolku_backend/internals/features/finance/payments/service"
	schoolModel "schoolku_backend/internals/features/schools/school/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/authz"
)

var validate = validator.New()

type PaymentController struct {
	Service *paymentService.PaymentService
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{Service: paymentService.NewPaymentService(db)}
}

type upgradeRequest struct {
	Tier   string `json:"tier" validate:"required,oneof=basic pro enterprise"`
	Months int    `json:"months" validate:"required,gte=1,lte=24"`
}

// POST /api/finance/subscription/checkout (senior admin)
func (ctl *PaymentController) CreateCheckout(c *fiber.Ctx) error {
	actor, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	var req upgradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	payment, err := ctl.Service.CreateSubscriptionCheckout(actor, schoolID, req.Tier, req.Months)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}

	return helper.JsonCreated(c, "Checkout dibuat", fiber.Map{
		"order_id":   payment.SchoolPaymentOrderID,
		"amount_idr": payment.SchoolPaymentAmountIDR,
		"snap_token": payment.SchoolPaymentSnapToken,
	})
}

// POST /api/finance/subscription/notification — webhook Midtrans (tanpa auth)
func (ctl *PaymentController) HandleNotification(c *fiber.Ctx) error {
	var payload struct {
		OrderID           string `json:"order_id"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
		PaymentType       string `json:"payment_type"`
	}
	if err := c.BodyParser(&payload); err != nil || payload.OrderID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload notifikasi tidak valid")
	}

	log.Printf("[INFO] Notifikasi Midtrans: order=%s status=%s", payload.OrderID, payload.TransactionStatus)

	if err := ctl.Service.HandleNotification(payload.OrderID,
		payload.TransactionStatus, payload.FraudStatus, payload.PaymentType); err != nil {
		return helper.JsonAuthzError(c, err)
	}
	return helper.JsonOK(c, "OK", nil)
}

// GET /api/finance/subscription/payments — riwayat pembayaran sekolah
func (ctl *PaymentController) PaymentHistory(c *fiber.Ctx) error {
	actor, schoolID, err := helper.RequireSchoolActor(c)
	if err != nil {
		return helper.JsonAuthzError(c, err)
	}
	if err := authz.EnsureAdminRead(actor, schoolID); err != nil {
		return helper.JsonAuthzError(c, err)
	}

	var payments []schoolModel.SchoolPaymentModel
	if err := ctl.Service.DB.
		Where("school_payment_school_id = ?", schoolID).
		Order("school_payment_created_at DESC").
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "OK", payments)
}
