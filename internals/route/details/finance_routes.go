// internals/route/details/finance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	feeController "schoolku_backend/internals/features/finance/fees/controller"
	paymentController "schoolku_backend/internals/features/finance/payments/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// Webhook Midtrans — publik, di-skip juga oleh auth middleware.
func RegisterWebhookRoutes(api fiber.Router, db *gorm.DB) {
	payments := paymentController.NewPaymentController(db)
	api.Post("/finance/subscription/notification", payments.HandleNotification)
}

func RegisterFinanceRoutes(api fiber.Router, db *gorm.DB) {
	fees := feeController.NewFeeController(db)
	payments := paymentController.NewPaymentController(db)

	finance := api.Group("/finance")

	seniorOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorSenior("keuangan"), constants.RoleSeniorAdmin)
	adminOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorAdmin("keuangan"), constants.AdminRoles...)

	// Struktur biaya + tagihan + pembayaran manual
	finance.Post("/fee-structures", seniorOnly, fees.CreateFeeStructure)
	finance.Get("/fee-structures", adminOnly, fees.ListFeeStructures)
	finance.Post("/student-fees", seniorOnly, fees.AssignStudentFee)
	finance.Post("/payments", seniorOnly, fees.RecordPayment)
	finance.Get("/students/:id/ledger", fees.StudentLedger)
	finance.Get("/me/ledger", fees.MyLedger)

	// Langganan sekolah (Midtrans)
	finance.Post("/subscription/checkout", seniorOnly, payments.CreateCheckout)
	finance.Get("/subscription/payments", adminOnly, payments.PaymentHistory)
}
