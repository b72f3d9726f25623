// file: internals/features/finance/payments/route/payment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "academyku_backend/internals/features/finance/payments/controller"
)

// PaymentPublicRoutes: semua endpoint payment publik (tanpa login).
// Webhook di-skip dari auth middleware — Paystack tidak bawa JWT.
func PaymentPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	payments := public.Group("/payments")
	payments.Post("/initialize", ctrl.InitializePayment)
	payments.Get("/verify/:reference", ctrl.VerifyPayment)
	payments.Post("/webhook", ctrl.PaystackWebhook)
}
