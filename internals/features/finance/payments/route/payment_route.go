package route

import (
	paymentController "bursary_backend/internals/features/finance/payments/controller"
	"bursary_backend/internals/services/mailer"
	"bursary_backend/internals/services/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PaymentUserRoutes(r fiber.Router, db *gorm.DB, store *storage.Store, mail mailer.Mailer) {
	ctrl := paymentController.NewPaymentController(db, store, mail)

	payments := r.Group("/payments")
	payments.Get("/", ctrl.GetPayments)
	payments.Get("/:id", ctrl.GetPaymentByID)
}

func PaymentAdminRoutes(r fiber.Router, db *gorm.DB, store *storage.Store, mail mailer.Mailer) {
	ctrl := paymentController.NewPaymentController(db, store, mail)

	payments := r.Group("/payments")
	payments.Post("/", ctrl.CreatePayment)
	payments.Patch("/:id/confirm", ctrl.ConfirmPayment)
	payments.Patch("/:id/cancel", ctrl.CancelPayment)
	payments.Patch("/:id/refund", ctrl.RefundPayment)
	payments.Patch("/:id/notes", ctrl.UpdateNotes)
	payments.Post("/:id/receipt", ctrl.UploadReceipt)
}
