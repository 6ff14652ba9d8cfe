package details

import (
	expenseRoute "bursary_backend/internals/features/finance/expenses/route"
	feeRoute "bursary_backend/internals/features/finance/fees/route"
	paymentRoute "bursary_backend/internals/features/finance/payments/route"
	"bursary_backend/internals/services/mailer"
	"bursary_backend/internals/services/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func FinanceUserRoutes(r fiber.Router, db *gorm.DB, store *storage.Store, mail mailer.Mailer) {
	feeRoute.FeeUserRoutes(r, db)
	paymentRoute.PaymentUserRoutes(r, db, store, mail)
	expenseRoute.ExpenseUserRoutes(r, db)
}

func FinanceAdminRoutes(r fiber.Router, db *gorm.DB, store *storage.Store, mail mailer.Mailer) {
	feeRoute.FeeAdminRoutes(r, db)
	paymentRoute.PaymentAdminRoutes(r, db, store, mail)
	expenseRoute.ExpenseAdminRoutes(r, db, store)
}
