package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bankingRoute "bursary_backend/internals/features/banking/route"
)

func BankUserRoutes(r fiber.Router, db *gorm.DB) {
	bankingRoute.BankingUserRoutes(r, db)
}

func BankAdminRoutes(r fiber.Router, db *gorm.DB) {
	bankingRoute.BankingAdminRoutes(r, db)
}
