package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	payrollRoute "bursary_backend/internals/features/hr/payroll/route"
	staffRoute "bursary_backend/internals/features/hr/staff/route"
)

func HRUserRoutes(r fiber.Router, db *gorm.DB) {
	staffRoute.StaffUserRoutes(r, db)
	payrollRoute.PayrollUserRoutes(r, db)
}

func HRAdminRoutes(r fiber.Router, db *gorm.DB) {
	staffRoute.StaffAdminRoutes(r, db)
	payrollRoute.PayrollAdminRoutes(r, db)
}
