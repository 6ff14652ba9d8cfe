package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardRoute "bursary_backend/internals/features/dashboard/route"
	reportRoute "bursary_backend/internals/features/reports/route"
)

// Reports and the dashboard are read-only so every authenticated role,
// auditors included, gets them.
func ReportRoutes(r fiber.Router, db *gorm.DB) {
	reportRoute.ReportUserRoutes(r, db)
	dashboardRoute.DashboardUserRoutes(r, db)
}
