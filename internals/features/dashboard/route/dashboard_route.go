package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardController "bursary_backend/internals/features/dashboard/controller"
)

// DashboardUserRoutes mounts the overview endpoint for every authenticated role.
func DashboardUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := dashboardController.NewDashboardController(db)

	dashboard := r.Group("/dashboard")
	dashboard.Get("/overview", ctrl.Overview)
}
