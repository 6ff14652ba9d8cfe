package route

import (
	staffController "bursary_backend/internals/features/hr/staff/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func StaffUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := staffController.NewStaffController(db)

	staff := r.Group("/staff")
	staff.Get("/", ctrl.GetStaff)
	staff.Get("/:id", ctrl.GetStaffByID)
}

func StaffAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := staffController.NewStaffController(db)

	staff := r.Group("/staff")
	staff.Post("/", ctrl.CreateStaff)
	staff.Put("/:id", ctrl.UpdateStaff)
	staff.Patch("/:id/deactivate", ctrl.DeactivateStaff)
	staff.Delete("/:id", ctrl.DeleteStaff)
}
