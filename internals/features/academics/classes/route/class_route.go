package route

import (
	classController "bursary_backend/internals/features/academics/classes/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ClassUserRoutes exposes read endpoints for any authenticated role.
func ClassUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classController.NewClassController(db)

	classes := r.Group("/classes")
	classes.Get("/", ctrl.GetClasses)
	classes.Get("/:id", ctrl.GetClassByID)
}

// ClassAdminRoutes exposes mutations; mounted behind the finance-write group.
func ClassAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classController.NewClassController(db)

	classes := r.Group("/classes")
	classes.Post("/", ctrl.CreateClass)
	classes.Put("/:id", ctrl.UpdateClass)
	classes.Delete("/:id", ctrl.DeleteClass)
}
