package route

import (
	studentController "bursary_backend/internals/features/students/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func StudentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)

	students := r.Group("/students")
	students.Get("/", ctrl.GetStudents)
	students.Get("/:id", ctrl.GetStudentByID)
}

func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)

	students := r.Group("/students")
	students.Post("/", ctrl.CreateStudent)
	students.Put("/:id", ctrl.UpdateStudent)
	students.Delete("/:id", ctrl.DeleteStudent)
}
