package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classRoute "bursary_backend/internals/features/academics/classes/route"
	studentRoute "bursary_backend/internals/features/students/route"
)

func AcademicUserRoutes(r fiber.Router, db *gorm.DB) {
	classRoute.ClassUserRoutes(r, db)
	studentRoute.StudentUserRoutes(r, db)
}

func AcademicAdminRoutes(r fiber.Router, db *gorm.DB) {
	classRoute.ClassAdminRoutes(r, db)
	studentRoute.StudentAdminRoutes(r, db)
}
