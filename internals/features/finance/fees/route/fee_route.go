package route

import (
	feeController "bursary_backend/internals/features/finance/fees/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func FeeUserRoutes(r fiber.Router, db *gorm.DB) {
	categoryCtrl := feeController.NewFeeCategoryController(db)
	structureCtrl := feeController.NewFeeStructureController(db)
	assignmentCtrl := feeController.NewFeeAssignmentController(db)
	scholarshipCtrl := feeController.NewScholarshipController(db)

	categories := r.Group("/fee-categories")
	categories.Get("/", categoryCtrl.GetCategories)
	categories.Get("/:id", categoryCtrl.GetCategoryByID)

	structures := r.Group("/fee-structures")
	structures.Get("/", structureCtrl.GetStructures)
	structures.Get("/:id", structureCtrl.GetStructureByID)

	assignments := r.Group("/fee-assignments")
	assignments.Get("/", assignmentCtrl.GetAssignments)
	assignments.Get("/student/:studentId", assignmentCtrl.GetAssignmentsByStudent)
	assignments.Get("/:id", assignmentCtrl.GetAssignmentByID)
	assignments.Get("/:id/summary", assignmentCtrl.GetAssignmentSummary)

	scholarships := r.Group("/scholarships")
	scholarships.Get("/", scholarshipCtrl.GetScholarships)
	scholarships.Get("/:id", scholarshipCtrl.GetScholarshipByID)
}

func FeeAdminRoutes(r fiber.Router, db *gorm.DB) {
	categoryCtrl := feeController.NewFeeCategoryController(db)
	structureCtrl := feeController.NewFeeStructureController(db)
	assignmentCtrl := feeController.NewFeeAssignmentController(db)
	scholarshipCtrl := feeController.NewScholarshipController(db)

	categories := r.Group("/fee-categories")
	categories.Post("/", categoryCtrl.CreateCategory)
	categories.Put("/:id", categoryCtrl.UpdateCategory)
	categories.Delete("/:id", categoryCtrl.DeleteCategory)

	structures := r.Group("/fee-structures")
	structures.Post("/", structureCtrl.CreateStructure)
	structures.Put("/:id", structureCtrl.UpdateStructure)
	structures.Delete("/:id", structureCtrl.DeleteStructure)

	assignments := r.Group("/fee-assignments")
	assignments.Post("/", assignmentCtrl.AssignFees)
	assignments.Patch("/:id/scholarship", assignmentCtrl.ApplyScholarship)
	assignments.Delete("/:id/scholarship", assignmentCtrl.RemoveScholarship)

	scholarships := r.Group("/scholarships")
	scholarships.Post("/", scholarshipCtrl.CreateScholarship)
	scholarships.Put("/:id", scholarshipCtrl.UpdateScholarship)
	scholarships.Delete("/:id", scholarshipCtrl.DeleteScholarship)
}
