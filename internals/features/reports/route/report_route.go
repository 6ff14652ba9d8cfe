package route

import (
	reportController "bursary_backend/internals/features/reports/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ReportUserRoutes mounts the report builders. Reports are read-only, so the
// whole surface (auditors included) lives on the user group.
func ReportUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := reportController.NewReportController(db)

	reports := r.Group("/reports")
	reports.Get("/balance-sheet", ctrl.BalanceSheet)
	reports.Get("/asset-register", ctrl.AssetRegister)
	reports.Get("/depreciation-schedule", ctrl.DepreciationSchedule)
	reports.Get("/fee-collection", ctrl.FeeCollection)
	reports.Get("/outstanding-fees", ctrl.OutstandingFees)
	reports.Get("/expense-summary", ctrl.ExpenseSummary)
}
