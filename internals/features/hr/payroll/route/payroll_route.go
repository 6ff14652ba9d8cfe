package route

import (
	payrollController "bursary_backend/internals/features/hr/payroll/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PayrollUserRoutes(r fiber.Router, db *gorm.DB) {
	salaryCtl := payrollController.NewSalaryController(db)
	loanCtl := payrollController.NewLoanController(db)
	adjCtl := payrollController.NewAdjustmentController(db)

	salaries := r.Group("/salary-payments")
	salaries.Get("/", salaryCtl.GetSalaryPayments)
	salaries.Get("/:id", salaryCtl.GetSalaryPaymentByID)

	loans := r.Group("/staff-loans")
	loans.Get("/", loanCtl.GetLoans)
	loans.Get("/:id", loanCtl.GetLoanByID)
	loans.Get("/:id/schedule", loanCtl.GetLoanSchedule)

	bonuses := r.Group("/staff-bonuses")
	bonuses.Get("/", adjCtl.GetBonuses)

	penalties := r.Group("/staff-penalties")
	penalties.Get("/", adjCtl.GetPenalties)
}

func PayrollAdminRoutes(r fiber.Router, db *gorm.DB) {
	salaryCtl := payrollController.NewSalaryController(db)
	loanCtl := payrollController.NewLoanController(db)
	adjCtl := payrollController.NewAdjustmentController(db)

	r.Get("/payroll/prepare", salaryCtl.PreparePayroll)

	salaries := r.Group("/salary-payments")
	salaries.Post("/", salaryCtl.CreateSalaryPayment)
	salaries.Patch("/:id/approve", salaryCtl.ApproveSalaryPayment)
	salaries.Patch("/:id/pay", salaryCtl.MarkSalaryPaymentPaid)

	loans := r.Group("/staff-loans")
	loans.Post("/", loanCtl.CreateLoan)
	loans.Patch("/:id/repay", loanCtl.RecordRepayment)
	loans.Patch("/:id/cancel", loanCtl.CancelLoan)

	bonuses := r.Group("/staff-bonuses")
	bonuses.Post("/", adjCtl.CreateBonus)
	bonuses.Delete("/:id", adjCtl.VoidBonus)

	penalties := r.Group("/staff-penalties")
	penalties.Post("/", adjCtl.CreatePenalty)
	penalties.Delete("/:id", adjCtl.VoidPenalty)
}
