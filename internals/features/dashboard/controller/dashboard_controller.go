package controller

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bankingModel "bursary_backend/internals/features/banking/model"
	"bursary_backend/internals/features/dashboard/dto"
	expenseModel "bursary_backend/internals/features/finance/expenses/model"
	feeModel "bursary_backend/internals/features/finance/fees/model"
	paymentDTO "bursary_backend/internals/features/finance/payments/dto"
	paymentModel "bursary_backend/internals/features/finance/payments/model"
	payrollModel "bursary_backend/internals/features/hr/payroll/model"
	staffModel "bursary_backend/internals/features/hr/staff/model"
	studentModel "bursary_backend/internals/features/students/model"
	helper "bursary_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// CurrentAcademicPeriod maps a date onto the Nigerian three-term calendar:
// first term Sep-Dec, second Jan-Apr, third May-Aug. The session label runs
// Sep to Aug, e.g. December 2024 and March 2025 are both "2024/2025".
func CurrentAcademicPeriod(now time.Time) (academicYear string, term feeModel.Term) {
	year := now.Year()
	switch {
	case now.Month() >= time.September:
		return fmt.Sprintf("%d/%d", year, year+1), feeModel.TermFirst
	case now.Month() <= time.April:
		return fmt.Sprintf("%d/%d", year-1, year), feeModel.TermSecond
	default:
		return fmt.Sprintf("%d/%d", year-1, year), feeModel.TermThird
	}
}

func (ctrl *DashboardController) count(model any, query string, args ...any) (int64, error) {
	var n int64
	tx := ctrl.DB.Model(model)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	return n, tx.Count(&n).Error
}

func (ctrl *DashboardController) sum(model any, expr, query string, args ...any) (float64, error) {
	var total *float64
	tx := ctrl.DB.Model(model)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	if err := tx.Select(expr).Scan(&total).Error; err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return helper.Round2(*total), nil
}

// GET /api/u/dashboard/overview
// ?academic_year= and ?term= override the inferred current term.
func (ctrl *DashboardController) Overview(c *fiber.Ctx) error {
	now := time.Now().UTC()
	academicYear, term := CurrentAcademicPeriod(now)
	if y := strings.TrimSpace(c.Query("academic_year")); y != "" {
		if !helper.IsValidAcademicYear(y) {
			return helper.JsonError(c, fiber.StatusBadRequest, "academic_year must look like 2024/2025")
		}
		academicYear = y
	}
	if t := strings.TrimSpace(c.Query("term")); t != "" {
		if !feeModel.Term(t).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "term must be first, second or third")
		}
		term = feeModel.Term(t)
	}

	resp := dto.OverviewResponse{}
	var err error

	if resp.Students.Total, err = ctrl.count(&studentModel.StudentModel{}, ""); err != nil {
		return ctrl.fail(c, "students", err)
	}
	if resp.Students.Active, err = ctrl.count(&studentModel.StudentModel{},
		"student_status = ?", studentModel.StudentActive); err != nil {
		return ctrl.fail(c, "students", err)
	}
	if resp.ActiveStaff, err = ctrl.count(&staffModel.StaffMemberModel{},
		"staff_is_active = TRUE"); err != nil {
		return ctrl.fail(c, "staff", err)
	}

	resp.Fees = dto.FeeStats{AcademicYear: academicYear, Term: string(term)}
	termFilter := "fee_assignment_academic_year = ? AND fee_assignment_term = ?"
	if resp.Fees.Assigned, err = ctrl.sum(&feeModel.FeeAssignmentModel{},
		"COALESCE(SUM(fee_assignment_total_amount), 0)", termFilter, academicYear, term); err != nil {
		return ctrl.fail(c, "fees", err)
	}
	if resp.Fees.Collected, err = ctrl.sum(&feeModel.FeeAssignmentModel{},
		"COALESCE(SUM(fee_assignment_amount_paid), 0)", termFilter, academicYear, term); err != nil {
		return ctrl.fail(c, "fees", err)
	}
	if resp.Fees.Outstanding, err = ctrl.sum(&feeModel.FeeAssignmentModel{},
		"COALESCE(SUM(fee_assignment_balance), 0)", termFilter, academicYear, term); err != nil {
		return ctrl.fail(c, "fees", err)
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if resp.MonthExpensesPaid, err = ctrl.sum(&expenseModel.ExpenseModel{},
		"COALESCE(SUM(expense_amount), 0)",
		"expense_status = ? AND expense_payment_date >= ?", expenseModel.ExpensePaid, monthStart); err != nil {
		return ctrl.fail(c, "expenses", err)
	}

	if resp.BankBalanceTotal, err = ctrl.sum(&bankingModel.BankAccountModel{},
		"COALESCE(SUM(bank_account_balance), 0)", "bank_account_is_active = TRUE"); err != nil {
		return ctrl.fail(c, "bank accounts", err)
	}

	if resp.Pending.Payments, err = ctrl.count(&paymentModel.PaymentModel{},
		"payment_status = ?", paymentModel.PaymentPending); err != nil {
		return ctrl.fail(c, "payments", err)
	}
	if resp.Pending.SalaryPayments, err = ctrl.count(&payrollModel.SalaryPaymentModel{},
		"salary_status = ?", payrollModel.SalaryPending); err != nil {
		return ctrl.fail(c, "salary payments", err)
	}
	if resp.Pending.Transfers, err = ctrl.count(&bankingModel.TransferModel{},
		"transfer_status = ?", bankingModel.TransferPending); err != nil {
		return ctrl.fail(c, "transfers", err)
	}
	if resp.Pending.PayableExpenses, err = ctrl.count(&expenseModel.ExpenseModel{},
		"expense_status = ?", expenseModel.ExpenseApproved); err != nil {
		return ctrl.fail(c, "expenses", err)
	}

	var recent []paymentModel.PaymentModel
	if err := ctrl.DB.Order("payment_created_at DESC").Limit(10).Find(&recent).Error; err != nil {
		return ctrl.fail(c, "recent payments", err)
	}
	resp.RecentPayments = paymentDTO.ToPaymentResponses(recent)

	return helper.JsonOK(c, "Dashboard overview fetched successfully", resp)
}

func (ctrl *DashboardController) fail(c *fiber.Ctx, section string, err error) error {
	log.Printf("[ERROR] Dashboard overview failed on %s: %v", section, err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build dashboard overview")
}
