package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bursary_backend/internals/features/hr/payroll/dto"
	"bursary_backend/internals/features/hr/payroll/model"
	"bursary_backend/internals/features/hr/payroll/service"
	staffModel "bursary_backend/internals/features/hr/staff/model"
	helper "bursary_backend/internals/helpers"
)

type LoanController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewLoanController(db *gorm.DB) *LoanController {
	return &LoanController{DB: db, Validator: helper.Validate()}
}

// POST /api/a/staff-loans
func (ctl *LoanController) CreateLoan(c *fiber.Ctx) error {
	var req dto.CreateLoanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	staffID, _ := uuid.Parse(req.StaffID)
	startDate, err := helper.ParseDate(req.StartDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid start date")
	}

	var staff staffModel.StaffMemberModel
	if err := ctl.DB.First(&staff, "staff_id = ?", staffID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Staff member not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify staff member")
	}
	if !staff.StaffIsActive {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Staff member is not active")
	}

	principal := helper.Round2(req.Principal)
	loan := &model.StaffLoanModel{
		LoanStaffID:          staffID,
		LoanStaffName:        staff.FullName(),
		LoanPrincipal:        principal,
		LoanReason:           req.Reason,
		LoanTermMonths:       req.TermMonths,
		LoanMonthlyDeduction: service.MonthlyDeduction(principal, req.TermMonths),
		LoanAmountRepaid:     0,
		LoanBalance:          principal,
		LoanStartDate:        startDate,
		LoanStatus:           model.LoanActive,
	}

	if err := ctl.DB.Create(loan).Error; err != nil {
		log.Println("[ERROR] Failed to create staff loan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create staff loan")
	}

	return helper.JsonCreated(c, "Staff loan created successfully", dto.ToLoanResponse(loan))
}

// GET /api/u/staff-loans
func (ctl *LoanController) GetLoans(c *fiber.Ctx) error {
	page, perPage, offset := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.Model(&model.StaffLoanModel{})
	if staffID := strings.TrimSpace(c.Query("staff_id")); staffID != "" {
		id, err := uuid.Parse(staffID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid staff_id filter")
		}
		tx = tx.Where("loan_staff_id = ?", id)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !model.LoanStatus(status).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid status filter")
		}
		tx = tx.Where("loan_status = ?", status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve staff loans")
	}

	var loans []model.StaffLoanModel
	if err := tx.Order("loan_created_at DESC").Limit(perPage).Offset(offset).Find(&loans).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve staff loans")
	}

	pagination := helper.BuildPaginationFromPage(page, perPage, total)
	return helper.JsonList(c, dto.ToLoanResponses(loans), pagination)
}

func (ctl *LoanController) findLoan(c *fiber.Ctx) (*model.StaffLoanModel, *fiber.Error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid loan ID")
	}
	var loan model.StaffLoanModel
	if err := ctl.DB.First(&loan, "loan_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Staff loan not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve staff loan")
	}
	return &loan, nil
}

// GET /api/u/staff-loans/:id
func (ctl *LoanController) GetLoanByID(c *fiber.Ctx) error {
	loan, fe := ctl.findLoan(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonOK(c, "Staff loan fetched successfully", dto.ToLoanResponse(loan))
}

// GET /api/u/staff-loans/:id/schedule
func (ctl *LoanController) GetLoanSchedule(c *fiber.Ctx) error {
	loan, fe := ctl.findLoan(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonOK(c, "Loan schedule fetched successfully", fiber.Map{
		"loan":     dto.ToLoanResponse(loan),
		"schedule": service.BuildSchedule(loan),
	})
}

// PATCH /api/a/staff-loans/:id/repay
// Manual repayment outside payroll (e.g. the staff member pays cash).
func (ctl *LoanController) RecordRepayment(c *fiber.Ctx) error {
	var req dto.LoanRepaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	loan, fe := ctl.findLoan(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	if err := service.ApplyRepayment(loan, helper.Round2(req.Amount)); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if err := ctl.DB.Save(loan).Error; err != nil {
		log.Println("[ERROR] Failed to record loan repayment:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record loan repayment")
	}

	return helper.JsonUpdated(c, "Loan repayment recorded successfully", dto.ToLoanResponse(loan))
}

// PATCH /api/a/staff-loans/:id/cancel
// Cancellation is only possible before any money has moved.
func (ctl *LoanController) CancelLoan(c *fiber.Ctx) error {
	loan, fe := ctl.findLoan(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if loan.LoanStatus != model.LoanActive {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Only active loans can be cancelled")
	}
	if loan.LoanAmountRepaid > 0 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Loans with repayments cannot be cancelled")
	}

	if err := ctl.DB.Model(loan).Update("loan_status", model.LoanCancelled).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to cancel staff loan")
	}
	loan.LoanStatus = model.LoanCancelled

	return helper.JsonUpdated(c, "Staff loan cancelled successfully", dto.ToLoanResponse(loan))
}
