package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"bursary_backend/internals/features/hr/payroll/dto"
	"bursary_backend/internals/features/hr/payroll/model"
	"bursary_backend/internals/features/hr/payroll/service"
	staffModel "bursary_backend/internals/features/hr/staff/model"
	helper "bursary_backend/internals/helpers"
)

type SalaryController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSalaryController(db *gorm.DB) *SalaryController {
	return &SalaryController{DB: db, Validator: helper.Validate()}
}

func timeNowUTC() time.Time { return time.Now().UTC() }

// generateUniqueReference retries on the unlikely suffix collision.
func (ctl *SalaryController) generateUniqueReference(at time.Time) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		ref := helper.GenerateSalaryReference(at)
		var count int64
		if err := ctl.DB.Model(&model.SalaryPaymentModel{}).Where("salary_reference = ?", ref).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return ref, nil
		}
	}
	return "", errors.New("could not generate a unique salary reference")
}

func (ctl *SalaryController) findStaff(tx *gorm.DB, id uuid.UUID) (*staffModel.StaffMemberModel, *fiber.Error) {
	var staff staffModel.StaffMemberModel
	if err := tx.First(&staff, "staff_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Staff member not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to verify staff member")
	}
	return &staff, nil
}

// claimedIDsForStaff collects bonus/penalty/loan IDs already sitting on an
// open (pending or approved) payslip, so they cannot be claimed twice.
func (ctl *SalaryController) claimedIDsForStaff(staffID uuid.UUID) (map[string]bool, error) {
	var open []model.SalaryPaymentModel
	err := ctl.DB.
		Select("salary_bonus_ids", "salary_penalty_ids", "salary_loan_ids").
		Where("salary_staff_id = ? AND salary_status IN ?", staffID,
			[]model.SalaryStatus{model.SalaryPending, model.SalaryApproved}).
		Find(&open).Error
	if err != nil {
		return nil, err
	}
	claimed := map[string]bool{}
	for i := range open {
		for _, id := range open[i].SalaryBonusIDs {
			claimed[id] = true
		}
		for _, id := range open[i].SalaryPenaltyIDs {
			claimed[id] = true
		}
		for _, id := range open[i].SalaryLoanIDs {
			claimed[id] = true
		}
	}
	return claimed, nil
}

// GET /api/a/payroll/prepare?staff_id=&period_start=&period_end=
// Assembles a draft payslip the bursar can edit before posting it.
func (ctl *SalaryController) PreparePayroll(c *fiber.Ctx) error {
	staffID, err := uuid.Parse(strings.TrimSpace(c.Query("staff_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "A valid staff_id is required")
	}

	staff, fe := ctl.findStaff(ctl.DB, staffID)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if !staff.StaffIsActive {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Staff member is not active")
	}

	claimed, err := ctl.claimedIDsForStaff(staffID)
	if err != nil {
		log.Println("[ERROR] Failed to resolve claimed payroll items:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to prepare payroll")
	}

	var bonuses []model.StaffBonusModel
	if err := ctl.DB.
		Where("bonus_staff_id = ? AND bonus_status = ?", staffID, model.AdjustmentPending).
		Order("bonus_awarded_date ASC").
		Find(&bonuses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load pending bonuses")
	}
	var penalties []model.StaffPenaltyModel
	if err := ctl.DB.
		Where("penalty_staff_id = ? AND penalty_status = ?", staffID, model.AdjustmentPending).
		Order("penalty_issued_date ASC").
		Find(&penalties).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load pending penalties")
	}
	var loans []model.StaffLoanModel
	if err := ctl.DB.
		Where("loan_staff_id = ? AND loan_status = ?", staffID, model.LoanActive).
		Order("loan_start_date ASC").
		Find(&loans).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load active loans")
	}

	bonuses = filterUnclaimedBonuses(bonuses, claimed)
	penalties = filterUnclaimedPenalties(penalties, claimed)
	loans = filterUnclaimedLoans(loans, claimed)

	draft := service.PreparePayroll(staff, bonuses, penalties, loans)
	return helper.JsonOK(c, "Payroll draft prepared successfully", fiber.Map{
		"staff_id":     staff.StaffID,
		"staff_name":   staff.FullName(),
		"staff_number": staff.StaffNumber,
		"draft":        draft,
	})
}

func filterUnclaimedBonuses(in []model.StaffBonusModel, claimed map[string]bool) []model.StaffBonusModel {
	out := in[:0]
	for i := range in {
		if !claimed[in[i].BonusID.String()] {
			out = append(out, in[i])
		}
	}
	return out
}

func filterUnclaimedPenalties(in []model.StaffPenaltyModel, claimed map[string]bool) []model.StaffPenaltyModel {
	out := in[:0]
	for i := range in {
		if !claimed[in[i].PenaltyID.String()] {
			out = append(out, in[i])
		}
	}
	return out
}

func filterUnclaimedLoans(in []model.StaffLoanModel, claimed map[string]bool) []model.StaffLoanModel {
	out := in[:0]
	for i := range in {
		if !claimed[in[i].LoanID.String()] {
			out = append(out, in[i])
		}
	}
	return out
}

// POST /api/a/salary-payments
func (ctl *SalaryController) CreateSalaryPayment(c *fiber.Ctx) error {
	var req dto.CreateSalaryPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	staffID, _ := uuid.Parse(req.StaffID)
	paymentDate, err := helper.ParseDate(req.PaymentDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payment date")
	}
	periodStart, err := helper.ParseDate(req.PeriodStart)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid period start")
	}
	periodEnd, err := helper.ParseDate(req.PeriodEnd)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid period end")
	}

	if periodEnd.Before(periodStart) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Period end must not be before period start")
	}
	if paymentDate.Before(periodStart) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Payment date must not be before the period start")
	}
	if helper.IsMoreThanDaysInFuture(paymentDate, 30) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Payment date must not be more than 30 days in the future")
	}

	allowances := req.ToPayItems()
	deductions := req.ToDeductionItems()
	if err := service.ValidateItemNames(allowances, deductions); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	staff, fe := ctl.findStaff(ctl.DB, staffID)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if !staff.StaffIsActive {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Staff member is not active")
	}

	reference, err := ctl.generateUniqueReference(timeNowUTC())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate salary reference")
	}

	payment := &model.SalaryPaymentModel{
		SalaryStaffID:     staffID,
		SalaryStaffName:   staff.FullName(),
		SalaryStaffNumber: staff.StaffNumber,
		SalaryPaymentDate: paymentDate,
		SalaryPeriodStart: periodStart,
		SalaryPeriodEnd:   periodEnd,
		SalaryBasic:       helper.Round2(req.Basic),
		SalaryAllowances:  datatypes.NewJSONSlice(allowances),
		SalaryDeductions:  datatypes.NewJSONSlice(deductions),
		SalaryGross:       service.ComputeGross(req.Basic, allowances),
		SalaryNet:         service.ComputeNet(req.Basic, allowances, deductions),
		SalaryMethod:      model.SalaryMethod(req.Method),
		SalaryReference:   reference,
		SalaryStatus:      model.SalaryPending,
		SalaryNotes:       req.Notes,
		SalaryBonusIDs:    pq.StringArray(req.BonusIDs),
		SalaryPenaltyIDs:  pq.StringArray(req.PenaltyIDs),
		SalaryLoanIDs:     pq.StringArray(req.LoanIDs),
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var dupPaid int64
		if err := tx.Model(&model.SalaryPaymentModel{}).
			Where("salary_staff_id = ? AND salary_period_start = ? AND salary_period_end = ? AND salary_status = ?",
				staffID, periodStart, periodEnd, model.SalaryPaid).
			Count(&dupPaid).Error; err != nil {
			return err
		}
		if dupPaid > 0 {
			return fiber.NewError(fiber.StatusConflict, "A paid salary already exists for this staff member and period")
		}

		if err := ctl.validateClaims(tx, staffID, payment); err != nil {
			return err
		}
		return tx.Create(payment).Error
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Println("[ERROR] Failed to create salary payment:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create salary payment")
	}

	return helper.JsonCreated(c, "Salary payment created successfully", dto.ToSalaryPaymentResponse(payment))
}

// validateClaims checks every referenced bonus, penalty and loan: it must
// belong to the staff member, still be open, and not sit on another open
// payslip.
func (ctl *SalaryController) validateClaims(tx *gorm.DB, staffID uuid.UUID, payment *model.SalaryPaymentModel) error {
	claimed, err := ctl.claimedIDsForStaff(staffID)
	if err != nil {
		return err
	}

	for _, raw := range payment.SalaryBonusIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid bonus ID "+raw)
		}
		if claimed[raw] {
			return fiber.NewError(fiber.StatusConflict, "Bonus is already claimed by another payslip")
		}
		var bonus model.StaffBonusModel
		if err := tx.First(&bonus, "bonus_id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Bonus not found: "+raw)
		}
		if bonus.BonusStaffID != staffID {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Bonus belongs to a different staff member")
		}
		if bonus.BonusStatus != model.AdjustmentPending {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Bonus has already been applied")
		}
	}
	for _, raw := range payment.SalaryPenaltyIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid penalty ID "+raw)
		}
		if claimed[raw] {
			return fiber.NewError(fiber.StatusConflict, "Penalty is already claimed by another payslip")
		}
		var penalty model.StaffPenaltyModel
		if err := tx.First(&penalty, "penalty_id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Penalty not found: "+raw)
		}
		if penalty.PenaltyStaffID != staffID {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Penalty belongs to a different staff member")
		}
		if penalty.PenaltyStatus != model.AdjustmentPending {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Penalty has already been applied")
		}
	}
	for _, raw := range payment.SalaryLoanIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid loan ID "+raw)
		}
		if claimed[raw] {
			return fiber.NewError(fiber.StatusConflict, "Loan installment is already claimed by another payslip")
		}
		var loan model.StaffLoanModel
		if err := tx.First(&loan, "loan_id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Loan not found: "+raw)
		}
		if loan.LoanStaffID != staffID {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Loan belongs to a different staff member")
		}
		if loan.LoanStatus != model.LoanActive {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Loan is not active")
		}
	}
	return nil
}

func (ctl *SalaryController) filteredQuery(c *fiber.Ctx) (*gorm.DB, error) {
	tx := ctl.DB.Model(&model.SalaryPaymentModel{})

	if staffID := strings.TrimSpace(c.Query("staff_id")); staffID != "" {
		id, err := uuid.Parse(staffID)
		if err != nil {
			return nil, errors.New("invalid staff_id filter")
		}
		tx = tx.Where("salary_staff_id = ?", id)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !model.SalaryStatus(status).Valid() {
			return nil, errors.New("invalid status filter")
		}
		tx = tx.Where("salary_status = ?", status)
	}
	if method := strings.TrimSpace(c.Query("method")); method != "" {
		if !model.SalaryMethod(method).Valid() {
			return nil, errors.New("invalid method filter")
		}
		tx = tx.Where("salary_method = ?", method)
	}
	if from := strings.TrimSpace(c.Query("date_from")); from != "" {
		d, err := helper.ParseDate(from)
		if err != nil {
			return nil, errors.New("invalid date_from filter")
		}
		tx = tx.Where("salary_payment_date >= ?", d)
	}
	if to := strings.TrimSpace(c.Query("date_to")); to != "" {
		d, err := helper.ParseDate(to)
		if err != nil {
			return nil, errors.New("invalid date_to filter")
		}
		tx = tx.Where("salary_payment_date <= ?", d)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		if helper.IsValidSalaryReference(q) {
			tx = tx.Where("salary_reference = ?", q)
		} else {
			pattern := "%" + q + "%"
			tx = tx.Where("salary_reference ILIKE ? OR salary_staff_name ILIKE ?", pattern, pattern)
		}
	}
	return tx, nil
}

// GET /api/u/salary-payments
// ?format=csv|xlsx streams the filtered rows as a download instead.
func (ctl *SalaryController) GetSalaryPayments(c *fiber.Ctx) error {
	tx, err := ctl.filteredQuery(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if format := helper.ExportFormat(c); format != "" {
		return ctl.exportSalaryPayments(c, tx, format)
	}

	page, perPage, offset := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve salary payments")
	}

	var payments []model.SalaryPaymentModel
	if err := tx.Order("salary_created_at DESC").Limit(perPage).Offset(offset).Find(&payments).Error; err != nil {
		log.Println("[ERROR] Failed to fetch salary payments:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve salary payments")
	}

	pagination := helper.BuildPaginationFromPage(page, perPage, total)
	return helper.JsonList(c, dto.ToSalaryPaymentResponses(payments), pagination)
}

func (ctl *SalaryController) exportSalaryPayments(c *fiber.Ctx, tx *gorm.DB, format string) error {
	var payments []model.SalaryPaymentModel
	if err := tx.Order("salary_payment_date ASC").Limit(10000).Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve salary payments")
	}

	header := []string{"Reference", "Staff", "Staff Number", "Period Start", "Period End", "Basic", "Gross", "Net", "Method", "Status", "Payment Date"}
	filename := "salary-payments-" + timeNowUTC().Format("20060102")

	switch format {
	case "csv":
		rows := make([][]string, 0, len(payments))
		for i := range payments {
			p := &payments[i]
			rows = append(rows, []string{
				p.SalaryReference, p.SalaryStaffName, p.SalaryStaffNumber,
				helper.FormatDate(p.SalaryPeriodStart), helper.FormatDate(p.SalaryPeriodEnd),
				fmt.Sprintf("%.2f", p.SalaryBasic), fmt.Sprintf("%.2f", p.SalaryGross), fmt.Sprintf("%.2f", p.SalaryNet),
				string(p.SalaryMethod), string(p.SalaryStatus), helper.FormatDate(p.SalaryPaymentDate),
			})
		}
		return helper.SendCSV(c, filename+".csv", header, rows)
	case "xlsx":
		rows := make([][]any, 0, len(payments))
		for i := range payments {
			p := &payments[i]
			rows = append(rows, []any{
				p.SalaryReference, p.SalaryStaffName, p.SalaryStaffNumber,
				helper.FormatDate(p.SalaryPeriodStart), helper.FormatDate(p.SalaryPeriodEnd),
				p.SalaryBasic, p.SalaryGross, p.SalaryNet,
				string(p.SalaryMethod), string(p.SalaryStatus), helper.FormatDate(p.SalaryPaymentDate),
			})
		}
		return helper.SendXLSX(c, filename+".xlsx", "Salary Payments", header, rows)
	}
	return helper.JsonError(c, fiber.StatusBadRequest, "Unsupported export format")
}

func (ctl *SalaryController) findSalaryPayment(c *fiber.Ctx) (*model.SalaryPaymentModel, *fiber.Error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid salary payment ID")
	}
	var payment model.SalaryPaymentModel
	if err := ctl.DB.First(&payment, "salary_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Salary payment not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve salary payment")
	}
	return &payment, nil
}

// GET /api/u/salary-payments/:id
func (ctl *SalaryController) GetSalaryPaymentByID(c *fiber.Ctx) error {
	payment, fe := ctl.findSalaryPayment(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonOK(c, "Salary payment fetched successfully", dto.ToSalaryPaymentResponse(payment))
}

// PATCH /api/a/salary-payments/:id/approve
func (ctl *SalaryController) ApproveSalaryPayment(c *fiber.Ctx) error {
	payment, fe := ctl.findSalaryPayment(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if !payment.SalaryStatus.CanTransitionTo(model.SalaryApproved) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Cannot approve a %s salary payment", payment.SalaryStatus))
	}

	processedBy, _ := helper.GetUserNameFromToken(c)
	if processedBy == "" {
		processedBy = "system"
	}
	processedAt := timeNowUTC()

	if err := ctl.DB.Model(payment).Updates(map[string]any{
		"salary_status":       model.SalaryApproved,
		"salary_processed_by": processedBy,
		"salary_processed_at": processedAt,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to approve salary payment")
	}
	payment.SalaryStatus = model.SalaryApproved
	payment.SalaryProcessedBy = &processedBy
	payment.SalaryProcessedAt = &processedAt

	return helper.JsonUpdated(c, "Salary payment approved successfully", dto.ToSalaryPaymentResponse(payment))
}

// PATCH /api/a/salary-payments/:id/pay
// Marking a payslip paid settles everything it claims: bonuses and penalties
// flip to applied, each claimed loan absorbs one installment, and loans that
// reach zero complete.
func (ctl *SalaryController) MarkSalaryPaymentPaid(c *fiber.Ctx) error {
	payment, fe := ctl.findSalaryPayment(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if !payment.SalaryStatus.CanTransitionTo(model.SalaryPaid) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Cannot mark a %s salary payment as paid", payment.SalaryStatus))
	}
	if payment.SalaryProcessedBy == nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Salary payment has not been approved")
	}

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var dupPaid int64
		if err := tx.Model(&model.SalaryPaymentModel{}).
			Where("salary_staff_id = ? AND salary_period_start = ? AND salary_period_end = ? AND salary_status = ? AND salary_id <> ?",
				payment.SalaryStaffID, payment.SalaryPeriodStart, payment.SalaryPeriodEnd, model.SalaryPaid, payment.SalaryID).
			Count(&dupPaid).Error; err != nil {
			return err
		}
		if dupPaid > 0 {
			return fiber.NewError(fiber.StatusConflict, "A paid salary already exists for this staff member and period")
		}

		for _, raw := range payment.SalaryBonusIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				continue
			}
			res := tx.Model(&model.StaffBonusModel{}).
				Where("bonus_id = ? AND bonus_status = ?", id, model.AdjustmentPending).
				Updates(map[string]any{
					"bonus_status":            model.AdjustmentApplied,
					"bonus_applied_salary_id": payment.SalaryID,
				})
			if res.Error != nil {
				return res.Error
			}
		}
		for _, raw := range payment.SalaryPenaltyIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				continue
			}
			res := tx.Model(&model.StaffPenaltyModel{}).
				Where("penalty_id = ? AND penalty_status = ?", id, model.AdjustmentPending).
				Updates(map[string]any{
					"penalty_status":            model.AdjustmentApplied,
					"penalty_applied_salary_id": payment.SalaryID,
				})
			if res.Error != nil {
				return res.Error
			}
		}
		for _, raw := range payment.SalaryLoanIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				continue
			}
			var loan model.StaffLoanModel
			if err := tx.First(&loan, "loan_id = ?", id).Error; err != nil {
				return err
			}
			installment := service.NextInstallment(&loan)
			if installment <= 0 {
				continue
			}
			if err := service.ApplyRepayment(&loan, installment); err != nil {
				return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
			}
			if err := tx.Save(&loan).Error; err != nil {
				return err
			}
		}

		return tx.Model(payment).Update("salary_status", model.SalaryPaid).Error
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Println("[ERROR] Failed to mark salary payment paid:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark salary payment as paid")
	}
	payment.SalaryStatus = model.SalaryPaid

	return helper.JsonUpdated(c, "Salary payment marked as paid", dto.ToSalaryPaymentResponse(payment))
}
