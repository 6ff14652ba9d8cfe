package controller

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bursary_backend/internals/features/finance/expenses/dto"
	"bursary_backend/internals/features/finance/expenses/model"
	helper "bursary_backend/internals/helpers"
	"bursary_backend/internals/services/storage"
)

type ExpenseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Storage   *storage.Store
}

func NewExpenseController(db *gorm.DB, store *storage.Store) *ExpenseController {
	return &ExpenseController{DB: db, Validator: helper.Validate(), Storage: store}
}

func timeNowUTC() time.Time {
	return time.Now().UTC()
}

// generateUniqueReference retries on the unlikely suffix collision.
func (ctl *ExpenseController) generateUniqueReference(at time.Time) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		ref := helper.GenerateExpenseReference(at)
		var count int64
		if err := ctl.DB.Model(&model.ExpenseModel{}).Where("expense_reference = ?", ref).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return ref, nil
		}
	}
	return "", errors.New("could not generate a unique expense reference")
}

// POST /api/a/expenses
// New expenses are stored already approved; the recording bursar is the approver.
func (ctl *ExpenseController) CreateExpense(c *fiber.Ctx) error {
	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	categoryID, _ := uuid.Parse(req.CategoryID)
	paymentDate, err := helper.ParseDate(req.PaymentDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payment date")
	}
	if helper.IsFutureDate(paymentDate) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Payment date cannot be in the future")
	}

	var category model.ExpenseCategoryModel
	if err := ctl.DB.First(&category, "expense_category_id = ?", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Expense category not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify expense category")
	}
	if !category.ExpenseCategoryIsActive {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Expense category is inactive")
	}

	// Same vendor, amount and date is almost always a double entry.
	if req.VendorName != nil {
		var dup int64
		if err := ctl.DB.Model(&model.ExpenseModel{}).
			Where("expense_vendor_name = ? AND expense_amount = ? AND expense_payment_date = ? AND expense_status <> ?",
				*req.VendorName, helper.Round2(req.Amount), paymentDate, model.ExpenseRejected).
			Count(&dup).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check for duplicate expenses")
		}
		if dup > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "An expense with the same vendor, amount and date already exists")
		}
	}

	reference, err := ctl.generateUniqueReference(timeNowUTC())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate expense reference")
	}

	recordedBy, _ := helper.GetUserNameFromToken(c)
	if recordedBy == "" {
		recordedBy = "system"
	}
	approvedAt := timeNowUTC()

	expense := &model.ExpenseModel{
		ExpenseCategoryID:    categoryID,
		ExpenseCategoryName:  category.ExpenseCategoryName,
		ExpenseAmount:        helper.Round2(req.Amount),
		ExpenseDescription:   req.Description,
		ExpensePurpose:       req.Purpose,
		ExpenseMethod:        model.ExpenseMethod(req.Method),
		ExpensePaymentDate:   paymentDate,
		ExpenseVendorName:    req.VendorName,
		ExpenseVendorContact: req.VendorContact,
		ExpenseReference:     reference,
		ExpenseStatus:        model.ExpenseApproved,
		ExpenseApprovedBy:    &recordedBy,
		ExpenseApprovedAt:    &approvedAt,
		ExpenseNotes:         req.Notes,
		ExpenseRecordedBy:    recordedBy,
	}
	if err := ctl.DB.Create(expense).Error; err != nil {
		log.Println("[ERROR] Failed to create expense:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create expense")
	}

	return helper.JsonCreated(c, "Expense recorded successfully", dto.ToExpenseResponse(expense))
}

func (ctl *ExpenseController) filteredQuery(c *fiber.Ctx) (*gorm.DB, error) {
	tx := ctl.DB.Model(&model.ExpenseModel{})

	if categoryID := strings.TrimSpace(c.Query("category_id")); categoryID != "" {
		id, err := uuid.Parse(categoryID)
		if err != nil {
			return nil, errors.New("invalid category_id filter")
		}
		tx = tx.Where("expense_category_id = ?", id)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !model.ExpenseStatus(status).Valid() {
			return nil, errors.New("invalid status filter")
		}
		tx = tx.Where("expense_status = ?", status)
	}
	if method := strings.TrimSpace(c.Query("method")); method != "" {
		if !model.ExpenseMethod(method).Valid() {
			return nil, errors.New("invalid method filter")
		}
		tx = tx.Where("expense_method = ?", method)
	}
	if from := strings.TrimSpace(c.Query("date_from")); from != "" {
		d, err := helper.ParseDate(from)
		if err != nil {
			return nil, errors.New("invalid date_from filter")
		}
		tx = tx.Where("expense_payment_date >= ?", d)
	}
	if to := strings.TrimSpace(c.Query("date_to")); to != "" {
		d, err := helper.ParseDate(to)
		if err != nil {
			return nil, errors.New("invalid date_to filter")
		}
		tx = tx.Where("expense_payment_date <= ?", d)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		if helper.IsValidExpenseReference(q) {
			tx = tx.Where("expense_reference = ?", q)
		} else {
			pattern := "%" + q + "%"
			tx = tx.Where("expense_reference ILIKE ? OR expense_vendor_name ILIKE ? OR expense_description ILIKE ?",
				pattern, pattern, pattern)
		}
	}
	return tx, nil
}

// GET /api/u/expenses
// ?format=csv|xlsx streams the filtered rows as a download instead.
func (ctl *ExpenseController) GetExpenses(c *fiber.Ctx) error {
	tx, err := ctl.filteredQuery(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if format := helper.ExportFormat(c); format != "" {
		return ctl.exportExpenses(c, tx, format)
	}

	page, perPage, offset := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve expenses")
	}

	var expenses []model.ExpenseModel
	if err := tx.Order("expense_created_at DESC").Limit(perPage).Offset(offset).Find(&expenses).Error; err != nil {
		log.Println("[ERROR] Failed to fetch expenses:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve expenses")
	}

	pagination := helper.BuildPaginationFromPage(page, perPage, total)
	return helper.JsonList(c, dto.ToExpenseResponses(expenses), pagination)
}

func (ctl *ExpenseController) exportExpenses(c *fiber.Ctx, tx *gorm.DB, format string) error {
	var expenses []model.ExpenseModel
	if err := tx.Order("expense_payment_date ASC").Limit(10000).Find(&expenses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve expenses")
	}

	header := []string{"Reference", "Category", "Description", "Vendor", "Amount", "Method", "Date", "Status", "Recorded By"}
	filename := "expenses-" + timeNowUTC().Format("20060102")

	switch format {
	case "csv":
		rows := make([][]string, 0, len(expenses))
		for i := range expenses {
			e := &expenses[i]
			vendor := ""
			if e.ExpenseVendorName != nil {
				vendor = *e.ExpenseVendorName
			}
			rows = append(rows, []string{
				e.ExpenseReference, e.ExpenseCategoryName, e.ExpenseDescription, vendor,
				fmt.Sprintf("%.2f", e.ExpenseAmount), string(e.ExpenseMethod),
				helper.FormatDate(e.ExpensePaymentDate), string(e.ExpenseStatus), e.ExpenseRecordedBy,
			})
		}
		return helper.SendCSV(c, filename+".csv", header, rows)
	case "xlsx":
		rows := make([][]any, 0, len(expenses))
		for i := range expenses {
			e := &expenses[i]
			vendor := ""
			if e.ExpenseVendorName != nil {
				vendor = *e.ExpenseVendorName
			}
			rows = append(rows, []any{
				e.ExpenseReference, e.ExpenseCategoryName, e.ExpenseDescription, vendor,
				e.ExpenseAmount, string(e.ExpenseMethod),
				helper.FormatDate(e.ExpensePaymentDate), string(e.ExpenseStatus), e.ExpenseRecordedBy,
			})
		}
		return helper.SendXLSX(c, filename+".xlsx", "Expenses", header, rows)
	}
	return helper.JsonError(c, fiber.StatusBadRequest, "Unsupported export format")
}

// GET /api/u/expenses/monthly-summary
// Totals per category per month, rejected expenses excluded. ?year= narrows
// the window to one calendar year.
func (ctl *ExpenseController) GetMonthlySummary(c *fiber.Ctx) error {
	type monthlyRow struct {
		Month        string  `json:"month"`
		CategoryID   string  `json:"expense_category_id"`
		CategoryName string  `json:"expense_category_name"`
		Total        float64 `json:"total"`
	}

	tx := ctl.DB.Model(&model.ExpenseModel{}).
		Select("to_char(expense_payment_date, 'YYYY-MM') AS month, expense_category_id::text AS category_id, expense_category_name AS category_name, SUM(expense_amount) AS total").
		Where("expense_status <> ?", model.ExpenseRejected)

	if yearStr := strings.TrimSpace(c.Query("year")); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil || year < 2000 || year > 2100 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid year filter")
		}
		tx = tx.Where("EXTRACT(YEAR FROM expense_payment_date) = ?", year)
	}

	var rows []monthlyRow
	if err := tx.Group("month, category_id, category_name").
		Order("month ASC, category_name ASC").
		Scan(&rows).Error; err != nil {
		log.Println("[ERROR] Failed to build expense summary:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build expense summary")
	}

	return helper.JsonOK(c, "Expense summary fetched successfully", rows)
}

// GET /api/u/expenses/:id
func (ctl *ExpenseController) GetExpenseByID(c *fiber.Ctx) error {
	expense, fe := ctl.findExpense(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonOK(c, "Expense fetched successfully", dto.ToExpenseResponse(expense))
}

func (ctl *ExpenseController) findExpense(c *fiber.Ctx) (*model.ExpenseModel, *fiber.Error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid expense ID")
	}
	var expense model.ExpenseModel
	if err := ctl.DB.First(&expense, "expense_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Expense not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve expense")
	}
	return &expense, nil
}

// PATCH /api/a/expenses/:id/pay
func (ctl *ExpenseController) MarkPaid(c *fiber.Ctx) error {
	expense, fe := ctl.findExpense(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if !expense.ExpenseStatus.CanTransitionTo(model.ExpensePaid) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Cannot mark a %s expense as paid", expense.ExpenseStatus))
	}

	if err := ctl.DB.Model(expense).Update("expense_status", model.ExpensePaid).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update expense")
	}
	expense.ExpenseStatus = model.ExpensePaid

	return helper.JsonUpdated(c, "Expense marked as paid", dto.ToExpenseResponse(expense))
}

// PATCH /api/a/expenses/:id/reject
// Rejection needs an explanation and wipes the approval stamp.
func (ctl *ExpenseController) RejectExpense(c *fiber.Ctx) error {
	expense, fe := ctl.findExpense(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var req dto.RejectExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Notes = strings.TrimSpace(req.Notes)
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if !expense.ExpenseStatus.CanTransitionTo(model.ExpenseRejected) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Cannot reject a %s expense", expense.ExpenseStatus))
	}

	if err := ctl.DB.Model(expense).Updates(map[string]any{
		"expense_status":      model.ExpenseRejected,
		"expense_notes":       req.Notes,
		"expense_approved_by": nil,
		"expense_approved_at": nil,
	}).Error; err != nil {
		log.Println("[ERROR] Failed to reject expense:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reject expense")
	}
	expense.ExpenseStatus = model.ExpenseRejected
	expense.ExpenseNotes = &req.Notes
	expense.ExpenseApprovedBy = nil
	expense.ExpenseApprovedAt = nil

	return helper.JsonUpdated(c, "Expense rejected", dto.ToExpenseResponse(expense))
}

// POST /api/a/expenses/:id/invoice
func (ctl *ExpenseController) UploadInvoice(c *fiber.Ctx) error {
	if ctl.Storage == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Object storage is not configured")
	}

	expense, fe := ctl.findExpense(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	fileHeader, err := c.FormFile("invoice")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "An invoice file is required")
	}

	url, err := ctl.Storage.UploadAttachment(c.Context(), "invoices", fileHeader)
	if err != nil {
		log.Println("[ERROR] Failed to upload invoice:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload invoice")
	}

	if err := ctl.DB.Model(expense).Update("expense_invoice_url", url).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save invoice URL")
	}
	expense.ExpenseInvoiceURL = &url

	return helper.JsonUpdated(c, "Invoice uploaded successfully", dto.ToExpenseResponse(expense))
}
