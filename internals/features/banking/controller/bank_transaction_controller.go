package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bursary_backend/internals/features/banking/dto"
	"bursary_backend/internals/features/banking/model"
	"bursary_backend/internals/features/banking/service"
	helper "bursary_backend/internals/helpers"
)

type BankTransactionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewBankTransactionController(db *gorm.DB) *BankTransactionController {
	return &BankTransactionController{DB: db, Validator: helper.Validate()}
}

// generateUniqueReference retries on the unlikely suffix collision.
func (ctl *BankTransactionController) generateUniqueReference() (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		ref := helper.GenerateBankTransactionReference(timeNowUTC())
		var count int64
		if err := ctl.DB.Model(&model.BankTransactionModel{}).
			Where("bank_transaction_reference = ?", ref).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return ref, nil
		}
	}
	return "", errors.New("could not generate a unique transaction reference")
}

// POST /api/a/bank-transactions
// Posting is atomic with the balance move: the line and the new account
// balance land together or not at all.
func (ctl *BankTransactionController) RecordTransaction(c *fiber.Ctx) error {
	var req dto.CreateBankTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := service.ValidateTransactionAmounts(helper.Round2(req.DebitAmount), helper.Round2(req.CreditAmount)); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	accountID, _ := uuid.Parse(req.AccountID)
	date, err := helper.ParseDate(req.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid transaction date")
	}
	if helper.IsFutureDate(date) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Transaction date cannot be in the future")
	}

	reference, err := ctl.generateUniqueReference()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate transaction reference")
	}

	recordedBy, _ := helper.GetUserNameFromToken(c)
	if recordedBy == "" {
		recordedBy = "system"
	}

	txn := &model.BankTransactionModel{
		BankTransactionDate:         date,
		BankTransactionDescription:  req.Description,
		BankTransactionReference:    reference,
		BankTransactionDebitAmount:  helper.Round2(req.DebitAmount),
		BankTransactionCreditAmount: helper.Round2(req.CreditAmount),
		BankTransactionStatus:       model.TransactionPending,
		BankTransactionRecordedBy:   recordedBy,
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var account model.BankAccountModel
		if err := tx.First(&account, "bank_account_id = ?", accountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Bank account not found")
			}
			return err
		}
		if !account.BankAccountIsActive {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Bank account is inactive")
		}
		if err := service.PostTransaction(tx, &account, txn); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		return nil
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Println("[ERROR] Failed to record bank transaction:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record bank transaction")
	}

	return helper.JsonCreated(c, "Transaction recorded successfully", dto.ToBankTransactionResponse(txn))
}

func (ctl *BankTransactionController) filteredQuery(c *fiber.Ctx) (*gorm.DB, error) {
	tx := ctl.DB.Model(&model.BankTransactionModel{})

	if accountID := strings.TrimSpace(c.Query("account_id")); accountID != "" {
		id, err := uuid.Parse(accountID)
		if err != nil {
			return nil, errors.New("invalid account_id filter")
		}
		tx = tx.Where("bank_transaction_account_id = ?", id)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !model.BankTransactionStatus(status).Valid() {
			return nil, errors.New("invalid status filter")
		}
		tx = tx.Where("bank_transaction_status = ?", status)
	}
	if from := strings.TrimSpace(c.Query("date_from")); from != "" {
		d, err := helper.ParseDate(from)
		if err != nil {
			return nil, errors.New("invalid date_from filter")
		}
		tx = tx.Where("bank_transaction_date >= ?", d)
	}
	if to := strings.TrimSpace(c.Query("date_to")); to != "" {
		d, err := helper.ParseDate(to)
		if err != nil {
			return nil, errors.New("invalid date_to filter")
		}
		tx = tx.Where("bank_transaction_date <= ?", d)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		if helper.IsValidBankTransactionReference(q) {
			tx = tx.Where("bank_transaction_reference = ?", q)
		} else {
			pattern := "%" + q + "%"
			tx = tx.Where("bank_transaction_reference ILIKE ? OR bank_transaction_description ILIKE ?", pattern, pattern)
		}
	}
	return tx, nil
}

// GET /api/u/bank-transactions
// ?format=csv|xlsx streams the filtered rows as a download instead.
func (ctl *BankTransactionController) GetTransactions(c *fiber.Ctx) error {
	tx, err := ctl.filteredQuery(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if format := helper.ExportFormat(c); format != "" {
		return ctl.exportTransactions(c, tx, format)
	}

	page, perPage, offset := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve transactions")
	}

	var txns []model.BankTransactionModel
	if err := tx.Order("bank_transaction_date DESC, bank_transaction_created_at DESC").
		Limit(perPage).Offset(offset).Find(&txns).Error; err != nil {
		log.Println("[ERROR] Failed to fetch bank transactions:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve transactions")
	}

	pagination := helper.BuildPaginationFromPage(page, perPage, total)
	return helper.JsonList(c, dto.ToBankTransactionResponses(txns), pagination)
}

func (ctl *BankTransactionController) exportTransactions(c *fiber.Ctx, tx *gorm.DB, format string) error {
	var txns []model.BankTransactionModel
	if err := tx.Order("bank_transaction_date ASC, bank_transaction_created_at ASC").
		Limit(10000).Find(&txns).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve transactions")
	}

	header := []string{"Reference", "Date", "Description", "Debit", "Credit", "Balance", "Status", "Recorded By"}
	filename := "bank-transactions-" + timeNowUTC().Format("20060102")

	switch format {
	case "csv":
		rows := make([][]string, 0, len(txns))
		for i := range txns {
			t := &txns[i]
			rows = append(rows, []string{
				t.BankTransactionReference, helper.FormatDate(t.BankTransactionDate), t.BankTransactionDescription,
				fmt.Sprintf("%.2f", t.BankTransactionDebitAmount),
				fmt.Sprintf("%.2f", t.BankTransactionCreditAmount),
				fmt.Sprintf("%.2f", t.BankTransactionBalance),
				string(t.BankTransactionStatus), t.BankTransactionRecordedBy,
			})
		}
		return helper.SendCSV(c, filename+".csv", header, rows)
	case "xlsx":
		rows := make([][]any, 0, len(txns))
		for i := range txns {
			t := &txns[i]
			rows = append(rows, []any{
				t.BankTransactionReference, helper.FormatDate(t.BankTransactionDate), t.BankTransactionDescription,
				t.BankTransactionDebitAmount, t.BankTransactionCreditAmount, t.BankTransactionBalance,
				string(t.BankTransactionStatus), t.BankTransactionRecordedBy,
			})
		}
		return helper.SendXLSX(c, filename+".xlsx", "Transactions", header, rows)
	}
	return helper.JsonError(c, fiber.StatusBadRequest, "Unsupported export format")
}

// GET /api/u/bank-transactions/:id
func (ctl *BankTransactionController) GetTransactionByID(c *fiber.Ctx) error {
	txn, fe := ctl.findTransaction(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonOK(c, "Transaction fetched successfully", dto.ToBankTransactionResponse(txn))
}

func (ctl *BankTransactionController) findTransaction(c *fiber.Ctx) (*model.BankTransactionModel, *fiber.Error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid transaction ID")
	}
	var txn model.BankTransactionModel
	if err := ctl.DB.First(&txn, "bank_transaction_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Transaction not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve transaction")
	}
	return &txn, nil
}

// PATCH /api/a/bank-transactions/:id/clear
func (ctl *BankTransactionController) ClearTransaction(c *fiber.Ctx) error {
	txn, fe := ctl.findTransaction(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if !txn.BankTransactionStatus.CanTransitionTo(model.TransactionCleared) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Cannot clear a %s transaction", txn.BankTransactionStatus))
	}

	if err := ctl.DB.Model(txn).Update("bank_transaction_status", model.TransactionCleared).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update transaction")
	}
	txn.BankTransactionStatus = model.TransactionCleared

	return helper.JsonUpdated(c, "Transaction cleared", dto.ToBankTransactionResponse(txn))
}

// PATCH /api/a/bank-transactions/:id/reconcile
// Reconciled status and the reconciled flag always move together.
func (ctl *BankTransactionController) ReconcileTransaction(c *fiber.Ctx) error {
	txn, fe := ctl.findTransaction(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if !txn.BankTransactionStatus.CanTransitionTo(model.TransactionReconciled) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Cannot reconcile a %s transaction", txn.BankTransactionStatus))
	}

	if err := ctl.DB.Model(txn).Updates(map[string]any{
		"bank_transaction_status":        model.TransactionReconciled,
		"bank_transaction_is_reconciled": true,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update transaction")
	}
	txn.BankTransactionStatus = model.TransactionReconciled
	txn.BankTransactionIsReconciled = true

	return helper.JsonUpdated(c, "Transaction reconciled", dto.ToBankTransactionResponse(txn))
}
