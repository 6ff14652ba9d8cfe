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
	"gorm.io/gorm"

	"bursary_backend/internals/features/banking/dto"
	"bursary_backend/internals/features/banking/model"
	"bursary_backend/internals/features/banking/service"
	helper "bursary_backend/internals/helpers"
)

type TransferController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTransferController(db *gorm.DB) *TransferController {
	return &TransferController{DB: db, Validator: helper.Validate()}
}

// generateUniqueReference retries on the unlikely suffix collision.
func (ctl *TransferController) generateUniqueReference() (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		ref := helper.GenerateTransferReference(timeNowUTC())
		var count int64
		if err := ctl.DB.Model(&model.TransferModel{}).
			Where("transfer_reference = ?", ref).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return ref, nil
		}
	}
	return "", errors.New("could not generate a unique transfer reference")
}

// POST /api/a/transfers
func (ctl *TransferController) CreateTransfer(c *fiber.Ctx) error {
	var req dto.CreateTransferRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.FromAccountID == req.ToAccountID {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Cannot transfer to the same account")
	}
	amount := helper.Round2(req.Amount)
	if amount > service.MaxSingleTransaction {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Transfer amount exceeds the maximum of ₦%.2f", service.MaxSingleTransaction))
	}

	fromID, _ := uuid.Parse(req.FromAccountID)
	toID, _ := uuid.Parse(req.ToAccountID)
	transferDate, err := helper.ParseDate(req.TransferDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid transfer date")
	}
	if helper.IsFutureDate(transferDate) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Transfer date cannot be in the future")
	}

	for _, id := range []uuid.UUID{fromID, toID} {
		var account model.BankAccountModel
		if err := ctl.DB.First(&account, "bank_account_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Bank account not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify bank account")
		}
		if !account.BankAccountIsActive {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity,
				fmt.Sprintf("Bank account %s is inactive", account.BankAccountNumber))
		}
	}

	reference, err := ctl.generateUniqueReference()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate transfer reference")
	}

	recordedBy, _ := helper.GetUserNameFromToken(c)
	if recordedBy == "" {
		recordedBy = "system"
	}

	transfer := &model.TransferModel{
		TransferFromAccountID: fromID,
		TransferToAccountID:   toID,
		TransferAmount:        amount,
		TransferDate:          transferDate,
		TransferReference:     reference,
		TransferStatus:        model.TransferPending,
		TransferNotes:         req.Notes,
		TransferRecordedBy:    recordedBy,
	}
	if err := ctl.DB.Create(transfer).Error; err != nil {
		log.Println("[ERROR] Failed to create transfer:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create transfer")
	}

	return helper.JsonCreated(c, "Transfer created successfully", dto.ToTransferResponse(transfer))
}

func (ctl *TransferController) filteredQuery(c *fiber.Ctx) (*gorm.DB, error) {
	tx := ctl.DB.Model(&model.TransferModel{})

	if accountID := strings.TrimSpace(c.Query("account_id")); accountID != "" {
		id, err := uuid.Parse(accountID)
		if err != nil {
			return nil, errors.New("invalid account_id filter")
		}
		tx = tx.Where("transfer_from_account_id = ? OR transfer_to_account_id = ?", id, id)
	}
	if ref := strings.TrimSpace(c.Query("reference")); ref != "" {
		if !helper.IsValidTransferReference(ref) {
			return nil, errors.New("invalid reference filter")
		}
		tx = tx.Where("transfer_reference = ?", ref)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !model.TransferStatus(status).Valid() {
			return nil, errors.New("invalid status filter")
		}
		tx = tx.Where("transfer_status = ?", status)
	}
	if from := strings.TrimSpace(c.Query("date_from")); from != "" {
		d, err := helper.ParseDate(from)
		if err != nil {
			return nil, errors.New("invalid date_from filter")
		}
		tx = tx.Where("transfer_date >= ?", d)
	}
	if to := strings.TrimSpace(c.Query("date_to")); to != "" {
		d, err := helper.ParseDate(to)
		if err != nil {
			return nil, errors.New("invalid date_to filter")
		}
		tx = tx.Where("transfer_date <= ?", d)
	}
	return tx, nil
}

// GET /api/u/transfers
// ?format=csv|xlsx streams the filtered rows as a download instead.
func (ctl *TransferController) GetTransfers(c *fiber.Ctx) error {
	tx, err := ctl.filteredQuery(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if format := helper.ExportFormat(c); format != "" {
		return ctl.exportTransfers(c, tx, format)
	}

	page, perPage, offset := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve transfers")
	}

	var transfers []model.TransferModel
	if err := tx.Order("transfer_created_at DESC").Limit(perPage).Offset(offset).Find(&transfers).Error; err != nil {
		log.Println("[ERROR] Failed to fetch transfers:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve transfers")
	}

	pagination := helper.BuildPaginationFromPage(page, perPage, total)
	return helper.JsonList(c, dto.ToTransferResponses(transfers), pagination)
}

func (ctl *TransferController) exportTransfers(c *fiber.Ctx, tx *gorm.DB, format string) error {
	var transfers []model.TransferModel
	if err := tx.Order("transfer_date ASC").Limit(10000).Find(&transfers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve transfers")
	}

	header := []string{"Reference", "Date", "From Account", "To Account", "Amount", "Status", "Approved By", "Recorded By"}
	filename := "transfers-" + timeNowUTC().Format("20060102")

	switch format {
	case "csv":
		rows := make([][]string, 0, len(transfers))
		for i := range transfers {
			t := &transfers[i]
			approvedBy := ""
			if t.TransferApprovedBy != nil {
				approvedBy = *t.TransferApprovedBy
			}
			rows = append(rows, []string{
				t.TransferReference, helper.FormatDate(t.TransferDate),
				t.TransferFromAccountID.String(), t.TransferToAccountID.String(),
				fmt.Sprintf("%.2f", t.TransferAmount), string(t.TransferStatus),
				approvedBy, t.TransferRecordedBy,
			})
		}
		return helper.SendCSV(c, filename+".csv", header, rows)
	case "xlsx":
		rows := make([][]any, 0, len(transfers))
		for i := range transfers {
			t := &transfers[i]
			approvedBy := ""
			if t.TransferApprovedBy != nil {
				approvedBy = *t.TransferApprovedBy
			}
			rows = append(rows, []any{
				t.TransferReference, helper.FormatDate(t.TransferDate),
				t.TransferFromAccountID.String(), t.TransferToAccountID.String(),
				t.TransferAmount, string(t.TransferStatus), approvedBy, t.TransferRecordedBy,
			})
		}
		return helper.SendXLSX(c, filename+".xlsx", "Transfers", header, rows)
	}
	return helper.JsonError(c, fiber.StatusBadRequest, "Unsupported export format")
}

// GET /api/u/transfers/:id
func (ctl *TransferController) GetTransferByID(c *fiber.Ctx) error {
	transfer, fe := ctl.findTransfer(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonOK(c, "Transfer fetched successfully", dto.ToTransferResponse(transfer))
}

func (ctl *TransferController) findTransfer(c *fiber.Ctx) (*model.TransferModel, *fiber.Error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid transfer ID")
	}
	var transfer model.TransferModel
	if err := ctl.DB.First(&transfer, "transfer_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Transfer not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve transfer")
	}
	return &transfer, nil
}

// PATCH /api/a/transfers/:id/approve
func (ctl *TransferController) ApproveTransfer(c *fiber.Ctx) error {
	transfer, fe := ctl.findTransfer(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if !transfer.TransferStatus.CanTransitionTo(model.TransferApproved) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Cannot approve a %s transfer", transfer.TransferStatus))
	}

	approvedBy, _ := helper.GetUserNameFromToken(c)
	if approvedBy == "" {
		approvedBy = "system"
	}
	approvedAt := timeNowUTC()

	if err := ctl.DB.Model(transfer).Updates(map[string]any{
		"transfer_status":      model.TransferApproved,
		"transfer_approved_by": approvedBy,
		"transfer_approved_at": approvedAt,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to approve transfer")
	}
	transfer.TransferStatus = model.TransferApproved
	transfer.TransferApprovedBy = &approvedBy
	transfer.TransferApprovedAt = &approvedAt

	return helper.JsonUpdated(c, "Transfer approved", dto.ToTransferResponse(transfer))
}

// PATCH /api/a/transfers/:id/complete
// Completion is the point where money actually moves: a debit on the source
// and a credit on the destination post in one transaction. High-value
// transfers must carry an approval stamp first.
func (ctl *TransferController) CompleteTransfer(c *fiber.Ctx) error {
	transfer, fe := ctl.findTransfer(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if !transfer.TransferStatus.CanTransitionTo(model.TransferCompleted) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Cannot complete a %s transfer", transfer.TransferStatus))
	}
	if service.RequiresApproval(transfer.TransferAmount) &&
		(transfer.TransferApprovedBy == nil || strings.TrimSpace(*transfer.TransferApprovedBy) == "" || transfer.TransferApprovedAt == nil) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Transfers over ₦%.2f require approval before completion", service.MaxTransferWithoutApproval))
	}

	recordedBy, _ := helper.GetUserNameFromToken(c)
	if recordedBy == "" {
		recordedBy = "system"
	}
	postingDate := timeNowUTC().Truncate(24 * time.Hour)

	var debitLine, creditLine *model.BankTransactionModel
	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var from, to model.BankAccountModel
		if err := tx.First(&from, "bank_account_id = ?", transfer.TransferFromAccountID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Source account not found")
		}
		if err := tx.First(&to, "bank_account_id = ?", transfer.TransferToAccountID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Destination account not found")
		}
		if !from.BankAccountIsActive || !to.BankAccountIsActive {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Both accounts must be active to complete a transfer")
		}

		debitLine = &model.BankTransactionModel{
			BankTransactionDate:        postingDate,
			BankTransactionDescription: fmt.Sprintf("Transfer %s to %s (%s)", transfer.TransferReference, to.BankAccountName, to.BankAccountNumber),
			BankTransactionReference:   helper.GenerateBankTransactionReference(timeNowUTC()),
			BankTransactionDebitAmount: transfer.TransferAmount,
			BankTransactionStatus:      model.TransactionCleared,
			BankTransactionRecordedBy:  recordedBy,
		}
		if err := service.PostTransaction(tx, &from, debitLine); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}

		creditLine = &model.BankTransactionModel{
			BankTransactionDate:         postingDate,
			BankTransactionDescription:  fmt.Sprintf("Transfer %s from %s (%s)", transfer.TransferReference, from.BankAccountName, from.BankAccountNumber),
			BankTransactionReference:    helper.GenerateBankTransactionReference(timeNowUTC()),
			BankTransactionCreditAmount: transfer.TransferAmount,
			BankTransactionStatus:       model.TransactionCleared,
			BankTransactionRecordedBy:   recordedBy,
		}
		if err := service.PostTransaction(tx, &to, creditLine); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}

		return tx.Model(transfer).Update("transfer_status", model.TransferCompleted).Error
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Println("[ERROR] Failed to complete transfer:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to complete transfer")
	}
	transfer.TransferStatus = model.TransferCompleted

	return helper.JsonUpdated(c, "Transfer completed", fiber.Map{
		"transfer": dto.ToTransferResponse(transfer),
		"debit":    dto.ToBankTransactionResponse(debitLine),
		"credit":   dto.ToBankTransactionResponse(creditLine),
	})
}

// PATCH /api/a/transfers/:id/reject
func (ctl *TransferController) RejectTransfer(c *fiber.Ctx) error {
	transfer, fe := ctl.findTransfer(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var req dto.RejectTransferRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Notes = strings.TrimSpace(req.Notes)
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if !transfer.TransferStatus.CanTransitionTo(model.TransferRejected) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Cannot reject a %s transfer", transfer.TransferStatus))
	}

	if err := ctl.DB.Model(transfer).Updates(map[string]any{
		"transfer_status": model.TransferRejected,
		"transfer_notes":  req.Notes,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reject transfer")
	}
	transfer.TransferStatus = model.TransferRejected
	transfer.TransferNotes = &req.Notes

	return helper.JsonUpdated(c, "Transfer rejected", dto.ToTransferResponse(transfer))
}

// PATCH /api/a/transfers/:id/cancel
func (ctl *TransferController) CancelTransfer(c *fiber.Ctx) error {
	transfer, fe := ctl.findTransfer(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if !transfer.TransferStatus.CanTransitionTo(model.TransferCancelled) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Cannot cancel a %s transfer", transfer.TransferStatus))
	}

	if err := ctl.DB.Model(transfer).Update("transfer_status", model.TransferCancelled).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to cancel transfer")
	}
	transfer.TransferStatus = model.TransferCancelled

	return helper.JsonUpdated(c, "Transfer cancelled", dto.ToTransferResponse(transfer))
}
