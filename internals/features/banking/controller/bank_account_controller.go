package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bursary_backend/internals/features/banking/dto"
	"bursary_backend/internals/features/banking/model"
	helper "bursary_backend/internals/helpers"
)

type BankAccountController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewBankAccountController(db *gorm.DB) *BankAccountController {
	return &BankAccountController{DB: db, Validator: helper.Validate()}
}

func timeNowUTC() time.Time {
	return time.Now().UTC()
}

// POST /api/a/bank-accounts
func (ctl *BankAccountController) CreateBankAccount(c *fiber.Ctx) error {
	var req dto.CreateBankAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var count int64
	if err := ctl.DB.Model(&model.BankAccountModel{}).
		Where("bank_account_number = ?", req.AccountNumber).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check account number")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "An account with this number already exists")
	}

	account := req.ToModel()
	if err := ctl.DB.Create(account).Error; err != nil {
		log.Println("[ERROR] Failed to create bank account:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create bank account")
	}

	return helper.JsonCreated(c, "Bank account created successfully", dto.ToBankAccountResponse(account))
}

// GET /api/u/bank-accounts
func (ctl *BankAccountController) GetBankAccounts(c *fiber.Ctx) error {
	tx := ctl.DB.Model(&model.BankAccountModel{})

	if accountType := strings.TrimSpace(c.Query("type")); accountType != "" {
		if !model.BankAccountType(accountType).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid type filter")
		}
		tx = tx.Where("bank_account_type = ?", accountType)
	}
	if active := strings.TrimSpace(c.Query("active")); active != "" {
		tx = tx.Where("bank_account_is_active = ?", active == "true")
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		pattern := "%" + q + "%"
		tx = tx.Where("bank_account_name ILIKE ? OR bank_account_bank_name ILIKE ? OR bank_account_number ILIKE ?",
			pattern, pattern, pattern)
	}

	page, perPage, offset := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve bank accounts")
	}

	var accounts []model.BankAccountModel
	if err := tx.Order("bank_account_name ASC").Limit(perPage).Offset(offset).Find(&accounts).Error; err != nil {
		log.Println("[ERROR] Failed to fetch bank accounts:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve bank accounts")
	}

	pagination := helper.BuildPaginationFromPage(page, perPage, total)
	return helper.JsonList(c, dto.ToBankAccountResponses(accounts), pagination)
}

// GET /api/u/bank-accounts/:id
func (ctl *BankAccountController) GetBankAccountByID(c *fiber.Ctx) error {
	account, fe := ctl.findAccount(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonOK(c, "Bank account fetched successfully", dto.ToBankAccountResponse(account))
}

func (ctl *BankAccountController) findAccount(c *fiber.Ctx) (*model.BankAccountModel, *fiber.Error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid bank account ID")
	}
	var account model.BankAccountModel
	if err := ctl.DB.First(&account, "bank_account_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Bank account not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve bank account")
	}
	return &account, nil
}

// PUT /api/a/bank-accounts/:id
// Account number and balance are immutable here; the balance only moves
// through transaction posting.
func (ctl *BankAccountController) UpdateBankAccount(c *fiber.Ctx) error {
	account, fe := ctl.findAccount(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var req dto.UpdateBankAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	req.ApplyToModel(account)
	if err := ctl.DB.Save(account).Error; err != nil {
		log.Println("[ERROR] Failed to update bank account:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update bank account")
	}

	return helper.JsonUpdated(c, "Bank account updated successfully", dto.ToBankAccountResponse(account))
}

// DELETE /api/a/bank-accounts/:id
// An account still holding money cannot be removed; empty it first.
func (ctl *BankAccountController) DeleteBankAccount(c *fiber.Ctx) error {
	account, fe := ctl.findAccount(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if !helper.MoneyEquals(account.BankAccountBalance, 0) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Cannot delete a bank account with a non-zero balance")
	}

	if err := ctl.DB.Delete(account).Error; err != nil {
		log.Println("[ERROR] Failed to delete bank account:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete bank account")
	}

	return helper.JsonDeleted(c, "Bank account deleted successfully", fiber.Map{"bank_account_id": account.BankAccountID})
}
