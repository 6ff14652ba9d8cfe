package dto

import (
	"strings"
	"time"

	"bursary_backend/internals/features/banking/model"
	helper "bursary_backend/internals/helpers"
)

/* =======================================================
   BANK ACCOUNT DTOs
   ======================================================= */

type CreateBankAccountRequest struct {
	AccountName    string  `json:"bank_account_name" validate:"required,min=3,max=150"`
	BankName       string  `json:"bank_account_bank_name" validate:"required,min=2,max=100"`
	AccountNumber  string  `json:"bank_account_number" validate:"required,len=10,numeric"`
	AccountType    string  `json:"bank_account_type" validate:"required,oneof=current savings"`
	OpeningBalance float64 `json:"bank_account_opening_balance" validate:"gte=0"`
}

func (r *CreateBankAccountRequest) Normalize() {
	r.AccountName = strings.TrimSpace(r.AccountName)
	r.BankName = strings.TrimSpace(r.BankName)
	r.AccountNumber = strings.TrimSpace(r.AccountNumber)
	r.AccountType = strings.TrimSpace(strings.ToLower(r.AccountType))
}

func (r *CreateBankAccountRequest) ToModel() *model.BankAccountModel {
	return &model.BankAccountModel{
		BankAccountName:     r.AccountName,
		BankAccountBankName: r.BankName,
		BankAccountNumber:   r.AccountNumber,
		BankAccountType:     model.BankAccountType(r.AccountType),
		BankAccountBalance:  helper.Round2(r.OpeningBalance),
		BankAccountIsActive: true,
	}
}

type UpdateBankAccountRequest struct {
	AccountName *string `json:"bank_account_name" validate:"omitempty,min=3,max=150"`
	BankName    *string `json:"bank_account_bank_name" validate:"omitempty,min=2,max=100"`
	IsActive    *bool   `json:"bank_account_is_active"`
}

func (r *UpdateBankAccountRequest) ApplyToModel(m *model.BankAccountModel) {
	if r.AccountName != nil {
		m.BankAccountName = strings.TrimSpace(*r.AccountName)
	}
	if r.BankName != nil {
		m.BankAccountBankName = strings.TrimSpace(*r.BankName)
	}
	if r.IsActive != nil {
		m.BankAccountIsActive = *r.IsActive
	}
}

type BankAccountResponse struct {
	ID            string    `json:"bank_account_id"`
	AccountName   string    `json:"bank_account_name"`
	BankName      string    `json:"bank_account_bank_name"`
	AccountNumber string    `json:"bank_account_number"`
	AccountType   string    `json:"bank_account_type"`
	Balance       float64   `json:"bank_account_balance"`
	IsActive      bool      `json:"bank_account_is_active"`
	CreatedAt     time.Time `json:"bank_account_created_at"`
	UpdatedAt     time.Time `json:"bank_account_updated_at"`
}

func ToBankAccountResponse(m *model.BankAccountModel) *BankAccountResponse {
	return &BankAccountResponse{
		ID:            m.BankAccountID.String(),
		AccountName:   m.BankAccountName,
		BankName:      m.BankAccountBankName,
		AccountNumber: m.BankAccountNumber,
		AccountType:   string(m.BankAccountType),
		Balance:       m.BankAccountBalance,
		IsActive:      m.BankAccountIsActive,
		CreatedAt:     m.BankAccountCreatedAt,
		UpdatedAt:     m.BankAccountUpdatedAt,
	}
}

func ToBankAccountResponses(models []model.BankAccountModel) []BankAccountResponse {
	out := make([]BankAccountResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToBankAccountResponse(&models[i]))
	}
	return out
}

/* =======================================================
   BANK TRANSACTION DTOs
   ======================================================= */

type CreateBankTransactionRequest struct {
	AccountID    string  `json:"bank_transaction_account_id" validate:"required,uuid"`
	Date         string  `json:"bank_transaction_date" validate:"required,datetime=2006-01-02"`
	Description  string  `json:"bank_transaction_description" validate:"required,min=3,max=500"`
	DebitAmount  float64 `json:"bank_transaction_debit_amount" validate:"gte=0"`
	CreditAmount float64 `json:"bank_transaction_credit_amount" validate:"gte=0"`
}

func (r *CreateBankTransactionRequest) Normalize() {
	r.Description = strings.TrimSpace(r.Description)
}

type BankTransactionResponse struct {
	ID           string    `json:"bank_transaction_id"`
	AccountID    string    `json:"bank_transaction_account_id"`
	Date         string    `json:"bank_transaction_date"`
	Description  string    `json:"bank_transaction_description"`
	Reference    string    `json:"bank_transaction_reference"`
	DebitAmount  float64   `json:"bank_transaction_debit_amount"`
	CreditAmount float64   `json:"bank_transaction_credit_amount"`
	Balance      float64   `json:"bank_transaction_balance"`
	Status       string    `json:"bank_transaction_status"`
	IsReconciled bool      `json:"bank_transaction_is_reconciled"`
	RecordedBy   string    `json:"bank_transaction_recorded_by"`
	CreatedAt    time.Time `json:"bank_transaction_created_at"`
	UpdatedAt    time.Time `json:"bank_transaction_updated_at"`
}

func ToBankTransactionResponse(m *model.BankTransactionModel) *BankTransactionResponse {
	return &BankTransactionResponse{
		ID:           m.BankTransactionID.String(),
		AccountID:    m.BankTransactionAccountID.String(),
		Date:         helper.FormatDate(m.BankTransactionDate),
		Description:  m.BankTransactionDescription,
		Reference:    m.BankTransactionReference,
		DebitAmount:  m.BankTransactionDebitAmount,
		CreditAmount: m.BankTransactionCreditAmount,
		Balance:      m.BankTransactionBalance,
		Status:       string(m.BankTransactionStatus),
		IsReconciled: m.BankTransactionIsReconciled,
		RecordedBy:   m.BankTransactionRecordedBy,
		CreatedAt:    m.BankTransactionCreatedAt,
		UpdatedAt:    m.BankTransactionUpdatedAt,
	}
}

func ToBankTransactionResponses(models []model.BankTransactionModel) []BankTransactionResponse {
	out := make([]BankTransactionResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToBankTransactionResponse(&models[i]))
	}
	return out
}

/* =======================================================
   TRANSFER DTOs
   ======================================================= */

type CreateTransferRequest struct {
	FromAccountID string  `json:"transfer_from_account_id" validate:"required,uuid"`
	ToAccountID   string  `json:"transfer_to_account_id" validate:"required,uuid"`
	Amount        float64 `json:"transfer_amount" validate:"required,gt=0"`
	TransferDate  string  `json:"transfer_date" validate:"required,datetime=2006-01-02"`
	Notes         *string `json:"transfer_notes" validate:"omitempty,max=1000"`
}

type RejectTransferRequest struct {
	Notes string `json:"transfer_notes" validate:"required,min=10,max=1000"`
}

type TransferResponse struct {
	ID            string     `json:"transfer_id"`
	FromAccountID string     `json:"transfer_from_account_id"`
	ToAccountID   string     `json:"transfer_to_account_id"`
	Amount        float64    `json:"transfer_amount"`
	TransferDate  string     `json:"transfer_date"`
	Reference     string     `json:"transfer_reference"`
	Status        string     `json:"transfer_status"`
	ApprovedBy    *string    `json:"transfer_approved_by,omitempty"`
	ApprovedAt    *time.Time `json:"transfer_approved_at,omitempty"`
	Notes         *string    `json:"transfer_notes,omitempty"`
	RecordedBy    string     `json:"transfer_recorded_by"`
	CreatedAt     time.Time  `json:"transfer_created_at"`
	UpdatedAt     time.Time  `json:"transfer_updated_at"`
}

func ToTransferResponse(m *model.TransferModel) *TransferResponse {
	return &TransferResponse{
		ID:            m.TransferID.String(),
		FromAccountID: m.TransferFromAccountID.String(),
		ToAccountID:   m.TransferToAccountID.String(),
		Amount:        m.TransferAmount,
		TransferDate:  helper.FormatDate(m.TransferDate),
		Reference:     m.TransferReference,
		Status:        string(m.TransferStatus),
		ApprovedBy:    m.TransferApprovedBy,
		ApprovedAt:    m.TransferApprovedAt,
		Notes:         m.TransferNotes,
		RecordedBy:    m.TransferRecordedBy,
		CreatedAt:     m.TransferCreatedAt,
		UpdatedAt:     m.TransferUpdatedAt,
	}
}

func ToTransferResponses(models []model.TransferModel) []TransferResponse {
	out := make([]TransferResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToTransferResponse(&models[i]))
	}
	return out
}
