package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransferStatus string

const (
	TransferPending   TransferStatus = "pending"
	TransferApproved  TransferStatus = "approved"
	TransferCompleted TransferStatus = "completed"
	TransferRejected  TransferStatus = "rejected"
	TransferCancelled TransferStatus = "cancelled"
)

func (s TransferStatus) Valid() bool {
	switch s {
	case TransferPending, TransferApproved, TransferCompleted, TransferRejected, TransferCancelled:
		return true
	}
	return false
}

func (s TransferStatus) CanTransitionTo(next TransferStatus) bool {
	switch s {
	case TransferPending:
		return next == TransferApproved || next == TransferCompleted ||
			next == TransferRejected || next == TransferCancelled
	case TransferApproved:
		return next == TransferCompleted || next == TransferCancelled
	}
	return false
}

// TransferModel moves money between two of the school's own accounts.
// Completion posts the paired debit and credit lines; until then no balance
// changes.
type TransferModel struct {
	TransferID            uuid.UUID      `gorm:"column:transfer_id;type:uuid;default:gen_random_uuid();primaryKey" json:"transfer_id"`
	TransferFromAccountID uuid.UUID      `gorm:"column:transfer_from_account_id;type:uuid;not null;index" json:"transfer_from_account_id"`
	TransferToAccountID   uuid.UUID      `gorm:"column:transfer_to_account_id;type:uuid;not null;index" json:"transfer_to_account_id"`
	TransferAmount        float64        `gorm:"column:transfer_amount;not null" json:"transfer_amount"`
	TransferDate          time.Time      `gorm:"column:transfer_date;type:date;not null" json:"transfer_date"`
	TransferReference     string         `gorm:"column:transfer_reference;size:30;not null;uniqueIndex" json:"transfer_reference"`
	TransferStatus        TransferStatus `gorm:"column:transfer_status;type:varchar(10);not null;default:'pending'" json:"transfer_status"`
	TransferApprovedBy    *string        `gorm:"column:transfer_approved_by;size:160" json:"transfer_approved_by,omitempty"`
	TransferApprovedAt    *time.Time     `gorm:"column:transfer_approved_at;type:timestamptz" json:"transfer_approved_at,omitempty"`
	TransferNotes         *string        `gorm:"column:transfer_notes;type:text" json:"transfer_notes,omitempty"`
	TransferRecordedBy    string         `gorm:"column:transfer_recorded_by;size:160;not null" json:"transfer_recorded_by"`

	TransferCreatedAt time.Time      `gorm:"column:transfer_created_at;autoCreateTime" json:"transfer_created_at"`
	TransferUpdatedAt time.Time      `gorm:"column:transfer_updated_at;autoUpdateTime" json:"transfer_updated_at"`
	TransferDeletedAt gorm.DeletedAt `gorm:"column:transfer_deleted_at;index" json:"-"`
}

func (TransferModel) TableName() string {
	return "transfers"
}

func (m *TransferModel) BeforeCreate(tx *gorm.DB) error {
	if m.TransferID == uuid.Nil {
		m.TransferID = uuid.New()
	}
	if m.TransferStatus == "" {
		m.TransferStatus = TransferPending
	}
	return nil
}
