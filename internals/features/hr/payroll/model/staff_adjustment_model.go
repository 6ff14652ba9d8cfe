package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdjustmentStatus covers bonuses and penalties: they sit pending until a
// salary payment that claims them is marked paid.
type AdjustmentStatus string

const (
	AdjustmentPending AdjustmentStatus = "pending"
	AdjustmentApplied AdjustmentStatus = "applied"
)

func (s AdjustmentStatus) Valid() bool {
	return s == AdjustmentPending || s == AdjustmentApplied
}

type StaffBonusModel struct {
	BonusID              uuid.UUID        `gorm:"column:bonus_id;type:uuid;default:gen_random_uuid();primaryKey" json:"bonus_id"`
	BonusStaffID         uuid.UUID        `gorm:"column:bonus_staff_id;type:uuid;not null;index" json:"bonus_staff_id"`
	BonusDescription     string           `gorm:"column:bonus_description;size:200;not null" json:"bonus_description"`
	BonusAmount          float64          `gorm:"column:bonus_amount;not null" json:"bonus_amount"`
	BonusAwardedDate     time.Time        `gorm:"column:bonus_awarded_date;type:date;not null" json:"bonus_awarded_date"`
	BonusStatus          AdjustmentStatus `gorm:"column:bonus_status;type:varchar(10);not null;default:'pending'" json:"bonus_status"`
	BonusAppliedSalaryID *uuid.UUID       `gorm:"column:bonus_applied_salary_id;type:uuid" json:"bonus_applied_salary_id,omitempty"`

	BonusCreatedAt time.Time      `gorm:"column:bonus_created_at;autoCreateTime" json:"bonus_created_at"`
	BonusUpdatedAt time.Time      `gorm:"column:bonus_updated_at;autoUpdateTime" json:"bonus_updated_at"`
	BonusDeletedAt gorm.DeletedAt `gorm:"column:bonus_deleted_at;index" json:"-"`
}

func (StaffBonusModel) TableName() string {
	return "staff_bonuses"
}

func (m *StaffBonusModel) BeforeCreate(tx *gorm.DB) error {
	if m.BonusID == uuid.Nil {
		m.BonusID = uuid.New()
	}
	if m.BonusStatus == "" {
		m.BonusStatus = AdjustmentPending
	}
	return nil
}

type StaffPenaltyModel struct {
	PenaltyID              uuid.UUID        `gorm:"column:penalty_id;type:uuid;default:gen_random_uuid();primaryKey" json:"penalty_id"`
	PenaltyStaffID         uuid.UUID        `gorm:"column:penalty_staff_id;type:uuid;not null;index" json:"penalty_staff_id"`
	PenaltyDescription     string           `gorm:"column:penalty_description;size:200;not null" json:"penalty_description"`
	PenaltyAmount          float64          `gorm:"column:penalty_amount;not null" json:"penalty_amount"`
	PenaltyIssuedDate      time.Time        `gorm:"column:penalty_issued_date;type:date;not null" json:"penalty_issued_date"`
	PenaltyStatus          AdjustmentStatus `gorm:"column:penalty_status;type:varchar(10);not null;default:'pending'" json:"penalty_status"`
	PenaltyAppliedSalaryID *uuid.UUID       `gorm:"column:penalty_applied_salary_id;type:uuid" json:"penalty_applied_salary_id,omitempty"`

	PenaltyCreatedAt time.Time      `gorm:"column:penalty_created_at;autoCreateTime" json:"penalty_created_at"`
	PenaltyUpdatedAt time.Time      `gorm:"column:penalty_updated_at;autoUpdateTime" json:"penalty_updated_at"`
	PenaltyDeletedAt gorm.DeletedAt `gorm:"column:penalty_deleted_at;index" json:"-"`
}

func (StaffPenaltyModel) TableName() string {
	return "staff_penalties"
}

func (m *StaffPenaltyModel) BeforeCreate(tx *gorm.DB) error {
	if m.PenaltyID == uuid.Nil {
		m.PenaltyID = uuid.New()
	}
	if m.PenaltyStatus == "" {
		m.PenaltyStatus = AdjustmentPending
	}
	return nil
}
