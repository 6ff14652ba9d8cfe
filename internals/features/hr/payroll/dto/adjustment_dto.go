package dto

import (
	"time"

	"bursary_backend/internals/features/hr/payroll/model"
	helper "bursary_backend/internals/helpers"
)

type CreateBonusRequest struct {
	StaffID     string  `json:"bonus_staff_id" validate:"required,uuid"`
	Description string  `json:"bonus_description" validate:"required,min=3,max=200"`
	Amount      float64 `json:"bonus_amount" validate:"required,gt=0"`
	AwardedDate string  `json:"bonus_awarded_date" validate:"required,datetime=2006-01-02"`
}

type CreatePenaltyRequest struct {
	StaffID     string  `json:"penalty_staff_id" validate:"required,uuid"`
	Description string  `json:"penalty_description" validate:"required,min=3,max=200"`
	Amount      float64 `json:"penalty_amount" validate:"required,gt=0"`
	IssuedDate  string  `json:"penalty_issued_date" validate:"required,datetime=2006-01-02"`
}

type BonusResponse struct {
	ID              string    `json:"bonus_id"`
	StaffID         string    `json:"bonus_staff_id"`
	Description     string    `json:"bonus_description"`
	Amount          float64   `json:"bonus_amount"`
	AwardedDate     string    `json:"bonus_awarded_date"`
	Status          string    `json:"bonus_status"`
	AppliedSalaryID *string   `json:"bonus_applied_salary_id,omitempty"`
	CreatedAt       time.Time `json:"bonus_created_at"`
}

func ToBonusResponse(m *model.StaffBonusModel) *BonusResponse {
	resp := &BonusResponse{
		ID:          m.BonusID.String(),
		StaffID:     m.BonusStaffID.String(),
		Description: m.BonusDescription,
		Amount:      m.BonusAmount,
		AwardedDate: helper.FormatDate(m.BonusAwardedDate),
		Status:      string(m.BonusStatus),
		CreatedAt:   m.BonusCreatedAt,
	}
	if m.BonusAppliedSalaryID != nil {
		id := m.BonusAppliedSalaryID.String()
		resp.AppliedSalaryID = &id
	}
	return resp
}

func ToBonusResponses(models []model.StaffBonusModel) []BonusResponse {
	out := make([]BonusResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToBonusResponse(&models[i]))
	}
	return out
}

type PenaltyResponse struct {
	ID              string    `json:"penalty_id"`
	StaffID         string    `json:"penalty_staff_id"`
	Description     string    `json:"penalty_description"`
	Amount          float64   `json:"penalty_amount"`
	IssuedDate      string    `json:"penalty_issued_date"`
	Status          string    `json:"penalty_status"`
	AppliedSalaryID *string   `json:"penalty_applied_salary_id,omitempty"`
	CreatedAt       time.Time `json:"penalty_created_at"`
}

func ToPenaltyResponse(m *model.StaffPenaltyModel) *PenaltyResponse {
	resp := &PenaltyResponse{
		ID:          m.PenaltyID.String(),
		StaffID:     m.PenaltyStaffID.String(),
		Description: m.PenaltyDescription,
		Amount:      m.PenaltyAmount,
		IssuedDate:  helper.FormatDate(m.PenaltyIssuedDate),
		Status:      string(m.PenaltyStatus),
		CreatedAt:   m.PenaltyCreatedAt,
	}
	if m.PenaltyAppliedSalaryID != nil {
		id := m.PenaltyAppliedSalaryID.String()
		resp.AppliedSalaryID = &id
	}
	return resp
}

func ToPenaltyResponses(models []model.StaffPenaltyModel) []PenaltyResponse {
	out := make([]PenaltyResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToPenaltyResponse(&models[i]))
	}
	return out
}
