package dto

import (
	"strings"
	"time"

	"bursary_backend/internals/features/finance/fees/model"
	helper "bursary_backend/internals/helpers"
)

type CreateScholarshipRequest struct {
	Name             string   `json:"scholarship_name" validate:"required,min=3,max=100"`
	Type             string   `json:"scholarship_type" validate:"required,oneof=percentage fixed_amount full_waiver"`
	PercentageOff    *float64 `json:"scholarship_percentage_off" validate:"omitempty,gt=0,lte=100"`
	FixedAmountOff   *float64 `json:"scholarship_fixed_amount_off" validate:"omitempty,gt=0"`
	ApplicableTo     string   `json:"scholarship_applicable_to" validate:"required,oneof=all specific_classes specific_students"`
	ClassIDs         []string `json:"scholarship_class_ids" validate:"omitempty,dive,uuid"`
	StudentIDs       []string `json:"scholarship_student_ids" validate:"omitempty,dive,uuid"`
	StartDate        string   `json:"scholarship_start_date" validate:"required,datetime=2006-01-02"`
	EndDate          *string  `json:"scholarship_end_date" validate:"omitempty,datetime=2006-01-02"`
	MaxBeneficiaries *int     `json:"scholarship_max_beneficiaries" validate:"omitempty,gte=1"`
}

func (r *CreateScholarshipRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Type = strings.TrimSpace(strings.ToLower(r.Type))
	r.ApplicableTo = strings.TrimSpace(strings.ToLower(r.ApplicableTo))
}

func (r *CreateScholarshipRequest) ToModel(createdBy string) (*model.ScholarshipModel, error) {
	start, err := helper.ParseDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	m := &model.ScholarshipModel{
		ScholarshipName:             r.Name,
		ScholarshipType:             model.ScholarshipType(r.Type),
		ScholarshipPercentageOff:    r.PercentageOff,
		ScholarshipFixedOff:         r.FixedAmountOff,
		ScholarshipApplicableTo:     model.ScholarshipScope(r.ApplicableTo),
		ScholarshipClassIDs:         r.ClassIDs,
		ScholarshipStudentIDs:       r.StudentIDs,
		ScholarshipStartDate:        start,
		ScholarshipStatus:           model.ScholarshipActive,
		ScholarshipMaxBeneficiaries: r.MaxBeneficiaries,
		ScholarshipCreatedBy:        createdBy,
	}
	if r.EndDate != nil {
		end, err := helper.ParseDate(*r.EndDate)
		if err != nil {
			return nil, err
		}
		m.ScholarshipEndDate = &end
	}
	return m, nil
}

type UpdateScholarshipRequest struct {
	Name             *string  `json:"scholarship_name" validate:"omitempty,min=3,max=100"`
	PercentageOff    *float64 `json:"scholarship_percentage_off" validate:"omitempty,gt=0,lte=100"`
	FixedAmountOff   *float64 `json:"scholarship_fixed_amount_off" validate:"omitempty,gt=0"`
	ClassIDs         []string `json:"scholarship_class_ids" validate:"omitempty,dive,uuid"`
	StudentIDs       []string `json:"scholarship_student_ids" validate:"omitempty,dive,uuid"`
	EndDate          *string  `json:"scholarship_end_date" validate:"omitempty,datetime=2006-01-02"`
	Status           *string  `json:"scholarship_status" validate:"omitempty,oneof=active suspended expired"`
	MaxBeneficiaries *int     `json:"scholarship_max_beneficiaries" validate:"omitempty,gte=1"`
}

func (r *UpdateScholarshipRequest) ApplyToModel(m *model.ScholarshipModel) error {
	if r.Name != nil {
		m.ScholarshipName = strings.TrimSpace(*r.Name)
	}
	if r.PercentageOff != nil {
		m.ScholarshipPercentageOff = r.PercentageOff
	}
	if r.FixedAmountOff != nil {
		m.ScholarshipFixedOff = r.FixedAmountOff
	}
	if r.ClassIDs != nil {
		m.ScholarshipClassIDs = r.ClassIDs
	}
	if r.StudentIDs != nil {
		m.ScholarshipStudentIDs = r.StudentIDs
	}
	if r.EndDate != nil {
		end, err := helper.ParseDate(*r.EndDate)
		if err != nil {
			return err
		}
		m.ScholarshipEndDate = &end
	}
	if r.Status != nil {
		m.ScholarshipStatus = model.ScholarshipStatus(strings.ToLower(strings.TrimSpace(*r.Status)))
	}
	if r.MaxBeneficiaries != nil {
		m.ScholarshipMaxBeneficiaries = r.MaxBeneficiaries
	}
	return nil
}

type ScholarshipResponse struct {
	ID                   string    `json:"scholarship_id"`
	Name                 string    `json:"scholarship_name"`
	Type                 string    `json:"scholarship_type"`
	PercentageOff        *float64  `json:"scholarship_percentage_off,omitempty"`
	FixedAmountOff       *float64  `json:"scholarship_fixed_amount_off,omitempty"`
	ApplicableTo         string    `json:"scholarship_applicable_to"`
	ClassIDs             []string  `json:"scholarship_class_ids,omitempty"`
	StudentIDs           []string  `json:"scholarship_student_ids,omitempty"`
	StartDate            string    `json:"scholarship_start_date"`
	EndDate              *string   `json:"scholarship_end_date,omitempty"`
	Status               string    `json:"scholarship_status"`
	MaxBeneficiaries     *int      `json:"scholarship_max_beneficiaries,omitempty"`
	CurrentBeneficiaries int       `json:"scholarship_current_beneficiaries"`
	CreatedBy            string    `json:"scholarship_created_by"`
	CreatedAt            time.Time `json:"scholarship_created_at"`
	UpdatedAt            time.Time `json:"scholarship_updated_at"`
}

func ToScholarshipResponse(m *model.ScholarshipModel) *ScholarshipResponse {
	resp := &ScholarshipResponse{
		ID:                   m.ScholarshipID.String(),
		Name:                 m.ScholarshipName,
		Type:                 string(m.ScholarshipType),
		PercentageOff:        m.ScholarshipPercentageOff,
		FixedAmountOff:       m.ScholarshipFixedOff,
		ApplicableTo:         string(m.ScholarshipApplicableTo),
		ClassIDs:             m.ScholarshipClassIDs,
		StudentIDs:           m.ScholarshipStudentIDs,
		StartDate:            helper.FormatDate(m.ScholarshipStartDate),
		Status:               string(m.ScholarshipStatus),
		MaxBeneficiaries:     m.ScholarshipMaxBeneficiaries,
		CurrentBeneficiaries: m.ScholarshipCurrentBeneficiaries,
		CreatedBy:            m.ScholarshipCreatedBy,
		CreatedAt:            m.ScholarshipCreatedAt,
		UpdatedAt:            m.ScholarshipUpdatedAt,
	}
	if m.ScholarshipEndDate != nil {
		end := helper.FormatDate(*m.ScholarshipEndDate)
		resp.EndDate = &end
	}
	return resp
}

func ToScholarshipResponses(models []model.ScholarshipModel) []ScholarshipResponse {
	out := make([]ScholarshipResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToScholarshipResponse(&models[i]))
	}
	return out
}
