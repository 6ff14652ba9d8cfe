package dto

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	"bursary_backend/internals/features/hr/staff/model"
	helper "bursary_backend/internals/helpers"
)

type StaffAllowanceRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=50"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	IsRecurring bool    `json:"is_recurring"`
}

type CreateStaffRequest struct {
	Surname        string                  `json:"staff_surname" validate:"required,min=2,max=50"`
	Firstname      string                  `json:"staff_firstname" validate:"required,min=2,max=50"`
	Middlename     *string                 `json:"staff_middlename" validate:"omitempty,max=50"`
	StaffNumber    string                  `json:"staff_number" validate:"required,min=3,max=30"`
	Phone          string                  `json:"staff_phone" validate:"required"`
	Email          *string                 `json:"staff_email" validate:"omitempty,email,max=255"`
	Address        *string                 `json:"staff_address" validate:"omitempty,max=500"`
	Position       string                  `json:"staff_position" validate:"required,min=2,max=100"`
	Department     *string                 `json:"staff_department" validate:"omitempty,max=50"`
	EmploymentType string                  `json:"staff_employment_type" validate:"required,oneof=full-time part-time contract"`
	EmploymentDate string                  `json:"staff_employment_date" validate:"required,datetime=2006-01-02"`
	BasicSalary    float64                 `json:"staff_basic_salary" validate:"required,gt=0"`
	Allowances     []StaffAllowanceRequest `json:"staff_allowances" validate:"omitempty,max=20,dive"`
	BankName       *string                 `json:"staff_bank_name" validate:"omitempty,max=100"`
	AccountNumber  *string                 `json:"staff_account_number" validate:"omitempty,len=10,numeric"`
}

func (r *CreateStaffRequest) Normalize() {
	r.Surname = strings.TrimSpace(r.Surname)
	r.Firstname = strings.TrimSpace(r.Firstname)
	r.StaffNumber = strings.TrimSpace(strings.ToUpper(r.StaffNumber))
	r.Phone = strings.TrimSpace(r.Phone)
	r.EmploymentType = strings.TrimSpace(strings.ToLower(r.EmploymentType))
	if r.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*r.Email))
		if email == "" {
			r.Email = nil
		} else {
			r.Email = &email
		}
	}
	if r.Department != nil {
		dep := strings.TrimSpace(*r.Department)
		if dep == "" {
			r.Department = nil
		} else {
			r.Department = &dep
		}
	}
}

func (r *CreateStaffRequest) ToModel() (*model.StaffMemberModel, error) {
	employmentDate, err := helper.ParseDate(r.EmploymentDate)
	if err != nil {
		return nil, err
	}
	allowances := make([]model.StaffAllowance, 0, len(r.Allowances))
	for _, a := range r.Allowances {
		allowances = append(allowances, model.StaffAllowance{
			Name:        strings.TrimSpace(a.Name),
			Amount:      helper.Round2(a.Amount),
			IsRecurring: a.IsRecurring,
		})
	}
	return &model.StaffMemberModel{
		StaffSurname:        r.Surname,
		StaffFirstname:      r.Firstname,
		StaffMiddlename:     r.Middlename,
		StaffNumber:         r.StaffNumber,
		StaffPhone:          r.Phone,
		StaffEmail:          r.Email,
		StaffAddress:        r.Address,
		StaffPosition:       r.Position,
		StaffDepartment:     r.Department,
		StaffEmploymentType: model.EmploymentType(r.EmploymentType),
		StaffEmploymentDate: employmentDate,
		StaffBasicSalary:    helper.Round2(r.BasicSalary),
		StaffAllowances:     datatypes.NewJSONSlice(allowances),
		StaffBankName:       r.BankName,
		StaffAccountNumber:  r.AccountNumber,
		StaffIsActive:       true,
	}, nil
}

type UpdateStaffRequest struct {
	Surname        *string                 `json:"staff_surname" validate:"omitempty,min=2,max=50"`
	Firstname      *string                 `json:"staff_firstname" validate:"omitempty,min=2,max=50"`
	Middlename     *string                 `json:"staff_middlename" validate:"omitempty,max=50"`
	StaffNumber    *string                 `json:"staff_number" validate:"omitempty,min=3,max=30"`
	Phone          *string                 `json:"staff_phone" validate:"omitempty"`
	Email          *string                 `json:"staff_email" validate:"omitempty,email,max=255"`
	Address        *string                 `json:"staff_address" validate:"omitempty,max=500"`
	Position       *string                 `json:"staff_position" validate:"omitempty,min=2,max=100"`
	Department     *string                 `json:"staff_department" validate:"omitempty,max=50"`
	EmploymentType *string                 `json:"staff_employment_type" validate:"omitempty,oneof=full-time part-time contract"`
	EmploymentDate *string                 `json:"staff_employment_date" validate:"omitempty,datetime=2006-01-02"`
	BasicSalary    *float64                `json:"staff_basic_salary" validate:"omitempty,gt=0"`
	Allowances     []StaffAllowanceRequest `json:"staff_allowances" validate:"omitempty,max=20,dive"`
	BankName       *string                 `json:"staff_bank_name" validate:"omitempty,max=100"`
	AccountNumber  *string                 `json:"staff_account_number" validate:"omitempty,len=10,numeric"`
	IsActive       *bool                   `json:"staff_is_active"`
}

// ApplyToModel patches only the provided fields. Allowances, when present,
// replace the stored list wholesale.
func (r *UpdateStaffRequest) ApplyToModel(m *model.StaffMemberModel) error {
	if r.Surname != nil {
		m.StaffSurname = strings.TrimSpace(*r.Surname)
	}
	if r.Firstname != nil {
		m.StaffFirstname = strings.TrimSpace(*r.Firstname)
	}
	if r.Middlename != nil {
		m.StaffMiddlename = r.Middlename
	}
	if r.StaffNumber != nil {
		m.StaffNumber = strings.TrimSpace(strings.ToUpper(*r.StaffNumber))
	}
	if r.Phone != nil {
		m.StaffPhone = strings.TrimSpace(*r.Phone)
	}
	if r.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*r.Email))
		if email == "" {
			m.StaffEmail = nil
		} else {
			m.StaffEmail = &email
		}
	}
	if r.Address != nil {
		m.StaffAddress = r.Address
	}
	if r.Position != nil {
		m.StaffPosition = strings.TrimSpace(*r.Position)
	}
	if r.Department != nil {
		dep := strings.TrimSpace(*r.Department)
		if dep == "" {
			m.StaffDepartment = nil
		} else {
			m.StaffDepartment = &dep
		}
	}
	if r.EmploymentType != nil {
		m.StaffEmploymentType = model.EmploymentType(strings.ToLower(*r.EmploymentType))
	}
	if r.EmploymentDate != nil {
		d, err := helper.ParseDate(*r.EmploymentDate)
		if err != nil {
			return err
		}
		m.StaffEmploymentDate = d
	}
	if r.BasicSalary != nil {
		m.StaffBasicSalary = helper.Round2(*r.BasicSalary)
	}
	if r.Allowances != nil {
		allowances := make([]model.StaffAllowance, 0, len(r.Allowances))
		for _, a := range r.Allowances {
			allowances = append(allowances, model.StaffAllowance{
				Name:        strings.TrimSpace(a.Name),
				Amount:      helper.Round2(a.Amount),
				IsRecurring: a.IsRecurring,
			})
		}
		m.StaffAllowances = datatypes.NewJSONSlice(allowances)
	}
	if r.BankName != nil {
		m.StaffBankName = r.BankName
	}
	if r.AccountNumber != nil {
		m.StaffAccountNumber = r.AccountNumber
	}
	if r.IsActive != nil {
		m.StaffIsActive = *r.IsActive
	}
	return nil
}

type StaffResponse struct {
	ID             string                 `json:"staff_id"`
	Surname        string                 `json:"staff_surname"`
	Firstname      string                 `json:"staff_firstname"`
	Middlename     *string                `json:"staff_middlename,omitempty"`
	FullName       string                 `json:"staff_full_name"`
	StaffNumber    string                 `json:"staff_number"`
	Phone          string                 `json:"staff_phone"`
	Email          *string                `json:"staff_email,omitempty"`
	Address        *string                `json:"staff_address,omitempty"`
	Position       string                 `json:"staff_position"`
	Department     *string                `json:"staff_department,omitempty"`
	EmploymentType string                 `json:"staff_employment_type"`
	EmploymentDate string                 `json:"staff_employment_date"`
	BasicSalary    float64                `json:"staff_basic_salary"`
	Allowances     []model.StaffAllowance `json:"staff_allowances"`
	BankName       *string                `json:"staff_bank_name,omitempty"`
	AccountNumber  *string                `json:"staff_account_number,omitempty"`
	IsActive       bool                   `json:"staff_is_active"`
	CreatedAt      time.Time              `json:"staff_created_at"`
	UpdatedAt      time.Time              `json:"staff_updated_at"`
}

func ToStaffResponse(m *model.StaffMemberModel) *StaffResponse {
	return &StaffResponse{
		ID:             m.StaffID.String(),
		Surname:        m.StaffSurname,
		Firstname:      m.StaffFirstname,
		Middlename:     m.StaffMiddlename,
		FullName:       m.FullName(),
		StaffNumber:    m.StaffNumber,
		Phone:          m.StaffPhone,
		Email:          m.StaffEmail,
		Address:        m.StaffAddress,
		Position:       m.StaffPosition,
		Department:     m.StaffDepartment,
		EmploymentType: string(m.StaffEmploymentType),
		EmploymentDate: helper.FormatDate(m.StaffEmploymentDate),
		BasicSalary:    m.StaffBasicSalary,
		Allowances:     m.StaffAllowances,
		BankName:       m.StaffBankName,
		AccountNumber:  m.StaffAccountNumber,
		IsActive:       m.StaffIsActive,
		CreatedAt:      m.StaffCreatedAt,
		UpdatedAt:      m.StaffUpdatedAt,
	}
}

func ToStaffResponses(models []model.StaffMemberModel) []StaffResponse {
	out := make([]StaffResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToStaffResponse(&models[i]))
	}
	return out
}
