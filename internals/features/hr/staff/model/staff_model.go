package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "full-time"
	EmploymentPartTime EmploymentType = "part-time"
	EmploymentContract EmploymentType = "contract"
)

func (t EmploymentType) Valid() bool {
	switch t {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract:
		return true
	}
	return false
}

// StaffAllowance is a named salary add-on. Recurring allowances are pulled
// into every prepared payroll; one-off ones only ride along when typed in.
type StaffAllowance struct {
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	IsRecurring bool    `json:"is_recurring"`
}

type StaffMemberModel struct {
	StaffID             uuid.UUID                            `gorm:"column:staff_id;type:uuid;default:gen_random_uuid();primaryKey" json:"staff_id"`
	StaffSurname        string                               `gorm:"column:staff_surname;size:50;not null" json:"staff_surname"`
	StaffFirstname      string                               `gorm:"column:staff_firstname;size:50;not null" json:"staff_firstname"`
	StaffMiddlename     *string                              `gorm:"column:staff_middlename;size:50" json:"staff_middlename,omitempty"`
	StaffNumber         string                               `gorm:"column:staff_number;size:30;not null;unique" json:"staff_number"`
	StaffPhone          string                               `gorm:"column:staff_phone;size:20;not null" json:"staff_phone"`
	StaffEmail          *string                              `gorm:"column:staff_email;size:255" json:"staff_email,omitempty"`
	StaffAddress        *string                              `gorm:"column:staff_address;type:text" json:"staff_address,omitempty"`
	StaffPosition       string                               `gorm:"column:staff_position;size:100;not null" json:"staff_position"`
	StaffDepartment     *string                              `gorm:"column:staff_department;size:50" json:"staff_department,omitempty"`
	StaffEmploymentType EmploymentType                       `gorm:"column:staff_employment_type;type:varchar(20);not null" json:"staff_employment_type"`
	StaffEmploymentDate time.Time                            `gorm:"column:staff_employment_date;type:date;not null" json:"staff_employment_date"`
	StaffBasicSalary    float64                              `gorm:"column:staff_basic_salary;not null" json:"staff_basic_salary"`
	StaffAllowances     datatypes.JSONSlice[StaffAllowance]  `gorm:"column:staff_allowances;type:jsonb" json:"staff_allowances"`
	StaffBankName       *string                              `gorm:"column:staff_bank_name;size:100" json:"staff_bank_name,omitempty"`
	StaffAccountNumber  *string                              `gorm:"column:staff_account_number;size:10" json:"staff_account_number,omitempty"`
	StaffIsActive       bool                                 `gorm:"column:staff_is_active;not null;default:true" json:"staff_is_active"`

	StaffCreatedAt time.Time      `gorm:"column:staff_created_at;autoCreateTime" json:"staff_created_at"`
	StaffUpdatedAt time.Time      `gorm:"column:staff_updated_at;autoUpdateTime" json:"staff_updated_at"`
	StaffDeletedAt gorm.DeletedAt `gorm:"column:staff_deleted_at;index" json:"-"`
}

func (StaffMemberModel) TableName() string {
	return "staff_members"
}

func (m *StaffMemberModel) BeforeCreate(tx *gorm.DB) error {
	if m.StaffID == uuid.Nil {
		m.StaffID = uuid.New()
	}
	return nil
}

// FullName joins the name parts for payslips and report rows.
func (m *StaffMemberModel) FullName() string {
	parts := []string{m.StaffSurname, m.StaffFirstname}
	if m.StaffMiddlename != nil && strings.TrimSpace(*m.StaffMiddlename) != "" {
		parts = append(parts, *m.StaffMiddlename)
	}
	return strings.Join(parts, " ")
}

// RecurringAllowances filters the allowances that belong in every payroll run.
func (m *StaffMemberModel) RecurringAllowances() []StaffAllowance {
	out := make([]StaffAllowance, 0, len(m.StaffAllowances))
	for _, a := range m.StaffAllowances {
		if a.IsRecurring {
			out = append(out, a)
		}
	}
	return out
}
