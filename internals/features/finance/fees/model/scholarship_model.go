package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ScholarshipType string

const (
	ScholarshipPercentage  ScholarshipType = "percentage"
	ScholarshipFixedAmount ScholarshipType = "fixed_amount"
	ScholarshipFullWaiver  ScholarshipType = "full_waiver"
)

func (t ScholarshipType) Valid() bool {
	switch t {
	case ScholarshipPercentage, ScholarshipFixedAmount, ScholarshipFullWaiver:
		return true
	}
	return false
}

type ScholarshipScope string

const (
	ScopeAll              ScholarshipScope = "all"
	ScopeSpecificClasses  ScholarshipScope = "specific_classes"
	ScopeSpecificStudents ScholarshipScope = "specific_students"
)

func (s ScholarshipScope) Valid() bool {
	switch s {
	case ScopeAll, ScopeSpecificClasses, ScopeSpecificStudents:
		return true
	}
	return false
}

type ScholarshipStatus string

const (
	ScholarshipActive    ScholarshipStatus = "active"
	ScholarshipSuspended ScholarshipStatus = "suspended"
	ScholarshipExpired   ScholarshipStatus = "expired"
)

func (s ScholarshipStatus) Valid() bool {
	switch s {
	case ScholarshipActive, ScholarshipSuspended, ScholarshipExpired:
		return true
	}
	return false
}

type ScholarshipModel struct {
	ScholarshipID            uuid.UUID       `gorm:"column:scholarship_id;type:uuid;default:gen_random_uuid();primaryKey" json:"scholarship_id"`
	ScholarshipName          string          `gorm:"column:scholarship_name;size:100;not null" json:"scholarship_name"`
	ScholarshipType          ScholarshipType `gorm:"column:scholarship_type;type:varchar(20);not null" json:"scholarship_type"`
	ScholarshipPercentageOff *float64        `gorm:"column:scholarship_percentage_off" json:"scholarship_percentage_off,omitempty"`
	ScholarshipFixedOff      *float64        `gorm:"column:scholarship_fixed_amount_off" json:"scholarship_fixed_amount_off,omitempty"`

	ScholarshipApplicableTo ScholarshipScope `gorm:"column:scholarship_applicable_to;type:varchar(20);not null;default:'all'" json:"scholarship_applicable_to"`
	ScholarshipClassIDs     pq.StringArray   `gorm:"column:scholarship_class_ids;type:text[]" json:"scholarship_class_ids,omitempty"`
	ScholarshipStudentIDs   pq.StringArray   `gorm:"column:scholarship_student_ids;type:text[]" json:"scholarship_student_ids,omitempty"`

	ScholarshipStartDate time.Time  `gorm:"column:scholarship_start_date;type:date;not null" json:"scholarship_start_date"`
	ScholarshipEndDate   *time.Time `gorm:"column:scholarship_end_date;type:date" json:"scholarship_end_date,omitempty"`

	ScholarshipStatus               ScholarshipStatus `gorm:"column:scholarship_status;type:varchar(10);not null;default:'active'" json:"scholarship_status"`
	ScholarshipMaxBeneficiaries     *int              `gorm:"column:scholarship_max_beneficiaries" json:"scholarship_max_beneficiaries,omitempty"`
	ScholarshipCurrentBeneficiaries int               `gorm:"column:scholarship_current_beneficiaries;not null;default:0" json:"scholarship_current_beneficiaries"`

	ScholarshipCreatedBy string `gorm:"column:scholarship_created_by;size:100;not null" json:"scholarship_created_by"`

	ScholarshipCreatedAt time.Time      `gorm:"column:scholarship_created_at;autoCreateTime" json:"scholarship_created_at"`
	ScholarshipUpdatedAt time.Time      `gorm:"column:scholarship_updated_at;autoUpdateTime" json:"scholarship_updated_at"`
	ScholarshipDeletedAt gorm.DeletedAt `gorm:"column:scholarship_deleted_at;index" json:"-"`
}

func (ScholarshipModel) TableName() string {
	return "scholarships"
}

func (m *ScholarshipModel) BeforeCreate(tx *gorm.DB) error {
	if m.ScholarshipID == uuid.Nil {
		m.ScholarshipID = uuid.New()
	}
	if m.ScholarshipStatus == "" {
		m.ScholarshipStatus = ScholarshipActive
	}
	return nil
}
