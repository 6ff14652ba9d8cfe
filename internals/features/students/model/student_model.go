package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "bursary_backend/internals/features/academics/classes/model"
)

type StudentStatus string

const (
	StudentActive    StudentStatus = "active"
	StudentGraduated StudentStatus = "graduated"
	StudentWithdrawn StudentStatus = "withdrawn"
	StudentSuspended StudentStatus = "suspended"
)

func (s StudentStatus) Valid() bool {
	switch s {
	case StudentActive, StudentGraduated, StudentWithdrawn, StudentSuspended:
		return true
	}
	return false
}

type StudentModel struct {
	StudentID              uuid.UUID  `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`
	StudentAdmissionNumber string     `gorm:"column:student_admission_number;size:30;not null;unique" json:"student_admission_number"`
	StudentSurname         string     `gorm:"column:student_surname;size:50;not null" json:"student_surname"`
	StudentFirstname       string     `gorm:"column:student_firstname;size:50;not null" json:"student_firstname"`
	StudentMiddlename      *string    `gorm:"column:student_middlename;size:50" json:"student_middlename,omitempty"`
	StudentGender          string     `gorm:"column:student_gender;size:10;not null" json:"student_gender"`
	StudentDateOfBirth     *time.Time `gorm:"column:student_date_of_birth;type:date" json:"student_date_of_birth,omitempty"`

	StudentClassID uuid.UUID `gorm:"column:student_class_id;type:uuid;not null;index" json:"student_class_id"`

	StudentGuardianName  string  `gorm:"column:student_guardian_name;size:100;not null" json:"student_guardian_name"`
	StudentGuardianPhone string  `gorm:"column:student_guardian_phone;size:20;not null" json:"student_guardian_phone"`
	StudentGuardianEmail *string `gorm:"column:student_guardian_email;size:255" json:"student_guardian_email,omitempty"`
	StudentAddress       *string `gorm:"column:student_address;type:text" json:"student_address,omitempty"`

	StudentStatus        StudentStatus `gorm:"column:student_status;type:varchar(20);not null;default:'active'" json:"student_status"`
	StudentAdmissionDate time.Time     `gorm:"column:student_admission_date;type:date;not null" json:"student_admission_date"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`

	Class *classModel.ClassModel `gorm:"foreignKey:StudentClassID;references:ClassID" json:"class,omitempty"`
}

func (StudentModel) TableName() string {
	return "students"
}

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	if m.StudentStatus == "" {
		m.StudentStatus = StudentActive
	}
	return nil
}

// FullName joins the name parts for receipts and report rows.
func (m *StudentModel) FullName() string {
	name := m.StudentSurname + " " + m.StudentFirstname
	if m.StudentMiddlename != nil && *m.StudentMiddlename != "" {
		name += " " + *m.StudentMiddlename
	}
	return name
}
