package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"bursary_backend/internals/features/students/model"
	helper "bursary_backend/internals/helpers"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateStudentRequest struct {
	AdmissionNumber string  `json:"student_admission_number" validate:"required,min=3,max=30"`
	Surname         string  `json:"student_surname" validate:"required,min=2,max=50"`
	Firstname       string  `json:"student_firstname" validate:"required,min=2,max=50"`
	Middlename      *string `json:"student_middlename" validate:"omitempty,max=50"`
	Gender          string  `json:"student_gender" validate:"required,oneof=male female"`
	DateOfBirth     *string `json:"student_date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	ClassID         string  `json:"student_class_id" validate:"required,uuid"`
	GuardianName    string  `json:"student_guardian_name" validate:"required,min=2,max=100"`
	GuardianPhone   string  `json:"student_guardian_phone" validate:"required"`
	GuardianEmail   *string `json:"student_guardian_email" validate:"omitempty,email,max=255"`
	Address         *string `json:"student_address" validate:"omitempty,max=500"`
	AdmissionDate   string  `json:"student_admission_date" validate:"required,datetime=2006-01-02"`
}

func (r *CreateStudentRequest) Normalize() {
	r.AdmissionNumber = strings.TrimSpace(strings.ToUpper(r.AdmissionNumber))
	r.Surname = strings.TrimSpace(r.Surname)
	r.Firstname = strings.TrimSpace(r.Firstname)
	r.Gender = strings.TrimSpace(strings.ToLower(r.Gender))
	r.GuardianName = strings.TrimSpace(r.GuardianName)
	r.GuardianPhone = strings.TrimSpace(r.GuardianPhone)
	if r.Middlename != nil {
		m := strings.TrimSpace(*r.Middlename)
		if m == "" {
			r.Middlename = nil
		} else {
			r.Middlename = &m
		}
	}
	if r.GuardianEmail != nil {
		e := strings.TrimSpace(strings.ToLower(*r.GuardianEmail))
		if e == "" {
			r.GuardianEmail = nil
		} else {
			r.GuardianEmail = &e
		}
	}
}

func (r *CreateStudentRequest) ToModel() (*model.StudentModel, error) {
	classID, err := uuid.Parse(r.ClassID)
	if err != nil {
		return nil, err
	}
	admissionDate, err := helper.ParseDate(r.AdmissionDate)
	if err != nil {
		return nil, err
	}
	m := &model.StudentModel{
		StudentAdmissionNumber: r.AdmissionNumber,
		StudentSurname:         r.Surname,
		StudentFirstname:       r.Firstname,
		StudentMiddlename:      r.Middlename,
		StudentGender:          r.Gender,
		StudentClassID:         classID,
		StudentGuardianName:    r.GuardianName,
		StudentGuardianPhone:   r.GuardianPhone,
		StudentGuardianEmail:   r.GuardianEmail,
		StudentAddress:         r.Address,
		StudentStatus:          model.StudentActive,
		StudentAdmissionDate:   admissionDate,
	}
	if r.DateOfBirth != nil {
		dob, err := helper.ParseDate(*r.DateOfBirth)
		if err != nil {
			return nil, err
		}
		m.StudentDateOfBirth = &dob
	}
	return m, nil
}

type UpdateStudentRequest struct {
	Surname       *string `json:"student_surname" validate:"omitempty,min=2,max=50"`
	Firstname     *string `json:"student_firstname" validate:"omitempty,min=2,max=50"`
	Middlename    *string `json:"student_middlename" validate:"omitempty,max=50"`
	Gender        *string `json:"student_gender" validate:"omitempty,oneof=male female"`
	DateOfBirth   *string `json:"student_date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	ClassID       *string `json:"student_class_id" validate:"omitempty,uuid"`
	GuardianName  *string `json:"student_guardian_name" validate:"omitempty,min=2,max=100"`
	GuardianPhone *string `json:"student_guardian_phone"`
	GuardianEmail *string `json:"student_guardian_email" validate:"omitempty,email,max=255"`
	Address       *string `json:"student_address" validate:"omitempty,max=500"`
	Status        *string `json:"student_status" validate:"omitempty,oneof=active graduated withdrawn suspended"`
}

func (r *UpdateStudentRequest) ApplyToModel(m *model.StudentModel) error {
	if r.Surname != nil {
		m.StudentSurname = strings.TrimSpace(*r.Surname)
	}
	if r.Firstname != nil {
		m.StudentFirstname = strings.TrimSpace(*r.Firstname)
	}
	if r.Middlename != nil {
		mid := strings.TrimSpace(*r.Middlename)
		if mid == "" {
			m.StudentMiddlename = nil
		} else {
			m.StudentMiddlename = &mid
		}
	}
	if r.Gender != nil {
		m.StudentGender = strings.ToLower(strings.TrimSpace(*r.Gender))
	}
	if r.DateOfBirth != nil {
		dob, err := helper.ParseDate(*r.DateOfBirth)
		if err != nil {
			return err
		}
		m.StudentDateOfBirth = &dob
	}
	if r.ClassID != nil {
		classID, err := uuid.Parse(*r.ClassID)
		if err != nil {
			return err
		}
		m.StudentClassID = classID
	}
	if r.GuardianName != nil {
		m.StudentGuardianName = strings.TrimSpace(*r.GuardianName)
	}
	if r.GuardianPhone != nil {
		m.StudentGuardianPhone = strings.TrimSpace(*r.GuardianPhone)
	}
	if r.GuardianEmail != nil {
		e := strings.TrimSpace(strings.ToLower(*r.GuardianEmail))
		if e == "" {
			m.StudentGuardianEmail = nil
		} else {
			m.StudentGuardianEmail = &e
		}
	}
	if r.Address != nil {
		m.StudentAddress = r.Address
	}
	if r.Status != nil {
		m.StudentStatus = model.StudentStatus(strings.ToLower(strings.TrimSpace(*r.Status)))
	}
	return nil
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type StudentResponse struct {
	StudentID       string    `json:"student_id"`
	AdmissionNumber string    `json:"student_admission_number"`
	Surname         string    `json:"student_surname"`
	Firstname       string    `json:"student_firstname"`
	Middlename      *string   `json:"student_middlename,omitempty"`
	FullName        string    `json:"student_full_name"`
	Gender          string    `json:"student_gender"`
	DateOfBirth     *string   `json:"student_date_of_birth,omitempty"`
	ClassID         string    `json:"student_class_id"`
	ClassName       string    `json:"student_class_name,omitempty"`
	GuardianName    string    `json:"student_guardian_name"`
	GuardianPhone   string    `json:"student_guardian_phone"`
	GuardianEmail   *string   `json:"student_guardian_email,omitempty"`
	Address         *string   `json:"student_address,omitempty"`
	Status          string    `json:"student_status"`
	AdmissionDate   string    `json:"student_admission_date"`
	CreatedAt       time.Time `json:"student_created_at"`
	UpdatedAt       time.Time `json:"student_updated_at"`
}

func ToStudentResponse(m *model.StudentModel) *StudentResponse {
	resp := &StudentResponse{
		StudentID:       m.StudentID.String(),
		AdmissionNumber: m.StudentAdmissionNumber,
		Surname:         m.StudentSurname,
		Firstname:       m.StudentFirstname,
		Middlename:      m.StudentMiddlename,
		FullName:        m.FullName(),
		Gender:          m.StudentGender,
		ClassID:         m.StudentClassID.String(),
		GuardianName:    m.StudentGuardianName,
		GuardianPhone:   m.StudentGuardianPhone,
		GuardianEmail:   m.StudentGuardianEmail,
		Address:         m.StudentAddress,
		Status:          string(m.StudentStatus),
		AdmissionDate:   helper.FormatDate(m.StudentAdmissionDate),
		CreatedAt:       m.StudentCreatedAt,
		UpdatedAt:       m.StudentUpdatedAt,
	}
	if m.StudentDateOfBirth != nil {
		dob := helper.FormatDate(*m.StudentDateOfBirth)
		resp.DateOfBirth = &dob
	}
	if m.Class != nil {
		resp.ClassName = m.Class.ClassName
	}
	return resp
}

func ToStudentResponses(models []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToStudentResponse(&models[i]))
	}
	return out
}
