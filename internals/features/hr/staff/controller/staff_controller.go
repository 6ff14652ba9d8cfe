package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bursary_backend/internals/features/hr/staff/dto"
	"bursary_backend/internals/features/hr/staff/model"
	helper "bursary_backend/internals/helpers"
)

type StaffController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{DB: db, Validator: helper.Validate()}
}

func uniqueAllowanceNames(items []dto.StaffAllowanceRequest) bool {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		key := strings.ToLower(strings.TrimSpace(it.Name))
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}
	return true
}

// validateStaffFields covers the checks tag validation cannot express.
func (ctl *StaffController) validateStaffFields(phone string, department *string, allowances []dto.StaffAllowanceRequest) *fiber.Error {
	if phone != "" && !helper.IsValidNigerianPhone(phone) {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Phone must be a valid Nigerian number")
	}
	if department != nil && !helper.IsValidDepartmentName(*department) {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Department contains invalid characters")
	}
	if !uniqueAllowanceNames(allowances) {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Allowance names must be unique")
	}
	return nil
}

func (ctl *StaffController) staffNumberTaken(number string, excludeID uuid.UUID) (bool, error) {
	tx := ctl.DB.Model(&model.StaffMemberModel{}).Where("staff_number = ?", number)
	if excludeID != uuid.Nil {
		tx = tx.Where("staff_id <> ?", excludeID)
	}
	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// POST /api/a/staff
func (ctl *StaffController) CreateStaff(c *fiber.Ctx) error {
	var req dto.CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if fe := ctl.validateStaffFields(req.Phone, req.Department, req.Allowances); fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	staff, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid employment date")
	}
	if helper.IsMoreThanDaysInFuture(staff.StaffEmploymentDate, 30) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Employment date cannot be more than 30 days in the future")
	}
	if helper.IsMoreThanYearsInPast(staff.StaffEmploymentDate, 50) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Employment date cannot be more than 50 years in the past")
	}

	taken, err := ctl.staffNumberTaken(staff.StaffNumber, uuid.Nil)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check staff number")
	}
	if taken {
		return helper.JsonError(c, fiber.StatusConflict, "Staff number is already in use")
	}

	if err := ctl.DB.Create(staff).Error; err != nil {
		log.Println("[ERROR] Failed to create staff member:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create staff member")
	}

	return helper.JsonCreated(c, "Staff member created successfully", dto.ToStaffResponse(staff))
}

// GET /api/u/staff
func (ctl *StaffController) GetStaff(c *fiber.Ctx) error {
	page, perPage, offset := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.Model(&model.StaffMemberModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		pattern := "%" + q + "%"
		tx = tx.Where("staff_surname ILIKE ? OR staff_firstname ILIKE ? OR staff_number ILIKE ?",
			pattern, pattern, pattern)
	}
	if department := strings.TrimSpace(c.Query("department")); department != "" {
		tx = tx.Where("staff_department ILIKE ?", department)
	}
	if empType := strings.TrimSpace(c.Query("employment_type")); empType != "" {
		if !model.EmploymentType(empType).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid employment type filter")
		}
		tx = tx.Where("staff_employment_type = ?", empType)
	}
	if active := strings.TrimSpace(c.Query("is_active")); active != "" {
		tx = tx.Where("staff_is_active = ?", active == "true")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve staff members")
	}

	var staff []model.StaffMemberModel
	if err := tx.Order("staff_surname ASC, staff_firstname ASC").Limit(perPage).Offset(offset).Find(&staff).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve staff members")
	}

	pagination := helper.BuildPaginationFromPage(page, perPage, total)
	return helper.JsonList(c, dto.ToStaffResponses(staff), pagination)
}

// GET /api/u/staff/:id
func (ctl *StaffController) GetStaffByID(c *fiber.Ctx) error {
	staff, fe := ctl.findStaff(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonOK(c, "Staff member fetched successfully", dto.ToStaffResponse(staff))
}

func (ctl *StaffController) findStaff(c *fiber.Ctx) (*model.StaffMemberModel, *fiber.Error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid staff ID")
	}
	var staff model.StaffMemberModel
	if err := ctl.DB.First(&staff, "staff_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Staff member not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve staff member")
	}
	return &staff, nil
}

// PUT /api/a/staff/:id
func (ctl *StaffController) UpdateStaff(c *fiber.Ctx) error {
	staff, fe := ctl.findStaff(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var req dto.UpdateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	phone := ""
	if req.Phone != nil {
		phone = strings.TrimSpace(*req.Phone)
	}
	if fe := ctl.validateStaffFields(phone, req.Department, req.Allowances); fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	if req.StaffNumber != nil {
		number := strings.TrimSpace(strings.ToUpper(*req.StaffNumber))
		taken, err := ctl.staffNumberTaken(number, staff.StaffID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check staff number")
		}
		if taken {
			return helper.JsonError(c, fiber.StatusConflict, "Staff number is already in use")
		}
	}

	if err := req.ApplyToModel(staff); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid employment date")
	}
	if helper.IsMoreThanDaysInFuture(staff.StaffEmploymentDate, 30) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Employment date cannot be more than 30 days in the future")
	}
	if helper.IsMoreThanYearsInPast(staff.StaffEmploymentDate, 50) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Employment date cannot be more than 50 years in the past")
	}

	if err := ctl.DB.Save(staff).Error; err != nil {
		log.Println("[ERROR] Failed to update staff member:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update staff member")
	}

	return helper.JsonUpdated(c, "Staff member updated successfully", dto.ToStaffResponse(staff))
}

// PATCH /api/a/staff/:id/deactivate
// Deactivated staff drop out of payroll preparation but keep their history.
func (ctl *StaffController) DeactivateStaff(c *fiber.Ctx) error {
	staff, fe := ctl.findStaff(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if !staff.StaffIsActive {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Staff member is already inactive")
	}

	if err := ctl.DB.Model(staff).Update("staff_is_active", false).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to deactivate staff member")
	}
	staff.StaffIsActive = false

	return helper.JsonUpdated(c, "Staff member deactivated", dto.ToStaffResponse(staff))
}

// DELETE /api/a/staff/:id
func (ctl *StaffController) DeleteStaff(c *fiber.Ctx) error {
	staff, fe := ctl.findStaff(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var salaries int64
	if err := ctl.DB.Table("salary_payments").
		Where("salary_staff_id = ? AND salary_deleted_at IS NULL", staff.StaffID).
		Count(&salaries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check salary history")
	}
	if salaries > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Staff member has salary history; deactivate instead")
	}

	var loans int64
	if err := ctl.DB.Table("staff_loans").
		Where("loan_staff_id = ? AND loan_status = ? AND loan_deleted_at IS NULL", staff.StaffID, "active").
		Count(&loans).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check staff loans")
	}
	if loans > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Staff member has an active loan")
	}

	if err := ctl.DB.Delete(staff).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete staff member")
	}

	return helper.JsonDeleted(c, "Staff member deleted successfully", fiber.Map{"staff_id": staff.StaffID})
}
