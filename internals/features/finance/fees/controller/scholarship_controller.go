package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bursary_backend/internals/features/finance/fees/dto"
	"bursary_backend/internals/features/finance/fees/model"
	helper "bursary_backend/internals/helpers"
)

func timeNowUTC() time.Time { return time.Now().UTC() }

type ScholarshipController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewScholarshipController(db *gorm.DB) *ScholarshipController {
	return &ScholarshipController{DB: db, Validator: helper.Validate()}
}

// validateScholarshipShape enforces the cross-field rules a tag validator
// cannot see: value presence per type and scope list requirements.
func validateScholarshipShape(m *model.ScholarshipModel) error {
	switch m.ScholarshipType {
	case model.ScholarshipPercentage:
		if m.ScholarshipPercentageOff == nil {
			return errors.New("percentage scholarships require scholarship_percentage_off")
		}
	case model.ScholarshipFixedAmount:
		if m.ScholarshipFixedOff == nil {
			return errors.New("fixed amount scholarships require scholarship_fixed_amount_off")
		}
	}

	switch m.ScholarshipApplicableTo {
	case model.ScopeSpecificClasses:
		if len(m.ScholarshipClassIDs) == 0 {
			return errors.New("scholarship_class_ids is required for the specific_classes scope")
		}
	case model.ScopeSpecificStudents:
		if len(m.ScholarshipStudentIDs) == 0 {
			return errors.New("scholarship_student_ids is required for the specific_students scope")
		}
	}

	if m.ScholarshipEndDate != nil && !m.ScholarshipEndDate.After(m.ScholarshipStartDate) {
		return errors.New("scholarship end date must be after its start date")
	}
	if m.ScholarshipMaxBeneficiaries != nil && m.ScholarshipCurrentBeneficiaries > *m.ScholarshipMaxBeneficiaries {
		return errors.New("current beneficiaries exceed the maximum")
	}
	return nil
}

// POST /api/a/scholarships
func (ctrl *ScholarshipController) CreateScholarship(c *fiber.Ctx) error {
	var req dto.CreateScholarshipRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	createdBy, _ := helper.GetUserNameFromToken(c)
	if createdBy == "" {
		createdBy = "system"
	}

	scholarship, err := req.ToModel(createdBy)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format")
	}
	if err := validateScholarshipShape(scholarship); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	if err := ctrl.DB.Create(scholarship).Error; err != nil {
		log.Println("[ERROR] Failed to create scholarship:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create scholarship")
	}

	return helper.JsonCreated(c, "Scholarship created successfully", dto.ToScholarshipResponse(scholarship))
}

// GET /api/u/scholarships
func (ctrl *ScholarshipController) GetScholarships(c *fiber.Ctx) error {
	page, perPage, offset := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&model.ScholarshipModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("scholarship_name ILIKE ?", "%"+q+"%")
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !model.ScholarshipStatus(status).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid status filter")
		}
		tx = tx.Where("scholarship_status = ?", status)
	}
	if sType := strings.TrimSpace(c.Query("type")); sType != "" {
		if !model.ScholarshipType(sType).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid type filter")
		}
		tx = tx.Where("scholarship_type = ?", sType)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve scholarships")
	}

	var scholarships []model.ScholarshipModel
	if err := tx.Order("scholarship_created_at DESC").Limit(perPage).Offset(offset).Find(&scholarships).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve scholarships")
	}

	pagination := helper.BuildPaginationFromPage(page, perPage, total)
	return helper.JsonList(c, dto.ToScholarshipResponses(scholarships), pagination)
}

// GET /api/u/scholarships/:id
func (ctrl *ScholarshipController) GetScholarshipByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid scholarship ID")
	}

	var scholarship model.ScholarshipModel
	if err := ctrl.DB.First(&scholarship, "scholarship_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Scholarship not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve scholarship")
	}

	return helper.JsonOK(c, "Scholarship fetched successfully", dto.ToScholarshipResponse(&scholarship))
}

// PUT /api/a/scholarships/:id
func (ctrl *ScholarshipController) UpdateScholarship(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid scholarship ID")
	}

	var req dto.UpdateScholarshipRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var scholarship model.ScholarshipModel
	if err := ctrl.DB.First(&scholarship, "scholarship_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Scholarship not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve scholarship")
	}

	if err := req.ApplyToModel(&scholarship); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format")
	}
	if err := validateScholarshipShape(&scholarship); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	if err := ctrl.DB.Save(&scholarship).Error; err != nil {
		log.Println("[ERROR] Failed to update scholarship:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update scholarship")
	}

	return helper.JsonUpdated(c, "Scholarship updated successfully", dto.ToScholarshipResponse(&scholarship))
}

// DELETE /api/a/scholarships/:id
func (ctrl *ScholarshipController) DeleteScholarship(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid scholarship ID")
	}

	var scholarship model.ScholarshipModel
	if err := ctrl.DB.First(&scholarship, "scholarship_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Scholarship not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve scholarship")
	}

	var inUse int64
	if err := ctrl.DB.Model(&model.FeeAssignmentModel{}).
		Where("fee_assignment_scholarship_id = ?", id).
		Count(&inUse).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check scholarship usage")
	}
	if inUse > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Scholarship is applied to fee assignments")
	}

	if err := ctrl.DB.Delete(&scholarship).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete scholarship")
	}

	return helper.JsonDeleted(c, "Scholarship deleted successfully", fiber.Map{"scholarship_id": id})
}
