package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	classModel "bursary_backend/internals/features/academics/classes/model"
	"bursary_backend/internals/features/finance/fees/dto"
	"bursary_backend/internals/features/finance/fees/model"
	helper "bursary_backend/internals/helpers"
)

type FeeStructureController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewFeeStructureController(db *gorm.DB) *FeeStructureController {
	return &FeeStructureController{DB: db, Validator: helper.Validate()}
}

// resolveStructureItems turns request items into denormalized snapshot lines
// and sums the total. Categories must exist and be active.
func (ctrl *FeeStructureController) resolveStructureItems(reqItems []dto.FeeStructureItemRequest) ([]model.FeeStructureItem, float64, error) {
	items := make([]model.FeeStructureItem, 0, len(reqItems))
	seen := make(map[string]bool, len(reqItems))
	var total float64

	for _, ri := range reqItems {
		if seen[ri.CategoryID] {
			return nil, 0, errors.New("duplicate category in fee structure items")
		}
		seen[ri.CategoryID] = true

		catID, err := uuid.Parse(ri.CategoryID)
		if err != nil {
			return nil, 0, errors.New("invalid category ID")
		}
		var category model.FeeCategoryModel
		if err := ctrl.DB.First(&category, "fee_category_id = ?", catID).Error; err != nil {
			return nil, 0, errors.New("fee category not found: " + ri.CategoryID)
		}
		if !category.FeeCategoryIsActive {
			return nil, 0, errors.New("fee category is inactive: " + category.FeeCategoryName)
		}
		if ri.Amount < 0 {
			return nil, 0, errors.New("item amount must not be negative")
		}

		items = append(items, model.FeeStructureItem{
			CategoryID:   category.FeeCategoryID.String(),
			CategoryName: category.FeeCategoryName,
			FeeType:      string(category.FeeCategoryType),
			Amount:       helper.Round2(ri.Amount),
			IsMandatory:  category.FeeCategoryIsMandatory,
		})
		total += ri.Amount
	}
	return items, helper.Round2(total), nil
}

// POST /api/a/fee-structures
func (ctrl *FeeStructureController) CreateStructure(c *fiber.Ctx) error {
	var req dto.CreateFeeStructureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !helper.IsValidAcademicYear(req.AcademicYear) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Academic year must look like 2024/2025")
	}

	classID, err := uuid.Parse(req.ClassID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID")
	}
	var class classModel.ClassModel
	if err := ctrl.DB.First(&class, "class_id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify class")
	}

	// one active structure per class+year+term
	var count int64
	if err := ctrl.DB.Model(&model.FeeStructureModel{}).
		Where("fee_structure_class_id = ? AND fee_structure_academic_year = ? AND fee_structure_term = ? AND fee_structure_is_active = true",
			classID, req.AcademicYear, req.Term).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing structures")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "An active fee structure already exists for this class, year and term")
	}

	items, total, err := ctrl.resolveStructureItems(req.Items)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	structure := &model.FeeStructureModel{
		FeeStructureClassID:      classID,
		FeeStructureAcademicYear: req.AcademicYear,
		FeeStructureTerm:         model.Term(req.Term),
		FeeStructureItems:        datatypes.NewJSONSlice(items),
		FeeStructureTotalAmount:  total,
		FeeStructureIsActive:     true,
	}
	if err := ctrl.DB.Create(structure).Error; err != nil {
		log.Println("[ERROR] Failed to create fee structure:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create fee structure")
	}

	return helper.JsonCreated(c, "Fee structure created successfully", dto.ToFeeStructureResponse(structure, class.ClassName))
}

// GET /api/u/fee-structures
func (ctrl *FeeStructureController) GetStructures(c *fiber.Ctx) error {
	page, perPage, offset := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&model.FeeStructureModel{})
	if classID := strings.TrimSpace(c.Query("class_id")); classID != "" {
		id, err := uuid.Parse(classID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class_id filter")
		}
		tx = tx.Where("fee_structure_class_id = ?", id)
	}
	if year := strings.TrimSpace(c.Query("academic_year")); year != "" {
		tx = tx.Where("fee_structure_academic_year = ?", year)
	}
	if term := strings.TrimSpace(c.Query("term")); term != "" {
		if !model.Term(term).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid term filter")
		}
		tx = tx.Where("fee_structure_term = ?", term)
	}
	if active := strings.TrimSpace(c.Query("is_active")); active != "" {
		tx = tx.Where("fee_structure_is_active = ?", active == "true")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve fee structures")
	}

	var structures []model.FeeStructureModel
	if err := tx.Order("fee_structure_created_at DESC").Limit(perPage).Offset(offset).Find(&structures).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve fee structures")
	}

	pagination := helper.BuildPaginationFromPage(page, perPage, total)
	return helper.JsonList(c, dto.ToFeeStructureResponses(structures), pagination)
}

// GET /api/u/fee-structures/:id
func (ctrl *FeeStructureController) GetStructureByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid fee structure ID")
	}

	var structure model.FeeStructureModel
	if err := ctrl.DB.First(&structure, "fee_structure_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee structure not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve fee structure")
	}

	var class classModel.ClassModel
	className := ""
	if err := ctrl.DB.First(&class, "class_id = ?", structure.FeeStructureClassID).Error; err == nil {
		className = class.ClassName
	}

	return helper.JsonOK(c, "Fee structure fetched successfully", dto.ToFeeStructureResponse(&structure, className))
}

// PUT /api/a/fee-structures/:id
func (ctrl *FeeStructureController) UpdateStructure(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid fee structure ID")
	}

	var req dto.UpdateFeeStructureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var structure model.FeeStructureModel
	if err := ctrl.DB.First(&structure, "fee_structure_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee structure not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve fee structure")
	}

	if len(req.Items) > 0 {
		items, total, err := ctrl.resolveStructureItems(req.Items)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		structure.FeeStructureItems = datatypes.NewJSONSlice(items)
		structure.FeeStructureTotalAmount = total
	}
	if req.IsActive != nil {
		if *req.IsActive && !structure.FeeStructureIsActive {
			var count int64
			if err := ctrl.DB.Model(&model.FeeStructureModel{}).
				Where("fee_structure_class_id = ? AND fee_structure_academic_year = ? AND fee_structure_term = ? AND fee_structure_is_active = true AND fee_structure_id <> ?",
					structure.FeeStructureClassID, structure.FeeStructureAcademicYear, structure.FeeStructureTerm, structure.FeeStructureID).
				Count(&count).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing structures")
			}
			if count > 0 {
				return helper.JsonError(c, fiber.StatusConflict, "Another active fee structure already exists for this class, year and term")
			}
		}
		structure.FeeStructureIsActive = *req.IsActive
	}

	if err := ctrl.DB.Save(&structure).Error; err != nil {
		log.Println("[ERROR] Failed to update fee structure:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update fee structure")
	}

	return helper.JsonUpdated(c, "Fee structure updated successfully", dto.ToFeeStructureResponse(&structure, ""))
}

// DELETE /api/a/fee-structures/:id
func (ctrl *FeeStructureController) DeleteStructure(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid fee structure ID")
	}

	var structure model.FeeStructureModel
	if err := ctrl.DB.First(&structure, "fee_structure_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee structure not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve fee structure")
	}

	var assigned int64
	if err := ctrl.DB.Model(&model.FeeAssignmentModel{}).
		Where("fee_assignment_fee_structure_id = ?", id).
		Count(&assigned).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check structure usage")
	}
	if assigned > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Fee structure already has assignments")
	}

	if err := ctrl.DB.Delete(&structure).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete fee structure")
	}

	return helper.JsonDeleted(c, "Fee structure deleted successfully", fiber.Map{"fee_structure_id": id})
}
