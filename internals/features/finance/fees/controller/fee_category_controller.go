package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bursary_backend/internals/features/finance/fees/dto"
	"bursary_backend/internals/features/finance/fees/model"
	helper "bursary_backend/internals/helpers"
)

type FeeCategoryController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewFeeCategoryController(db *gorm.DB) *FeeCategoryController {
	return &FeeCategoryController{DB: db, Validator: helper.Validate()}
}

// POST /api/a/fee-categories
func (ctrl *FeeCategoryController) CreateCategory(c *fiber.Ctx) error {
	var req dto.CreateFeeCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !helper.IsValidCategoryName(req.Name) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Category name contains invalid characters")
	}

	var count int64
	if err := ctrl.DB.Model(&model.FeeCategoryModel{}).
		Where("LOWER(fee_category_name) = LOWER(?)", req.Name).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check category name")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "A fee category with this name already exists")
	}

	category := req.ToModel()
	if err := ctrl.DB.Create(category).Error; err != nil {
		log.Println("[ERROR] Failed to create fee category:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create fee category")
	}

	return helper.JsonCreated(c, "Fee category created successfully", dto.ToFeeCategoryResponse(category))
}

// GET /api/u/fee-categories
func (ctrl *FeeCategoryController) GetCategories(c *fiber.Ctx) error {
	page, perPage, offset := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&model.FeeCategoryModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("fee_category_name ILIKE ?", "%"+q+"%")
	}
	if feeType := strings.TrimSpace(c.Query("fee_type")); feeType != "" {
		if !model.FeeType(feeType).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid fee type filter")
		}
		tx = tx.Where("fee_category_type = ?", feeType)
	}
	if active := strings.TrimSpace(c.Query("is_active")); active != "" {
		tx = tx.Where("fee_category_is_active = ?", active == "true")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve fee categories")
	}

	var categories []model.FeeCategoryModel
	if err := tx.Order("fee_category_name ASC").Limit(perPage).Offset(offset).Find(&categories).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve fee categories")
	}

	pagination := helper.BuildPaginationFromPage(page, perPage, total)
	return helper.JsonList(c, dto.ToFeeCategoryResponses(categories), pagination)
}

// GET /api/u/fee-categories/:id
func (ctrl *FeeCategoryController) GetCategoryByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid fee category ID")
	}

	var category model.FeeCategoryModel
	if err := ctrl.DB.First(&category, "fee_category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee category not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve fee category")
	}

	return helper.JsonOK(c, "Fee category fetched successfully", dto.ToFeeCategoryResponse(&category))
}

// PUT /api/a/fee-categories/:id
func (ctrl *FeeCategoryController) UpdateCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid fee category ID")
	}

	var req dto.UpdateFeeCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var category model.FeeCategoryModel
	if err := ctrl.DB.First(&category, "fee_category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee category not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve fee category")
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if !helper.IsValidCategoryName(name) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Category name contains invalid characters")
		}
		var count int64
		if err := ctrl.DB.Model(&model.FeeCategoryModel{}).
			Where("LOWER(fee_category_name) = LOWER(?) AND fee_category_id <> ?", name, category.FeeCategoryID).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check category name")
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "A fee category with this name already exists")
		}
	}

	req.ApplyToModel(&category)
	if err := ctrl.DB.Save(&category).Error; err != nil {
		log.Println("[ERROR] Failed to update fee category:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update fee category")
	}

	return helper.JsonUpdated(c, "Fee category updated successfully", dto.ToFeeCategoryResponse(&category))
}

// DELETE /api/a/fee-categories/:id
func (ctrl *FeeCategoryController) DeleteCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid fee category ID")
	}

	var category model.FeeCategoryModel
	if err := ctrl.DB.First(&category, "fee_category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee category not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve fee category")
	}

	var used int64
	if err := ctrl.DB.Model(&model.FeeStructureModel{}).
		Where("fee_structure_items @> ?", `[{"category_id":"`+id.String()+`"}]`).
		Count(&used).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check category usage")
	}
	if used > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Fee category is referenced by fee structures")
	}

	if err := ctrl.DB.Delete(&category).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete fee category")
	}

	return helper.JsonDeleted(c, "Fee category deleted successfully", fiber.Map{"fee_category_id": id})
}
