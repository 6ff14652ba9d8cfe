package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bursary_backend/internals/features/finance/expenses/dto"
	"bursary_backend/internals/features/finance/expenses/model"
	helper "bursary_backend/internals/helpers"
)

type ExpenseCategoryController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewExpenseCategoryController(db *gorm.DB) *ExpenseCategoryController {
	return &ExpenseCategoryController{DB: db, Validator: helper.Validate()}
}

// POST /api/a/expense-categories
func (ctl *ExpenseCategoryController) CreateCategory(c *fiber.Ctx) error {
	var req dto.CreateExpenseCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !helper.IsValidCategoryName(req.Name) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Category name contains invalid characters")
	}
	if req.BudgetCode != nil && !helper.IsValidBudgetCode(*req.BudgetCode) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Budget code must look like ADM-001")
	}

	var count int64
	if err := ctl.DB.Model(&model.ExpenseCategoryModel{}).
		Where("LOWER(expense_category_name) = LOWER(?)", req.Name).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check category name")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "An expense category with this name already exists")
	}

	category := req.ToModel()
	if err := ctl.DB.Create(category).Error; err != nil {
		log.Println("[ERROR] Failed to create expense category:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create expense category")
	}
	return helper.JsonCreated(c, "Expense category created successfully", dto.ToExpenseCategoryResponse(category))
}

// GET /api/u/expense-categories
func (ctl *ExpenseCategoryController) GetCategories(c *fiber.Ctx) error {
	page, perPage, offset := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.Model(&model.ExpenseCategoryModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("expense_category_name ILIKE ?", "%"+q+"%")
	}
	if group := strings.TrimSpace(c.Query("group")); group != "" {
		tx = tx.Where("expense_category_group = ?", strings.ToLower(group))
	}
	if active := strings.TrimSpace(c.Query("is_active")); active != "" {
		tx = tx.Where("expense_category_is_active = ?", active == "true")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve expense categories")
	}

	var categories []model.ExpenseCategoryModel
	if err := tx.Order("expense_category_name ASC").Limit(perPage).Offset(offset).Find(&categories).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve expense categories")
	}

	pagination := helper.BuildPaginationFromPage(page, perPage, total)
	return helper.JsonList(c, dto.ToExpenseCategoryResponses(categories), pagination)
}

// GET /api/u/expense-categories/:id
func (ctl *ExpenseCategoryController) GetCategoryByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid category ID")
	}

	var category model.ExpenseCategoryModel
	if err := ctl.DB.First(&category, "expense_category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Expense category not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve expense category")
	}
	return helper.JsonOK(c, "Expense category fetched successfully", dto.ToExpenseCategoryResponse(&category))
}

// PUT /api/a/expense-categories/:id
func (ctl *ExpenseCategoryController) UpdateCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid category ID")
	}

	var req dto.UpdateExpenseCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var category model.ExpenseCategoryModel
	if err := ctl.DB.First(&category, "expense_category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Expense category not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve expense category")
	}

	if req.Name != nil {
		if !helper.IsValidCategoryName(*req.Name) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Category name contains invalid characters")
		}
		var count int64
		if err := ctl.DB.Model(&model.ExpenseCategoryModel{}).
			Where("LOWER(expense_category_name) = LOWER(?) AND expense_category_id <> ?", *req.Name, id).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check category name")
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "An expense category with this name already exists")
		}
	}
	if req.BudgetCode != nil && *req.BudgetCode != "" && !helper.IsValidBudgetCode(*req.BudgetCode) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Budget code must look like ADM-001")
	}

	req.ApplyToModel(&category)
	if err := ctl.DB.Save(&category).Error; err != nil {
		log.Println("[ERROR] Failed to update expense category:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update expense category")
	}
	return helper.JsonUpdated(c, "Expense category updated successfully", dto.ToExpenseCategoryResponse(&category))
}

// DELETE /api/a/expense-categories/:id
func (ctl *ExpenseCategoryController) DeleteCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid category ID")
	}

	var category model.ExpenseCategoryModel
	if err := ctl.DB.First(&category, "expense_category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Expense category not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve expense category")
	}

	var used int64
	if err := ctl.DB.Model(&model.ExpenseModel{}).
		Where("expense_category_id = ?", id).
		Count(&used).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check category usage")
	}
	if used > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Expense category is still referenced by recorded expenses")
	}

	if err := ctl.DB.Delete(&category).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete expense category")
	}
	return helper.JsonDeleted(c, "Expense category deleted successfully", fiber.Map{"expense_category_id": id})
}
