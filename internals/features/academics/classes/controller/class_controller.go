package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bursary_backend/internals/features/academics/classes/dto"
	"bursary_backend/internals/features/academics/classes/model"
	helper "bursary_backend/internals/helpers"
)

type ClassController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db, Validator: helper.Validate()}
}

var classSortColumns = map[string]string{
	"class_name":       "class_name",
	"class_level":      "class_level",
	"class_created_at": "class_created_at",
}

func buildClassOrderClause(sortBy, order string) string {
	col, ok := classSortColumns[sortBy]
	if !ok {
		col = "class_level"
	}
	if strings.EqualFold(order, "desc") {
		return col + " DESC"
	}
	return col + " ASC"
}

// POST /api/a/classes
func (ctrl *ClassController) CreateClass(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var count int64
	if err := ctrl.DB.Model(&model.ClassModel{}).
		Where("LOWER(class_name) = LOWER(?) AND class_level = ?", req.ClassName, req.ClassLevel).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check class name")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "A class with this name already exists for the level")
	}

	class := req.ToModel()
	if err := ctrl.DB.Create(class).Error; err != nil {
		log.Println("[ERROR] Failed to create class:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create class")
	}

	return helper.JsonCreated(c, "Class created successfully", dto.ToClassResponse(class))
}

// GET /api/u/classes
func (ctrl *ClassController) GetClasses(c *fiber.Ctx) error {
	page, perPage, offset := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&model.ClassModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("class_name ILIKE ?", "%"+q+"%")
	}
	if level := strings.TrimSpace(c.Query("level")); level != "" {
		tx = tx.Where("class_level = ?", strings.ToUpper(level))
	}
	if active := strings.TrimSpace(c.Query("is_active")); active != "" {
		tx = tx.Where("class_is_active = ?", active == "true")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve classes")
	}

	var classes []model.ClassModel
	if err := tx.
		Order(buildClassOrderClause(c.Query("sort_by"), c.Query("order"))).
		Limit(perPage).Offset(offset).
		Find(&classes).Error; err != nil {
		log.Println("[ERROR] Failed to fetch classes:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve classes")
	}

	pagination := helper.BuildPaginationFromPage(page, perPage, total)
	return helper.JsonList(c, dto.ToClassResponses(classes), pagination)
}

// GET /api/u/classes/:id
func (ctrl *ClassController) GetClassByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID")
	}

	var class model.ClassModel
	if err := ctrl.DB.First(&class, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve class")
	}

	return helper.JsonOK(c, "Class fetched successfully", dto.ToClassResponse(&class))
}

// PUT /api/a/classes/:id
func (ctrl *ClassController) UpdateClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID")
	}

	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var class model.ClassModel
	if err := ctrl.DB.First(&class, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve class")
	}

	if req.ClassName != nil || req.ClassLevel != nil {
		name := class.ClassName
		level := class.ClassLevel
		if req.ClassName != nil {
			name = strings.TrimSpace(*req.ClassName)
		}
		if req.ClassLevel != nil {
			level = strings.TrimSpace(strings.ToUpper(*req.ClassLevel))
		}
		var count int64
		if err := ctrl.DB.Model(&model.ClassModel{}).
			Where("LOWER(class_name) = LOWER(?) AND class_level = ? AND class_id <> ?", name, level, class.ClassID).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check class name")
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "A class with this name already exists for the level")
		}
	}

	req.ApplyToModel(&class)
	if err := ctrl.DB.Save(&class).Error; err != nil {
		log.Println("[ERROR] Failed to update class:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update class")
	}

	return helper.JsonUpdated(c, "Class updated successfully", dto.ToClassResponse(&class))
}

// DELETE /api/a/classes/:id
func (ctrl *ClassController) DeleteClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID")
	}

	var class model.ClassModel
	if err := ctrl.DB.First(&class, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve class")
	}

	var studentCount int64
	if err := ctrl.DB.Table("students").
		Where("student_class_id = ? AND student_deleted_at IS NULL", id).
		Count(&studentCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check class usage")
	}
	if studentCount > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Class still has students assigned to it")
	}

	if err := ctrl.DB.Delete(&class).Error; err != nil {
		log.Println("[ERROR] Failed to delete class:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete class")
	}

	return helper.JsonDeleted(c, "Class deleted successfully", fiber.Map{"class_id": id})
}
