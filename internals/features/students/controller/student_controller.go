package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "bursary_backend/internals/features/academics/classes/model"
	"bursary_backend/internals/features/students/dto"
	"bursary_backend/internals/features/students/model"
	helper "bursary_backend/internals/helpers"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validator: helper.Validate()}
}

var studentSortColumns = map[string]string{
	"surname":          "student_surname",
	"admission_number": "student_admission_number",
	"admission_date":   "student_admission_date",
	"created_at":       "student_created_at",
}

func buildStudentOrderClause(sortBy, order string) string {
	col, ok := studentSortColumns[sortBy]
	if !ok {
		col = "student_surname"
	}
	if strings.EqualFold(order, "desc") {
		return col + " DESC"
	}
	return col + " ASC"
}

func (ctrl *StudentController) classExists(id uuid.UUID) (bool, error) {
	var count int64
	err := ctrl.DB.Model(&classModel.ClassModel{}).Where("class_id = ?", id).Count(&count).Error
	return count > 0, err
}

// POST /api/a/students
func (ctrl *StudentController) CreateStudent(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !helper.IsValidNigerianPhone(req.GuardianPhone) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Guardian phone must be a valid Nigerian phone number")
	}

	student, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date or class ID")
	}

	ok, err := ctrl.classExists(student.StudentClassID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify class")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}

	var count int64
	if err := ctrl.DB.Model(&model.StudentModel{}).
		Where("LOWER(student_admission_number) = LOWER(?)", req.AdmissionNumber).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check admission number")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Admission number is already in use")
	}

	if err := ctrl.DB.Create(student).Error; err != nil {
		log.Println("[ERROR] Failed to create student:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create student")
	}

	return helper.JsonCreated(c, "Student created successfully", dto.ToStudentResponse(student))
}

// GET /api/u/students
func (ctrl *StudentController) GetStudents(c *fiber.Ctx) error {
	page, perPage, offset := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&model.StudentModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		pattern := "%" + q + "%"
		tx = tx.Where(
			"student_surname ILIKE ? OR student_firstname ILIKE ? OR student_middlename ILIKE ? OR student_admission_number ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !model.StudentStatus(status).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student status filter")
		}
		tx = tx.Where("student_status = ?", status)
	}
	if classID := strings.TrimSpace(c.Query("class_id")); classID != "" {
		id, err := uuid.Parse(classID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class_id filter")
		}
		tx = tx.Where("student_class_id = ?", id)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve students")
	}

	var students []model.StudentModel
	if err := tx.
		Preload("Class").
		Order(buildStudentOrderClause(c.Query("sort_by"), c.Query("order"))).
		Limit(perPage).Offset(offset).
		Find(&students).Error; err != nil {
		log.Println("[ERROR] Failed to fetch students:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve students")
	}

	pagination := helper.BuildPaginationFromPage(page, perPage, total)
	return helper.JsonList(c, dto.ToStudentResponses(students), pagination)
}

// GET /api/u/students/:id
func (ctrl *StudentController) GetStudentByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	var student model.StudentModel
	if err := ctrl.DB.Preload("Class").First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve student")
	}

	return helper.JsonOK(c, "Student fetched successfully", dto.ToStudentResponse(&student))
}

// PUT /api/a/students/:id
func (ctrl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.GuardianPhone != nil && !helper.IsValidNigerianPhone(strings.TrimSpace(*req.GuardianPhone)) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Guardian phone must be a valid Nigerian phone number")
	}

	var student model.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve student")
	}

	if req.ClassID != nil {
		classID, err := uuid.Parse(*req.ClassID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID")
		}
		ok, err := ctrl.classExists(classID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify class")
		}
		if !ok {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
	}

	if err := req.ApplyToModel(&student); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format")
	}

	if err := ctrl.DB.Save(&student).Error; err != nil {
		log.Println("[ERROR] Failed to update student:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update student")
	}

	return helper.JsonUpdated(c, "Student updated successfully", dto.ToStudentResponse(&student))
}

// DELETE /api/a/students/:id
func (ctrl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	var student model.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve student")
	}

	if err := ctrl.DB.Delete(&student).Error; err != nil {
		log.Println("[ERROR] Failed to delete student:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete student")
	}

	return helper.JsonDeleted(c, "Student deleted successfully", fiber.Map{"student_id": id})
}
