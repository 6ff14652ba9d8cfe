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

	"bursary_backend/internals/features/finance/fees/dto"
	"bursary_backend/internals/features/finance/fees/model"
	"bursary_backend/internals/features/finance/fees/service"
	studentModel "bursary_backend/internals/features/students/model"
	helper "bursary_backend/internals/helpers"
)

type FeeAssignmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewFeeAssignmentController(db *gorm.DB) *FeeAssignmentController {
	return &FeeAssignmentController{DB: db, Validator: helper.Validate()}
}

// POST /api/a/fee-assignments
func (ctrl *FeeAssignmentController) AssignFees(c *fiber.Ctx) error {
	var req dto.AssignFeesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	studentID, _ := uuid.Parse(req.StudentID)
	structureID, _ := uuid.Parse(req.FeeStructureID)

	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify student")
	}

	var structure model.FeeStructureModel
	if err := ctrl.DB.First(&structure, "fee_structure_id = ?", structureID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee structure not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify fee structure")
	}
	if !structure.FeeStructureIsActive {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Fee structure is inactive")
	}

	var existing int64
	if err := ctrl.DB.Model(&model.FeeAssignmentModel{}).
		Where("fee_assignment_student_id = ? AND fee_assignment_fee_structure_id = ?", studentID, structureID).
		Count(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing assignments")
	}
	if existing > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Student already has an assignment for this fee structure")
	}

	items, original, err := service.BuildAssignmentItems(structure.FeeStructureItems, req.SelectedCategoryIDs)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	assignment := &model.FeeAssignmentModel{
		FeeAssignmentStudentID:      studentID,
		FeeAssignmentStudentName:    student.FullName(),
		FeeAssignmentClassID:        student.StudentClassID,
		FeeAssignmentFeeStructureID: structureID,
		FeeAssignmentAcademicYear:   structure.FeeStructureAcademicYear,
		FeeAssignmentTerm:           structure.FeeStructureTerm,
		FeeAssignmentItems:          datatypes.NewJSONSlice(items),
		FeeAssignmentOriginalAmount: original,
		FeeAssignmentTotalAmount:    original,
		FeeAssignmentBalance:        original,
		FeeAssignmentStatus:         model.AssignmentUnpaid,
	}
	if req.DueDate != nil {
		due, err := helper.ParseDate(*req.DueDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid due date")
		}
		assignment.FeeAssignmentDueDate = &due
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if req.ScholarshipID != nil {
			scholarshipID, err := uuid.Parse(*req.ScholarshipID)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid scholarship ID")
			}
			if err := ctrl.applyScholarshipTx(tx, assignment, scholarshipID); err != nil {
				return err
			}
		}
		return tx.Create(assignment).Error
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Println("[ERROR] Failed to create fee assignment:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create fee assignment")
	}

	return helper.JsonCreated(c, "Fees assigned successfully", dto.ToFeeAssignmentResponse(assignment))
}

// applyScholarshipTx validates scope, window, status and capacity, stamps the
// snapshot fields and takes one beneficiary slot.
func (ctrl *FeeAssignmentController) applyScholarshipTx(tx *gorm.DB, assignment *model.FeeAssignmentModel, scholarshipID uuid.UUID) error {
	var scholarship model.ScholarshipModel
	if err := tx.First(&scholarship, "scholarship_id = ?", scholarshipID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Scholarship not found")
		}
		return err
	}
	if scholarship.ScholarshipStatus != model.ScholarshipActive {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Scholarship is not active")
	}
	if !service.IsWithinWindow(&scholarship, timeNowUTC()) {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Scholarship is outside its validity window")
	}
	if !service.AppliesTo(&scholarship, assignment.FeeAssignmentStudentID, assignment.FeeAssignmentClassID) {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Scholarship does not apply to this student")
	}
	if !service.HasCapacity(&scholarship) {
		return fiber.NewError(fiber.StatusConflict, "Scholarship has reached its maximum beneficiaries")
	}

	service.ApplyScholarship(assignment, &scholarship)

	return tx.Model(&model.ScholarshipModel{}).
		Where("scholarship_id = ?", scholarship.ScholarshipID).
		Update("scholarship_current_beneficiaries", gorm.Expr("scholarship_current_beneficiaries + 1")).Error
}

// GET /api/u/fee-assignments
func (ctrl *FeeAssignmentController) GetAssignments(c *fiber.Ctx) error {
	page, perPage, offset := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&model.FeeAssignmentModel{})
	if studentID := strings.TrimSpace(c.Query("student_id")); studentID != "" {
		id, err := uuid.Parse(studentID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student_id filter")
		}
		tx = tx.Where("fee_assignment_student_id = ?", id)
	}
	if classID := strings.TrimSpace(c.Query("class_id")); classID != "" {
		id, err := uuid.Parse(classID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class_id filter")
		}
		tx = tx.Where("fee_assignment_class_id = ?", id)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !model.AssignmentStatus(status).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid status filter")
		}
		tx = tx.Where("fee_assignment_status = ?", status)
	}
	if year := strings.TrimSpace(c.Query("academic_year")); year != "" {
		tx = tx.Where("fee_assignment_academic_year = ?", year)
	}
	if term := strings.TrimSpace(c.Query("term")); term != "" {
		tx = tx.Where("fee_assignment_term = ?", term)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve fee assignments")
	}

	var assignments []model.FeeAssignmentModel
	if err := tx.Order("fee_assignment_created_at DESC").Limit(perPage).Offset(offset).Find(&assignments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve fee assignments")
	}

	pagination := helper.BuildPaginationFromPage(page, perPage, total)
	return helper.JsonList(c, dto.ToFeeAssignmentResponses(assignments), pagination)
}

// GET /api/u/fee-assignments/:id
func (ctrl *FeeAssignmentController) GetAssignmentByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid fee assignment ID")
	}

	var assignment model.FeeAssignmentModel
	if err := ctrl.DB.First(&assignment, "fee_assignment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve fee assignment")
	}

	return helper.JsonOK(c, "Fee assignment fetched successfully", dto.ToFeeAssignmentResponse(&assignment))
}

// GET /api/u/fee-assignments/student/:studentId
func (ctrl *FeeAssignmentController) GetAssignmentsByStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	var assignments []model.FeeAssignmentModel
	if err := ctrl.DB.
		Where("fee_assignment_student_id = ?", studentID).
		Order("fee_assignment_created_at DESC").
		Find(&assignments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve fee assignments")
	}

	return helper.JsonOK(c, "Fee assignments fetched successfully", dto.ToFeeAssignmentResponses(assignments))
}

// PATCH /api/a/fee-assignments/:id/scholarship
func (ctrl *FeeAssignmentController) ApplyScholarship(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid fee assignment ID")
	}

	var req dto.ApplyScholarshipRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	scholarshipID, _ := uuid.Parse(req.ScholarshipID)

	var assignment model.FeeAssignmentModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&assignment, "fee_assignment_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Fee assignment not found")
			}
			return err
		}
		if assignment.FeeAssignmentScholarshipID != nil {
			return fiber.NewError(fiber.StatusConflict, "Assignment already has a scholarship; remove it first")
		}
		if err := ctrl.applyScholarshipTx(tx, &assignment, scholarshipID); err != nil {
			return err
		}
		return tx.Save(&assignment).Error
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Println("[ERROR] Failed to apply scholarship:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to apply scholarship")
	}

	return helper.JsonUpdated(c, "Scholarship applied successfully", dto.ToFeeAssignmentResponse(&assignment))
}

// DELETE /api/a/fee-assignments/:id/scholarship
func (ctrl *FeeAssignmentController) RemoveScholarship(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid fee assignment ID")
	}

	var assignment model.FeeAssignmentModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&assignment, "fee_assignment_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Fee assignment not found")
			}
			return err
		}
		if assignment.FeeAssignmentScholarshipID == nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Assignment has no scholarship applied")
		}

		scholarshipID := *assignment.FeeAssignmentScholarshipID
		service.RemoveScholarship(&assignment)

		if err := tx.Model(&model.ScholarshipModel{}).
			Where("scholarship_id = ? AND scholarship_current_beneficiaries > 0", scholarshipID).
			Update("scholarship_current_beneficiaries", gorm.Expr("scholarship_current_beneficiaries - 1")).Error; err != nil {
			return err
		}
		return tx.Save(&assignment).Error
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Println("[ERROR] Failed to remove scholarship:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to remove scholarship")
	}

	return helper.JsonUpdated(c, "Scholarship removed successfully", dto.ToFeeAssignmentResponse(&assignment))
}

// GET /api/u/fee-assignments/:id/summary
func (ctrl *FeeAssignmentController) GetAssignmentSummary(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid fee assignment ID")
	}

	var assignment model.FeeAssignmentModel
	if err := ctrl.DB.First(&assignment, "fee_assignment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve fee assignment")
	}

	var mandatoryTotal, optionalTotal float64
	for _, item := range assignment.FeeAssignmentItems {
		if item.IsMandatory {
			mandatoryTotal += item.Amount
		} else {
			optionalTotal += item.Amount
		}
	}
	percentPaid := 0.0
	if assignment.FeeAssignmentTotalAmount > 0 {
		percentPaid = helper.Round2(assignment.FeeAssignmentAmountPaid / assignment.FeeAssignmentTotalAmount * 100)
	}

	return helper.JsonOK(c, "Fee assignment summary fetched successfully", fiber.Map{
		"fee_assignment_id": assignment.FeeAssignmentID,
		"student_name":      assignment.FeeAssignmentStudentName,
		"academic_year":     assignment.FeeAssignmentAcademicYear,
		"term":              assignment.FeeAssignmentTerm,
		"mandatory_total":   helper.Round2(mandatoryTotal),
		"optional_total":    helper.Round2(optionalTotal),
		"original_amount":   assignment.FeeAssignmentOriginalAmount,
		"discount_amount":   assignment.FeeAssignmentDiscountAmount,
		"total_amount":      assignment.FeeAssignmentTotalAmount,
		"amount_paid":       assignment.FeeAssignmentAmountPaid,
		"balance":           assignment.FeeAssignmentBalance,
		"percent_paid":      percentPaid,
		"status":            assignment.FeeAssignmentStatus,
	})
}
