package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bursary_backend/internals/features/hr/payroll/dto"
	"bursary_backend/internals/features/hr/payroll/model"
	staffModel "bursary_backend/internals/features/hr/staff/model"
	helper "bursary_backend/internals/helpers"
)

// AdjustmentController covers bonuses and penalties. Both share a lifecycle:
// pending until a payslip that claims them is marked paid, voidable before.
type AdjustmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAdjustmentController(db *gorm.DB) *AdjustmentController {
	return &AdjustmentController{DB: db, Validator: helper.Validate()}
}

func (ctl *AdjustmentController) checkStaffActive(id uuid.UUID) *fiber.Error {
	var staff staffModel.StaffMemberModel
	if err := ctl.DB.First(&staff, "staff_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Staff member not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to verify staff member")
	}
	if !staff.StaffIsActive {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Staff member is not active")
	}
	return nil
}

/* ===============================
   Bonuses
=================================*/

// POST /api/a/staff-bonuses
func (ctl *AdjustmentController) CreateBonus(c *fiber.Ctx) error {
	var req dto.CreateBonusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	staffID, _ := uuid.Parse(req.StaffID)
	awardedDate, err := helper.ParseDate(req.AwardedDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid awarded date")
	}
	if fe := ctl.checkStaffActive(staffID); fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	bonus := &model.StaffBonusModel{
		BonusStaffID:     staffID,
		BonusDescription: strings.TrimSpace(req.Description),
		BonusAmount:      helper.Round2(req.Amount),
		BonusAwardedDate: awardedDate,
		BonusStatus:      model.AdjustmentPending,
	}
	if err := ctl.DB.Create(bonus).Error; err != nil {
		log.Println("[ERROR] Failed to create staff bonus:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create staff bonus")
	}

	return helper.JsonCreated(c, "Staff bonus created successfully", dto.ToBonusResponse(bonus))
}

// GET /api/u/staff-bonuses
func (ctl *AdjustmentController) GetBonuses(c *fiber.Ctx) error {
	page, perPage, offset := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.Model(&model.StaffBonusModel{})
	if staffID := strings.TrimSpace(c.Query("staff_id")); staffID != "" {
		id, err := uuid.Parse(staffID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid staff_id filter")
		}
		tx = tx.Where("bonus_staff_id = ?", id)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !model.AdjustmentStatus(status).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid status filter")
		}
		tx = tx.Where("bonus_status = ?", status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve staff bonuses")
	}

	var bonuses []model.StaffBonusModel
	if err := tx.Order("bonus_awarded_date DESC").Limit(perPage).Offset(offset).Find(&bonuses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve staff bonuses")
	}

	pagination := helper.BuildPaginationFromPage(page, perPage, total)
	return helper.JsonList(c, dto.ToBonusResponses(bonuses), pagination)
}

// DELETE /api/a/staff-bonuses/:id
// Voiding is a soft delete, allowed only while the bonus is still pending.
func (ctl *AdjustmentController) VoidBonus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid bonus ID")
	}

	var bonus model.StaffBonusModel
	if err := ctl.DB.First(&bonus, "bonus_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Staff bonus not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve staff bonus")
	}
	if bonus.BonusStatus != model.AdjustmentPending {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Only pending bonuses can be voided")
	}

	if err := ctl.DB.Delete(&bonus).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to void staff bonus")
	}

	return helper.JsonDeleted(c, "Staff bonus voided successfully", fiber.Map{"bonus_id": bonus.BonusID})
}

/* ===============================
   Penalties
=================================*/

// POST /api/a/staff-penalties
func (ctl *AdjustmentController) CreatePenalty(c *fiber.Ctx) error {
	var req dto.CreatePenaltyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	staffID, _ := uuid.Parse(req.StaffID)
	issuedDate, err := helper.ParseDate(req.IssuedDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid issued date")
	}
	if fe := ctl.checkStaffActive(staffID); fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	penalty := &model.StaffPenaltyModel{
		PenaltyStaffID:     staffID,
		PenaltyDescription: strings.TrimSpace(req.Description),
		PenaltyAmount:      helper.Round2(req.Amount),
		PenaltyIssuedDate:  issuedDate,
		PenaltyStatus:      model.AdjustmentPending,
	}
	if err := ctl.DB.Create(penalty).Error; err != nil {
		log.Println("[ERROR] Failed to create staff penalty:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create staff penalty")
	}

	return helper.JsonCreated(c, "Staff penalty created successfully", dto.ToPenaltyResponse(penalty))
}

// GET /api/u/staff-penalties
func (ctl *AdjustmentController) GetPenalties(c *fiber.Ctx) error {
	page, perPage, offset := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.Model(&model.StaffPenaltyModel{})
	if staffID := strings.TrimSpace(c.Query("staff_id")); staffID != "" {
		id, err := uuid.Parse(staffID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid staff_id filter")
		}
		tx = tx.Where("penalty_staff_id = ?", id)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !model.AdjustmentStatus(status).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid status filter")
		}
		tx = tx.Where("penalty_status = ?", status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve staff penalties")
	}

	var penalties []model.StaffPenaltyModel
	if err := tx.Order("penalty_issued_date DESC").Limit(perPage).Offset(offset).Find(&penalties).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve staff penalties")
	}

	pagination := helper.BuildPaginationFromPage(page, perPage, total)
	return helper.JsonList(c, dto.ToPenaltyResponses(penalties), pagination)
}

// DELETE /api/a/staff-penalties/:id
func (ctl *AdjustmentController) VoidPenalty(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid penalty ID")
	}

	var penalty model.StaffPenaltyModel
	if err := ctl.DB.First(&penalty, "penalty_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Staff penalty not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve staff penalty")
	}
	if penalty.PenaltyStatus != model.AdjustmentPending {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Only pending penalties can be voided")
	}

	if err := ctl.DB.Delete(&penalty).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to void staff penalty")
	}

	return helper.JsonDeleted(c, "Staff penalty voided successfully", fiber.Map{"penalty_id": penalty.PenaltyID})
}
