package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bursary_backend/internals/constants"
	"bursary_backend/internals/features/users/auth/service"
	"bursary_backend/internals/features/users/user/dto"
	"bursary_backend/internals/features/users/user/model"
	helper "bursary_backend/internals/helpers"
)

type UserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validator: helper.Validate()}
}

var userSortColumns = map[string]string{
	"full_name":  "full_name",
	"email":      "email",
	"role":       "role",
	"created_at": "created_at",
}

func buildUserOrderClause(sortBy, order string) string {
	col, ok := userSortColumns[sortBy]
	if !ok {
		col = "created_at"
	}
	if strings.EqualFold(order, "asc") {
		return col + " ASC"
	}
	return col + " DESC"
}

// POST /api/a/users
func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := uc.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hashed, err := service.HashPassword(req.Password)
	if err != nil {
		log.Println("[ERROR] Failed to hash password:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to process password")
	}

	user := req.ToModel()
	user.Password = hashed

	if err := uc.DB.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email is already registered")
		}
		log.Println("[ERROR] Failed to create user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "User created successfully", dto.ToUserResponse(user))
}

// GET /api/a/users
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	page, perPage, offset := helper.ResolvePaging(c, 20, 100)

	tx := uc.DB.Model(&model.UserModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		pattern := "%" + q + "%"
		tx = tx.Where("full_name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		if !constants.IsValidRole(role) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid role filter")
		}
		tx = tx.Where("role = ?", role)
	}
	if active := strings.TrimSpace(c.Query("is_active")); active != "" {
		tx = tx.Where("is_active = ?", active == "true")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Println("[ERROR] Failed to count users:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	var users []model.UserModel
	if err := tx.
		Order(buildUserOrderClause(c.Query("sort_by"), c.Query("order"))).
		Limit(perPage).Offset(offset).
		Find(&users).Error; err != nil {
		log.Println("[ERROR] Failed to fetch users:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	pagination := helper.BuildPaginationFromPage(page, perPage, total)
	return helper.JsonList(c, dto.ToUserResponses(users), pagination)
}

// GET /api/a/users/:id
func (uc *UserController) GetUserByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var user model.UserModel
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve user")
	}

	return helper.JsonOK(c, "User fetched successfully", dto.ToUserResponse(&user))
}

// PUT /api/a/users/:id
func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := uc.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user model.UserModel
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve user")
	}

	req.ApplyToModel(&user)
	if err := uc.DB.Save(&user).Error; err != nil {
		log.Println("[ERROR] Failed to update user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}

	return helper.JsonUpdated(c, "User updated successfully", dto.ToUserResponse(&user))
}

// PATCH /api/a/users/:id/reset-password
func (uc *UserController) ResetPassword(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := uc.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user model.UserModel
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve user")
	}

	hashed, err := service.HashPassword(req.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to process password")
	}
	if err := uc.DB.Model(&user).Update("password", hashed).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reset password")
	}

	return helper.JsonUpdated(c, "Password reset successfully", nil)
}

// DELETE /api/a/users/:id (soft delete; deactivates the account)
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	actorID, err := helper.GetUserIDFromToken(c)
	if err == nil && actorID == id {
		return helper.JsonError(c, fiber.StatusBadRequest, "You cannot delete your own account")
	}

	var user model.UserModel
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve user")
	}

	if err := uc.DB.Model(&user).Update("is_active", false).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to deactivate user")
	}
	if err := uc.DB.Delete(&user).Error; err != nil {
		log.Println("[ERROR] Failed to delete user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}

	return helper.JsonDeleted(c, "User deleted successfully", fiber.Map{"id": id})
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") || strings.Contains(low, "unique constraint")
}
