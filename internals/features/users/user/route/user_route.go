package route

import (
	"bursary_backend/internals/constants"
	userController "bursary_backend/internals/features/users/user/controller"
	authMiddleware "bursary_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserAdminRoutes exposes user management. Bursars can write finance
// records but accounts stay with admins, so the group carries its own gate.
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := r.Group("/users",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("User Management"), constants.AdminOnly...),
	)
	users.Post("/", ctrl.CreateUser)
	users.Get("/", ctrl.GetUsers)
	users.Get("/:id", ctrl.GetUserByID)
	users.Put("/:id", ctrl.UpdateUser)
	users.Patch("/:id/reset-password", ctrl.ResetPassword)
	users.Delete("/:id", ctrl.DeleteUser)
}
