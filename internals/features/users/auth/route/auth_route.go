package route

import (
	controller "bursary_backend/internals/features/users/auth/controller"
	"bursary_backend/internals/middlewares"
	authMiddleware "bursary_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthRoutes mounts both halves of the auth surface: the public login and
// refresh endpoints, and the session endpoints that need a valid token.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	base := app.Group("/api/auth")

	base.Post("/login", middlewares.LoginRateLimiter(), authController.Login)
	base.Post("/login-google", middlewares.LoginRateLimiter(), authController.LoginGoogle)
	base.Post("/refresh-token", middlewares.RefreshRateLimiter(), authController.RefreshToken)

	session := base.Group("/", authMiddleware.AuthMiddleware(db))
	session.Post("/logout", authController.Logout)
	session.Post("/change-password", authController.ChangePassword)
	session.Get("/me", authController.Me)
}
