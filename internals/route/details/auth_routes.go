package details

import (
	authRoute "bursary_backend/internals/features/users/auth/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Auth mounts on the app itself since login and refresh carry their own
// rate limiters instead of the group middleware.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)
}
