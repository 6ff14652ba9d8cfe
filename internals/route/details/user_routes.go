package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userRoute "bursary_backend/internals/features/users/user/route"
)

// UserRoutes mounts user management. The group carries its own admin-only
// gate, so bursars in the surrounding write group are still rejected.
func UserRoutes(r fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(r, db)
}
