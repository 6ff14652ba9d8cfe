package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assetRoute "bursary_backend/internals/features/assets/route"
)

func AssetsUserRoutes(r fiber.Router, db *gorm.DB) {
	assetRoute.AssetUserRoutes(r, db)
}

func AssetsAdminRoutes(r fiber.Router, db *gorm.DB) {
	assetRoute.AssetAdminRoutes(r, db)
}
