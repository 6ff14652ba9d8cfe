package route

import (
	assetController "bursary_backend/internals/features/assets/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AssetUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := assetController.NewAssetController(db)

	assets := r.Group("/assets")
	assets.Get("/", ctl.GetAssets)
	assets.Get("/:id", ctl.GetAssetByID)
	assets.Get("/:id/schedule", ctl.GetAssetSchedule)
}

func AssetAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := assetController.NewAssetController(db)

	assets := r.Group("/assets")
	assets.Post("/", ctl.CreateAsset)
	assets.Put("/:id", ctl.UpdateAsset)
	assets.Patch("/:id/dispose", ctl.DisposeAsset)
	assets.Delete("/:id", ctl.DeleteAsset)
}
