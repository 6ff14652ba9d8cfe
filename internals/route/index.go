package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bursary_backend/internals/constants"
	authMiddleware "bursary_backend/internals/middlewares/auth"
	routeDetails "bursary_backend/internals/route/details"
	"bursary_backend/internals/services/mailer"
	"bursary_backend/internals/services/storage"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, store *storage.Store, mail mailer.Mailer) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== GROUPS =====================

	// READ → every authenticated role (admin, bursar, auditor)
	log.Println("[INFO] Setting up READ group...")
	user := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db),
	)

	// WRITE → admins and bursars only
	log.Println("[INFO] Setting up WRITE group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			constants.RoleErrorFinance("write operations"),
			constants.FinanceWriteRoles...,
		),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Academic routes...")
	routeDetails.AcademicUserRoutes(user, db)
	routeDetails.AcademicAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Finance routes...")
	routeDetails.FinanceUserRoutes(user, db, store, mail)
	routeDetails.FinanceAdminRoutes(admin, db, store, mail)

	log.Println("[INFO] Mounting HR routes...")
	routeDetails.HRUserRoutes(user, db)
	routeDetails.HRAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Asset routes...")
	routeDetails.AssetsUserRoutes(user, db)
	routeDetails.AssetsAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Banking routes...")
	routeDetails.BankUserRoutes(user, db)
	routeDetails.BankAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Report routes...")
	routeDetails.ReportRoutes(user, db)

	// user management carries its own admin-only gate inside the group
	log.Println("[INFO] Mounting User management routes...")
	routeDetails.UserRoutes(admin, db)
}
