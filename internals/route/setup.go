// file: internals/route/setup.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"formaops_backend/internals/configs"
	importLogRoutes "formaops_backend/internals/features/operations/import_logs/route"
	resourceRoutes "formaops_backend/internals/features/operations/resources/route"
	sessionRoutes "formaops_backend/internals/features/operations/sessions/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, importerCfg configs.ImporterConfig) {
	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a")

	log.Println("[INFO] Setting up TrainingSessionRoutes...")
	sessionRoutes.TrainingSessionAdminRoutes(admin, db, importerCfg)

	log.Println("[INFO] Setting up ResourceRoutes...")
	resourceRoutes.ResourceAdminRoutes(admin, db)

	log.Println("[INFO] Setting up ImportLogRoutes...")
	importLogRoutes.ImportLogAdminRoutes(admin, db)
}
