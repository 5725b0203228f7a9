// file: internals/features/operations/import_logs/route/admin_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	logctl "formaops_backend/internals/features/operations/import_logs/controller"
)

// ImportLogAdminRoutes registra la auditoría de imports (solo lectura).
func ImportLogAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := logctl.NewImportLogController(db)

	grp := admin.Group("/import-logs")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
}
