// file: internals/features/operations/sessions/route/admin_route.go
package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"formaops_backend/internals/configs"
	sessctl "formaops_backend/internals/features/operations/sessions/controller"
	svc "formaops_backend/internals/features/operations/sessions/service"
)

// TrainingSessionAdminRoutes registra las rutas admin de sesiones
// (CRUD + import masivo).
func TrainingSessionAdminRoutes(admin fiber.Router, db *gorm.DB, cfg configs.ImporterConfig) {
	v := validator.New()

	tx := svc.NewGormTxManager(db)
	alloc := svc.NewAllocator(tx)
	picker := svc.NewRandomRoomPicker(svc.NewGormRoomCatalog(db))
	imp := svc.NewImporter(alloc, picker, cfg)

	ctl := sessctl.NewTrainingSessionController(db, v, alloc, imp)

	grp := admin.Group("/training-sessions")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Post("/import", ctl.ImportSessions)
	grp.Get("/:id", ctl.GetByID)
	grp.Patch("/:id", ctl.Patch)
}
