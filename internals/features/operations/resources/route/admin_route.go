// file: internals/features/operations/resources/route/admin_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resctl "formaops_backend/internals/features/operations/resources/controller"
)

// ResourceAdminRoutes registra los catálogos read-only de recursos.
func ResourceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := resctl.NewResourceController(db)

	admin.Get("/trainers", ctl.ListTrainers)
	admin.Get("/rooms", ctl.ListRooms)
	admin.Get("/mobile-units", ctl.ListMobileUnits)
}
