// file: internals/features/operations/resources/controller/resource_controller.go
package controller

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "formaops_backend/internals/helpers"

	m "formaops_backend/internals/features/operations/resources/model"
)

/* =========================
   Controller & Constructor
   =========================
   Registro de pools de recursos: catálogo read-only que consulta el
   allocator; sin lógica de conflictos aquí. */

type ResourceController struct {
	DB *gorm.DB
}

func NewResourceController(db *gorm.DB) *ResourceController {
	return &ResourceController{DB: db}
}

type listQueryResources struct {
	Active *bool  `query:"active"`
	Search string `query:"q"`
}

/* =========================
   Trainers
   ========================= */

func (ctl *ResourceController) ListTrainers(c *fiber.Ctx) error {
	var q listQueryResources
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	db := ctl.DB.Model(&m.TrainerModel{})
	if q.Active != nil {
		db = db.Where("trainer_is_active = ?", *q.Active)
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		db = db.Where("trainer_name ILIKE ?", "%"+s+"%")
	}

	paging := helper.ResolvePaging(c, 50, 200)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var rows []m.TrainerModel
	if err := db.Order("trainer_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"data":       rows,
		"pagination": helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit, len(rows)),
	})
}

/* =========================
   Rooms
   ========================= */

func (ctl *ResourceController) ListRooms(c *fiber.Ctx) error {
	var q listQueryResources
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	db := ctl.DB.Model(&m.RoomModel{})
	if q.Active != nil {
		db = db.Where("room_is_active = ?", *q.Active)
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		db = db.Where("room_name ILIKE ?", "%"+s+"%")
	}

	paging := helper.ResolvePaging(c, 50, 200)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var rows []m.RoomModel
	if err := db.Order("room_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"data":       rows,
		"pagination": helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit, len(rows)),
	})
}

/* =========================
   Mobile units
   ========================= */

func (ctl *ResourceController) ListMobileUnits(c *fiber.Ctx) error {
	var q listQueryResources
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	db := ctl.DB.Model(&m.MobileUnitModel{})
	if q.Active != nil {
		db = db.Where("mobile_unit_is_active = ?", *q.Active)
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		db = db.Where("mobile_unit_code ILIKE ?", "%"+s+"%")
	}

	paging := helper.ResolvePaging(c, 50, 200)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var rows []m.MobileUnitModel
	if err := db.Order("mobile_unit_code ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"data":       rows,
		"pagination": helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit, len(rows)),
	})
}
