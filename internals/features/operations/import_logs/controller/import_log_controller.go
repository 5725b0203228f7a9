// file: internals/features/operations/import_logs/controller/import_log_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "formaops_backend/internals/helpers"

	m "formaops_backend/internals/features/operations/import_logs/model"
)

/* =========================
   Controller & Constructor
   ========================= */

type ImportLogController struct {
	DB *gorm.DB
}

func NewImportLogController(db *gorm.DB) *ImportLogController {
	return &ImportLogController{DB: db}
}

/* =========================
   Query: List (solo lectura)
   ========================= */

func (ctl *ImportLogController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.Model(&m.ImportLogModel{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var rows []m.ImportLogModel
	if err := db.
		Order("import_log_created_at DESC").
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
   GetByID
   ========================= */

func (ctl *ImportLogController) GetByID(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return helper.Error(c, http.StatusBadRequest, "id is required")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "id invalid")
	}

	var row m.ImportLogModel
	if err := ctl.DB.
		Where("import_log_id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "import log not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusOK).JSON(row)
}
