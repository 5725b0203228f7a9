// file: internals/features/operations/sessions/controller/import_controller.go
package controller

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"

	helper "formaops_backend/internals/helpers"

	logModel "formaops_backend/internals/features/operations/import_logs/model"
	d "formaops_backend/internals/features/operations/sessions/dto"
	svc "formaops_backend/internals/features/operations/sessions/service"
)

/* =========================
   Import masivo
   ========================= */

// ImportSessions procesa el array ordenado de filas y SIEMPRE responde
// 200 con el reporte por fila: la ausencia de fallo duro a nivel batch
// es parte del contrato con el FE.
func (ctl *TrainingSessionController) ImportSessions(c *fiber.Ctx) error {
	var req d.ImportSessionsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if len(req.Rows) == 0 {
		return helper.Error(c, http.StatusBadRequest, "rows is required")
	}

	report := ctl.Importer.ImportRows(c.UserContext(), req.ToServiceRows())

	// Auditoría: una fila import_logs por batch. Si falla, se loguea y
	// el reporte se devuelve igualmente.
	if err := ctl.writeImportLog(c, &req, &report); err != nil {
		log.Printf("[IMPORT] audit log write failed: %v", err)
	}

	return c.Status(http.StatusOK).JSON(report)
}

func (ctl *TrainingSessionController) writeImportLog(c *fiber.Ctx, req *d.ImportSessionsRequest, report *svc.ImportReport) error {
	rawReq, err := json.Marshal(req)
	if err != nil {
		return err
	}
	rawRep, err := json.Marshal(report)
	if err != nil {
		return err
	}

	row := logModel.ImportLogModel{
		ImportLogRequest:   rawReq,
		ImportLogReport:    rawRep,
		ImportLogTotal:     report.Summary.Total,
		ImportLogSuccesses: report.Summary.Successes,
		ImportLogErrors:    report.Summary.Errors,
	}
	return ctl.DB.WithContext(c.UserContext()).Create(&row).Error
}
