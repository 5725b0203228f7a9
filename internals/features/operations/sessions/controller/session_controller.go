// file: internals/features/operations/sessions/controller/session_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "formaops_backend/internals/helpers"

	d "formaops_backend/internals/features/operations/sessions/dto"
	m "formaops_backend/internals/features/operations/sessions/model"
	svc "formaops_backend/internals/features/operations/sessions/service"
)

/* =========================
   Controller & Constructor
   ========================= */

type TrainingSessionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Alloc    *svc.Allocator
	Importer *svc.Importer
}

func NewTrainingSessionController(db *gorm.DB, v *validator.Validate, alloc *svc.Allocator, imp *svc.Importer) *TrainingSessionController {
	return &TrainingSessionController{DB: db, Validate: v, Alloc: alloc, Importer: imp}
}

/* =========================
   Helpers
   ========================= */

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

func parseDateParam(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	return time.Parse("2006-01-02", s)
}

// --- PG error mapping ---

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func mapPGError(err error) (int, string) {
	// 23P01 = exclusion_violation
	// 23503 = foreign_key_violation
	// 23505 = unique_violation
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23P01":
			return http.StatusConflict, "Conflicto de agenda: solape de rangos."
		case "23503":
			return http.StatusBadRequest, "Referencia no encontrada (FK violation)."
		case "23505":
			return http.StatusConflict, "Dato duplicado (unique violation)."
		}
	}
	return http.StatusInternalServerError, err.Error()
}

func writePGError(c *fiber.Ctx, err error) error {
	code, msg := mapPGError(err)
	return helper.Error(c, code, msg)
}

// writeServiceError traduce la taxonomía del motor a HTTP.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch svc.KindOf(err) {
	case svc.KindValidation:
		return helper.Error(c, http.StatusBadRequest, err.Error())
	case svc.KindNotFound:
		return helper.Error(c, http.StatusNotFound, err.Error())
	case svc.KindResourceUnavailable:
		return helper.Error(c, http.StatusConflict, err.Error())
	default:
		return writePGError(c, err)
	}
}

/* =========================
   Query: List
   ========================= */

type listQuerySessions struct {
	DealID    string `query:"deal_id"`
	ProductID string `query:"product_id"`
	State     string `query:"state"`
	From      string `query:"from"` // YYYY-MM-DD sobre start_at
	To        string `query:"to"`
	Order     string `query:"order"` // asc|desc (default: asc)
}

func (ctl *TrainingSessionController) List(c *fiber.Ctx) error {
	var q listQuerySessions
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	db := ctl.DB.Model(&m.TrainingSessionModel{})

	if q.DealID != "" {
		if _, err := uuid.Parse(q.DealID); err != nil {
			return helper.Error(c, http.StatusBadRequest, "deal_id invalid")
		}
		db = db.Where("training_session_deal_id = ?", q.DealID)
	}
	if q.ProductID != "" {
		if _, err := uuid.Parse(q.ProductID); err != nil {
			return helper.Error(c, http.StatusBadRequest, "product_id invalid")
		}
		db = db.Where("training_session_deal_product_id = ?", q.ProductID)
	}
	if q.State != "" {
		st := m.SessionState(strings.ToLower(strings.TrimSpace(q.State)))
		if !st.Valid() {
			return helper.Error(c, http.StatusBadRequest, "state invalid")
		}
		db = db.Where("training_session_state = ?", st)
	}
	if strings.TrimSpace(q.From) != "" {
		dt, err := parseDateParam(q.From)
		if err != nil {
			return helper.Error(c, http.StatusBadRequest, "from invalid (YYYY-MM-DD)")
		}
		db = db.Where("training_session_start_at >= ?", dt)
	}
	if strings.TrimSpace(q.To) != "" {
		dt, err := parseDateParam(q.To)
		if err != nil {
			return helper.Error(c, http.StatusBadRequest, "to invalid (YYYY-MM-DD)")
		}
		db = db.Where("training_session_start_at <= ?", dt.Add(24*time.Hour))
	}

	order := "ASC"
	if strings.EqualFold(q.Order, "desc") {
		order = "DESC"
	}

	paging := helper.ResolvePaging(c, 50, 200)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}

	var rows []m.TrainingSessionModel
	if err := db.
		Order("training_session_created_at " + order).
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	out := make([]d.TrainingSessionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewTrainingSessionResponse(&rows[i]))
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"data":       out,
		"pagination": helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit, len(out)),
	})
}

/* =========================
   GetByID
   ========================= */

func (ctl *TrainingSessionController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	var row m.TrainingSessionModel
	if err := ctl.DB.
		Where("training_session_id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "training session not found")
		}
		return writePGError(c, err)
	}

	return c.Status(http.StatusOK).JSON(d.NewTrainingSessionResponse(&row))
}

/* =========================
   Create (allocate)
   ========================= */

func (ctl *TrainingSessionController) Create(c *fiber.Ctx) error {
	var req d.CreateTrainingSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	in, err := req.ToAllocateInput()
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	sess, err := ctl.Alloc.Allocate(c.UserContext(), in)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.SuccessWithCode(c, http.StatusCreated, "Sesión creada", d.NewTrainingSessionResponse(sess))
}

/* =========================
   Patch (Partial)
   ========================= */

func (ctl *TrainingSessionController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	var req d.PatchTrainingSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	trainerIDs, err := req.TrainerIDs()
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	unitIDs, err := req.MobileUnitIDs()
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	sess, err := ctl.Alloc.Reschedule(c.UserContext(), id, req.ApplyPatch, trainerIDs, unitIDs, req.ForcedState())
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.Success(c, "Sesión actualizada", d.NewTrainingSessionResponse(sess))
}
