// file: internals/features/operations/sessions/service/importer.go
package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"formaops_backend/internals/configs"
	m "formaops_backend/internals/features/operations/sessions/model"
)

/* =======================================================
   Orquestador de import masivo.

   Filas en orden estricto de entrada, cada una en SU propia
   transacción: el fallo de una no arrastra a las demás, y al
   procesarse secuencialmente el chequeo de solape de la fila
   N+1 ya ve lo que la fila N dejó commiteado.
   ======================================================= */

type Importer struct {
	Alloc *Allocator
	Rooms RoomPicker
	Cfg   configs.ImporterConfig
}

func NewImporter(alloc *Allocator, rooms RoomPicker, cfg configs.ImporterConfig) *Importer {
	return &Importer{Alloc: alloc, Rooms: rooms, Cfg: cfg}
}

/* =========================
   Fila cruda + normalización
   ========================= */

// ImportRow: fila tal como llega del endpoint masivo, todo string.
// La normalización completa ocurre aquí, fuera de toda transacción.
type ImportRow struct {
	DealID       string
	ProductRef   string
	StartAt      string
	EndAt        string
	TrainerID    string
	MobileUnitID string
	State        string
}

type normalizedRow struct {
	dealID     uuid.UUID
	productRef string
	startAt    *time.Time
	endAt      *time.Time
	trainerIDs []uuid.UUID
	unitIDs    []uuid.UUID
	state      StateDirective
}

var importTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseImportTime(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range importTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid timestamp %q", s)
}

func (r ImportRow) normalize(cfg configs.ImporterConfig) (*normalizedRow, error) {
	dealRaw := strings.TrimSpace(r.DealID)
	if dealRaw == "" {
		return nil, Validationf("deal_id is required")
	}
	dealID, err := uuid.Parse(dealRaw)
	if err != nil {
		return nil, Validationf("deal_id invalid: %v", err)
	}

	productRef := strings.TrimSpace(r.ProductRef)
	if productRef == "" {
		return nil, Validationf("deal_product_id is required")
	}

	startAt, err := parseImportTime(r.StartAt)
	if err != nil {
		return nil, Validationf("start: %v", err)
	}
	endAt, err := parseImportTime(r.EndAt)
	if err != nil {
		return nil, Validationf("end: %v", err)
	}
	if (startAt == nil) != (endAt == nil) {
		return nil, Validationf("start and end must be provided together")
	}
	if startAt != nil && endAt.Before(*startAt) {
		return nil, Validationf("end must be >= start")
	}

	var trainerIDs []uuid.UUID
	if raw := strings.TrimSpace(r.TrainerID); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, Validationf("trainer_id invalid: %v", err)
		}
		trainerIDs = []uuid.UUID{id}
	}

	var unitIDs []uuid.UUID
	if raw := strings.TrimSpace(r.MobileUnitID); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, Validationf("mobile_unit_id invalid: %v", err)
		}
		unitIDs = []uuid.UUID{id}
	} else if cfg.DefaultMobileUnitID != nil {
		unitIDs = []uuid.UUID{*cfg.DefaultMobileUnitID}
	}

	state := Derived()
	if raw := strings.TrimSpace(r.State); raw != "" {
		st := m.SessionState(strings.ToLower(raw))
		if !st.Valid() {
			return nil, Validationf("state invalid: %q", raw)
		}
		// Filas masivas pueden traer un estado ya registrado aguas arriba.
		state = Forced(st)
	}

	return &normalizedRow{
		dealID:     dealID,
		productRef: productRef,
		startAt:    startAt,
		endAt:      endAt,
		trainerIDs: trainerIDs,
		unitIDs:    unitIDs,
		state:      state,
	}, nil
}

/* =========================
   Resultados
   ========================= */

type RowResult struct {
	Index     int        `json:"index"`
	DealID    string     `json:"deal_id"`
	ProductID string     `json:"product_id"`
	SessionID *uuid.UUID `json:"session_id,omitempty"`
	Status    string     `json:"status"` // success | error
	Message   string     `json:"message"`
}

type ImportSummary struct {
	Total     int `json:"total"`
	Successes int `json:"successes"`
	Errors    int `json:"errors"`
}

type ImportReport struct {
	Results []RowResult   `json:"results"`
	Summary ImportSummary `json:"summary"`
}

/* =========================
   ImportRows
   ========================= */

// ImportRows nunca devuelve error: cada fila reporta su resultado con su
// índice original y el batch entero siempre responde. Sin reintentos.
func (imp *Importer) ImportRows(ctx context.Context, rows []ImportRow) ImportReport {
	results := make([]RowResult, 0, len(rows))
	summary := ImportSummary{Total: len(rows)}

	for i, row := range rows {
		res := imp.importOne(ctx, i, row)
		if res.Status == "success" {
			summary.Successes++
		} else {
			summary.Errors++
		}
		results = append(results, res)
	}

	log.Printf("[IMPORT] batch done total=%d ok=%d err=%d", summary.Total, summary.Successes, summary.Errors)
	return ImportReport{Results: results, Summary: summary}
}

func (imp *Importer) importOne(ctx context.Context, index int, row ImportRow) RowResult {
	res := RowResult{
		Index:     index,
		DealID:    strings.TrimSpace(row.DealID),
		ProductID: strings.TrimSpace(row.ProductRef),
		Status:    "error",
	}

	norm, err := row.normalize(imp.Cfg)
	if err != nil {
		// La fila nunca llega al allocator.
		res.Message = err.Error()
		return res
	}

	roomID, err := imp.Rooms.PickRoom(ctx)
	if err != nil {
		log.Printf("[IMPORT] row=%d deal=%s product=%s room pick failed: %v", index, res.DealID, res.ProductID, err)
		roomID = nil
	}

	sess, err := imp.Alloc.Allocate(ctx, AllocateInput{
		DealID:        norm.dealID,
		ProductRef:    norm.productRef,
		TrainerIDs:    norm.trainerIDs,
		MobileUnitIDs: norm.unitIDs,
		RoomID:        roomID,
		StartAt:       norm.startAt,
		EndAt:         norm.endAt,
		State:         norm.state,
	})
	if err != nil {
		if KindOf(err) == KindUnexpected {
			log.Printf("[IMPORT] row=%d deal=%s product=%s unexpected: %v", index, res.DealID, res.ProductID, err)
		}
		res.Message = err.Error()
		return res
	}

	res.Status = "success"
	res.SessionID = &sess.TrainingSessionID
	res.Message = sess.TrainingSessionName
	return res
}
