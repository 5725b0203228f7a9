// file: internals/features/operations/sessions/dto/import_dto.go
package dto

import (
	svc "formaops_backend/internals/features/operations/sessions/service"
)

/* =======================================================
   Import masivo — contrato con el FE
   ======================================================= */

// ImportSessionRow: fila del array ordenado del endpoint masivo.
// Sin tags validate: la normalización completa (y sus mensajes por
// fila) la hace el orquestador fuera de toda transacción.
type ImportSessionRow struct {
	DealID       string `json:"deal_id"`
	ProductRef   string `json:"deal_product_id"`
	StartAt      string `json:"start,omitempty"`
	EndAt        string `json:"end,omitempty"`
	TrainerID    string `json:"trainer_id,omitempty"`
	MobileUnitID string `json:"mobile_unit_id,omitempty"`
	State        string `json:"state,omitempty"`
}

type ImportSessionsRequest struct {
	Rows []ImportSessionRow `json:"rows"`
}

func (r *ImportSessionsRequest) ToServiceRows() []svc.ImportRow {
	rows := make([]svc.ImportRow, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, svc.ImportRow{
			DealID:       row.DealID,
			ProductRef:   row.ProductRef,
			StartAt:      row.StartAt,
			EndAt:        row.EndAt,
			TrainerID:    row.TrainerID,
			MobileUnitID: row.MobileUnitID,
			State:        row.State,
		})
	}
	return rows
}
