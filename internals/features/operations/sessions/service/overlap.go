// file: internals/features/operations/sessions/service/overlap.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   Chequeo de solape de intervalos sobre los tres pools.
   ======================================================= */

// ResourceClaim: identificadores pedidos por pool. El chequeo los trata
// como ids opacos; basta que UN pool solape para señalar conflicto.
type ResourceClaim struct {
	TrainerIDs    []uuid.UUID
	RoomID        *uuid.UUID
	MobileUnitIDs []uuid.UUID
}

func (rc ResourceClaim) Empty() bool {
	return len(rc.TrainerIDs) == 0 && rc.RoomID == nil && len(rc.MobileUnitIDs) == 0
}

type OverlapQuery struct {
	StartAt time.Time
	EndAt   time.Time
	Claim   ResourceClaim
	// Semántica exclude-self en updates.
	ExcludeSessionID *uuid.UUID
}

// RangesOverlap: solape inclusivo, existing.start <= cand.end AND
// existing.end >= cand.start. Extremos que se tocan CUENTAN como
// solape: la sala necesita margen entre sesiones.
func RangesOverlap(existingStart, existingEnd, candStart, candEnd time.Time) bool {
	return !existingStart.After(candEnd) && !existingEnd.Before(candStart)
}

// HasConflict: precondición del allocator. Sin ambos extremos la sesión
// no es planificable en el tiempo y el chequeo es no-op. No distingue
// qué recurso concreto chocó: el caller expone una única señal
// "resource unavailable".
func HasConflict(ctx context.Context, s SessionStore, startAt, endAt *time.Time, claim ResourceClaim, excludeSessionID *uuid.UUID) (bool, error) {
	if startAt == nil || endAt == nil {
		return false, nil
	}
	if claim.Empty() {
		return false, nil
	}

	rows, err := s.FindOverlapping(ctx, OverlapQuery{
		StartAt:          *startAt,
		EndAt:            *endAt,
		Claim:            claim,
		ExcludeSessionID: excludeSessionID,
	})
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}
