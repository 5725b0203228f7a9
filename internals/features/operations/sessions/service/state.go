// file: internals/features/operations/sessions/service/state.go
package service

import (
	"time"

	"github.com/google/uuid"

	m "formaops_backend/internals/features/operations/sessions/model"
)

/* =======================================================
   Derivación de estado — función pura, sin I/O.

   Una sesión solo es "planned" cuando toda clase de recurso
   necesaria para impartirla está ligada Y existe ventana
   temporal concreta; si falta cualquiera queda en "draft"
   para que el equipo vea que requiere atención.
   ======================================================= */

type StateInput struct {
	SiteRequiresRoom bool
	RoomID           *uuid.UUID
	TrainerIDs       []uuid.UUID
	MobileUnitIDs    []uuid.UUID
	StartAt          *time.Time
	EndAt            *time.Time
}

// DeriveState solo devuelve draft o planned. Los estados retenidos
// (suspended/cancelled/finished) se alcanzan únicamente por transición
// explícita externa y nunca salen de aquí.
func DeriveState(in StateInput) m.SessionState {
	if in.SiteRequiresRoom && in.RoomID == nil {
		return m.SessionDraft
	}
	if len(in.TrainerIDs) == 0 {
		return m.SessionDraft
	}
	if len(in.MobileUnitIDs) == 0 {
		return m.SessionDraft
	}
	if in.StartAt != nil && in.EndAt != nil {
		return m.SessionPlanned
	}
	return m.SessionDraft
}

/* =======================================================
   StateDirective — unión etiquetada Derived | Forced.

   Las filas de import masivo pueden traer un estado ya
   registrado aguas arriba; modelarlo como directive (y no
   como optional suelto) hace que la protección de estados
   retenidos la imponga el tipo, no la convención.
   ======================================================= */

type StateDirective struct {
	forced *m.SessionState
}

func Derived() StateDirective {
	return StateDirective{}
}

func Forced(s m.SessionState) StateDirective {
	return StateDirective{forced: &s}
}

func (d StateDirective) IsForced() (m.SessionState, bool) {
	if d.forced == nil {
		return "", false
	}
	return *d.forced, true
}

// Resolve aplica el estado forzado tal cual, o deriva.
func (d StateDirective) Resolve(in StateInput) m.SessionState {
	if d.forced != nil {
		return *d.forced
	}
	return DeriveState(in)
}
