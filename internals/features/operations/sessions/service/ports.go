// file: internals/features/operations/sessions/service/ports.go
package service

import (
	"context"

	"github.com/google/uuid"

	dm "formaops_backend/internals/features/operations/deals/model"
	m "formaops_backend/internals/features/operations/sessions/model"
)

/* =======================================================
   Puertos de persistencia del motor de asignación.
   Las implementaciones GORM viven en gorm_store.go; los
   tests inyectan fakes en memoria.
   ======================================================= */

// DealReader resuelve el contexto comercial externo (solo lectura).
type DealReader interface {
	// GetDeal devuelve nil (sin error) si el deal no existe.
	GetDeal(ctx context.Context, dealID uuid.UUID) (*dm.DealModel, error)
	// FindProduct acepta id o código; nil si no existe o no pertenece al deal.
	FindProduct(ctx context.Context, dealID uuid.UUID, productRef string) (*dm.DealProductModel, error)
}

// SessionStore persiste sesiones y sus filas de asignación.
type SessionStore interface {
	// FindOverlapping bloquea (FOR UPDATE) las sesiones que reservan
	// alguno de los recursos pedidos en rango solapado.
	FindOverlapping(ctx context.Context, q OverlapQuery) ([]m.TrainingSessionModel, error)

	GetSession(ctx context.Context, id uuid.UUID) (*m.TrainingSessionModel, error)
	CreateSession(ctx context.Context, row *m.TrainingSessionModel) error
	SaveSession(ctx context.Context, row *m.TrainingSessionModel) error

	CreateTrainerAssignments(ctx context.Context, sessionID uuid.UUID, trainerIDs []uuid.UUID) error
	CreateMobileUnitAssignments(ctx context.Context, sessionID uuid.UUID, unitIDs []uuid.UUID) error
	ReplaceTrainerAssignments(ctx context.Context, sessionID uuid.UUID, trainerIDs []uuid.UUID) error
	ReplaceMobileUnitAssignments(ctx context.Context, sessionID uuid.UUID, unitIDs []uuid.UUID) error
	ListTrainerIDs(ctx context.Context, sessionID uuid.UUID) ([]uuid.UUID, error)
	ListMobileUnitIDs(ctx context.Context, sessionID uuid.UUID) ([]uuid.UUID, error)

	// Orden estable (created_at, id) para el reindexado de hermanas.
	FindSessionsForProduct(ctx context.Context, productID uuid.UUID) ([]m.TrainingSessionModel, error)
	RenameSession(ctx context.Context, id uuid.UUID, name string) error
}

// Store agrupa los puertos que una transacción de asignación necesita.
type Store interface {
	DealReader
	SessionStore
}

// TxManager ejecuta fn dentro de una transacción; el Store que recibe
// fn está ligado a esa transacción (chequeo de solape y escritura
// comparten tx para cerrar la carrera entre asignaciones concurrentes).
type TxManager interface {
	InTx(ctx context.Context, fn func(s Store) error) error
}

// RoomCatalog lista el pool de salas reservables.
type RoomCatalog interface {
	ListRoomIDs(ctx context.Context) ([]uuid.UUID, error)
}

// RoomPicker elige una sala para pre-asignar a una fila de import.
// Puerto separado para que los tests inyecten una elección determinista.
type RoomPicker interface {
	PickRoom(ctx context.Context) (*uuid.UUID, error)
}
