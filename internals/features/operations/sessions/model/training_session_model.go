// file: internals/features/operations/sessions/model/training_session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   Enum estado (training_session_state_enum)
   ======================================================= */

type SessionState string

const (
	SessionDraft     SessionState = "draft"
	SessionPlanned   SessionState = "planned"
	SessionSuspended SessionState = "suspended"
	SessionCancelled SessionState = "cancelled"
	SessionFinished  SessionState = "finished"
)

// IsHeld: estados terminales o retenidos que solo se alcanzan por
// transición explícita externa y que nunca debe pisar la derivación.
func (s SessionState) IsHeld() bool {
	switch s {
	case SessionSuspended, SessionCancelled, SessionFinished:
		return true
	}
	return false
}

func (s SessionState) Valid() bool {
	switch s {
	case SessionDraft, SessionPlanned, SessionSuspended, SessionCancelled, SessionFinished:
		return true
	}
	return false
}

/* =======================================================
   TrainingSessionModel — map a tabla training_sessions
   ======================================================= */

type TrainingSessionModel struct {
	// PK
	TrainingSessionID uuid.UUID `json:"training_session_id" gorm:"type:uuid;primaryKey;column:training_session_id;default:gen_random_uuid()"`

	// Contexto comercial
	TrainingSessionDealID        uuid.UUID `json:"training_session_deal_id" gorm:"type:uuid;not null;column:training_session_deal_id"`
	TrainingSessionDealProductID uuid.UUID `json:"training_session_deal_product_id" gorm:"type:uuid;not null;column:training_session_deal_product_id"`

	// Display name (cache, lo mantiene el reindexador de hermanas)
	TrainingSessionName string `json:"training_session_name" gorm:"type:text;not null;default:'';column:training_session_name"`

	// Dirección física de impartición
	TrainingSessionAddress *string `json:"training_session_address,omitempty" gorm:"type:text;column:training_session_address"`

	// Estado
	TrainingSessionState SessionState `json:"training_session_state" gorm:"type:text;not null;default:'draft';column:training_session_state"`

	// Ventana temporal (UTC, opcional; sin ambos extremos = sin planificar)
	TrainingSessionStartAt *time.Time `json:"training_session_start_at,omitempty" gorm:"column:training_session_start_at"`
	TrainingSessionEndAt   *time.Time `json:"training_session_end_at,omitempty" gorm:"column:training_session_end_at"`

	// Sala (nullable)
	TrainingSessionRoomID *uuid.UUID `json:"training_session_room_id,omitempty" gorm:"type:uuid;column:training_session_room_id"`

	// Timestamps
	TrainingSessionCreatedAt time.Time      `json:"training_session_created_at" gorm:"column:training_session_created_at;not null;autoCreateTime"`
	TrainingSessionUpdatedAt time.Time      `json:"training_session_updated_at" gorm:"column:training_session_updated_at;not null;autoUpdateTime"`
	TrainingSessionDeletedAt gorm.DeletedAt `json:"training_session_deleted_at" gorm:"column:training_session_deleted_at;index"`
}

func (TrainingSessionModel) TableName() string {
	return "training_sessions"
}

// Scheduled: ambos extremos presentes.
func (m *TrainingSessionModel) Scheduled() bool {
	return m.TrainingSessionStartAt != nil && m.TrainingSessionEndAt != nil
}
