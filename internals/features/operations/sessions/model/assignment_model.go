// file: internals/features/operations/sessions/model/assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   Filas de asignación — viven y mueren con la transacción
   de escritura de la sesión, sin ciclo de vida propio.
   ======================================================= */

// TrainerAssignmentModel — map a tabla training_session_trainers
type TrainerAssignmentModel struct {
	TrainerAssignmentID uuid.UUID `json:"trainer_assignment_id" gorm:"type:uuid;primaryKey;column:trainer_assignment_id;default:gen_random_uuid()"`

	TrainerAssignmentSessionID uuid.UUID `json:"trainer_assignment_session_id" gorm:"type:uuid;not null;index;column:trainer_assignment_session_id"`
	TrainerAssignmentTrainerID uuid.UUID `json:"trainer_assignment_trainer_id" gorm:"type:uuid;not null;index;column:trainer_assignment_trainer_id"`

	TrainerAssignmentCreatedAt time.Time `json:"trainer_assignment_created_at" gorm:"column:trainer_assignment_created_at;not null;autoCreateTime"`
}

func (TrainerAssignmentModel) TableName() string {
	return "training_session_trainers"
}

// MobileUnitAssignmentModel — map a tabla training_session_mobile_units
type MobileUnitAssignmentModel struct {
	MobileUnitAssignmentID uuid.UUID `json:"mobile_unit_assignment_id" gorm:"type:uuid;primaryKey;column:mobile_unit_assignment_id;default:gen_random_uuid()"`

	MobileUnitAssignmentSessionID uuid.UUID `json:"mobile_unit_assignment_session_id" gorm:"type:uuid;not null;index;column:mobile_unit_assignment_session_id"`
	MobileUnitAssignmentUnitID    uuid.UUID `json:"mobile_unit_assignment_unit_id" gorm:"type:uuid;not null;index;column:mobile_unit_assignment_unit_id"`

	MobileUnitAssignmentCreatedAt time.Time `json:"mobile_unit_assignment_created_at" gorm:"column:mobile_unit_assignment_created_at;not null;autoCreateTime"`
}

func (MobileUnitAssignmentModel) TableName() string {
	return "training_session_mobile_units"
}
