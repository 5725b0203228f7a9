// file: internals/features/operations/resources/model/trainer_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   TrainerModel — map a tabla trainers (catálogo read-only)
   ======================================================= */

type TrainerModel struct {
	// PK
	TrainerID uuid.UUID `json:"trainer_id" gorm:"type:uuid;primaryKey;column:trainer_id;default:gen_random_uuid()"`

	TrainerName     string `json:"trainer_name" gorm:"type:text;not null;column:trainer_name"`
	TrainerIsActive bool   `json:"trainer_is_active" gorm:"type:boolean;not null;default:true;column:trainer_is_active"`

	TrainerCreatedAt time.Time      `json:"trainer_created_at" gorm:"column:trainer_created_at;not null;autoCreateTime"`
	TrainerUpdatedAt time.Time      `json:"trainer_updated_at" gorm:"column:trainer_updated_at;not null;autoUpdateTime"`
	TrainerDeletedAt gorm.DeletedAt `json:"trainer_deleted_at" gorm:"column:trainer_deleted_at;index"`
}

func (TrainerModel) TableName() string {
	return "trainers"
}
