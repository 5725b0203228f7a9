// file: internals/features/operations/resources/model/mobile_unit_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   MobileUnitModel — map a tabla mobile_units
   ======================================================= */

type MobileUnitModel struct {
	// PK
	MobileUnitID uuid.UUID `json:"mobile_unit_id" gorm:"type:uuid;primaryKey;column:mobile_unit_id;default:gen_random_uuid()"`

	MobileUnitCode     string `json:"mobile_unit_code" gorm:"type:text;not null;column:mobile_unit_code"`
	MobileUnitPlate    *string `json:"mobile_unit_plate,omitempty" gorm:"type:text;column:mobile_unit_plate"`
	MobileUnitIsActive bool   `json:"mobile_unit_is_active" gorm:"type:boolean;not null;default:true;column:mobile_unit_is_active"`

	MobileUnitCreatedAt time.Time      `json:"mobile_unit_created_at" gorm:"column:mobile_unit_created_at;not null;autoCreateTime"`
	MobileUnitUpdatedAt time.Time      `json:"mobile_unit_updated_at" gorm:"column:mobile_unit_updated_at;not null;autoUpdateTime"`
	MobileUnitDeletedAt gorm.DeletedAt `json:"mobile_unit_deleted_at" gorm:"column:mobile_unit_deleted_at;index"`
}

func (MobileUnitModel) TableName() string {
	return "mobile_units"
}
