// file: internals/features/operations/import_logs/model/import_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =======================================================
   ImportLogModel — map a tabla import_logs
   Auditoría: una fila por llamada al endpoint masivo.
   ======================================================= */

type ImportLogModel struct {
	// PK
	ImportLogID uuid.UUID `json:"import_log_id" gorm:"type:uuid;primaryKey;column:import_log_id;default:gen_random_uuid()"`

	// Payload crudo recibido y reporte emitido
	ImportLogRequest datatypes.JSON `json:"import_log_request" gorm:"type:jsonb;not null;column:import_log_request"`
	ImportLogReport  datatypes.JSON `json:"import_log_report" gorm:"type:jsonb;not null;column:import_log_report"`

	// Contadores desnormalizados para listar sin abrir el JSON
	ImportLogTotal     int `json:"import_log_total" gorm:"type:int;not null;column:import_log_total"`
	ImportLogSuccesses int `json:"import_log_successes" gorm:"type:int;not null;column:import_log_successes"`
	ImportLogErrors    int `json:"import_log_errors" gorm:"type:int;not null;column:import_log_errors"`

	ImportLogCreatedAt time.Time `json:"import_log_created_at" gorm:"column:import_log_created_at;not null;autoCreateTime"`
}

func (ImportLogModel) TableName() string {
	return "import_logs"
}
