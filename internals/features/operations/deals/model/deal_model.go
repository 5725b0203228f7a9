// file: internals/features/operations/deals/model/deal_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   DealModel — map a tabla deals
   Contexto comercial externo: este core solo lo lee.
   ======================================================= */

type DealModel struct {
	// PK
	DealID uuid.UUID `json:"deal_id" gorm:"type:uuid;primaryKey;column:deal_id;default:gen_random_uuid()"`

	// Dirección por defecto de la formación
	DealTrainingAddress *string `json:"deal_training_address,omitempty" gorm:"type:text;column:deal_training_address"`

	// Sede ("in-company" exime sala física)
	DealSiteLabel string `json:"deal_site_label" gorm:"type:text;not null;default:'';column:deal_site_label"`

	DealCreatedAt time.Time      `json:"deal_created_at" gorm:"column:deal_created_at;not null;autoCreateTime"`
	DealUpdatedAt time.Time      `json:"deal_updated_at" gorm:"column:deal_updated_at;not null;autoUpdateTime"`
	DealDeletedAt gorm.DeletedAt `json:"deal_deleted_at" gorm:"column:deal_deleted_at;index"`
}

func (DealModel) TableName() string {
	return "deals"
}

/* =======================================================
   DealProductModel — map a tabla deal_products
   ======================================================= */

type DealProductModel struct {
	// PK
	DealProductID uuid.UUID `json:"deal_product_id" gorm:"type:uuid;primaryKey;column:deal_product_id;default:gen_random_uuid()"`

	// Deal propietario
	DealProductDealID uuid.UUID `json:"deal_product_deal_id" gorm:"type:uuid;not null;column:deal_product_deal_id"`

	// Nombre/código legible que siembra el display name de las sesiones
	DealProductName string `json:"deal_product_name" gorm:"type:text;not null;column:deal_product_name"`
	DealProductCode string `json:"deal_product_code" gorm:"type:text;not null;default:'';column:deal_product_code"`

	DealProductCreatedAt time.Time      `json:"deal_product_created_at" gorm:"column:deal_product_created_at;not null;autoCreateTime"`
	DealProductUpdatedAt time.Time      `json:"deal_product_updated_at" gorm:"column:deal_product_updated_at;not null;autoUpdateTime"`
	DealProductDeletedAt gorm.DeletedAt `json:"deal_product_deleted_at" gorm:"column:deal_product_deleted_at;index"`
}

func (DealProductModel) TableName() string {
	return "deal_products"
}

// BaseName resuelve la base del display name de sus sesiones:
// nombre del producto, con fallback al código.
func (p *DealProductModel) BaseName() string {
	if p.DealProductName != "" {
		return p.DealProductName
	}
	return p.DealProductCode
}
