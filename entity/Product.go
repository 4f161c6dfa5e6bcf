package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Nombre      string          `gorm:"not null" json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"precio"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`

	ProviderID uint     `gorm:"index;not null" json:"proveedorId"`
	Provider   Provider `json:"-"`

	Images []ProductImage `json:"-"`
}
