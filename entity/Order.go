package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const DefaultPaymentMethod = "TARJETA"

type Order struct {
	gorm.Model
	NumeroPedido     string          `gorm:"uniqueIndex;not null" json:"numeroPedido"`
	FechaPedido      time.Time       `gorm:"index;not null" json:"fechaPedido"`
	Estado           OrderStatus     `gorm:"type:varchar(20);not null;default:PENDIENTE" json:"estado"`
	Total            decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	DireccionEntrega string          `json:"direccionEntrega"`
	TelefonoContacto string          `json:"telefonoContacto"`
	MetodoPago       string          `json:"metodoPago"`

	UserID uint `gorm:"index;not null" json:"usuarioId"`
	User   User `json:"-"` // buyer

	Lines []OrderLine `json:"-"`
}
