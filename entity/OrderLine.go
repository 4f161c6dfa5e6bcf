package entity

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrSubtotalMismatch = errors.New("order line subtotal does not match quantity * unit price")
	ErrLineWithoutOwner = errors.New("order line has no provider")
)

type OrderLine struct {
	gorm.Model
	Cantidad       int             `gorm:"not null" json:"cantidad"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"precioUnitario"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`

	OrderID uint  `gorm:"index;not null" json:"pedidoId"`
	Order   Order `json:"-"`

	ProductID uint    `gorm:"index;not null" json:"productoId"`
	Product   Product `json:"-"`

	// denormalized from Product.ProviderID for per-provider lookups
	ProviderID uint     `gorm:"index;not null" json:"proveedorId"`
	Provider   Provider `json:"-"`
}

// LineSubtotal is quantity * unit price.
func LineSubtotal(qty int, unit decimal.Decimal) decimal.Decimal {
	return unit.Mul(decimal.NewFromInt(int64(qty)))
}

// BeforeCreate rejects lines whose stored subtotal disagrees with their
// quantity and unit price. Storage is authoritative after this point.
func (l *OrderLine) BeforeCreate(tx *gorm.DB) error {
	if l.ProviderID == 0 {
		return ErrLineWithoutOwner
	}
	if !l.Subtotal.Equal(LineSubtotal(l.Cantidad, l.PrecioUnitario)) {
		return ErrSubtotalMismatch
	}
	return nil
}
