package entity

import (
	"gorm.io/gorm"
)

// CartItem holds no price; checkout snapshots the product price into the order line.
type CartItem struct {
	gorm.Model
	CartID uint `json:"carritoId" gorm:"index"`
	Cart   Cart `json:"-"`

	ProductID uint    `json:"productoId" gorm:"index"`
	Product   Product `json:"producto"`

	Cantidad int `json:"cantidad"`
}
