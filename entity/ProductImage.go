package entity

import (
	"gorm.io/gorm"
)

// ProductImage rows are ordered by Orden; the first one is the display image.
type ProductImage struct {
	gorm.Model
	URLImagen string `gorm:"not null" json:"urlImagen"`
	Orden     int    `gorm:"not null;default:0" json:"orden"`

	ProductID uint    `gorm:"index;not null" json:"productoId"`
	Product   Product `json:"-"`
}
