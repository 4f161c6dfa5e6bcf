package entity

import (
	"gorm.io/gorm"
)

// Provider is a seller account. Each provider belongs to exactly one user.
type Provider struct {
	gorm.Model
	NombreComercial string `json:"nombreComercial"`

	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `json:"-"`

	Products   []Product   `json:"-"`
	OrderLines []OrderLine `json:"-"`
}
