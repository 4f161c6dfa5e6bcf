package entity

import (
	"gorm.io/gorm"
)

type Cart struct {
	gorm.Model
	UserID uint `json:"usuarioId" gorm:"uniqueIndex"`
	User   User `json:"-"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
