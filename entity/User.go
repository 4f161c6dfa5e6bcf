package entity

import (
	"gorm.io/gorm"
)

const (
	RoleCustomer = "CLIENTE"
	RoleProvider = "PROVEEDOR"
	RoleAdmin    = "ADMIN"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"` // bcrypt hash
	Nombre   string `gorm:"not null" json:"nombre"`
	Apellido string `gorm:"not null" json:"apellido"`
	Telefono string `gorm:"size:20" json:"telefono"`
	Rol      string `gorm:"not null;default:CLIENTE" json:"rol"`

	// preloaded only where needed
	Provider *Provider `gorm:"foreignKey:UserID" json:"-"`
	Orders   []Order   `json:"-"`
}

// FullName joins first and last name the way buyers are shown to providers.
func (u *User) FullName() string {
	return u.Nombre + " " + u.Apellido
}
