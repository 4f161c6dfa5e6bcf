package configs

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/entity"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const demoProviderEmail = "proveedor@demo.local"

// SeedAdmin creates the first admin from ADMIN_EMAIL/ADMIN_PASSWORD.
func SeedAdmin(db *gorm.DB, cfg *Config, log zerolog.Logger) error {
	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	if email == "" || cfg.AdminPassword == "" {
		log.Warn().Msg("skip seeding admin: ADMIN_EMAIL/ADMIN_PASSWORD not set")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info().Str("email", email).Msg("admin already exists")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Nombre:   "Admin",
		Apellido: "Seed",
		Rol:      entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// SeedDemo inserts a provider with one product, a buyer and one past order.
// It does nothing when the demo provider already exists.
func SeedDemo(db *gorm.DB, log zerolog.Logger) error {
	var existing entity.User
	err := db.Where("email = ?", demoProviderEmail).First(&existing).Error
	if err == nil {
		log.Info().Msg("demo data already present")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		seller := entity.User{Email: demoProviderEmail, Password: string(hash), Nombre: "Demo", Apellido: "Store", Rol: entity.RoleProvider}
		if err := tx.Create(&seller).Error; err != nil {
			return err
		}
		provider := entity.Provider{UserID: seller.ID, NombreComercial: "Demo Store"}
		if err := tx.Create(&provider).Error; err != nil {
			return err
		}

		price := decimal.RequireFromString("9.99")
		widget := entity.Product{Nombre: "Widget", Descripcion: "A very useful widget", Precio: price, Stock: 100, ProviderID: provider.ID}
		if err := tx.Create(&widget).Error; err != nil {
			return err
		}
		img := entity.ProductImage{ProductID: widget.ID, URLImagen: "https://picsum.photos/seed/widget/400", Orden: 0}
		if err := tx.Create(&img).Error; err != nil {
			return err
		}

		buyer := entity.User{Email: "ana@demo.local", Password: string(hash), Nombre: "Ana", Apellido: "Gómez", Rol: entity.RoleCustomer}
		if err := tx.Create(&buyer).Error; err != nil {
			return err
		}

		subtotal := entity.LineSubtotal(2, price)
		order := entity.Order{
			NumeroPedido:     "ORD-1001",
			FechaPedido:      time.Now().UTC(),
			Estado:           entity.OrderPending,
			Total:            subtotal,
			DireccionEntrega: "Calle Falsa 123",
			TelefonoContacto: "600000000",
			MetodoPago:       entity.DefaultPaymentMethod,
			UserID:           buyer.ID,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		line := entity.OrderLine{
			OrderID:        order.ID,
			ProductID:      widget.ID,
			ProviderID:     provider.ID,
			Cantidad:       2,
			PrecioUnitario: price,
			Subtotal:       subtotal,
		}
		if err := tx.Create(&line).Error; err != nil {
			return err
		}
		log.Info().Str("provider", demoProviderEmail).Msg("seeded demo data")
		return nil
	})
}
