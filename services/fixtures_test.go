package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"marketplace/configs"
	"marketplace/entity"
	"marketplace/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var ctx = context.Background()

// newTestDB opens a private in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, configs.SetupDatabase(db))
	return db
}

type repos struct {
	users     *repository.UserRepository
	providers *repository.ProviderRepository
	products  *repository.ProductRepository
	images    *repository.ProductImageRepository
	orders    *repository.OrderRepository
	lines     *repository.OrderLineRepository
	carts     *repository.CartRepository
}

func newRepos(db *gorm.DB) repos {
	return repos{
		users:     repository.NewUserRepository(db),
		providers: repository.NewProviderRepository(db),
		products:  repository.NewProductRepository(db),
		images:    repository.NewProductImageRepository(db),
		orders:    repository.NewOrderRepository(db),
		lines:     repository.NewOrderLineRepository(db),
		carts:     repository.NewCartRepository(db),
	}
}

func mkUser(t *testing.T, db *gorm.DB, email, nombre, apellido, rol string) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", Nombre: nombre, Apellido: apellido, Rol: rol}
	require.NoError(t, repository.NewUserRepository(db).Create(ctx, u))
	return u
}

func mkProvider(t *testing.T, db *gorm.DB, email, name string) (*entity.User, *entity.Provider) {
	t.Helper()
	u := mkUser(t, db, email, name, "Owner", entity.RoleProvider)
	p := &entity.Provider{UserID: u.ID, NombreComercial: name}
	require.NoError(t, repository.NewProviderRepository(db).Create(ctx, p))
	return u, p
}

func mkProduct(t *testing.T, db *gorm.DB, providerID uint, nombre, precio string, stock int) *entity.Product {
	t.Helper()
	p := &entity.Product{Nombre: nombre, Precio: decimal.RequireFromString(precio), Stock: stock, ProviderID: providerID}
	require.NoError(t, repository.NewProductRepository(db).Create(ctx, p))
	return p
}

func mkImage(t *testing.T, db *gorm.DB, productID uint, url string, orden int) {
	t.Helper()
	img := &entity.ProductImage{ProductID: productID, URLImagen: url, Orden: orden}
	require.NoError(t, repository.NewProductImageRepository(db).Create(ctx, img))
}

func mkOrder(t *testing.T, db *gorm.DB, buyerID uint, numero string, at time.Time) *entity.Order {
	t.Helper()
	o := &entity.Order{
		NumeroPedido: numero,
		FechaPedido:  at.UTC(),
		Estado:       entity.OrderPending,
		Total:        decimal.Zero,
		MetodoPago:   entity.DefaultPaymentMethod,
		UserID:       buyerID,
	}
	require.NoError(t, repository.NewOrderRepository(db).CreateOrder(db, o))
	return o
}

func mkLine(t *testing.T, db *gorm.DB, orderID uint, p *entity.Product, qty int) *entity.OrderLine {
	t.Helper()
	l := &entity.OrderLine{
		OrderID:        orderID,
		ProductID:      p.ID,
		ProviderID:     p.ProviderID,
		Cantidad:       qty,
		PrecioUnitario: p.Precio,
		Subtotal:       entity.LineSubtotal(qty, p.Precio),
	}
	require.NoError(t, repository.NewOrderLineRepository(db).Create(db, l))
	return l
}
