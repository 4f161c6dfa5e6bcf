package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"marketplace/entity"
	"marketplace/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const orderNumberAttempts = 3

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	LineRepo    *repository.OrderLineRepository
	CartRepo    *repository.CartRepository
	ProductRepo *repository.ProductRepository

	// Now stamps new orders; tests pin it.
	Now func() time.Time
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	lineRepo *repository.OrderLineRepository,
	cartRepo *repository.CartRepository,
	productRepo *repository.ProductRepository,
) *OrderService {
	return &OrderService{
		DB:          db,
		Repo:        repo,
		LineRepo:    lineRepo,
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		Now:         time.Now,
	}
}

// ----- DTOs -----

type CheckoutInput struct {
	DireccionEntrega string
	TelefonoContacto string
	MetodoPago       string
}

type OrderLineResponse struct {
	ID             uint            `json:"id"`
	ProductoID     uint            `json:"productoId"`
	NombreProducto string          `json:"nombreProducto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type OrderResponse struct {
	ID               uint                `json:"id"`
	NumeroPedido     string              `json:"numeroPedido"`
	FechaPedido      time.Time           `json:"fechaPedido"`
	Estado           string              `json:"estado"`
	Total            decimal.Decimal     `json:"total"`
	DireccionEntrega string              `json:"direccionEntrega"`
	TelefonoContacto string              `json:"telefonoContacto"`
	MetodoPago       string              `json:"metodoPago"`
	Detalles         []OrderLineResponse `json:"detalles"`
}

func toOrderResponse(o *entity.Order, lines []entity.OrderLine) *OrderResponse {
	out := &OrderResponse{
		ID:               o.ID,
		NumeroPedido:     o.NumeroPedido,
		FechaPedido:      o.FechaPedido,
		Estado:           o.Estado.String(),
		Total:            o.Total,
		DireccionEntrega: o.DireccionEntrega,
		TelefonoContacto: o.TelefonoContacto,
		MetodoPago:       o.MetodoPago,
		Detalles:         make([]OrderLineResponse, 0, len(lines)),
	}
	for _, l := range lines {
		out.Detalles = append(out.Detalles, OrderLineResponse{
			ID:             l.ID,
			ProductoID:     l.ProductID,
			NombreProducto: l.Product.Nombre,
			Cantidad:       l.Cantidad,
			PrecioUnitario: l.PrecioUnitario,
			Subtotal:       l.Subtotal,
		})
	}
	return out
}

// ----- Checkout -----

// Checkout turns the user's cart into one order. Prices and the owning
// provider are copied from each product, stock is taken and the cart is
// emptied, all in one transaction.
func (s *OrderService) Checkout(ctx context.Context, userID uint, in CheckoutInput) (*OrderResponse, error) {
	cart, err := s.CartRepo.GetCartWithItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, &ValidationError{Msg: "cart is empty"}
	}

	numero, err := s.nextOrderNumber(ctx)
	if err != nil {
		return nil, err
	}
	metodo := strings.ToUpper(strings.TrimSpace(in.MetodoPago))
	if metodo == "" {
		metodo = entity.DefaultPaymentMethod
	}

	var order entity.Order
	var lines []entity.OrderLine
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lines = make([]entity.OrderLine, 0, len(cart.Items))
		total := decimal.Zero
		for _, it := range cart.Items {
			p := it.Product
			if p.ID == 0 {
				return NewValidationError("product %d is no longer available", it.ProductID)
			}
			if it.Cantidad <= 0 || it.Cantidad > p.Stock {
				return NewValidationError("not enough stock for %s", p.Nombre)
			}
			ok, err := s.ProductRepo.DecrementStock(tx, p.ID, it.Cantidad)
			if err != nil {
				return err
			}
			if !ok {
				return NewValidationError("not enough stock for %s", p.Nombre)
			}
			sub := entity.LineSubtotal(it.Cantidad, p.Precio)
			lines = append(lines, entity.OrderLine{
				Cantidad:       it.Cantidad,
				PrecioUnitario: p.Precio,
				Subtotal:       sub,
				ProductID:      p.ID,
				Product:        p,
				ProviderID:     p.ProviderID,
			})
			total = total.Add(sub)
		}

		order = entity.Order{
			NumeroPedido:     numero,
			FechaPedido:      s.Now().UTC(),
			Estado:           entity.OrderPending,
			Total:            total,
			DireccionEntrega: strings.TrimSpace(in.DireccionEntrega),
			TelefonoContacto: strings.TrimSpace(in.TelefonoContacto),
			MetodoPago:       metodo,
			UserID:           userID,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for i := range lines {
			lines[i].OrderID = order.ID
			if err := s.LineRepo.Create(tx, &lines[i]); err != nil {
				return fmt.Errorf("create order line: %w", err)
			}
		}
		return s.CartRepo.ClearCart(tx, userID)
	})
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Str("numero_pedido", order.NumeroPedido).
		Uint("user_id", userID).
		Int("lines", len(lines)).
		Msg("order placed")
	return toOrderResponse(&order, lines), nil
}

func newOrderNumber() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "PED-" + strings.ToUpper(raw[:8])
}

func (s *OrderService) nextOrderNumber(ctx context.Context) (string, error) {
	for i := 0; i < orderNumberAttempts; i++ {
		n := newOrderNumber()
		taken, err := s.Repo.ExistsByNumber(ctx, n)
		if err != nil {
			return "", err
		}
		if !taken {
			return n, nil
		}
	}
	return "", fmt.Errorf("could not allocate a unique order number after %d attempts", orderNumberAttempts)
}

// NumberExists reports whether an order number is already taken.
func (s *OrderService) NumberExists(ctx context.Context, numero string) (bool, error) {
	return s.Repo.ExistsByNumber(ctx, numero)
}

// ----- History -----

// ListForBuyer returns the user's orders, newest first, with their lines.
func (s *OrderService) ListForBuyer(ctx context.Context, userID uint) ([]OrderResponse, error) {
	orders, err := s.Repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	lines, err := s.LineRepo.ListByOrders(ctx, ids)
	if err != nil {
		return nil, err
	}
	byOrder := make(map[uint][]entity.OrderLine, len(orders))
	for _, l := range lines {
		byOrder[l.OrderID] = append(byOrder[l.OrderID], l)
	}

	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, *toOrderResponse(&orders[i], byOrder[orders[i].ID]))
	}
	return out, nil
}
