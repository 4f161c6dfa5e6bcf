package services

import (
	"context"
	"time"

	"marketplace/entity"
	"marketplace/repository"

	"github.com/shopspring/decimal"
)

// SaleRecord is one order line as a provider sees it in the sales listing.
type SaleRecord struct {
	ID             uint            `json:"id"`
	NumeroPedido   string          `json:"numeroPedido"`
	FechaVenta     time.Time       `json:"fechaVenta"`
	EstadoPedido   string          `json:"estadoPedido"`
	NombreProducto string          `json:"nombreProducto"`
	ImagenURL      *string         `json:"imagenUrl"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	ClienteNombre  string          `json:"clienteNombre"`
}

type SaleService struct {
	providers *repository.ProviderRepository
	lines     *repository.OrderLineRepository
	orders    *repository.OrderRepository
	users     *repository.UserRepository
	products  *repository.ProductRepository
	images    *repository.ProductImageRepository
}

func NewSaleService(
	providers *repository.ProviderRepository,
	lines *repository.OrderLineRepository,
	orders *repository.OrderRepository,
	users *repository.UserRepository,
	products *repository.ProductRepository,
	images *repository.ProductImageRepository,
) *SaleService {
	return &SaleService{
		providers: providers,
		lines:     lines,
		orders:    orders,
		users:     users,
		products:  products,
		images:    images,
	}
}

// ListForProvider returns the sales of the provider owned by userID, most
// recent order first. It is read-only. Any lookup failure fails the whole
// listing.
func (s *SaleService) ListForProvider(ctx context.Context, userID uint) ([]SaleRecord, error) {
	provider, err := s.providers.FindByUserID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "no provider profile for user")
	}

	lines, err := s.lines.ListByProvider(ctx, provider.ID)
	if err != nil {
		return nil, err
	}

	lk := newSaleLookup(s)
	out := make([]SaleRecord, 0, len(lines))
	for i := range lines {
		rec, err := lk.record(ctx, &lines[i])
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// saleLookup memoizes keyed lookups for the duration of one listing, since
// many lines share an order, a buyer or a product.
type saleLookup struct {
	svc      *SaleService
	orders   map[uint]*entity.Order
	buyers   map[uint]*entity.User
	products map[uint]*entity.Product
	images   map[uint]*string
}

func newSaleLookup(s *SaleService) *saleLookup {
	return &saleLookup{
		svc:      s,
		orders:   map[uint]*entity.Order{},
		buyers:   map[uint]*entity.User{},
		products: map[uint]*entity.Product{},
		images:   map[uint]*string{},
	}
}

func (lk *saleLookup) record(ctx context.Context, line *entity.OrderLine) (SaleRecord, error) {
	order, err := lk.order(ctx, line)
	if err != nil {
		return SaleRecord{}, err
	}
	buyer, err := lk.buyer(ctx, line, order.UserID)
	if err != nil {
		return SaleRecord{}, err
	}
	product, err := lk.product(ctx, line)
	if err != nil {
		return SaleRecord{}, err
	}
	img, err := lk.primaryImage(ctx, product.ID)
	if err != nil {
		return SaleRecord{}, err
	}

	return SaleRecord{
		ID:             line.ID,
		NumeroPedido:   order.NumeroPedido,
		FechaVenta:     order.FechaPedido,
		EstadoPedido:   order.Estado.String(),
		NombreProducto: product.Nombre,
		ImagenURL:      img,
		Cantidad:       line.Cantidad,
		PrecioUnitario: line.PrecioUnitario,
		Subtotal:       line.Subtotal,
		ClienteNombre:  buyer.FullName(),
	}, nil
}

func (lk *saleLookup) order(ctx context.Context, line *entity.OrderLine) (*entity.Order, error) {
	if o, ok := lk.orders[line.OrderID]; ok {
		return o, nil
	}
	o, err := lk.svc.orders.FindByID(ctx, line.OrderID)
	if err != nil {
		return nil, danglingRef(err, "order", line.OrderID, line.ID)
	}
	lk.orders[line.OrderID] = o
	return o, nil
}

func (lk *saleLookup) buyer(ctx context.Context, line *entity.OrderLine, userID uint) (*entity.User, error) {
	if u, ok := lk.buyers[userID]; ok {
		return u, nil
	}
	u, err := lk.svc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, danglingRef(err, "buyer", userID, line.ID)
	}
	lk.buyers[userID] = u
	return u, nil
}

func (lk *saleLookup) product(ctx context.Context, line *entity.OrderLine) (*entity.Product, error) {
	if p, ok := lk.products[line.ProductID]; ok {
		return p, nil
	}
	p, err := lk.svc.products.FindByID(ctx, line.ProductID)
	if err != nil {
		return nil, danglingRef(err, "product", line.ProductID, line.ID)
	}
	lk.products[line.ProductID] = p
	return p, nil
}

// primaryImage is nil when the product has no images.
func (lk *saleLookup) primaryImage(ctx context.Context, productID uint) (*string, error) {
	if url, ok := lk.images[productID]; ok {
		return url, nil
	}
	imgs, err := lk.svc.images.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	var url *string
	if len(imgs) > 0 {
		u := imgs[0].URLImagen
		url = &u
	}
	lk.images[productID] = url
	return url, nil
}
