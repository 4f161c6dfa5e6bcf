package services

import (
	"context"

	"marketplace/entity"
	"marketplace/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartItemResponse struct {
	ID             uint            `json:"id"`
	ProductoID     uint            `json:"productoId"`
	NombreProducto string          `json:"nombreProducto"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Cantidad       int             `json:"cantidad"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	ProductRepo *repository.ProductRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, pr *repository.ProductRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, ProductRepo: pr}
}

// Get prices the cart with current product prices.
func (s *CartService) Get(ctx context.Context, userID uint) (*CartResponse, error) {
	c, err := s.CartRepo.GetCartWithItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := &CartResponse{Items: make([]CartItemResponse, 0, len(c.Items)), Total: decimal.Zero}
	for _, it := range c.Items {
		if it.Product.ID == 0 {
			// product was withdrawn after it was added; checkout will reject it
			continue
		}
		sub := entity.LineSubtotal(it.Cantidad, it.Product.Precio)
		out.Items = append(out.Items, CartItemResponse{
			ID:             it.ID,
			ProductoID:     it.ProductID,
			NombreProducto: it.Product.Nombre,
			PrecioUnitario: it.Product.Precio,
			Cantidad:       it.Cantidad,
			Subtotal:       sub,
		})
		out.Total = out.Total.Add(sub)
	}
	return out, nil
}

func (s *CartService) AddItem(ctx context.Context, userID, productID uint, qty int) error {
	if qty <= 0 {
		return &ValidationError{Msg: "cantidad must be at least 1"}
	}
	p, err := s.ProductRepo.FindByID(ctx, productID)
	if err != nil {
		return notFoundOr(err, "product not found")
	}

	c, err := s.CartRepo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inCart, err := s.CartRepo.ItemQty(tx, c.ID, p.ID)
		if err != nil {
			return err
		}
		// compare against what is left so the merged quantity cannot overflow
		if qty > p.Stock-inCart {
			return NewValidationError("only %d units of %s in stock", p.Stock, p.Nombre)
		}
		_, err = s.CartRepo.UpsertItem(tx, c.ID, p.ID, qty)
		return err
	})
}

// UpdateQty sets a line's quantity; zero or less removes the line.
func (s *CartService) UpdateQty(ctx context.Context, userID, itemID uint, qty int) error {
	it, err := s.CartRepo.FindItemForUser(ctx, userID, itemID)
	if err != nil {
		return notFoundOr(err, "cart item not found")
	}
	if qty > 0 {
		p, err := s.ProductRepo.FindByID(ctx, it.ProductID)
		if err != nil {
			return notFoundOr(err, "product not found")
		}
		if qty > p.Stock {
			return NewValidationError("only %d units of %s in stock", p.Stock, p.Nombre)
		}
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQty(tx, userID, itemID, qty)
	})
}

func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uint) error {
	if _, err := s.CartRepo.FindItemForUser(ctx, userID, itemID); err != nil {
		return notFoundOr(err, "cart item not found")
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, userID, itemID)
	})
}

func (s *CartService) Clear(ctx context.Context, userID uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}
