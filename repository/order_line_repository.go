package repository

import (
	"context"

	"marketplace/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderLineRepository struct {
	DB *gorm.DB
}

func NewOrderLineRepository(db *gorm.DB) *OrderLineRepository {
	return &OrderLineRepository{DB: db}
}

// ListByProvider returns every line sold by a provider, most recent order first.
// Lines of the same order keep insertion order.
func (r *OrderLineRepository) ListByProvider(ctx context.Context, providerID uint) ([]entity.OrderLine, error) {
	var lines []entity.OrderLine
	err := r.DB.WithContext(ctx).
		Select("order_lines.*").
		Joins("JOIN orders o ON o.id = order_lines.order_id").
		Where("order_lines.provider_id = ?", providerID).
		Order("o.fecha_pedido DESC, order_lines.id ASC").
		Find(&lines).Error
	return lines, err
}

func (r *OrderLineRepository) ListByOrders(ctx context.Context, orderIDs []uint) ([]entity.OrderLine, error) {
	var lines []entity.OrderLine
	if len(orderIDs) == 0 {
		return lines, nil
	}
	err := r.DB.WithContext(ctx).
		Preload("Product").
		Where("order_id IN ?", orderIDs).
		Order("order_id ASC, id ASC").
		Find(&lines).Error
	return lines, err
}

// Create inserts the line only; referenced rows are never upserted through it.
func (r *OrderLineRepository) Create(tx *gorm.DB, l *entity.OrderLine) error {
	return tx.Omit(clause.Associations).Create(l).Error
}
