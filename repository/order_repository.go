package repository

import (
	"context"

	"marketplace/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) FindByID(ctx context.Context, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.WithContext(ctx).First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// ListForUser returns a buyer's orders, newest first.
func (r *OrderRepository) ListForUser(ctx context.Context, userID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("fecha_pedido DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *OrderRepository) ExistsByNumber(ctx context.Context, numero string) (bool, error) {
	var cnt int64
	if err := r.DB.WithContext(ctx).Model(&entity.Order{}).
		Where("numero_pedido = ?", numero).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
