package repository

import (
	"context"

	"marketplace/entity"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]entity.Product, error) {
	var ps []entity.Product
	err := r.DB.WithContext(ctx).Order("id ASC").Find(&ps).Error
	return ps, err
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

// DecrementStock takes qty units out of stock inside tx. It reports false when
// the product does not have enough units left.
func (r *ProductRepository) DecrementStock(tx *gorm.DB, productID uint, qty int) (bool, error) {
	res := tx.Model(&entity.Product{}).
		Where("id = ? AND stock >= ?", productID, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
