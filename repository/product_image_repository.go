package repository

import (
	"context"

	"marketplace/entity"

	"gorm.io/gorm"
)

type ProductImageRepository struct {
	DB *gorm.DB
}

func NewProductImageRepository(db *gorm.DB) *ProductImageRepository {
	return &ProductImageRepository{DB: db}
}

// ListByProduct returns a product's images, display image first.
func (r *ProductImageRepository) ListByProduct(ctx context.Context, productID uint) ([]entity.ProductImage, error) {
	var imgs []entity.ProductImage
	err := r.DB.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("orden ASC, id ASC").
		Find(&imgs).Error
	return imgs, err
}

// ListByProducts groups the images of several products by product id.
func (r *ProductImageRepository) ListByProducts(ctx context.Context, productIDs []uint) (map[uint][]entity.ProductImage, error) {
	out := make(map[uint][]entity.ProductImage, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}
	var imgs []entity.ProductImage
	if err := r.DB.WithContext(ctx).
		Where("product_id IN ?", productIDs).
		Order("product_id ASC, orden ASC, id ASC").
		Find(&imgs).Error; err != nil {
		return nil, err
	}
	for _, img := range imgs {
		out[img.ProductID] = append(out[img.ProductID], img)
	}
	return out, nil
}

func (r *ProductImageRepository) Create(ctx context.Context, img *entity.ProductImage) error {
	return r.DB.WithContext(ctx).Create(img).Error
}
