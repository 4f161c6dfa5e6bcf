package repository

import (
	"context"

	"marketplace/entity"

	"gorm.io/gorm"
)

type ProviderRepository struct {
	DB *gorm.DB
}

func NewProviderRepository(db *gorm.DB) *ProviderRepository {
	return &ProviderRepository{DB: db}
}

// FindByUserID resolves the provider profile owned by a user.
func (r *ProviderRepository) FindByUserID(ctx context.Context, userID uint) (*entity.Provider, error) {
	var p entity.Provider
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProviderRepository) Create(ctx context.Context, p *entity.Provider) error {
	return r.DB.WithContext(ctx).Create(p).Error
}
