package repository

import (
	"context"
	"errors"

	"marketplace/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCartWithItems returns the user's cart. A user without a cart gets an
// empty one and no error.
func (r *CartRepository) GetCartWithItems(ctx context.Context, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Items.Product").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID, Items: []entity.CartItem{}}, nil
	}
	return &c, err
}

func (r *CartRepository) GetOrCreateCart(ctx context.Context, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := r.DB.WithContext(ctx).Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

// ItemQty is the quantity of a product already in the cart, 0 when absent.
func (r *CartRepository) ItemQty(tx *gorm.DB, cartID, productID uint) (int, error) {
	var qty int
	err := tx.Model(&entity.CartItem{}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Select("COALESCE(SUM(cantidad), 0)").
		Scan(&qty).Error
	return qty, err
}

// UpsertItem adds qty of a product to the cart, merging with an existing line.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID, productID uint, qty int) (*entity.CartItem, error) {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&exist).Error
	if err == nil {
		exist.Cantidad += qty
		return &exist, tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	row := &entity.CartItem{CartID: cartID, ProductID: productID, Cantidad: qty}
	if err := tx.Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// FindItemForUser loads a cart line only if it belongs to the user's cart.
func (r *CartRepository) FindItemForUser(ctx context.Context, userID, itemID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	err := r.DB.WithContext(ctx).
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ? AND deleted_at IS NULL)", itemID, userID).
		First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) UpdateQty(tx *gorm.DB, userID, itemID uint, qty int) error {
	if qty <= 0 {
		return r.RemoveItem(tx, userID, itemID)
	}
	return tx.Model(&entity.CartItem{}).
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ? AND deleted_at IS NULL)", itemID, userID).
		Update("cantidad", qty).Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, userID, itemID uint) error {
	return tx.Unscoped().
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ? AND deleted_at IS NULL)", itemID, userID).
		Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) error {
	var c entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return tx.Unscoped().Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error
}
