package repository

import (
	"food_delivery_api/internal/domain/cart/model"

	"gorm.io/gorm"
)

// CartRepository 购物车仓库接口
type CartRepository interface {
	GetByUserID(userID string) (*model.Cart, error)
	Create(cart *model.Cart) error
	Update(cart *model.Cart) error
}

// cartRepository 实现
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

// GetByUserID 获取用户购物车
func (r *cartRepository) GetByUserID(userID string) (*model.Cart, error) {
	var cart model.Cart
	if err := r.db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// Create 创建购物车
func (r *cartRepository) Create(cart *model.Cart) error {
	return r.db.Create(cart).Error
}

// Update 更新购物车
func (r *cartRepository) Update(cart *model.Cart) error {
	return r.db.Save(cart).Error
}
