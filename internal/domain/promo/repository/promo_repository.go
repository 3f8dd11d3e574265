package repository

import (
	"food_delivery_api/internal/domain/promo/model"

	"gorm.io/gorm"
)

// PromoRepository 优惠券仓库接口
type PromoRepository interface {
	Create(promo *model.Promo) error
	GetByID(id string) (*model.Promo, error)
	DecreaseStock(promoID string) error
	CreateUserPromo(userPromo *model.UserPromo) error
	ListUserPromos(userID string) ([]model.UserPromo, error)
}

// promoRepository 实现
type promoRepository struct {
	db *gorm.DB
}

// NewPromoRepository 创建优惠券仓库
func NewPromoRepository(db *gorm.DB) PromoRepository {
	return &promoRepository{db: db}
}

// Create 创建优惠券
func (r *promoRepository) Create(promo *model.Promo) error {
	return r.db.Create(promo).Error
}

// GetByID 根据ID获取优惠券
func (r *promoRepository) GetByID(id string) (*model.Promo, error) {
	var promo model.Promo
	if err := r.db.Where("id = ?", id).First(&promo).Error; err != nil {
		return nil, err
	}
	return &promo, nil
}

// DecreaseStock 扣减库存，条件更新防止超卖
func (r *promoRepository) DecreaseStock(promoID string) error {
	result := r.db.Model(&model.Promo{}).
		Where("id = ? AND stock > 0", promoID).
		Update("stock", gorm.Expr("stock - 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CreateUserPromo 创建用户持券记录
func (r *promoRepository) CreateUserPromo(userPromo *model.UserPromo) error {
	return r.db.Create(userPromo).Error
}

// ListUserPromos 获取用户持券列表
func (r *promoRepository) ListUserPromos(userID string) ([]model.UserPromo, error) {
	var userPromos []model.UserPromo
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&userPromos).Error; err != nil {
		return nil, err
	}
	return userPromos, nil
}
