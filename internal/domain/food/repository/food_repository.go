package repository

import (
	"food_delivery_api/internal/domain/food/model"

	"gorm.io/gorm"
)

// FoodRepository 菜品仓库接口
type FoodRepository interface {
	Create(food *model.Food) error
	GetByID(id string) (*model.Food, error)
	GetByIDs(ids []string) ([]model.Food, error)
	GetList(category string) ([]model.Food, error)
	Delete(food *model.Food) error
}

// foodRepository 实现
type foodRepository struct {
	db *gorm.DB
}

// NewFoodRepository 创建菜品仓库
func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

// Create 创建菜品
func (r *foodRepository) Create(food *model.Food) error {
	return r.db.Create(food).Error
}

// GetByID 根据ID获取菜品
func (r *foodRepository) GetByID(id string) (*model.Food, error) {
	var food model.Food
	if err := r.db.Where("id = ?", id).First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

// GetByIDs 批量获取菜品 (下单时服务端重新计价用)
func (r *foodRepository) GetByIDs(ids []string) ([]model.Food, error) {
	var foods []model.Food
	if len(ids) == 0 {
		return foods, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

// GetList 获取菜品列表，category 为空时返回全部
func (r *foodRepository) GetList(category string) ([]model.Food, error) {
	var foods []model.Food
	query := r.db.Order("created_at DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

// Delete 删除菜品
func (r *foodRepository) Delete(food *model.Food) error {
	return r.db.Delete(food).Error
}
