package service

import (
	"errors"
	"mime/multipart"

	"food_delivery_api/internal/domain/food/model"
	"food_delivery_api/internal/domain/food/repository"
	"food_delivery_api/internal/pkg/uploader"

	"gorm.io/gorm"
)

var (
	ErrFoodNotFound = errors.New("food not found")
	ErrInvalidPrice = errors.New("price must be positive")
)

// FoodService 菜品服务接口
type FoodService interface {
	AddFood(name, description, category string, price float64, image *multipart.FileHeader) (*model.Food, error)
	GetFoods(category string) ([]model.Food, error)
	GetByIDs(ids []string) ([]model.Food, error)
	RemoveFood(id string) error
}

// foodService 实现
type foodService struct {
	repo repository.FoodRepository
}

// NewFoodService 创建菜品服务
func NewFoodService(repo repository.FoodRepository) FoodService {
	return &foodService{repo: repo}
}

// AddFood 添加菜品，图片上传到 OSS
func (s *foodService) AddFood(name, description, category string, price float64, image *multipart.FileHeader) (*model.Food, error) {
	if price <= 0 {
		return nil, ErrInvalidPrice
	}

	var imageURL string
	if image != nil {
		if uploader.GlobalUploader == nil {
			return nil, errors.New("uploader not initialized")
		}
		url, err := uploader.GlobalUploader.UploadFile(image)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	food := &model.Food{
		Name:        name,
		Description: description,
		Price:       price,
		Image:       imageURL,
		Category:    category,
	}
	if err := s.repo.Create(food); err != nil {
		return nil, err
	}
	return food, nil
}

// GetFoods 获取菜品列表
func (s *foodService) GetFoods(category string) ([]model.Food, error) {
	return s.repo.GetList(category)
}

// GetByIDs 批量获取菜品
func (s *foodService) GetByIDs(ids []string) ([]model.Food, error) {
	return s.repo.GetByIDs(ids)
}

// RemoveFood 删除菜品
func (s *foodService) RemoveFood(id string) error {
	food, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFoodNotFound
		}
		return err
	}
	return s.repo.Delete(food)
}
