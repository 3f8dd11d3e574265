package service

import (
	"context"
	"mime/multipart"
	"time"

	"food_delivery_api/internal/domain/food/model"
	"food_delivery_api/pkg/cache"
	"food_delivery_api/pkg/logger"

	"go.uber.org/zap"
)

const (
	foodListKeyPrefix = "foods:list:"
	foodListCacheTTL  = 10 * time.Minute
)

// CachedFoodService 带缓存的菜品服务装饰器
// 菜单是读多写少的典型场景，列表查询走 Redis
type CachedFoodService struct {
	service FoodService
	cache   cache.CacheService
}

// NewCachedFoodService 创建带缓存的菜品服务
func NewCachedFoodService(service FoodService, cacheService cache.CacheService) FoodService {
	return &CachedFoodService{
		service: service,
		cache:   cacheService,
	}
}

var _ FoodService = (*CachedFoodService)(nil)

func listKey(category string) string {
	if category == "" {
		return foodListKeyPrefix + "all"
	}
	return foodListKeyPrefix + category
}

// AddFood 添加菜品并失效列表缓存
func (s *CachedFoodService) AddFood(name, description, category string, price float64, image *multipart.FileHeader) (*model.Food, error) {
	food, err := s.service.AddFood(name, description, category, price, image)
	if err != nil {
		return nil, err
	}
	s.invalidateLists()
	return food, nil
}

// GetFoods 获取菜品列表，优先读缓存
func (s *CachedFoodService) GetFoods(category string) ([]model.Food, error) {
	ctx := context.Background()
	key := listKey(category)

	var cached []model.Food
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	}

	// 缓存未命中，查库并回填
	foods, err := s.service.GetFoods(category)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, foods, foodListCacheTTL); err != nil {
		logger.Log.Warn("Failed to cache food list", zap.String("key", key), zap.Error(err))
	}
	return foods, nil
}

// GetByIDs 批量获取，下单计价路径直接查库保证价格最新
func (s *CachedFoodService) GetByIDs(ids []string) ([]model.Food, error) {
	return s.service.GetByIDs(ids)
}

// RemoveFood 删除菜品并失效列表缓存
func (s *CachedFoodService) RemoveFood(id string) error {
	if err := s.service.RemoveFood(id); err != nil {
		return err
	}
	s.invalidateLists()
	return nil
}

func (s *CachedFoodService) invalidateLists() {
	if err := s.cache.InvalidatePattern(context.Background(), foodListKeyPrefix+"*"); err != nil {
		logger.Log.Warn("Failed to invalidate food list cache", zap.Error(err))
	}
}
