package service

import (
	"testing"

	"food_delivery_api/internal/domain/food/model"
	"food_delivery_api/pkg/cache"
	baseModel "food_delivery_api/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockFoodRepository 模拟菜品仓库
type MockFoodRepository struct {
	mock.Mock
}

func (m *MockFoodRepository) Create(food *model.Food) error {
	args := m.Called(food)
	return args.Error(0)
}

func (m *MockFoodRepository) GetByID(id string) (*model.Food, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Food), args.Error(1)
}

func (m *MockFoodRepository) GetByIDs(ids []string) ([]model.Food, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Food), args.Error(1)
}

func (m *MockFoodRepository) GetList(category string) ([]model.Food, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Food), args.Error(1)
}

func (m *MockFoodRepository) Delete(food *model.Food) error {
	args := m.Called(food)
	return args.Error(0)
}

func sampleFoods() []model.Food {
	return []model.Food{
		{BaseModel: baseModel.BaseModel{ID: "food-1"}, Name: "Greek salad", Price: 12, Category: "Salad"},
		{BaseModel: baseModel.BaseModel{ID: "food-2"}, Name: "Veg sandwich", Price: 8, Category: "Sandwich"},
	}
}

func TestRemoveFood(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(MockFoodRepository)
		svc := NewFoodService(repo)

		food := &model.Food{BaseModel: baseModel.BaseModel{ID: "food-1"}}
		repo.On("GetByID", "food-1").Return(food, nil)
		repo.On("Delete", food).Return(nil)

		err := svc.RemoveFood("food-1")

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("missing food", func(t *testing.T) {
		repo := new(MockFoodRepository)
		svc := NewFoodService(repo)

		repo.On("GetByID", "food-x").Return(nil, gorm.ErrRecordNotFound)

		err := svc.RemoveFood("food-x")

		assert.ErrorIs(t, err, ErrFoodNotFound)
	})
}

func TestCachedGetFoods(t *testing.T) {
	t.Run("second read hits cache", func(t *testing.T) {
		repo := new(MockFoodRepository)
		svc := NewCachedFoodService(NewFoodService(repo), cache.NewMemoryCache())

		repo.On("GetList", "").Return(sampleFoods(), nil).Once()

		first, err := svc.GetFoods("")
		assert.NoError(t, err)
		assert.Len(t, first, 2)

		// 第二次不应再查库
		second, err := svc.GetFoods("")
		assert.NoError(t, err)
		assert.Len(t, second, 2)
		repo.AssertNumberOfCalls(t, "GetList", 1)
	})

	t.Run("write invalidates cached list", func(t *testing.T) {
		repo := new(MockFoodRepository)
		svc := NewCachedFoodService(NewFoodService(repo), cache.NewMemoryCache())

		repo.On("GetList", "").Return(sampleFoods(), nil)

		_, err := svc.GetFoods("")
		assert.NoError(t, err)

		food := &model.Food{BaseModel: baseModel.BaseModel{ID: "food-1"}}
		repo.On("GetByID", "food-1").Return(food, nil)
		repo.On("Delete", food).Return(nil)
		assert.NoError(t, svc.RemoveFood("food-1"))

		_, err = svc.GetFoods("")
		assert.NoError(t, err)
		repo.AssertNumberOfCalls(t, "GetList", 2)
	})

	t.Run("pricing lookup bypasses cache", func(t *testing.T) {
		repo := new(MockFoodRepository)
		svc := NewCachedFoodService(NewFoodService(repo), cache.NewMemoryCache())

		repo.On("GetByIDs", []string{"food-1"}).Return(sampleFoods()[:1], nil).Twice()

		for i := 0; i < 2; i++ {
			foods, err := svc.GetByIDs([]string{"food-1"})
			assert.NoError(t, err)
			assert.Len(t, foods, 1)
		}
		repo.AssertNumberOfCalls(t, "GetByIDs", 2)
	})
}
