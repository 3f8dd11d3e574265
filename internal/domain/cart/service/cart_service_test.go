package service

import (
	"testing"

	"food_delivery_api/internal/domain/cart/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockCartRepository 模拟购物车仓库
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) GetByUserID(userID string) (*model.Cart, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cart), args.Error(1)
}

func (m *MockCartRepository) Create(cart *model.Cart) error {
	args := m.Called(cart)
	return args.Error(0)
}

func (m *MockCartRepository) Update(cart *model.Cart) error {
	args := m.Called(cart)
	return args.Error(0)
}

func TestAddToCart(t *testing.T) {
	t.Run("creates cart on first add", func(t *testing.T) {
		repo := new(MockCartRepository)
		svc := NewCartService(repo)

		repo.On("GetByUserID", "user-1").Return(nil, gorm.ErrRecordNotFound)
		repo.On("Create", mock.AnythingOfType("*model.Cart")).Return(nil)
		repo.On("Update", mock.AnythingOfType("*model.Cart")).Return(nil)

		items, err := svc.AddToCart("user-1", "food-1")

		assert.NoError(t, err)
		assert.Equal(t, 1, items["food-1"])
		repo.AssertExpectations(t)
	})

	t.Run("increments quantity", func(t *testing.T) {
		repo := new(MockCartRepository)
		svc := NewCartService(repo)

		repo.On("GetByUserID", "user-1").Return(&model.Cart{
			UserID: "user-1",
			Items:  model.ItemsMap{"food-1": 2},
		}, nil)
		repo.On("Update", mock.AnythingOfType("*model.Cart")).Return(nil)

		items, err := svc.AddToCart("user-1", "food-1")

		assert.NoError(t, err)
		assert.Equal(t, 3, items["food-1"])
	})
}

func TestRemoveFromCart(t *testing.T) {
	t.Run("decrements quantity", func(t *testing.T) {
		repo := new(MockCartRepository)
		svc := NewCartService(repo)

		repo.On("GetByUserID", "user-1").Return(&model.Cart{
			UserID: "user-1",
			Items:  model.ItemsMap{"food-1": 2},
		}, nil)
		repo.On("Update", mock.AnythingOfType("*model.Cart")).Return(nil)

		items, err := svc.RemoveFromCart("user-1", "food-1")

		assert.NoError(t, err)
		assert.Equal(t, 1, items["food-1"])
	})

	t.Run("drops entry at zero", func(t *testing.T) {
		repo := new(MockCartRepository)
		svc := NewCartService(repo)

		repo.On("GetByUserID", "user-1").Return(&model.Cart{
			UserID: "user-1",
			Items:  model.ItemsMap{"food-1": 1},
		}, nil)
		repo.On("Update", mock.AnythingOfType("*model.Cart")).Return(nil)

		items, err := svc.RemoveFromCart("user-1", "food-1")

		assert.NoError(t, err)
		assert.NotContains(t, items, "food-1")
	})

	t.Run("missing item is a no-op", func(t *testing.T) {
		repo := new(MockCartRepository)
		svc := NewCartService(repo)

		repo.On("GetByUserID", "user-1").Return(&model.Cart{
			UserID: "user-1",
			Items:  model.ItemsMap{},
		}, nil)

		_, err := svc.RemoveFromCart("user-1", "food-x")

		assert.NoError(t, err)
		repo.AssertNotCalled(t, "Update", mock.Anything)
	})
}

func TestClearCart(t *testing.T) {
	t.Run("empties existing cart", func(t *testing.T) {
		repo := new(MockCartRepository)
		svc := NewCartService(repo)

		repo.On("GetByUserID", "user-1").Return(&model.Cart{
			UserID: "user-1",
			Items:  model.ItemsMap{"food-1": 2, "food-2": 1},
		}, nil)
		repo.On("Update", mock.MatchedBy(func(c *model.Cart) bool {
			return len(c.Items) == 0
		})).Return(nil)

		err := svc.ClearCart("user-1")

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("no cart is a no-op", func(t *testing.T) {
		repo := new(MockCartRepository)
		svc := NewCartService(repo)

		repo.On("GetByUserID", "user-1").Return(nil, gorm.ErrRecordNotFound)

		err := svc.ClearCart("user-1")

		assert.NoError(t, err)
		repo.AssertNotCalled(t, "Update", mock.Anything)
	})
}
