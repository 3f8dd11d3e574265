package service

import (
	"os"
	"testing"

	"food_delivery_api/internal/domain/user/model"
	"food_delivery_api/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MockUserRepository 模拟用户仓库
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetList(offset, limit int) ([]model.User, int64, error) {
	args := m.Called(offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) Update(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func TestMain(m *testing.M) {
	// 签发 Token 需要 JWT 配置
	config.GlobalConfig.JWT.Secret = "test-secret-key-at-least-32-characters!!"
	config.GlobalConfig.JWT.Expire = 24
	os.Exit(m.Run())
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestRegister(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo)

		repo.On("GetByEmail", "alice@example.com").Return(nil, gorm.ErrRecordNotFound)
		repo.On("Create", mock.AnythingOfType("*model.User")).Return(nil)

		token, role, err := svc.Register("Alice", "alice@example.com", "password123")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, model.RoleUser, role)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo)

		repo.On("GetByEmail", "alice@example.com").Return(&model.User{Email: "alice@example.com"}, nil)

		_, _, err := svc.Register("Alice", "alice@example.com", "password123")

		assert.ErrorIs(t, err, ErrUserExists)
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("stores hashed password", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo)

		repo.On("GetByEmail", "bob@example.com").Return(nil, gorm.ErrRecordNotFound)
		repo.On("Create", mock.MatchedBy(func(u *model.User) bool {
			return u.Password != "password123" &&
				bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("password123")) == nil
		})).Return(nil)

		_, _, err := svc.Register("Bob", "bob@example.com", "password123")

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo)

		repo.On("GetByEmail", "alice@example.com").Return(&model.User{
			Email:    "alice@example.com",
			Password: hashPassword(t, "password123"),
			Role:     model.RoleUser,
			Status:   model.StatusActive,
		}, nil)

		token, role, err := svc.Login("alice@example.com", "password123")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, model.RoleUser, role)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo)

		repo.On("GetByEmail", "alice@example.com").Return(&model.User{
			Email:    "alice@example.com",
			Password: hashPassword(t, "password123"),
			Status:   model.StatusActive,
		}, nil)

		_, _, err := svc.Login("alice@example.com", "wrong-password")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo)

		repo.On("GetByEmail", "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, _, err := svc.Login("ghost@example.com", "password123")

		// 不泄露账号是否存在
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("deactivated account", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo)

		repo.On("GetByEmail", "alice@example.com").Return(&model.User{
			Email:    "alice@example.com",
			Password: hashPassword(t, "password123"),
			Status:   model.StatusDeactivated,
		}, nil)

		_, _, err := svc.Login("alice@example.com", "password123")

		assert.ErrorIs(t, err, ErrAccountDeactivated)
	})
}

func TestUpdateRole(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo)

		repo.On("GetByID", "user-1").Return(&model.User{Role: model.RoleUser}, nil)
		repo.On("Update", mock.MatchedBy(func(u *model.User) bool {
			return u.Role == model.RoleAdmin
		})).Return(nil)

		err := svc.UpdateRole("user-1", model.RoleAdmin)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("invalid role", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo)

		err := svc.UpdateRole("user-1", 99)

		assert.ErrorIs(t, err, ErrInvalidRole)
		repo.AssertNotCalled(t, "Update", mock.Anything)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("deactivate", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo)

		repo.On("GetByID", "user-1").Return(&model.User{Status: model.StatusActive}, nil)
		repo.On("Update", mock.MatchedBy(func(u *model.User) bool {
			return u.Status == model.StatusDeactivated
		})).Return(nil)

		err := svc.UpdateStatus("user-1", model.StatusDeactivated)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("invalid status", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo)

		err := svc.UpdateStatus("user-1", "banned")

		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}
