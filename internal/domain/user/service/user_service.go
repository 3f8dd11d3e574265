package service

import (
	"errors"

	"food_delivery_api/internal/domain/user/model"
	"food_delivery_api/internal/domain/user/repository"
	"food_delivery_api/pkg/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDeactivated = errors.New("account has been deactivated")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidStatus      = errors.New("invalid status")
)

// UserService 用户服务接口
type UserService interface {
	Register(name, email, password string) (string, int, error)
	Login(email, password string) (string, int, error)
	GetUsers(page, limit int) ([]model.User, int64, error)
	GetUser(id string) (*model.User, error)
	UpdateRole(id string, role int) error
	UpdateStatus(id string, status string) error
	DeleteUser(id string) error
}

// userService 实现
type userService struct {
	repo repository.UserRepository
}

// NewUserService 创建用户服务
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// Register 注册，返回 token 和角色
func (s *userService) Register(name, email, password string) (string, int, error) {
	// 1. 查重
	if _, err := s.repo.GetByEmail(email); err == nil {
		return "", 0, ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", 0, err
	}

	// 2. 哈希密码
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", 0, err
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     model.RoleUser,
		Status:   model.StatusActive,
	}
	if err := s.repo.Create(user); err != nil {
		return "", 0, err
	}

	// 3. 生成 Token
	token, _, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", 0, err
	}
	return token, user.Role, nil
}

// Login 登录，返回 token 和角色
func (s *userService) Login(email, password string) (string, int, error) {
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", 0, ErrInvalidCredentials
		}
		return "", 0, err
	}

	// 被停用的账号禁止登录
	if user.Status == model.StatusDeactivated {
		return "", 0, ErrAccountDeactivated
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", 0, ErrInvalidCredentials
	}

	token, _, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", 0, err
	}
	return token, user.Role, nil
}

// GetUsers 获取用户列表（分页）
func (s *userService) GetUsers(page, limit int) ([]model.User, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	offset := (page - 1) * limit
	return s.repo.GetList(offset, limit)
}

// GetUser 获取单个用户
func (s *userService) GetUser(id string) (*model.User, error) {
	return s.repo.GetByID(id)
}

// UpdateRole 更新用户角色 (管理员操作)
func (s *userService) UpdateRole(id string, role int) error {
	if role != model.RoleUser && role != model.RoleAdmin {
		return ErrInvalidRole
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}

	user.Role = role
	return s.repo.Update(user)
}

// UpdateStatus 更新用户状态 (管理员操作)
func (s *userService) UpdateStatus(id string, status string) error {
	if status != model.StatusActive && status != model.StatusDeactivated {
		return ErrInvalidStatus
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}

	user.Status = status
	return s.repo.Update(user)
}

// DeleteUser 删除用户 (软删除)
func (s *userService) DeleteUser(id string) error {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(user)
}
