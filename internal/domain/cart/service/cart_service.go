package service

import (
	"errors"

	"food_delivery_api/internal/domain/cart/model"
	"food_delivery_api/internal/domain/cart/repository"

	"gorm.io/gorm"
)

// CartService 购物车服务接口
type CartService interface {
	AddToCart(userID, foodID string) (model.ItemsMap, error)
	RemoveFromCart(userID, foodID string) (model.ItemsMap, error)
	GetCart(userID string) (model.ItemsMap, error)
	ClearCart(userID string) error
}

// cartService 实现
type cartService struct {
	repo repository.CartRepository
}

// NewCartService 创建购物车服务
func NewCartService(repo repository.CartRepository) CartService {
	return &cartService{repo: repo}
}

// getOrCreate 获取购物车，不存在则创建空车
func (s *cartService) getOrCreate(userID string) (*model.Cart, error) {
	cart, err := s.repo.GetByUserID(userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart = &model.Cart{UserID: userID, Items: model.ItemsMap{}}
	if err := s.repo.Create(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// AddToCart 添加商品（数量+1）
func (s *cartService) AddToCart(userID, foodID string) (model.ItemsMap, error) {
	cart, err := s.getOrCreate(userID)
	if err != nil {
		return nil, err
	}

	if cart.Items == nil {
		cart.Items = model.ItemsMap{}
	}
	cart.Items[foodID]++

	if err := s.repo.Update(cart); err != nil {
		return nil, err
	}
	return cart.Items, nil
}

// RemoveFromCart 减少商品数量，减到 0 时移除
func (s *cartService) RemoveFromCart(userID, foodID string) (model.ItemsMap, error) {
	cart, err := s.getOrCreate(userID)
	if err != nil {
		return nil, err
	}

	if qty, ok := cart.Items[foodID]; ok {
		if qty <= 1 {
			delete(cart.Items, foodID)
		} else {
			cart.Items[foodID] = qty - 1
		}
		if err := s.repo.Update(cart); err != nil {
			return nil, err
		}
	}
	return cart.Items, nil
}

// GetCart 获取购物车内容
func (s *cartService) GetCart(userID string) (model.ItemsMap, error) {
	cart, err := s.repo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.ItemsMap{}, nil
		}
		return nil, err
	}
	if cart.Items == nil {
		return model.ItemsMap{}, nil
	}
	return cart.Items, nil
}

// ClearCart 清空购物车（下单成功后调用）
func (s *cartService) ClearCart(userID string) error {
	cart, err := s.repo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	cart.Items = model.ItemsMap{}
	return s.repo.Update(cart)
}
