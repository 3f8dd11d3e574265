package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"food_delivery_api/internal/domain/promo/model"
	"food_delivery_api/internal/domain/promo/repository"
	"food_delivery_api/internal/pkg/worker"

	"github.com/redis/go-redis/v9"
)

var (
	ErrAlreadyClaimed = errors.New("promo already claimed")
	ErrOutOfStock     = errors.New("promo out of stock")
	ErrPromoNotFound  = errors.New("promo not found")
)

// PromoService 优惠券服务接口
type PromoService interface {
	CreatePromo(name string, total int, amount float64, startTime, endTime time.Time) (*model.Promo, error)
	ClaimPromo(userID, promoID string) error
	GetUserPromos(userID string) ([]model.UserPromo, error)
}

// promoService 实现
// 领取走 Redis 预扣减 + Worker Pool 异步落库，扛突发流量
type promoService struct {
	repo       repository.PromoRepository
	rdb        *redis.Client
	soldOutMap sync.Map // 本地缓存：记录已售罄的 PromoID
	workerPool *worker.WorkerPool
}

// NewPromoService 创建优惠券服务
func NewPromoService(repo repository.PromoRepository, rdb *redis.Client) PromoService {
	// 5 个 Worker，缓冲队列 1000
	pool := worker.NewWorkerPool(repo, 5, 1000)
	pool.Start()

	return &promoService{
		repo:       repo,
		rdb:        rdb,
		workerPool: pool,
	}
}

// CreatePromo 创建优惠券并预热 Redis 库存
func (s *promoService) CreatePromo(name string, total int, amount float64, startTime, endTime time.Time) (*model.Promo, error) {
	promo := &model.Promo{
		Name:      name,
		Total:     total,
		Stock:     total,
		Amount:    amount,
		StartTime: startTime,
		EndTime:   endTime,
	}

	if err := s.repo.Create(promo); err != nil {
		return nil, err
	}

	stockKey := fmt.Sprintf("promo:stock:%s", promo.ID)
	s.rdb.Set(context.Background(), stockKey, total, 0)

	return promo, nil
}

// Lua 脚本：检查用户是否已领 + 检查库存 + 扣减库存 + 记录用户已领
var claimScript = redis.NewScript(`
	local user_key = KEYS[1]
	local stock_key = KEYS[2]
	local user_id = ARGV[1]

	-- 1. 检查用户是否已领取
	if redis.call("SISMEMBER", user_key, user_id) == 1 then
		return -1 -- 已领取
	end

	-- 2. 检查库存
	local stock = tonumber(redis.call("GET", stock_key))
	if not stock then
		return -3 -- 优惠券不存在（库存未预热）
	end
	if stock <= 0 then
		return -2 -- 库存不足
	end

	-- 3. 扣减库存
	redis.call("DECR", stock_key)
	-- 4. 记录用户已领取
	redis.call("SADD", user_key, user_id)

	return 1 -- 成功
`)

// ClaimPromo 领取优惠券
func (s *promoService) ClaimPromo(userID, promoID string) error {
	// 0. 本地售罄缓存，省一次网络 IO
	if _, ok := s.soldOutMap.Load(promoID); ok {
		return ErrOutOfStock
	}

	ctx := context.Background()
	userKey := fmt.Sprintf("promo:users:%s", promoID)
	stockKey := fmt.Sprintf("promo:stock:%s", promoID)

	// 1. Lua 脚本预扣减，原子操作
	result, err := claimScript.Run(ctx, s.rdb, []string{userKey, stockKey}, userID).Int()
	if err != nil {
		return fmt.Errorf("redis error: %w", err)
	}

	switch result {
	case -1:
		return ErrAlreadyClaimed
	case -2:
		s.soldOutMap.Store(promoID, true)
		return ErrOutOfStock
	case -3:
		return ErrPromoNotFound
	}

	// 2. Redis 扣减成功后异步落库
	s.workerPool.AddTask(worker.PromoTask{
		UserID:  userID,
		PromoID: promoID,
	})

	return nil
}

// GetUserPromos 获取用户持券列表
func (s *promoService) GetUserPromos(userID string) ([]model.UserPromo, error) {
	return s.repo.ListUserPromos(userID)
}
