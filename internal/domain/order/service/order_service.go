package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	cartService "food_delivery_api/internal/domain/cart/service"
	foodService "food_delivery_api/internal/domain/food/service"
	"food_delivery_api/internal/domain/order/model"
	"food_delivery_api/internal/domain/order/repository"
	"food_delivery_api/internal/domain/payment/gateway"
	paymentService "food_delivery_api/internal/domain/payment/service"
	"food_delivery_api/internal/pkg/middleware"
	"food_delivery_api/internal/pkg/push"
	"food_delivery_api/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrEmptyOrder      = errors.New("order has no items")
	ErrInvalidQuantity = errors.New("item quantity must be positive")
	ErrUnknownItem     = errors.New("order references unknown food")
	ErrAmountMismatch  = errors.New("order amount does not match catalog prices")
	ErrOrderNotFound   = errors.New("order not found")
	ErrPaymentFailed   = errors.New("failed to create checkout session")
	ErrInvalidStatus   = errors.New("invalid order status")
)

// 金额比对容差，浮点求和的噪声以内视为一致
const amountTolerance = 0.01

// PlaceOrderItem 下单请求行项目，价格以服务端菜单为准
type PlaceOrderItem struct {
	FoodID   string
	Quantity int
}

// PlaceOrderResult 下单结果
type PlaceOrderResult struct {
	OrderID    string `json:"orderId"`
	SessionURL string `json:"sessionUrl"`
}

// VerifyResult 支付校验结果
type VerifyResult struct {
	Paid bool `json:"paid"`
}

// OrderService 订单服务接口
type OrderService interface {
	PlaceOrder(ctx context.Context, userID string, items []PlaceOrderItem, amount float64, address model.Address, channel string) (*PlaceOrderResult, error)
	VerifyOrder(ctx context.Context, orderID string, clientSuccess bool, sessionID string) (*VerifyResult, error)
	GetUserOrders(userID string) ([]model.Order, error)
	ListOrders(page, limit int) ([]model.Order, int64, error)
	UpdateStatus(orderID, status string) error
}

// orderService 订单编排器
// 串起菜单计价、落库、清空购物车、创建收银台会话与支付结果校验
type orderService struct {
	repo         repository.OrderRepository
	foods        foodService.FoodService
	carts        cartService.CartService
	payments     paymentService.PaymentService
	push         push.Service
	deliveryFee  float64
	returnOrigin string
}

// NewOrderService 创建订单服务
// pushService 可为 nil（未配置推送时）
func NewOrderService(
	repo repository.OrderRepository,
	foods foodService.FoodService,
	carts cartService.CartService,
	payments paymentService.PaymentService,
	pushService push.Service,
	deliveryFee float64,
	returnOrigin string,
) OrderService {
	return &orderService{
		repo:         repo,
		foods:        foods,
		carts:        carts,
		payments:     payments,
		push:         pushService,
		deliveryFee:  deliveryFee,
		returnOrigin: returnOrigin,
	}
}

// PlaceOrder 下单
// 1. 校验行项目
// 2. 服务端按菜单重新计价，与客户端金额比对
// 3. 落库订单 -> 清空购物车 -> 创建收银台会话
// 4. 会话创建失败则删除订单（补偿），保证不存在无会话的未支付订单
func (s *orderService) PlaceOrder(ctx context.Context, userID string, items []PlaceOrderItem, amount float64, address model.Address, channel string) (*PlaceOrderResult, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		ids = append(ids, item.FoodID)
	}

	// 2. 重新计价
	foods, err := s.foods.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	priceByID := make(map[string]struct {
		name  string
		price float64
	}, len(foods))
	for _, f := range foods {
		priceByID[f.ID] = struct {
			name  string
			price float64
		}{f.Name, f.Price}
	}

	orderItems := make(model.OrderItems, 0, len(items))
	lineItems := make([]gateway.LineItem, 0, len(items))
	total := s.deliveryFee
	for _, item := range items {
		food, ok := priceByID[item.FoodID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownItem, item.FoodID)
		}
		total += food.price * float64(item.Quantity)
		orderItems = append(orderItems, model.OrderItem{
			FoodID:   item.FoodID,
			Name:     food.name,
			Price:    food.price,
			Quantity: item.Quantity,
		})
		lineItems = append(lineItems, gateway.LineItem{
			Name:     food.name,
			Price:    food.price,
			Quantity: item.Quantity,
		})
	}

	if math.Abs(total-amount) > amountTolerance {
		logger.Log.Warn("Order amount mismatch",
			zap.String("userID", userID),
			zap.Float64("claimed", amount),
			zap.Float64("computed", total))
		return nil, ErrAmountMismatch
	}

	// 3. 落库
	order := &model.Order{
		UserID:  userID,
		Items:   orderItems,
		Amount:  total,
		Address: address,
		Status:  model.StatusFoodProcessing,
		Payment: false,
	}
	if err := s.repo.Create(order); err != nil {
		return nil, err
	}

	// 清空购物车，失败不阻断下单
	if err := s.carts.ClearCart(userID); err != nil {
		logger.Log.Warn("Failed to clear cart after placing order",
			zap.String("userID", userID),
			zap.String("orderID", order.ID),
			zap.Error(err))
	}

	// 4. 创建收银台会话，失败则删单补偿
	sess, err := s.payments.CreateCheckoutSession(ctx, channel, order.ID, lineItems, s.deliveryFee, s.returnOrigin)
	if err != nil {
		if delErr := s.repo.Delete(order); delErr != nil {
			logger.Log.Error("Failed to delete order after checkout failure",
				zap.String("orderID", order.ID),
				zap.Error(delErr))
		}
		logger.Log.Error("Checkout session creation failed",
			zap.String("orderID", order.ID),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	if channel == "" {
		channel = s.payments.DefaultChannel()
	}
	if err := s.repo.SetSession(order.ID, channel, sess.ID); err != nil {
		// 校验走客户端回传的 session_id，这里的引用只是留档
		logger.Log.Warn("Failed to record session reference",
			zap.String("orderID", order.ID),
			zap.Error(err))
	}

	return &PlaceOrderResult{OrderID: order.ID, SessionURL: sess.URL}, nil
}

// VerifyOrder 支付结果校验
// 不信任回跳参数：success=true 也要向处理器查询会话状态后才标记已支付；
// 未支付即删单，已支付的订单是终态不再回退
func (s *orderService) VerifyOrder(ctx context.Context, orderID string, clientSuccess bool, sessionID string) (*VerifyResult, error) {
	order, err := s.repo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	// 已支付订单重复校验是幂等 no-op
	if order.Payment {
		middleware.RecordOrderVerified("already_paid")
		return &VerifyResult{Paid: true}, nil
	}

	// 支付宝同步回跳不带 session_id，回退到下单时留档的会话引用
	if sessionID == "" {
		sessionID = order.SessionID
	}

	// 用户取消或缺少会话引用，直接废弃
	if !clientSuccess || sessionID == "" {
		if err := s.repo.Delete(order); err != nil {
			return nil, err
		}
		middleware.RecordOrderVerified("discarded")
		return &VerifyResult{Paid: false}, nil
	}

	status, err := s.payments.VerifySession(ctx, order.Channel, sessionID)
	if err != nil {
		// 查询失败按未确认处理：删单并把错误交还调用方
		if delErr := s.repo.Delete(order); delErr != nil {
			logger.Log.Error("Failed to delete order after verify failure",
				zap.String("orderID", orderID),
				zap.Error(delErr))
		}
		middleware.RecordOrderVerified("error")
		return nil, err
	}

	if status.PaymentStatus != gateway.PaymentStatusPaid {
		if err := s.repo.Delete(order); err != nil {
			return nil, err
		}
		middleware.RecordOrderVerified("not_paid")
		return &VerifyResult{Paid: false}, nil
	}

	if err := s.repo.MarkPaid(orderID, status.PaymentIntentID, time.Now()); err != nil {
		return nil, err
	}
	middleware.RecordOrderVerified("paid")

	s.notify(order.UserID, "Payment received", fmt.Sprintf("Your order %s is confirmed and being prepared.", orderID), orderID)

	return &VerifyResult{Paid: true}, nil
}

// GetUserOrders 获取用户订单列表
func (s *orderService) GetUserOrders(userID string) ([]model.Order, error) {
	return s.repo.ListByUser(userID)
}

// ListOrders 获取全部订单（管理员）
func (s *orderService) ListOrders(page, limit int) ([]model.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	return s.repo.ListAll((page-1)*limit, limit)
}

// UpdateStatus 更新配送状态（管理员），变更后推送通知
func (s *orderService) UpdateStatus(orderID, status string) error {
	if !model.ValidStatus(status) {
		return ErrInvalidStatus
	}

	order, err := s.repo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	if err := s.repo.UpdateStatus(orderID, status); err != nil {
		return err
	}

	s.notify(order.UserID, "Order update", fmt.Sprintf("Your order is now: %s", status), orderID)
	return nil
}

// notify 异步推送，未配置推送服务时跳过
func (s *orderService) notify(userID, title, body, orderID string) {
	if s.push == nil {
		return
	}
	go func() {
		if err := s.push.PushToAccount(userID, title, body, map[string]string{"orderId": orderID}); err != nil {
			logger.Log.Warn("Push notification failed",
				zap.String("userID", userID),
				zap.String("orderID", orderID),
				zap.Error(err))
		}
	}()
}
