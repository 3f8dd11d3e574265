package service

import (
	"context"
	"errors"

	"food_delivery_api/internal/domain/payment/gateway"
	"food_delivery_api/internal/pkg/middleware"
)

var ErrChannelNotSupported = errors.New("unsupported payment channel")

// PaymentService 支付服务接口
// 订单编排器通过它创建/查询收银台会话，不直接接触具体渠道 SDK
type PaymentService interface {
	CreateCheckoutSession(ctx context.Context, channel, orderID string, items []gateway.LineItem, deliveryFee float64, returnOrigin string) (*gateway.Session, error)
	VerifySession(ctx context.Context, channel, sessionID string) (*gateway.SessionStatus, error)
	RegisterGateway(channel string, gw gateway.CheckoutGateway)
	DefaultChannel() string
}

// paymentService 实现，渠道注册表
type paymentService struct {
	gateways       map[string]gateway.CheckoutGateway
	defaultChannel string
}

// NewPaymentService 创建支付服务
func NewPaymentService(defaultChannel string) PaymentService {
	return &paymentService{
		gateways:       make(map[string]gateway.CheckoutGateway),
		defaultChannel: defaultChannel,
	}
}

// RegisterGateway 注册渠道网关
func (s *paymentService) RegisterGateway(channel string, gw gateway.CheckoutGateway) {
	s.gateways[channel] = gw
}

// DefaultChannel 默认渠道
func (s *paymentService) DefaultChannel() string {
	return s.defaultChannel
}

func (s *paymentService) resolve(channel string) (gateway.CheckoutGateway, string, error) {
	if channel == "" {
		channel = s.defaultChannel
	}
	gw, ok := s.gateways[channel]
	if !ok {
		return nil, channel, ErrChannelNotSupported
	}
	return gw, channel, nil
}

// CreateCheckoutSession 创建收银台会话
// 失败不重试，直接把错误交还调用方处理补偿
func (s *paymentService) CreateCheckoutSession(ctx context.Context, channel, orderID string, items []gateway.LineItem, deliveryFee float64, returnOrigin string) (*gateway.Session, error) {
	gw, channel, err := s.resolve(channel)
	if err != nil {
		return nil, err
	}

	sess, err := gw.CreateSession(ctx, orderID, items, deliveryFee, returnOrigin)
	if err != nil {
		middleware.RecordCheckoutSession(channel, "error")
		return nil, err
	}

	middleware.RecordCheckoutSession(channel, "success")
	return sess, nil
}

// VerifySession 查询会话支付状态
func (s *paymentService) VerifySession(ctx context.Context, channel, sessionID string) (*gateway.SessionStatus, error) {
	gw, _, err := s.resolve(channel)
	if err != nil {
		return nil, err
	}
	return gw.RetrieveSession(ctx, sessionID)
}
