package payment

import (
	"food_delivery_api/internal/domain/payment/gateway"
	"food_delivery_api/internal/domain/payment/handler"
	"food_delivery_api/internal/domain/payment/service"
	"food_delivery_api/internal/pkg/config"
	"food_delivery_api/internal/pkg/middleware"
	"food_delivery_api/internal/pkg/registry"
	"food_delivery_api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentModule 支付模块
type PaymentModule struct {
	handler *handler.PaymentHandler
	service service.PaymentService
}

func init() {
	registry.Register(&PaymentModule{})
}

func (m *PaymentModule) Name() string {
	return "payment"
}

func (m *PaymentModule) Priority() int {
	return 10 // 在订单模块之前初始化
}

func (m *PaymentModule) Init(ctx *registry.ModuleContext) error {
	// 1. 创建服务，Stripe 为默认渠道
	m.service = service.NewPaymentService(gateway.ChannelStripe)

	// 2. 注册渠道网关，启动时一次性构造
	m.service.RegisterGateway(gateway.ChannelStripe, gateway.NewStripeGateway(config.GlobalConfig.Stripe))

	if aliGw, err := gateway.NewAlipayGateway(config.GlobalConfig.Alipay); err == nil {
		m.service.RegisterGateway(gateway.ChannelAlipay, aliGw)
		logger.Log.Info("Alipay gateway registered")
	} else {
		logger.Log.Warn("Alipay gateway not registered", zap.Error(err))
	}

	m.handler = handler.NewPaymentHandler(m.service)

	// 3. 注册路由
	m.setupRoutes(ctx.Router)
	return nil
}

// Service 暴露给订单模块
func (m *PaymentModule) Service() service.PaymentService {
	return m.service
}

func (m *PaymentModule) setupRoutes(r *gin.Engine) {
	payments := r.Group("/payment")
	{
		payments.POST("/create-checkout-session", middleware.AuthMiddleware(), m.handler.CreateCheckoutSession)
		payments.POST("/verify", m.handler.VerifySession)
	}
}
