package order

import (
	"fmt"

	"food_delivery_api/internal/domain/cart"
	"food_delivery_api/internal/domain/food"
	"food_delivery_api/internal/domain/order/handler"
	"food_delivery_api/internal/domain/order/repository"
	"food_delivery_api/internal/domain/order/service"
	"food_delivery_api/internal/domain/payment"
	"food_delivery_api/internal/pkg/config"
	"food_delivery_api/internal/pkg/middleware"
	"food_delivery_api/internal/pkg/push"
	"food_delivery_api/internal/pkg/registry"
	"food_delivery_api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrderModule 订单模块，依赖 food/cart/payment，优先级靠后
type OrderModule struct {
	handler *handler.OrderHandler
}

func init() {
	registry.Register(&OrderModule{})
}

func (m *OrderModule) Name() string {
	return "order"
}

func (m *OrderModule) Priority() int {
	return 20
}

func (m *OrderModule) Init(ctx *registry.ModuleContext) error {
	modules := registry.GetModules()

	foodModule, ok := modules["food"].(*food.FoodModule)
	if !ok {
		return fmt.Errorf("order module requires food module")
	}
	cartModule, ok := modules["cart"].(*cart.CartModule)
	if !ok {
		return fmt.Errorf("order module requires cart module")
	}
	paymentModule, ok := modules["payment"].(*payment.PaymentModule)
	if !ok {
		return fmt.Errorf("order module requires payment module")
	}

	// 推送可选，未配置时跳过通知
	var pushService push.Service
	if svc, err := push.NewAliyunPushService(); err == nil {
		pushService = svc
	} else {
		logger.Log.Warn("Push service not configured, order notifications disabled", zap.Error(err))
	}

	repo := repository.NewOrderRepository(ctx.DB)
	svc := service.NewOrderService(
		repo,
		foodModule.Service(),
		cartModule.Service(),
		paymentModule.Service(),
		pushService,
		config.GlobalConfig.App.DeliveryFee,
		config.GlobalConfig.App.FrontendURL,
	)
	m.handler = handler.NewOrderHandler(svc)

	m.setupRoutes(ctx.Router)
	return nil
}

func (m *OrderModule) setupRoutes(r *gin.Engine) {
	orders := r.Group("/order")
	{
		// 回跳校验不要求登录态
		orders.POST("/verify", m.handler.VerifyOrder)

		authed := orders.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.POST("/place", m.handler.PlaceOrder)
			authed.POST("/user", m.handler.UserOrders)
		}

		admin := orders.Group("")
		admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
		{
			admin.GET("/list", m.handler.ListOrders)
			admin.POST("/status", m.handler.UpdateStatus)
		}
	}
}
