package cart

import (
	"food_delivery_api/internal/domain/cart/handler"
	"food_delivery_api/internal/domain/cart/repository"
	"food_delivery_api/internal/domain/cart/service"
	"food_delivery_api/internal/pkg/middleware"
	"food_delivery_api/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// CartModule 购物车模块
type CartModule struct {
	handler *handler.CartHandler
	service service.CartService
}

func init() {
	registry.Register(&CartModule{})
}

func (m *CartModule) Name() string {
	return "cart"
}

func (m *CartModule) Priority() int {
	return 5
}

func (m *CartModule) Init(ctx *registry.ModuleContext) error {
	// 1. 依赖注入
	repo := repository.NewCartRepository(ctx.DB)
	m.service = service.NewCartService(repo)
	m.handler = handler.NewCartHandler(m.service)

	// 2. 注册路由
	m.setupRoutes(ctx.Router)
	return nil
}

// Service 暴露给订单模块清空购物车
func (m *CartModule) Service() service.CartService {
	return m.service
}

func (m *CartModule) setupRoutes(r *gin.Engine) {
	carts := r.Group("/cart")
	carts.Use(middleware.AuthMiddleware())
	{
		carts.POST("/add", m.handler.AddToCart)
		carts.POST("/remove", m.handler.RemoveFromCart)
		carts.POST("/get", m.handler.GetCart)
	}
}
