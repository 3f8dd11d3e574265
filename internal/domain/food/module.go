package food

import (
	"food_delivery_api/internal/domain/food/handler"
	"food_delivery_api/internal/domain/food/repository"
	"food_delivery_api/internal/domain/food/service"
	"food_delivery_api/internal/pkg/middleware"
	"food_delivery_api/internal/pkg/registry"
	"food_delivery_api/pkg/cache"

	"github.com/gin-gonic/gin"
)

// FoodModule 菜品模块
type FoodModule struct {
	handler *handler.FoodHandler
	service service.FoodService
}

func init() {
	registry.Register(&FoodModule{})
}

func (m *FoodModule) Name() string {
	return "food"
}

func (m *FoodModule) Priority() int {
	return 5
}

func (m *FoodModule) Init(ctx *registry.ModuleContext) error {
	// 1. 依赖注入，列表查询套一层 Redis 缓存
	repo := repository.NewFoodRepository(ctx.DB)
	base := service.NewFoodService(repo)
	m.service = service.NewCachedFoodService(base, cache.NewRedisCache(ctx.Redis))
	m.handler = handler.NewFoodHandler(m.service)

	// 2. 注册路由
	m.setupRoutes(ctx.Router)
	return nil
}

// Service 暴露给订单模块做计价查询
func (m *FoodModule) Service() service.FoodService {
	return m.service
}

func (m *FoodModule) setupRoutes(r *gin.Engine) {
	foods := r.Group("/food")
	{
		foods.GET("/list", m.handler.ListFood)

		// 管理员接口
		admin := foods.Group("")
		admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
		{
			admin.POST("/add", m.handler.AddFood)
			admin.POST("/remove", m.handler.RemoveFood)
		}
	}
}
