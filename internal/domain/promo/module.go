package promo

import (
	"food_delivery_api/internal/domain/promo/handler"
	"food_delivery_api/internal/domain/promo/repository"
	"food_delivery_api/internal/domain/promo/service"
	"food_delivery_api/internal/pkg/middleware"
	"food_delivery_api/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// PromoModule 优惠券模块
type PromoModule struct {
	handler *handler.PromoHandler
}

func init() {
	registry.Register(&PromoModule{})
}

func (m *PromoModule) Name() string {
	return "promo"
}

func (m *PromoModule) Priority() int {
	return 30
}

func (m *PromoModule) Init(ctx *registry.ModuleContext) error {
	// 1. 依赖注入，领取走 Redis + Worker Pool
	repo := repository.NewPromoRepository(ctx.DB)
	svc := service.NewPromoService(repo, ctx.Redis)
	m.handler = handler.NewPromoHandler(svc)

	// 2. 注册路由
	m.setupRoutes(ctx.Router)
	return nil
}

func (m *PromoModule) setupRoutes(r *gin.Engine) {
	promos := r.Group("/promo")
	promos.Use(middleware.AuthMiddleware())
	{
		promos.POST("/claim", m.handler.ClaimPromo)
		promos.GET("/mine", m.handler.MyPromos)

		// 管理员接口
		admin := promos.Group("")
		admin.Use(middleware.AdminMiddleware())
		{
			admin.POST("/create", m.handler.CreatePromo)
		}
	}
}
