package admin

import (
	"food_delivery_api/internal/domain/admin/handler"
	"food_delivery_api/internal/domain/admin/repository"
	"food_delivery_api/internal/pkg/middleware"
	"food_delivery_api/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// AdminModule 运营后台模块
type AdminModule struct {
	handler *handler.AdminHandler
}

func init() {
	registry.Register(&AdminModule{})
}

func (m *AdminModule) Name() string {
	return "admin"
}

func (m *AdminModule) Priority() int {
	return 40
}

func (m *AdminModule) Init(ctx *registry.ModuleContext) error {
	// 统计走 sqlx 原生查询
	repo := repository.NewStatsRepository(ctx.SqlxDB)
	m.handler = handler.NewAdminHandler(repo)

	m.setupRoutes(ctx.Router)
	return nil
}

func (m *AdminModule) setupRoutes(r *gin.Engine) {
	admins := r.Group("/admin")
	admins.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admins.GET("/stats", m.handler.GetStats)
	}
}
