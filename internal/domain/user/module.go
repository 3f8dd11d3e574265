package user

import (
	"food_delivery_api/internal/domain/user/handler"
	"food_delivery_api/internal/domain/user/repository"
	"food_delivery_api/internal/domain/user/service"
	"food_delivery_api/internal/pkg/middleware"
	"food_delivery_api/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// UserModule 用户模块
type UserModule struct {
	handler *handler.UserHandler
}

func init() {
	registry.Register(&UserModule{})
}

func (m *UserModule) Name() string {
	return "user"
}

func (m *UserModule) Priority() int {
	return 1 // 基础模块，最先初始化
}

func (m *UserModule) Init(ctx *registry.ModuleContext) error {
	// 1. 依赖注入
	repo := repository.NewUserRepository(ctx.DB)
	svc := service.NewUserService(repo)
	m.handler = handler.NewUserHandler(svc)

	// 2. 注册路由
	m.setupRoutes(ctx.Router)
	return nil
}

func (m *UserModule) setupRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", m.handler.Register)
		auth.POST("/login", m.handler.Login)
	}

	r.GET("/user/profile", middleware.AuthMiddleware(), m.handler.Profile)

	// 管理员接口
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		users.GET("", m.handler.GetUsers)
		users.PUT("/:id/role", m.handler.UpdateRole)
		users.PUT("/:id/status", m.handler.UpdateStatus)
		users.DELETE("/:id", m.handler.DeleteUser)
	}
}
