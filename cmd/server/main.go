package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"food_delivery_api/docs"
	"food_delivery_api/internal/pkg/config"
	"food_delivery_api/internal/pkg/middleware"
	"food_delivery_api/internal/pkg/registry"
	"food_delivery_api/internal/pkg/uploader"
	"food_delivery_api/pkg/database"
	"food_delivery_api/pkg/logger"

	// 域模块通过 init() 自注册
	_ "food_delivery_api/internal/domain/admin"
	_ "food_delivery_api/internal/domain/cart"
	_ "food_delivery_api/internal/domain/common"
	_ "food_delivery_api/internal/domain/food"
	_ "food_delivery_api/internal/domain/order"
	_ "food_delivery_api/internal/domain/payment"
	_ "food_delivery_api/internal/domain/promo"
	_ "food_delivery_api/internal/domain/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title Food Delivery API
// @version 1.0
// @description 外卖平台后端：菜单、购物车、订单与托管收银台支付
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. 加载配置
	config.LoadConfig()

	// 2. 初始化日志
	logger.Init(config.GlobalConfig.App.Debug)
	defer logger.Sync()

	// 3. 初始化存储
	db := database.InitDatabase()
	sqlxDB := database.InitSqlx()
	rdb := database.InitRedis()

	// 4. OSS 上传（未配置时仅告警，上传接口返回错误）
	if err := uploader.InitUploader(); err != nil {
		logger.Log.Warn("OSS uploader not initialized", zap.Error(err))
	}

	// 5. 初始化 Gin
	gin.SetMode(config.GlobalConfig.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.TraceMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// CORS: 前端站点跨域调用
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{config.GlobalConfig.App.FrontendURL}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// swagger 文档
	docs.Register()
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 6. 按优先级初始化所有模块
	moduleCtx := &registry.ModuleContext{
		DB:     db,
		SqlxDB: sqlxDB,
		Redis:  rdb,
		Router: router,
	}
	if err := registry.InitModules(moduleCtx); err != nil {
		logger.Log.Fatal("Failed to initialize modules", zap.Error(err))
	}

	// 7. 启动 HTTP 服务
	srv := &http.Server{
		Addr:    ":" + config.GlobalConfig.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Log.Info("Server starting", zap.String("port", config.GlobalConfig.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// 8. 优雅退出
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Log.Info("Server exited")
}
