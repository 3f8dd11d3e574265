package database

import (
	"fmt"
	"log"
	"time"

	"food_delivery_api/internal/pkg/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// InitSqlx 初始化 sqlx 连接 (基于 pgx stdlib 驱动)
// 管理后台的聚合统计直接写 SQL，不走 GORM 模型
func InitSqlx() *sqlx.DB {
	cfg := config.GlobalConfig.Database
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName, cfg.SSLMode)

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		log.Fatalf("Failed to connect sqlx to database: %v", err)
	}

	// 报表查询量小，连接池保持精简
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	return db
}
