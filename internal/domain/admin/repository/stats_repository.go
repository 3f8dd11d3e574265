package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Stats 运营统计
type Stats struct {
	TotalUsers     int64          `db:"-" json:"totalUsers"`
	TotalFoods     int64          `db:"-" json:"totalFoods"`
	TotalOrders    int64          `db:"-" json:"totalOrders"`
	PaidOrders     int64          `db:"-" json:"paidOrders"`
	Revenue        float64        `db:"-" json:"revenue"` // 已支付订单总额
	OrdersByStatus map[string]int `db:"-" json:"ordersByStatus"`
}

// StatsRepository 统计仓库接口
type StatsRepository interface {
	GetStats(ctx context.Context) (*Stats, error)
}

// statsRepository 走 sqlx 原生聚合查询，绕开 ORM
type statsRepository struct {
	db *sqlx.DB
}

// NewStatsRepository 创建统计仓库
func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

type statusCount struct {
	Status string `db:"status"`
	Count  int    `db:"count"`
}

// GetStats 汇总仪表盘统计
func (r *statsRepository) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{OrdersByStatus: make(map[string]int)}

	if err := r.db.GetContext(ctx, &stats.TotalUsers,
		`SELECT COUNT(*) FROM users WHERE deleted_at IS NULL`); err != nil {
		return nil, err
	}

	if err := r.db.GetContext(ctx, &stats.TotalFoods,
		`SELECT COUNT(*) FROM foods WHERE deleted_at IS NULL`); err != nil {
		return nil, err
	}

	if err := r.db.GetContext(ctx, &stats.TotalOrders,
		`SELECT COUNT(*) FROM orders WHERE deleted_at IS NULL`); err != nil {
		return nil, err
	}

	if err := r.db.GetContext(ctx, &stats.PaidOrders,
		`SELECT COUNT(*) FROM orders WHERE deleted_at IS NULL AND payment = true`); err != nil {
		return nil, err
	}

	if err := r.db.GetContext(ctx, &stats.Revenue,
		`SELECT COALESCE(SUM(amount), 0) FROM orders WHERE deleted_at IS NULL AND payment = true`); err != nil {
		return nil, err
	}

	var counts []statusCount
	if err := r.db.SelectContext(ctx, &counts,
		`SELECT status, COUNT(*) AS count FROM orders WHERE deleted_at IS NULL GROUP BY status`); err != nil {
		return nil, err
	}
	for _, c := range counts {
		stats.OrdersByStatus[c.Status] = c.Count
	}

	return stats, nil
}
