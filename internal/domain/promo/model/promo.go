package model

import (
	"time"

	baseModel "food_delivery_api/pkg/model"
)

// Promo 限量优惠券
type Promo struct {
	baseModel.BaseModel
	Name      string    `gorm:"not null" json:"name"`
	Total     int       `gorm:"not null" json:"total"`  // 发行量
	Stock     int       `gorm:"not null" json:"stock"`  // 剩余库存
	Amount    float64   `gorm:"not null" json:"amount"` // 抵扣金额
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// 用户券状态
const (
	UserPromoUnused = 1
	UserPromoUsed   = 2
)

// UserPromo 用户持券记录
type UserPromo struct {
	baseModel.BaseModel
	UserID  string `gorm:"index;not null" json:"userId"`
	PromoID string `gorm:"index;not null" json:"promoId"`
	Status  int    `gorm:"default:1" json:"status"`
}
