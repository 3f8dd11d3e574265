package model

import (
	baseModel "food_delivery_api/pkg/model"
)

// Food 菜品模型
type Food struct {
	baseModel.BaseModel
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Image       string  `json:"image"` // OSS URL
	Category    string  `gorm:"index" json:"category"`
}
