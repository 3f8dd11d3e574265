package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	baseModel "food_delivery_api/pkg/model"
)

// 订单配送状态流转: Food Processing -> Out for Delivery -> Delivered
const (
	StatusFoodProcessing = "Food Processing"
	StatusOutForDelivery = "Out for Delivery"
	StatusDelivered      = "Delivered"
)

// ValidStatus 校验配送状态取值
func ValidStatus(status string) bool {
	switch status {
	case StatusFoodProcessing, StatusOutForDelivery, StatusDelivered:
		return true
	}
	return false
}

// OrderItem 订单行项目，下单时按菜单快照价格落库
type OrderItem struct {
	FoodID   string  `json:"foodId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OrderItems 落库为 JSONB
type OrderItems []OrderItem

func (i OrderItems) Value() (driver.Value, error) {
	if i == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(i)
}

func (i *OrderItems) Scan(value interface{}) error {
	return scanJSON(value, i)
}

// Address 收货地址
type Address struct {
	Name    string `json:"name"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zipcode string `json:"zipcode"`
	Country string `json:"country"`
	Phone   string `json:"phone"`
}

func (a Address) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *Address) Scan(value interface{}) error {
	return scanJSON(value, a)
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for JSONB scan")
	}
	return json.Unmarshal(data, dest)
}

// Order 订单模型
type Order struct {
	baseModel.BaseModel
	UserID          string     `gorm:"index;not null" json:"userId"`
	Items           OrderItems `gorm:"type:jsonb;not null" json:"items"`
	Amount          float64    `gorm:"not null" json:"amount"` // 含配送费
	Address         Address    `gorm:"type:jsonb" json:"address"`
	Status          string     `gorm:"default:'Food Processing'" json:"status"`
	Payment         bool       `gorm:"default:false" json:"payment"`
	PaidAt          *time.Time `json:"paidAt,omitempty"`
	Channel         string     `json:"channel,omitempty"`         // 支付渠道
	SessionID       string     `json:"sessionId,omitempty"`       // 收银台会话
	PaymentIntentID string     `json:"paymentIntentId,omitempty"` // 处理器侧支付凭据
}
