package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	baseModel "food_delivery_api/pkg/model"
)

// ItemsMap foodID -> 数量，落库为 JSONB
type ItemsMap map[string]int

// Value 实现 driver.Valuer
func (m ItemsMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan 实现 sql.Scanner
func (m *ItemsMap) Scan(value interface{}) error {
	if value == nil {
		*m = ItemsMap{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for ItemsMap")
	}
	return json.Unmarshal(data, m)
}

// Cart 购物车模型，每个用户一行
type Cart struct {
	baseModel.BaseModel
	UserID string   `gorm:"uniqueIndex;not null" json:"userId"`
	Items  ItemsMap `gorm:"type:jsonb;default:'{}'" json:"items"`
}
