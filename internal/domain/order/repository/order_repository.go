package repository

import (
	"time"

	"food_delivery_api/internal/domain/order/model"

	"gorm.io/gorm"
)

// OrderRepository 订单仓库接口
type OrderRepository interface {
	Create(order *model.Order) error
	GetByID(id string) (*model.Order, error)
	Delete(order *model.Order) error
	SetSession(id, channel, sessionID string) error
	MarkPaid(id, paymentIntentID string, paidAt time.Time) error
	UpdateStatus(id, status string) error
	ListByUser(userID string) ([]model.Order, error)
	ListAll(offset, limit int) ([]model.Order, int64, error)
}

// orderRepository 实现
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create 创建订单
func (r *orderRepository) Create(order *model.Order) error {
	return r.db.Create(order).Error
}

// GetByID 根据ID获取订单
func (r *orderRepository) GetByID(id string) (*model.Order, error) {
	var order model.Order
	if err := r.db.Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// Delete 删除订单（支付失败/取消的补偿动作）
func (r *orderRepository) Delete(order *model.Order) error {
	return r.db.Unscoped().Delete(order).Error
}

// SetSession 记录收银台会话引用
func (r *orderRepository) SetSession(id, channel, sessionID string) error {
	return r.db.Model(&model.Order{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"channel":    channel,
			"session_id": sessionID,
		}).Error
}

// MarkPaid 标记订单已支付，幂等：已支付的订单不再改写 paid_at
func (r *orderRepository) MarkPaid(id, paymentIntentID string, paidAt time.Time) error {
	return r.db.Model(&model.Order{}).
		Where("id = ? AND payment = ?", id, false).
		Updates(map[string]interface{}{
			"payment":           true,
			"paid_at":           paidAt,
			"payment_intent_id": paymentIntentID,
		}).Error
}

// UpdateStatus 更新配送状态
func (r *orderRepository) UpdateStatus(id, status string) error {
	result := r.db.Model(&model.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByUser 获取用户订单，最新的在前
func (r *orderRepository) ListByUser(userID string) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListAll 获取全部订单（管理员，分页）
func (r *orderRepository) ListAll(offset, limit int) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64

	if err := r.db.Model(&model.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}
