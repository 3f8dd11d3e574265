package gateway

import (
	"context"
	"errors"
	"fmt"
)

// 渠道名称
const (
	ChannelStripe = "stripe"
	ChannelAlipay = "alipay"
)

// PaymentStatusPaid 处理器侧确认已支付的状态值
const PaymentStatusPaid = "paid"

var ErrSessionNotFound = errors.New("checkout session not found")

// LineItem 结算单行项目
type LineItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"` // 单价，主货币单位
	Quantity int     `json:"quantity"`
}

// Session 托管收银台会话
type Session struct {
	ID  string `json:"id"`
	URL string `json:"url"` // 用户跳转地址
}

// SessionStatus 会话支付状态
type SessionStatus struct {
	PaymentStatus   string `json:"paymentStatus"`
	PaymentIntentID string `json:"paymentIntentId,omitempty"`
}

// CheckoutGateway 收银台网关接口
// 创建会话拿跳转链接，事后查询会话确认支付结果
type CheckoutGateway interface {
	CreateSession(ctx context.Context, orderID string, items []LineItem, deliveryFee float64, returnOrigin string) (*Session, error)
	RetrieveSession(ctx context.Context, sessionID string) (*SessionStatus, error)
}

// successURL 支付完成后的回跳地址
// session_id 占位符由 Stripe 在重定向时替换；支付宝渠道不带该参数
func successURL(origin, orderID, sessionPlaceholder string) string {
	u := fmt.Sprintf("%s/verify?orderId=%s&success=true", origin, orderID)
	if sessionPlaceholder != "" {
		u += "&session_id=" + sessionPlaceholder
	}
	return u
}

// cancelURL 用户取消支付后的回跳地址
func cancelURL(origin, orderID string) string {
	return fmt.Sprintf("%s/verify?orderId=%s&success=false", origin, orderID)
}
