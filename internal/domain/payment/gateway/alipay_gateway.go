package gateway

import (
	"context"
	"errors"
	"fmt"

	"food_delivery_api/internal/pkg/config"

	"github.com/smartwalle/alipay/v3"
)

// AlipayGateway 支付宝电脑网站支付实现（可选渠道，配置齐全时才注册）
// 页面支付只产出跳转 URL，商户订单号兼作会话句柄，查询走 TradeQuery
type AlipayGateway struct {
	client *alipay.Client
	config config.AlipayConfig
}

var _ CheckoutGateway = (*AlipayGateway)(nil)

func NewAlipayGateway(cfg config.AlipayConfig) (*AlipayGateway, error) {
	if cfg.AppID == "" {
		return nil, errors.New("alipay config missing")
	}

	client, err := alipay.New(cfg.AppID, cfg.PrivateKey, cfg.IsProduction)
	if err != nil {
		return nil, err
	}

	// 加载支付宝公钥 (用于验证签名)
	if err = client.LoadAliPayPublicKey(cfg.PublicKey); err != nil {
		return nil, err
	}

	return &AlipayGateway{
		client: client,
		config: cfg,
	}, nil
}

// CreateSession 发起电脑网站支付，返回收银台跳转地址
func (g *AlipayGateway) CreateSession(ctx context.Context, orderID string, items []LineItem, deliveryFee float64, returnOrigin string) (*Session, error) {
	total := deliveryFee
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}

	p := alipay.TradePagePay{}
	p.Subject = "Food order " + orderID
	p.OutTradeNo = orderID
	p.TotalAmount = fmt.Sprintf("%.2f", total)
	p.ProductCode = "FAST_INSTANT_TRADE_PAY" // 电脑网站支付产品码
	// 支付宝同步回跳不支持占位符，回跳后前端用 orderId 调 verify
	p.ReturnURL = successURL(returnOrigin, orderID, "")

	payURL, err := g.client.TradePagePay(p)
	if err != nil {
		return nil, fmt.Errorf("alipay page pay: %w", err)
	}

	return &Session{ID: orderID, URL: payURL.String()}, nil
}

// RetrieveSession 查询交易状态，sessionID 即商户订单号
// v3.2.x 的 TradeQuery 不接受 context，超时由 SDK 内部 HTTP client 控制
func (g *AlipayGateway) RetrieveSession(_ context.Context, sessionID string) (*SessionStatus, error) {
	rsp, err := g.client.TradeQuery(alipay.TradeQuery{OutTradeNo: sessionID})
	if err != nil {
		return nil, fmt.Errorf("alipay trade query: %w", err)
	}

	status := &SessionStatus{PaymentIntentID: rsp.TradeNo}

	// TRADE_SUCCESS 或 TRADE_FINISHED 表示已支付
	if rsp.TradeStatus == alipay.TradeStatusSuccess || rsp.TradeStatus == alipay.TradeStatusFinished {
		status.PaymentStatus = PaymentStatusPaid
	} else {
		status.PaymentStatus = string(rsp.TradeStatus)
	}
	return status, nil
}
