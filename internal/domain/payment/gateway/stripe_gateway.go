package gateway

import (
	"context"
	"fmt"
	"math"

	"food_delivery_api/internal/pkg/config"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// StripeGateway Stripe 托管收银台实现（默认渠道）
type StripeGateway struct {
	sc       *client.API
	currency string
}

var _ CheckoutGateway = (*StripeGateway)(nil)

// NewStripeGateway 创建 Stripe 网关，client 持有独立的 key，不碰全局 stripe.Key
func NewStripeGateway(cfg config.StripeConfig) *StripeGateway {
	sc := &client.API{}
	sc.Init(cfg.SecretKey, nil)
	return &StripeGateway{
		sc:       sc,
		currency: cfg.Currency,
	}
}

// toMinorUnits 主货币单位转最小货币单位 (美元 -> 美分)
func toMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreateSession 创建 Checkout Session
// 配送费作为独立行项目；success_url 带 {CHECKOUT_SESSION_ID} 占位符供 Stripe 回填
func (g *StripeGateway) CreateSession(ctx context.Context, orderID string, items []LineItem, deliveryFee float64, returnOrigin string) (*Session, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items)+1)
	for _, item := range items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(g.currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(toMinorUnits(item.Price)),
			},
			Quantity: stripe.Int64(int64(item.Quantity)),
		})
	}

	if deliveryFee > 0 {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(g.currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String("Delivery Charges"),
				},
				UnitAmount: stripe.Int64(toMinorUnits(deliveryFee)),
			},
			Quantity: stripe.Int64(1),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Params:     stripe.Params{Context: ctx},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  lineItems,
		SuccessURL: stripe.String(successURL(returnOrigin, orderID, "{CHECKOUT_SESSION_ID}")),
		CancelURL:  stripe.String(cancelURL(returnOrigin, orderID)),
	}

	sess, err := g.sc.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe create session: %w", err)
	}

	return &Session{ID: sess.ID, URL: sess.URL}, nil
}

// RetrieveSession 查询会话支付状态
func (g *StripeGateway) RetrieveSession(ctx context.Context, sessionID string) (*SessionStatus, error) {
	sess, err := g.sc.CheckoutSessions.Get(sessionID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return nil, fmt.Errorf("stripe retrieve session: %w", err)
	}

	status := &SessionStatus{
		PaymentStatus: string(sess.PaymentStatus),
	}
	if sess.PaymentIntent != nil {
		status.PaymentIntentID = sess.PaymentIntent.ID
	}
	return status, nil
}
