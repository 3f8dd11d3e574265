package service

import (
	"context"
	"errors"
	"testing"

	"food_delivery_api/internal/domain/payment/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockGateway 模拟收银台网关
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateSession(ctx context.Context, orderID string, items []gateway.LineItem, deliveryFee float64, returnOrigin string) (*gateway.Session, error) {
	args := m.Called(ctx, orderID, items, deliveryFee, returnOrigin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.Session), args.Error(1)
}

func (m *MockGateway) RetrieveSession(ctx context.Context, sessionID string) (*gateway.SessionStatus, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.SessionStatus), args.Error(1)
}

func TestCreateCheckoutSession(t *testing.T) {
	items := []gateway.LineItem{{Name: "Greek salad", Price: 12, Quantity: 2}}

	t.Run("routes to default channel when channel empty", func(t *testing.T) {
		gw := new(MockGateway)
		svc := NewPaymentService(gateway.ChannelStripe)
		svc.RegisterGateway(gateway.ChannelStripe, gw)

		gw.On("CreateSession", mock.Anything, "order-1", items, 2.0, "http://localhost:5173").
			Return(&gateway.Session{ID: "cs_123", URL: "https://checkout.example/cs_123"}, nil)

		sess, err := svc.CreateCheckoutSession(context.Background(), "", "order-1", items, 2.0, "http://localhost:5173")

		assert.NoError(t, err)
		assert.Equal(t, "cs_123", sess.ID)
		gw.AssertExpectations(t)
	})

	t.Run("unknown channel", func(t *testing.T) {
		svc := NewPaymentService(gateway.ChannelStripe)

		_, err := svc.CreateCheckoutSession(context.Background(), "wechat", "order-1", items, 2.0, "http://localhost:5173")

		assert.ErrorIs(t, err, ErrChannelNotSupported)
	})

	t.Run("gateway error surfaces to caller", func(t *testing.T) {
		gw := new(MockGateway)
		svc := NewPaymentService(gateway.ChannelStripe)
		svc.RegisterGateway(gateway.ChannelStripe, gw)

		gw.On("CreateSession", mock.Anything, "order-1", items, 2.0, "http://localhost:5173").
			Return(nil, errors.New("processor unavailable"))

		_, err := svc.CreateCheckoutSession(context.Background(), "", "order-1", items, 2.0, "http://localhost:5173")

		assert.Error(t, err)
	})
}

func TestVerifySession(t *testing.T) {
	t.Run("returns processor status", func(t *testing.T) {
		gw := new(MockGateway)
		svc := NewPaymentService(gateway.ChannelStripe)
		svc.RegisterGateway(gateway.ChannelStripe, gw)

		gw.On("RetrieveSession", mock.Anything, "cs_123").
			Return(&gateway.SessionStatus{PaymentStatus: gateway.PaymentStatusPaid, PaymentIntentID: "pi_456"}, nil)

		status, err := svc.VerifySession(context.Background(), "", "cs_123")

		assert.NoError(t, err)
		assert.Equal(t, gateway.PaymentStatusPaid, status.PaymentStatus)
		assert.Equal(t, "pi_456", status.PaymentIntentID)
	})

	t.Run("unknown channel", func(t *testing.T) {
		svc := NewPaymentService(gateway.ChannelStripe)

		_, err := svc.VerifySession(context.Background(), "wechat", "cs_123")

		assert.ErrorIs(t, err, ErrChannelNotSupported)
	})
}
