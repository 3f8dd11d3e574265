package gateway

import (
	"testing"

	"food_delivery_api/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestNewAlipayGateway(t *testing.T) {
	t.Run("missing app id", func(t *testing.T) {
		_, err := NewAlipayGateway(config.AlipayConfig{})
		assert.Error(t, err)
	})

	t.Run("malformed private key", func(t *testing.T) {
		_, err := NewAlipayGateway(config.AlipayConfig{
			AppID:      "2021000000000000",
			PrivateKey: "not-a-key",
		})
		assert.Error(t, err)
	})
}

func TestReturnURLs(t *testing.T) {
	t.Run("success URL with session placeholder", func(t *testing.T) {
		u := successURL("http://localhost:5173", "order-1", "{CHECKOUT_SESSION_ID}")
		assert.Equal(t, "http://localhost:5173/verify?orderId=order-1&success=true&session_id={CHECKOUT_SESSION_ID}", u)
	})

	t.Run("success URL without placeholder", func(t *testing.T) {
		u := successURL("http://localhost:5173", "order-1", "")
		assert.Equal(t, "http://localhost:5173/verify?orderId=order-1&success=true", u)
	})

	t.Run("cancel URL", func(t *testing.T) {
		u := cancelURL("http://localhost:5173", "order-1")
		assert.Equal(t, "http://localhost:5173/verify?orderId=order-1&success=false", u)
	})
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1200), toMinorUnits(12))
	assert.Equal(t, int64(1250), toMinorUnits(12.5))
	// 浮点噪声不能影响取整
	assert.Equal(t, int64(1999), toMinorUnits(19.99))
	assert.Equal(t, int64(200), toMinorUnits(2.0))
}
