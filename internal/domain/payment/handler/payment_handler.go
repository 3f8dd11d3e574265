package handler

import (
	"errors"
	"net/http"

	"food_delivery_api/internal/domain/payment/gateway"
	"food_delivery_api/internal/domain/payment/service"
	"food_delivery_api/internal/pkg/config"
	"food_delivery_api/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentHandler 支付处理器
type PaymentHandler struct {
	service service.PaymentService
}

// NewPaymentHandler 创建支付处理器
func NewPaymentHandler(s service.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: s}
}

// LineItemRequest 结算行项目
type LineItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Quantity int     `json:"quantity" binding:"required,gt=0"`
}

// CreateSessionRequest 创建会话请求
type CreateSessionRequest struct {
	OrderID     string            `json:"orderId" binding:"required"`
	Items       []LineItemRequest `json:"items" binding:"required,min=1,dive"`
	DeliveryFee float64           `json:"deliveryFee" binding:"gte=0"`
	Channel     string            `json:"channel"` // 空则使用默认渠道
}

// CreateCheckoutSession 创建托管收银台会话
// @Summary 创建托管收银台会话
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body CreateSessionRequest true "会话参数"
// @Success 200 {object} response.Response{data=gateway.Session}
// @Security BearerAuth
// @Router /payment/create-checkout-session [post]
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid request: "+err.Error())
		return
	}

	items := make([]gateway.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, gateway.LineItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	sess, err := h.service.CreateCheckoutSession(
		c.Request.Context(),
		req.Channel,
		req.OrderID,
		items,
		req.DeliveryFee,
		config.GlobalConfig.App.FrontendURL,
	)
	if err != nil {
		if errors.Is(err, service.ErrChannelNotSupported) {
			response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Unsupported payment channel")
			return
		}
		response.Fail(c, response.ErrPaymentFailed, "Failed to create checkout session")
		return
	}

	response.Success(c, sess)
}

// VerifySessionRequest 查询会话请求
type VerifySessionRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	Channel   string `json:"channel"`
}

// VerifySession 查询会话支付状态
// @Summary 查询会话支付状态
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body VerifySessionRequest true "会话ID"
// @Success 200 {object} response.Response{data=gateway.SessionStatus}
// @Router /payment/verify [post]
func (h *PaymentHandler) VerifySession(c *gin.Context) {
	var req VerifySessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid request")
		return
	}

	status, err := h.service.VerifySession(c.Request.Context(), req.Channel, req.SessionID)
	if err != nil {
		if errors.Is(err, service.ErrChannelNotSupported) {
			response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Unsupported payment channel")
			return
		}
		response.Fail(c, response.ErrPaymentFailed, "Failed to verify session")
		return
	}

	response.Success(c, status)
}
