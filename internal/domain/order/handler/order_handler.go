package handler

import (
	"errors"
	"net/http"

	"food_delivery_api/internal/domain/order/model"
	"food_delivery_api/internal/domain/order/service"
	"food_delivery_api/pkg/response"
	"food_delivery_api/pkg/utils"

	"github.com/gin-gonic/gin"
)

// OrderHandler 订单处理器
type OrderHandler struct {
	service service.OrderService
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

// PlaceOrderItemRequest 下单行项目
type PlaceOrderItemRequest struct {
	FoodID   string `json:"foodId" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

// PlaceOrderRequest 下单请求
type PlaceOrderRequest struct {
	Items   []PlaceOrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Amount  float64                 `json:"amount" binding:"required,gt=0"`
	Address model.Address           `json:"address" binding:"required"`
	Channel string                  `json:"channel"` // 空则使用默认渠道
}

// PlaceOrder 下单并创建收银台会话
// @Summary 下单
// @Tags Order
// @Accept json
// @Produce json
// @Param request body PlaceOrderRequest true "订单"
// @Success 200 {object} response.Response{data=service.PlaceOrderResult}
// @Security BearerAuth
// @Router /order/place [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid request: "+err.Error())
		return
	}

	items := make([]service.PlaceOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.PlaceOrderItem{FoodID: item.FoodID, Quantity: item.Quantity})
	}

	result, err := h.service.PlaceOrder(c.Request.Context(), c.GetString("userID"), items, req.Amount, req.Address, req.Channel)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyOrder):
			response.Error(c, http.StatusBadRequest, response.ErrCartEmpty, "Order has no items")
		case errors.Is(err, service.ErrInvalidQuantity),
			errors.Is(err, service.ErrUnknownItem):
			response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		case errors.Is(err, service.ErrAmountMismatch):
			response.Error(c, http.StatusBadRequest, response.ErrAmountMismatch, "Order amount does not match catalog prices")
		case errors.Is(err, service.ErrPaymentFailed):
			response.Fail(c, response.ErrPaymentFailed, "Failed to create checkout session")
		default:
			response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to place order")
		}
		return
	}

	response.Success(c, result)
}

// VerifyOrderRequest 支付校验请求 (支付完成后前端回跳调用)
type VerifyOrderRequest struct {
	OrderID   string `json:"orderId" binding:"required"`
	Success   string `json:"success" binding:"required"` // "true" / "false"
	SessionID string `json:"sessionId"`
}

// VerifyOrder 支付结果校验
// @Summary 支付结果校验
// @Tags Order
// @Accept json
// @Produce json
// @Param request body VerifyOrderRequest true "校验参数"
// @Success 200 {object} response.Response{data=service.VerifyResult}
// @Router /order/verify [post]
func (h *OrderHandler) VerifyOrder(c *gin.Context) {
	var req VerifyOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid request")
		return
	}

	result, err := h.service.VerifyOrder(c.Request.Context(), req.OrderID, req.Success == "true", req.SessionID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			response.Error(c, http.StatusNotFound, response.ErrOrderNotFound, "Order not found")
			return
		}
		response.Fail(c, response.ErrPaymentFailed, "Payment verification failed")
		return
	}

	if !result.Paid {
		response.Fail(c, response.ErrPaymentNotPaid, "Payment not completed, order discarded")
		return
	}

	response.Success(c, result)
}

// UserOrders 获取当前用户订单
// @Summary 获取当前用户订单
// @Tags Order
// @Produce json
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /order/user [post]
func (h *OrderHandler) UserOrders(c *gin.Context) {
	orders, err := h.service.GetUserOrders(c.GetString("userID"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch orders")
		return
	}
	response.Success(c, orders)
}

// ListOrders 获取全部订单 (管理员)
// @Summary 获取全部订单
// @Tags Order
// @Produce json
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /order/list [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var p utils.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid pagination params")
		return
	}
	p.Normalize()

	orders, total, err := h.service.ListOrders(p.Page, p.Limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch orders")
		return
	}

	response.Success(c, utils.NewPageResult(orders, total, p))
}

// UpdateStatusRequest 更新配送状态请求
type UpdateStatusRequest struct {
	OrderID string `json:"orderId" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

// UpdateStatus 更新配送状态 (管理员)
// @Summary 更新配送状态
// @Tags Order
// @Accept json
// @Produce json
// @Param request body UpdateStatusRequest true "状态"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /order/status [post]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid request")
		return
	}

	if err := h.service.UpdateStatus(req.OrderID, req.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			response.Error(c, http.StatusNotFound, response.ErrOrderNotFound, "Order not found")
		case errors.Is(err, service.ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, response.ErrInvalidStatus, "Invalid order status")
		default:
			response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to update status")
		}
		return
	}

	response.Success(c, nil)
}
