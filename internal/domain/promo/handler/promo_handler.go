package handler

import (
	"errors"
	"net/http"
	"time"

	"food_delivery_api/internal/domain/promo/service"
	"food_delivery_api/pkg/response"

	"github.com/gin-gonic/gin"
)

// PromoHandler 优惠券处理器
type PromoHandler struct {
	service service.PromoService
}

// NewPromoHandler 创建优惠券处理器
func NewPromoHandler(s service.PromoService) *PromoHandler {
	return &PromoHandler{service: s}
}

// CreatePromoRequest 创建优惠券请求
type CreatePromoRequest struct {
	Name      string    `json:"name" binding:"required"`
	Total     int       `json:"total" binding:"required,gt=0"`
	Amount    float64   `json:"amount" binding:"required,gt=0"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
}

// CreatePromo 创建优惠券 (管理员)
// @Summary 创建优惠券
// @Tags Promo
// @Accept json
// @Produce json
// @Param request body CreatePromoRequest true "优惠券"
// @Success 200 {object} response.Response{data=model.Promo}
// @Security BearerAuth
// @Router /promo/create [post]
func (h *PromoHandler) CreatePromo(c *gin.Context) {
	var req CreatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid request: "+err.Error())
		return
	}

	promo, err := h.service.CreatePromo(req.Name, req.Total, req.Amount, req.StartTime, req.EndTime)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to create promo")
		return
	}

	response.Success(c, promo)
}

// ClaimPromoRequest 领取请求
type ClaimPromoRequest struct {
	PromoID string `json:"promoId" binding:"required"`
}

// ClaimPromo 领取优惠券
// @Summary 领取优惠券
// @Tags Promo
// @Accept json
// @Produce json
// @Param request body ClaimPromoRequest true "优惠券ID"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /promo/claim [post]
func (h *PromoHandler) ClaimPromo(c *gin.Context) {
	var req ClaimPromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid request")
		return
	}

	if err := h.service.ClaimPromo(c.GetString("userID"), req.PromoID); err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyClaimed):
			response.Fail(c, response.ErrPromoClaimed, "You have already claimed this promo")
		case errors.Is(err, service.ErrOutOfStock):
			response.Fail(c, response.ErrPromoOutOfStock, "Promo out of stock")
		case errors.Is(err, service.ErrPromoNotFound):
			response.Error(c, http.StatusNotFound, response.ErrPromoNotFound, "Promo not found")
		default:
			response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to claim promo")
		}
		return
	}

	response.Success(c, nil)
}

// MyPromos 获取当前用户持券
// @Summary 获取当前用户持券
// @Tags Promo
// @Produce json
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /promo/mine [get]
func (h *PromoHandler) MyPromos(c *gin.Context) {
	promos, err := h.service.GetUserPromos(c.GetString("userID"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch promos")
		return
	}
	response.Success(c, promos)
}
