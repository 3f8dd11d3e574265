package handler

import (
	"net/http"

	"food_delivery_api/internal/domain/cart/service"
	"food_delivery_api/pkg/response"

	"github.com/gin-gonic/gin"
)

// CartHandler 购物车处理器
type CartHandler struct {
	service service.CartService
}

// NewCartHandler 创建购物车处理器
func NewCartHandler(s service.CartService) *CartHandler {
	return &CartHandler{service: s}
}

// ItemRequest 购物车条目请求
type ItemRequest struct {
	FoodID string `json:"foodId" binding:"required"`
}

// AddToCart 添加商品到购物车
// @Summary 添加商品到购物车
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body ItemRequest true "菜品ID"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /cart/add [post]
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid request")
		return
	}

	items, err := h.service.AddToCart(c.GetString("userID"), req.FoodID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to add to cart")
		return
	}

	response.Success(c, gin.H{"cartData": items})
}

// RemoveFromCart 从购物车移除商品
// @Summary 从购物车移除商品
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body ItemRequest true "菜品ID"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /cart/remove [post]
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid request")
		return
	}

	items, err := h.service.RemoveFromCart(c.GetString("userID"), req.FoodID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to remove from cart")
		return
	}

	response.Success(c, gin.H{"cartData": items})
}

// GetCart 获取购物车
// @Summary 获取购物车
// @Tags Cart
// @Produce json
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /cart/get [post]
func (h *CartHandler) GetCart(c *gin.Context) {
	items, err := h.service.GetCart(c.GetString("userID"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch cart")
		return
	}

	response.Success(c, gin.H{"cartData": items})
}
