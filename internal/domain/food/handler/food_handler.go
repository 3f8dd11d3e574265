package handler

import (
	"errors"
	"net/http"
	"strconv"

	"food_delivery_api/internal/domain/food/service"
	"food_delivery_api/pkg/response"

	"github.com/gin-gonic/gin"
)

// FoodHandler 菜品处理器
type FoodHandler struct {
	service service.FoodService
}

// NewFoodHandler 创建菜品处理器
func NewFoodHandler(s service.FoodService) *FoodHandler {
	return &FoodHandler{service: s}
}

// AddFood 添加菜品 (管理员)
// @Summary 添加菜品
// @Tags Food
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "名称"
// @Param description formData string false "描述"
// @Param price formData number true "价格"
// @Param category formData string false "分类"
// @Param image formData file false "图片"
// @Success 200 {object} response.Response{data=model.Food}
// @Security BearerAuth
// @Router /food/add [post]
func (h *FoodHandler) AddFood(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Name is required")
		return
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid price")
		return
	}

	// 图片可选
	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	food, err := h.service.AddFood(name, c.PostForm("description"), c.PostForm("category"), price, image)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPrice) {
			response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Price must be positive")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to add food")
		return
	}

	response.Success(c, food)
}

// ListFood 获取菜品列表
// @Summary 获取菜品列表
// @Tags Food
// @Produce json
// @Param category query string false "分类"
// @Success 200 {object} response.Response
// @Router /food/list [get]
func (h *FoodHandler) ListFood(c *gin.Context) {
	foods, err := h.service.GetFoods(c.Query("category"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch foods")
		return
	}
	response.Success(c, foods)
}

// RemoveRequest 删除菜品请求
type RemoveRequest struct {
	ID string `json:"id" binding:"required"`
}

// RemoveFood 删除菜品 (管理员)
// @Summary 删除菜品
// @Tags Food
// @Accept json
// @Produce json
// @Param request body RemoveRequest true "菜品ID"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /food/remove [post]
func (h *FoodHandler) RemoveFood(c *gin.Context) {
	var req RemoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid request")
		return
	}

	if err := h.service.RemoveFood(req.ID); err != nil {
		if errors.Is(err, service.ErrFoodNotFound) {
			response.Error(c, http.StatusNotFound, response.ErrFoodNotFound, "Food not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to remove food")
		return
	}

	response.Success(c, nil)
}
