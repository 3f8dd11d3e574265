package handler

import (
	"net/http"

	"food_delivery_api/internal/domain/admin/repository"
	"food_delivery_api/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler 运营后台处理器
type AdminHandler struct {
	stats repository.StatsRepository
}

// NewAdminHandler 创建运营后台处理器
func NewAdminHandler(stats repository.StatsRepository) *AdminHandler {
	return &AdminHandler{stats: stats}
}

// GetStats 获取运营统计
// @Summary 获取运营统计
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Response{data=repository.Stats}
// @Security BearerAuth
// @Router /admin/stats [get]
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.stats.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch stats")
		return
	}
	response.Success(c, stats)
}
