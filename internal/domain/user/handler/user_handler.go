package handler

import (
	"errors"
	"net/http"

	"food_delivery_api/internal/domain/user/model"
	"food_delivery_api/internal/domain/user/service"
	"food_delivery_api/pkg/response"
	"food_delivery_api/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserHandler 用户处理器
type UserHandler struct {
	service service.UserService
}

// NewUserHandler 创建用户处理器
func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse 认证响应
type AuthResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// Register 用户注册
// @Summary 用户注册
// @Tags User
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "注册信息"
// @Success 200 {object} response.Response{data=AuthResponse}
// @Router /auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid request: "+err.Error())
		return
	}

	token, role, err := h.service.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			response.Fail(c, response.ErrUserExists, "User already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Registration failed")
		return
	}

	response.Success(c, AuthResponse{Token: token, Role: model.RoleName(role)})
}

// Login 用户登录
// @Summary 用户登录
// @Tags User
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录信息"
// @Success 200 {object} response.Response{data=AuthResponse}
// @Router /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid request: "+err.Error())
		return
	}

	token, role, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Fail(c, response.ErrAuthFailed, "Invalid email or password")
		case errors.Is(err, service.ErrAccountDeactivated):
			response.Fail(c, response.ErrAuthFailed, "Account has been deactivated")
		default:
			response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Login failed")
		}
		return
	}

	response.Success(c, AuthResponse{Token: token, Role: model.RoleName(role)})
}

// Profile 获取当前用户信息
// @Summary 获取当前用户信息
// @Tags User
// @Produce json
// @Success 200 {object} response.Response{data=model.User}
// @Security BearerAuth
// @Router /user/profile [get]
func (h *UserHandler) Profile(c *gin.Context) {
	user, err := h.service.GetUser(c.GetString("userID"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, response.ErrUserNotFound, "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch profile")
		return
	}
	response.Success(c, user)
}

// GetUsers 获取用户列表 (管理员)
// @Summary 获取用户列表
// @Tags User
// @Produce json
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) GetUsers(c *gin.Context) {
	var p utils.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid pagination params")
		return
	}
	p.Normalize()

	users, total, err := h.service.GetUsers(p.Page, p.Limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch users")
		return
	}

	response.Success(c, utils.NewPageResult(users, total, p))
}

// UpdateRoleRequest 更新角色请求
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// UpdateRole 更新用户角色 (管理员)
// @Summary 更新用户角色
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "用户ID"
// @Param request body UpdateRoleRequest true "角色"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /users/{id}/role [put]
func (h *UserHandler) UpdateRole(c *gin.Context) {
	id := c.Param("id")

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid request")
		return
	}

	role := model.RoleFromName(req.Role)
	if role == 0 {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid role")
		return
	}

	if err := h.service.UpdateRole(id, role); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, response.ErrUserNotFound, "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to update role")
		return
	}

	response.Success(c, nil)
}

// UpdateStatusRequest 更新状态请求
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus 更新用户状态 (管理员)
// @Summary 启用/停用用户
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "用户ID"
// @Param request body UpdateStatusRequest true "状态"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /users/{id}/status [put]
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid request")
		return
	}

	if err := h.service.UpdateStatus(id, req.Status); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, response.ErrUserNotFound, "User not found")
		case errors.Is(err, service.ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid status")
		default:
			response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to update status")
		}
		return
	}

	response.Success(c, nil)
}

// DeleteUser 删除用户 (管理员)
// @Summary 删除用户
// @Tags User
// @Produce json
// @Param id path string true "用户ID"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.DeleteUser(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, response.ErrUserNotFound, "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to delete user")
		return
	}

	response.Success(c, nil)
}
