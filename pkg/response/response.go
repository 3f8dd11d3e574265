package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
// 前端约定以 success 字段判断业务结果，code 用于细分错误类型
type Response struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`              // 业务码
	Message string      `json:"message,omitempty"` // 提示信息
	Data    interface{} `json:"data,omitempty"`    // 数据
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Code:    CodeSuccess,
		Message: "success",
		Data:    data,
	})
}

// Error 错误响应
func Error(c *gin.Context, httpCode int, errCode int, msg string) {
	c.JSON(httpCode, Response{
		Success: false,
		Code:    errCode,
		Message: msg,
	})
}

// Fail 业务失败响应 (HTTP 200, 业务码非 0)
// 支付校验失败、订单被废弃等属于业务结果而非协议错误
func Fail(c *gin.Context, errCode int, msg string) {
	c.JSON(http.StatusOK, Response{
		Success: false,
		Code:    errCode,
		Message: msg,
	})
}
