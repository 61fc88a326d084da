package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/user/filmbridge/internal/apperr"
)

// OK 返回成功响应，在传入数据上补齐 success 标记
func OK(c *gin.Context, data gin.H) {
	data["success"] = true
	c.JSON(200, data)
}

// Fail 返回错误响应，错误类别到状态码的映射只存在这一处
func Fail(c *gin.Context, err error) {
	c.JSON(apperr.StatusOf(err), gin.H{
		"success": false,
		"error":   err.Error(),
	})
}
