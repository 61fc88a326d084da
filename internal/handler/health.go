package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/user/filmbridge/internal/model"
)

// HealthCheck 合成健康检查。永远返回 200 或 503，单库故障不会
// 让这个端点本身失败
func (h *Handler) HealthCheck(c *gin.Context) {
	health := h.Health.Check(c.Request.Context())

	status := http.StatusOK
	if health.Status == model.StatusDegraded {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, health)
}
