package handler

import (
	"github.com/user/filmbridge/internal/config"
	"github.com/user/filmbridge/internal/repository"
	"github.com/user/filmbridge/internal/service"
)

// Handler HTTP 处理器。只做参数校验、组件编排和响应封装，
// 不含任何存储相关逻辑
type Handler struct {
	Repos     *repository.Repositories
	Config    *config.Config
	Reconcile *service.ReconcileService
	Health    *service.HealthService
}

// NewHandler 创建处理器
func NewHandler(repos *repository.Repositories, cfg *config.Config) *Handler {
	return &Handler{
		Repos:     repos,
		Config:    cfg,
		Reconcile: service.NewReconcileService(repos, cfg.ReconcileSampleCap),
		Health:    service.NewHealthService(repos),
	}
}
