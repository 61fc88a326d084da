package service

import (
	"context"
	"sync"

	"github.com/user/filmbridge/internal/model"
	"github.com/user/filmbridge/internal/repository"
)

// HealthService 合成健康探测
type HealthService struct {
	repos *repository.Repositories
}

// NewHealthService 创建健康探测
func NewHealthService(repos *repository.Repositories) *HealthService {
	return &HealthService{repos: repos}
}

// Check 并发探测两个存储。单库失败只记录在自己的子结果里，
// 绝不影响另一库的探测；失败是数据而不是错误，所以没有 error 返回
func (s *HealthService) Check(ctx context.Context) *model.CompositeHealth {
	var wg sync.WaitGroup
	var mongoErr, neo4jErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		mongoErr = s.repos.Movies.Ping(ctx)
	}()
	go func() {
		defer wg.Done()
		neo4jErr = s.repos.Graph.Ping(ctx)
	}()
	wg.Wait()

	health := &model.CompositeHealth{
		MongoDB: storeHealth(mongoErr),
		Neo4j:   storeHealth(neo4jErr),
	}
	if health.Healthy() {
		health.Status = model.StatusHealthy
	} else {
		health.Status = model.StatusDegraded
	}

	return health
}

func storeHealth(err error) model.StoreHealth {
	if err != nil {
		return model.StoreHealth{
			Status: model.StatusDisconnected,
			Error:  err.Error(),
		}
	}
	return model.StoreHealth{Status: model.StatusConnected}
}
