package service

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/user/filmbridge/internal/model"
	"github.com/user/filmbridge/internal/repository"
	"github.com/user/filmbridge/internal/utils"
)

// ReconcileService 两库对账引擎。两次取样互相独立，没有跨库事务，
// 两份快照可能对应不同时刻，这是已接受的限制
type ReconcileService struct {
	repos     *repository.Repositories
	sampleCap int
}

// NewReconcileService 创建对账引擎
func NewReconcileService(repos *repository.Repositories, sampleCap int) *ReconcileService {
	return &ReconcileService{
		repos:     repos,
		sampleCap: sampleCap,
	}
}

// Reconcile 取样两库的标题集合并计算交集。
// 两侧标题都先过 NormalizeIdentityKey 再比较，大小写和空白差异
// 不再导致同一部电影对不上；交集成员按 MongoDB 存储的原始写法
// 带出并升序排序，保证输出可复现。任一侧取样失败整个对账失败
// （与 /health 的按库隔离不同，这是沿用的既有行为）
func (s *ReconcileService) Reconcile(ctx context.Context) (*model.ReconciliationResult, error) {
	var mongoTitles, graphTitles map[string]struct{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		mongoTitles, err = s.repos.Movies.ListAllTitles(ctx, s.sampleCap)
		return err
	})
	g.Go(func() error {
		var err error
		graphTitles, err = s.repos.Graph.AllMovieTitles(ctx, s.sampleCap)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// 归一化键 -> MongoDB 侧原始标题；同键多写法时取字典序最小的，
	// 避免 map 遍历顺序影响输出
	mongoByKey := make(map[string]string, len(mongoTitles))
	for title := range mongoTitles {
		key := utils.NormalizeIdentityKey(title)
		if existing, ok := mongoByKey[key]; !ok || title < existing {
			mongoByKey[key] = title
		}
	}

	graphKeys := make(map[string]struct{}, len(graphTitles))
	for title := range graphTitles {
		graphKeys[utils.NormalizeIdentityKey(title)] = struct{}{}
	}

	common := make([]string, 0)
	for key, title := range mongoByKey {
		if _, ok := graphKeys[key]; ok {
			common = append(common, title)
		}
	}
	sort.Strings(common)

	return &model.ReconciliationResult{
		MongoCount:   len(mongoByKey),
		Neo4jCount:   len(graphKeys),
		CommonCount:  len(common),
		CommonMovies: common,
	}, nil
}
