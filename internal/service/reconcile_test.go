package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/filmbridge/internal/apperr"
)

func reconcileWith(mongo, graph map[string]struct{}) *ReconcileService {
	doc := &fakeDocumentStore{
		listAllTitles: func(ctx context.Context, sampleCap int) (map[string]struct{}, error) {
			return mongo, nil
		},
	}
	g := &fakeGraphStore{
		allMovieTitles: func(ctx context.Context, sampleCap int) (map[string]struct{}, error) {
			return graph, nil
		},
	}
	return NewReconcileService(fakeRepos(doc, g), 1000)
}

func TestReconcileScenario(t *testing.T) {
	svc := reconcileWith(
		titleSet("Inception", "The Matrix"),
		titleSet("Inception", "Interstellar"),
	)

	result, err := svc.Reconcile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.MongoCount)
	assert.Equal(t, 2, result.Neo4jCount)
	assert.Equal(t, 1, result.CommonCount)
	assert.Equal(t, []string{"Inception"}, result.CommonMovies)
}

func TestReconcileEmptyIntersection(t *testing.T) {
	svc := reconcileWith(
		titleSet("Inception"),
		titleSet("Interstellar"),
	)

	result, err := svc.Reconcile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, result.CommonCount)
	assert.NotNil(t, result.CommonMovies)
	assert.Empty(t, result.CommonMovies)
}

// 大小写和空白差异不影响匹配，输出用 MongoDB 存储的写法
func TestReconcileNormalizesTitles(t *testing.T) {
	svc := reconcileWith(
		titleSet("THE MATRIX", "Inception"),
		titleSet("  the   matrix "),
	)

	result, err := svc.Reconcile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.MongoCount)
	assert.Equal(t, 1, result.Neo4jCount)
	assert.Equal(t, 1, result.CommonCount)
	assert.Equal(t, []string{"THE MATRIX"}, result.CommonMovies)
}

// 同一部电影在 MongoDB 里有多种写法时只计一次，取字典序最小的写法
func TestReconcileDeduplicatesByKey(t *testing.T) {
	svc := reconcileWith(
		titleSet("The Matrix", "the matrix", "THE MATRIX"),
		titleSet("The Matrix"),
	)

	result, err := svc.Reconcile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.MongoCount)
	assert.Equal(t, []string{"THE MATRIX"}, result.CommonMovies)
}

func TestReconcileSortsOutput(t *testing.T) {
	titles := titleSet("Zodiac", "Alien", "Memento", "Inception")
	svc := reconcileWith(titles, titles)

	result, err := svc.Reconcile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, result.CommonCount)
	assert.True(t, sort.StringsAreSorted(result.CommonMovies))
}

// 交集大小不可能超过任一侧的集合大小
func TestReconcileBounds(t *testing.T) {
	svc := reconcileWith(
		titleSet("A", "B", "C"),
		titleSet("B", "C", "D", "E"),
	)

	result, err := svc.Reconcile(context.Background())
	require.NoError(t, err)

	assert.LessOrEqual(t, result.CommonCount, result.MongoCount)
	assert.LessOrEqual(t, result.CommonCount, result.Neo4jCount)
	assert.Equal(t, []string{"B", "C"}, result.CommonMovies)
}

// 取样上限要原样传到两个存储客户端
func TestReconcilePassesSampleCap(t *testing.T) {
	var mongoCap, graphCap int
	doc := &fakeDocumentStore{
		listAllTitles: func(ctx context.Context, sampleCap int) (map[string]struct{}, error) {
			mongoCap = sampleCap
			return titleSet(), nil
		},
	}
	g := &fakeGraphStore{
		allMovieTitles: func(ctx context.Context, sampleCap int) (map[string]struct{}, error) {
			graphCap = sampleCap
			return titleSet(), nil
		},
	}

	svc := NewReconcileService(fakeRepos(doc, g), 500)
	_, err := svc.Reconcile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 500, mongoCap)
	assert.Equal(t, 500, graphCap)
}

// 任一侧取样失败整个对账失败（与 /health 的隔离语义不同）
func TestReconcileAbortsOnEitherFailure(t *testing.T) {
	backendErr := apperr.Backend(errors.New("connection refused"))

	doc := &fakeDocumentStore{
		listAllTitles: func(ctx context.Context, sampleCap int) (map[string]struct{}, error) {
			return nil, backendErr
		},
	}
	g := &fakeGraphStore{
		allMovieTitles: func(ctx context.Context, sampleCap int) (map[string]struct{}, error) {
			return titleSet("Inception"), nil
		},
	}

	svc := NewReconcileService(fakeRepos(doc, g), 1000)
	_, err := svc.Reconcile(context.Background())
	assert.Error(t, err)
	assert.Equal(t, apperr.KindBackend, apperr.KindOf(err))

	// 反过来图库失败也一样
	doc.listAllTitles = func(ctx context.Context, sampleCap int) (map[string]struct{}, error) {
		return titleSet("Inception"), nil
	}
	g.allMovieTitles = func(ctx context.Context, sampleCap int) (map[string]struct{}, error) {
		return nil, backendErr
	}
	_, err = svc.Reconcile(context.Background())
	assert.Error(t, err)
}
