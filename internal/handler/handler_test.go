package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/user/filmbridge/internal/config"
	"github.com/user/filmbridge/internal/handler"
	"github.com/user/filmbridge/internal/model"
	"github.com/user/filmbridge/internal/repository"
	"github.com/user/filmbridge/internal/router"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// 函数字段式假实现，测试按需覆盖

type fakeDocumentStore struct {
	listPage      func(ctx context.Context, page, limit int) ([]model.MovieRecord, int64, error)
	search        func(ctx context.Context, title, actor string) ([]model.MovieRecord, error)
	updateByTitle func(ctx context.Context, title string, fields map[string]interface{}) (int64, error)
	listAllTitles func(ctx context.Context, sampleCap int) (map[string]struct{}, error)
	ping          func(ctx context.Context) error
}

func (f *fakeDocumentStore) ListPage(ctx context.Context, page, limit int) ([]model.MovieRecord, int64, error) {
	return f.listPage(ctx, page, limit)
}

func (f *fakeDocumentStore) Search(ctx context.Context, title, actor string) ([]model.MovieRecord, error) {
	return f.search(ctx, title, actor)
}

func (f *fakeDocumentStore) UpdateByTitle(ctx context.Context, title string, fields map[string]interface{}) (int64, error) {
	return f.updateByTitle(ctx, title, fields)
}

func (f *fakeDocumentStore) ListAllTitles(ctx context.Context, sampleCap int) (map[string]struct{}, error) {
	return f.listAllTitles(ctx, sampleCap)
}

func (f *fakeDocumentStore) Ping(ctx context.Context) error {
	return f.ping(ctx)
}

type fakeGraphStore struct {
	reviewersOf    func(ctx context.Context, name string) (*model.MovieReviewers, error)
	moviesRatedBy  func(ctx context.Context, name string) (*model.UserRatings, error)
	allMovieTitles func(ctx context.Context, sampleCap int) (map[string]struct{}, error)
	ping           func(ctx context.Context) error
}

func (f *fakeGraphStore) ReviewersOf(ctx context.Context, name string) (*model.MovieReviewers, error) {
	return f.reviewersOf(ctx, name)
}

func (f *fakeGraphStore) MoviesRatedBy(ctx context.Context, name string) (*model.UserRatings, error) {
	return f.moviesRatedBy(ctx, name)
}

func (f *fakeGraphStore) AllMovieTitles(ctx context.Context, sampleCap int) (map[string]struct{}, error) {
	return f.allMovieTitles(ctx, sampleCap)
}

func (f *fakeGraphStore) Ping(ctx context.Context) error {
	return f.ping(ctx)
}

// newTestRouter 用假存储组出完整路由树，走真实的路由注册
func newTestRouter(doc *fakeDocumentStore, graph *fakeGraphStore) *gin.Engine {
	cfg := &config.Config{ReconcileSampleCap: 1000}
	h := handler.NewHandler(repository.NewRepositories(doc, graph), cfg)

	r := gin.New()
	router.RegisterRoutes(r, h)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body io.Reader) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w.Code, parsed
}
