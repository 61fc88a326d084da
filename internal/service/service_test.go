package service

import (
	"context"

	"github.com/user/filmbridge/internal/model"
	"github.com/user/filmbridge/internal/repository"
)

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

func titleSet(titles ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(titles))
	for _, t := range titles {
		set[t] = struct{}{}
	}
	return set
}

func fakeRepos(doc *fakeDocumentStore, graph *fakeGraphStore) *repository.Repositories {
	return repository.NewRepositories(doc, graph)
}
