package repository

import (
	"context"

	"github.com/user/filmbridge/internal/model"
)

// DocumentStore MongoDB 侧电影文档操作
type DocumentStore interface {
	// ListPage 按自然顺序分页，total 为全集合计数（与取页之间无快照隔离）
	ListPage(ctx context.Context, page, limit int) ([]model.MovieRecord, int64, error)
	// Search 按标题和/或演员做大小写不敏感子串搜索，结果硬上限 50 条
	Search(ctx context.Context, title, actor string) ([]model.MovieRecord, error)
	// UpdateByTitle 按标题整串匹配（忽略大小写）做部分更新，匹配 0 条返回 NotFound
	UpdateByTitle(ctx context.Context, title string, fields map[string]interface{}) (int64, error)
	// ListAllTitles 取样最多 sampleCap 条标题，去空去重
	ListAllTitles(ctx context.Context, sampleCap int) (map[string]struct{}, error)
	Ping(ctx context.Context) error
}

// GraphStore Neo4j 侧 Person-REVIEWED->Movie 遍历操作
type GraphStore interface {
	// ReviewersOf 取第一部标题匹配的电影及其全部评价者（可为空列表）
	ReviewersOf(ctx context.Context, name string) (*model.MovieReviewers, error)
	// MoviesRatedBy 取第一个名字匹配的用户及其评价过的全部电影
	MoviesRatedBy(ctx context.Context, name string) (*model.UserRatings, error)
	// AllMovieTitles 取样最多 sampleCap 个非空电影标题
	AllMovieTitles(ctx context.Context, sampleCap int) (map[string]struct{}, error)
	Ping(ctx context.Context) error
}

// Repositories 仓库集合，进程启动时构造一次后注入各组件
type Repositories struct {
	Movies DocumentStore
	Graph  GraphStore
}

// NewRepositories 创建仓库集合
func NewRepositories(movies DocumentStore, graph GraphStore) *Repositories {
	return &Repositories{
		Movies: movies,
		Graph:  graph,
	}
}
