package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/user/filmbridge/internal/apperr"
	"github.com/user/filmbridge/internal/config"
	"github.com/user/filmbridge/internal/model"
	"github.com/user/filmbridge/internal/utils"
)

// InitNeo4j 初始化 Neo4j 驱动
func InitNeo4j(ctx context.Context, cfg *config.Config) (neo4j.DriverWithContext, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.Neo4jURI,
		neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""))
	if err != nil {
		return nil, fmt.Errorf("无法创建 Neo4j 驱动: %w", err)
	}

	// 测试连接
	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, fmt.Errorf("Neo4j 连接校验失败: %w", err)
	}

	return driver, nil
}

// GraphRepository Neo4j 评价关系仓库
type GraphRepository struct {
	driver  neo4j.DriverWithContext
	timeout time.Duration
}

// NewGraphRepository 创建图仓库
func NewGraphRepository(driver neo4j.DriverWithContext, cfg *config.Config) *GraphRepository {
	return &GraphRepository{
		driver:  driver,
		timeout: cfg.QueryTimeout,
	}
}

// ReviewersOf 取第一部标题匹配的电影及其评价者。
// 先锁定一部电影再 OPTIONAL MATCH 评价边，保证多部电影同时命中
// 模式时不会把各自的评价者合并到一起；电影存在但无人评价时
// collect 会产出一条 name 为 null 的占位记录，这里滤掉后返回空列表
func (r *GraphRepository) ReviewersOf(ctx context.Context, name string) (*model.MovieReviewers, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	query := `
		MATCH (m:Movie)
		WHERE m.title =~ $pattern
		WITH m LIMIT 1
		OPTIONAL MATCH (p:Person)-[r:REVIEWED]->(m)
		RETURN m.title AS movie_title,
		       collect({
		           name: p.name,
		           rating: r.rating,
		           summary: r.summary
		       }) AS users
	`

	result, err := session.Run(ctx, query, map[string]interface{}{
		"pattern": utils.CypherContains(name),
	})
	if err != nil {
		return nil, apperr.Backend(fmt.Errorf("Neo4j 查询失败: %w", err))
	}

	if !result.Next(ctx) {
		if err := result.Err(); err != nil {
			return nil, apperr.Backend(fmt.Errorf("Neo4j 查询失败: %w", err))
		}
		return nil, apperr.NotFound("Neo4j 中未找到该电影")
	}

	record := result.Record()
	rawTitle, _ := record.Get("movie_title")
	title, ok := recordString(rawTitle)
	if !ok {
		return nil, apperr.NotFound("Neo4j 中未找到该电影")
	}

	reviewers := &model.MovieReviewers{
		Movie: title,
		Users: make([]model.Reviewer, 0),
	}

	rawUsers, _ := record.Get("users")
	entries, _ := rawUsers.([]interface{})
	for _, entry := range entries {
		if reviewer, ok := reviewerFromEntry(entry); ok {
			reviewers.Users = append(reviewers.Users, reviewer)
		}
	}

	return reviewers, nil
}

// MoviesRatedBy 取第一个名字匹配的用户及其评价过的电影列表
func (r *GraphRepository) MoviesRatedBy(ctx context.Context, name string) (*model.UserRatings, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	query := `
		MATCH (p:Person)
		WHERE p.name =~ $pattern
		WITH p LIMIT 1
		OPTIONAL MATCH (p)-[r:REVIEWED]->(m:Movie)
		RETURN p.name AS name,
		       p.born AS born,
		       count(DISTINCT m) AS rated_count,
		       collect({
		           title: m.title,
		           released: m.released,
		           rating: r.rating,
		           summary: r.summary
		       }) AS movies
	`

	result, err := session.Run(ctx, query, map[string]interface{}{
		"pattern": utils.CypherContains(name),
	})
	if err != nil {
		return nil, apperr.Backend(fmt.Errorf("Neo4j 查询失败: %w", err))
	}

	if !result.Next(ctx) {
		if err := result.Err(); err != nil {
			return nil, apperr.Backend(fmt.Errorf("Neo4j 查询失败: %w", err))
		}
		return nil, apperr.NotFound("Neo4j 中未找到该用户")
	}

	record := result.Record()
	rawName, _ := record.Get("name")
	userName, ok := recordString(rawName)
	if !ok {
		return nil, apperr.NotFound("Neo4j 中未找到该用户")
	}

	ratings := &model.UserRatings{
		User:        userName,
		RatedMovies: make([]model.RatedMovie, 0),
	}
	if born, okBorn := record.Get("born"); okBorn {
		ratings.Born = recordIntPtr(born)
	}
	if count, okCount := record.Get("rated_count"); okCount {
		ratings.RatedCount = recordInt(count)
	}

	rawMovies, _ := record.Get("movies")
	entries, _ := rawMovies.([]interface{})
	for _, entry := range entries {
		if movie, ok := ratedMovieFromEntry(entry); ok {
			ratings.RatedMovies = append(ratings.RatedMovies, movie)
		}
	}

	return ratings, nil
}

// AllMovieTitles 取样非空电影标题用于对账，LIMIT 防止全图遍历
func (r *GraphRepository) AllMovieTitles(ctx context.Context, sampleCap int) (map[string]struct{}, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	query := `
		MATCH (m:Movie)
		WHERE m.title IS NOT NULL
		RETURN DISTINCT m.title AS title
		LIMIT $cap
	`

	result, err := session.Run(ctx, query, map[string]interface{}{
		"cap": sampleCap,
	})
	if err != nil {
		return nil, apperr.Backend(fmt.Errorf("Neo4j 标题取样失败: %w", err))
	}

	titles := make(map[string]struct{})
	for result.Next(ctx) {
		rawTitle, _ := result.Record().Get("title")
		if title, ok := recordString(rawTitle); ok {
			titles[title] = struct{}{}
		}
	}
	if err := result.Err(); err != nil {
		return nil, apperr.Backend(fmt.Errorf("Neo4j 标题取样失败: %w", err))
	}

	return titles, nil
}

// Ping 最小化连通性探测，底层错误原样带出
func (r *GraphRepository) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, "RETURN 1", nil)
	if err != nil {
		return fmt.Errorf("Neo4j ping 失败: %w", err)
	}
	if _, err := result.Consume(ctx); err != nil {
		return fmt.Errorf("Neo4j ping 失败: %w", err)
	}
	return nil
}

// ==================== 记录值类型转换 ====================

// reviewerFromEntry 把 collect 产出的条目转成评价者。
// 电影存在但无评价边时遍历仍会产出一条 name 为 null 的占位条目，
// 这种条目绝不能当成用户返回，在这里统一滤掉
func reviewerFromEntry(entry interface{}) (model.Reviewer, bool) {
	fields, ok := entry.(map[string]interface{})
	if !ok {
		return model.Reviewer{}, false
	}
	name, ok := recordString(fields["name"])
	if !ok {
		return model.Reviewer{}, false
	}
	return model.Reviewer{
		Name:    name,
		Rating:  recordFloat(fields["rating"]),
		Summary: recordStringOr(fields["summary"], ""),
	}, true
}

// ratedMovieFromEntry 同上，用户存在但没评价过任何电影时
// 占位条目的 title 为 null，滤掉
func ratedMovieFromEntry(entry interface{}) (model.RatedMovie, bool) {
	fields, ok := entry.(map[string]interface{})
	if !ok {
		return model.RatedMovie{}, false
	}
	title, ok := recordString(fields["title"])
	if !ok {
		return model.RatedMovie{}, false
	}
	return model.RatedMovie{
		Title:    title,
		Released: recordInt(fields["released"]),
		Rating:   recordFloat(fields["rating"]),
		Summary:  recordStringOr(fields["summary"], ""),
	}, true
}

// recordString 从驱动返回值里取字符串，null 返回 false
func recordString(value interface{}) (string, bool) {
	s, ok := value.(string)
	return s, ok
}

func recordStringOr(value interface{}, fallback string) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fallback
}

// recordFloat Neo4j 的数值可能以 int64 或 float64 返回
func recordFloat(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	}
	return 0
}

func recordInt(value interface{}) int {
	switch v := value.(type) {
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// recordIntPtr born 这类可空属性缺失时要输出 null，不能编造 0
func recordIntPtr(value interface{}) *int {
	switch v := value.(type) {
	case int64:
		n := int(v)
		return &n
	case float64:
		n := int(v)
		return &n
	}
	return nil
}
