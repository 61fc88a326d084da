package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/user/filmbridge/internal/apperr"
	"github.com/user/filmbridge/internal/config"
	"github.com/user/filmbridge/internal/model"
	"github.com/user/filmbridge/internal/utils"
)

// searchLimit 搜索结果硬上限，不分页续传
const searchLimit = 50

// movieProjection 对外固定投影，存储自身的 _id 永不暴露
var movieProjection = bson.D{
	{Key: "title", Value: 1},
	{Key: "year", Value: 1},
	{Key: "genres", Value: 1},
	{Key: "directors", Value: 1},
	{Key: "cast", Value: 1},
	{Key: "plot", Value: 1},
	{Key: "imdb.rating", Value: 1},
	{Key: "_id", Value: 0},
}

// InitMongo 初始化 MongoDB 连接
func InitMongo(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetMaxPoolSize(25).
		SetMinPoolSize(5)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("无法连接 MongoDB: %w", err)
	}

	// 测试连接
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("MongoDB ping 失败: %w", err)
	}

	return client, nil
}

// MovieRepository MongoDB 电影文档仓库
type MovieRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMovieRepository 创建电影仓库
func NewMovieRepository(client *mongo.Client, cfg *config.Config) *MovieRepository {
	return &MovieRepository{
		coll:    client.Database(cfg.MongoDB).Collection(cfg.MongoCollection),
		timeout: cfg.QueryTimeout,
	}
}

// ListPage 按集合自然顺序分页返回电影，total 独立于取页计算
func (r *MovieRepository) ListPage(ctx context.Context, page, limit int) ([]model.MovieRecord, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	skip := (page - 1) * limit
	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit)).
		SetProjection(movieProjection)

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, 0, apperr.Backend(fmt.Errorf("MongoDB 查询失败: %w", err))
	}

	movies := make([]model.MovieRecord, 0, limit)
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, 0, apperr.Backend(fmt.Errorf("MongoDB 结果解码失败: %w", err))
	}

	total, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, 0, apperr.Backend(fmt.Errorf("MongoDB 计数失败: %w", err))
	}

	return movies, total, nil
}

// Search 按标题/演员的子串条件搜索，两个条件同时给出时取交集
func (r *MovieRepository) Search(ctx context.Context, title, actor string) ([]model.MovieRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	filter := bson.D{}
	if title != "" {
		filter = append(filter, bson.E{Key: "title", Value: utils.MongoContains(title)})
	}
	if actor != "" {
		filter = append(filter, bson.E{Key: "cast", Value: utils.MongoContains(actor)})
	}

	opts := options.Find().
		SetLimit(searchLimit).
		SetProjection(movieProjection)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperr.Backend(fmt.Errorf("MongoDB 搜索失败: %w", err))
	}

	movies := make([]model.MovieRecord, 0)
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, apperr.Backend(fmt.Errorf("MongoDB 结果解码失败: %w", err))
	}

	return movies, nil
}

// UpdateByTitle 按标题整串匹配做 $set 部分更新，返回实际修改条数。
// 匹配 0 条与匹配到但无变化是两种结果：前者报 NotFound，后者正常返回 0
func (r *MovieRepository) UpdateByTitle(ctx context.Context, title string, fields map[string]interface{}) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	// 标题是身份字段，更新体里出现也要剥掉
	delete(fields, "title")
	delete(fields, "_id")
	if len(fields) == 0 {
		return 0, apperr.Validation("更新内容不能为空")
	}

	filter := bson.D{{Key: "title", Value: utils.MongoExact(title)}}
	update := bson.M{"$set": bson.M(fields)}

	result, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, apperr.Backend(fmt.Errorf("MongoDB 更新失败: %w", err))
	}
	if result.MatchedCount == 0 {
		return 0, apperr.NotFound("MongoDB 中未找到该电影")
	}

	return result.ModifiedCount, nil
}

// ListAllTitles 取样标题集合用于对账，空标题的记录不参与
func (r *MovieRepository) ListAllTitles(ctx context.Context, sampleCap int) (map[string]struct{}, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.Find().
		SetLimit(int64(sampleCap)).
		SetProjection(bson.D{{Key: "title", Value: 1}, {Key: "_id", Value: 0}})

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, apperr.Backend(fmt.Errorf("MongoDB 标题取样失败: %w", err))
	}

	var docs []struct {
		Title string `bson:"title"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, apperr.Backend(fmt.Errorf("MongoDB 结果解码失败: %w", err))
	}

	titles := make(map[string]struct{}, len(docs))
	for _, doc := range docs {
		if doc.Title == "" {
			continue
		}
		titles[doc.Title] = struct{}{}
	}

	return titles, nil
}

// Ping 连通性探测
func (r *MovieRepository) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.coll.Database().Client().Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("MongoDB ping 失败: %w", err)
	}
	return nil
}
