package model

// IMDBInfo 评分信息（嵌套在电影文档里）
type IMDBInfo struct {
	Rating *float64 `bson:"rating,omitempty" json:"rating,omitempty"`
}

// MovieRecord MongoDB 电影文档（固定投影字段，永不暴露 _id）
type MovieRecord struct {
	Title     string    `bson:"title,omitempty" json:"title,omitempty"`
	Year      int       `bson:"year,omitempty" json:"year,omitempty"`
	Genres    []string  `bson:"genres,omitempty" json:"genres,omitempty"`
	Directors []string  `bson:"directors,omitempty" json:"directors,omitempty"`
	Cast      []string  `bson:"cast,omitempty" json:"cast,omitempty"`
	Plot      string    `bson:"plot,omitempty" json:"plot,omitempty"`
	IMDB      *IMDBInfo `bson:"imdb,omitempty" json:"imdb,omitempty"`
}

// Reviewer 给电影打过分的用户（来自 REVIEWED 关系）
type Reviewer struct {
	Name    string  `json:"name"`
	Rating  float64 `json:"rating"`
	Summary string  `json:"summary,omitempty"`
}

// MovieReviewers 一部电影的全部评价者
type MovieReviewers struct {
	Movie string     `json:"movie"`
	Users []Reviewer `json:"users"`
}

// RatedMovie 某个用户评价过的一部电影
type RatedMovie struct {
	Title    string  `json:"title"`
	Released int     `json:"released,omitempty"`
	Rating   float64 `json:"rating"`
	Summary  string  `json:"summary,omitempty"`
}

// UserRatings 某个用户的全部评价记录
// RatedCount 是去重后的电影数，由图查询的 count(DISTINCT m) 得出，
// 与 rated_movies 的长度在有重复评价边时可能不同；
// Born 在图里是可空属性，缺失时序列化为 null 而不是 0
type UserRatings struct {
	User        string       `json:"user"`
	Born        *int         `json:"born"`
	RatedCount  int          `json:"movies_rated_count"`
	RatedMovies []RatedMovie `json:"rated_movies"`
}

// ReconciliationResult 两库对账结果（仅单次请求有效，不缓存）
type ReconciliationResult struct {
	MongoCount   int      `json:"mongodb_count"`
	Neo4jCount   int      `json:"neo4j_count"`
	CommonCount  int      `json:"common_count"`
	CommonMovies []string `json:"common_movies"`
}

// 连接状态常量
const (
	StatusConnected    = "connected"
	StatusDisconnected = "disconnected"
	StatusHealthy      = "healthy"
	StatusDegraded     = "degraded"
)

// StoreHealth 单个存储的连通状态。Error 键始终输出，
// 连通时为空字符串，保证响应结构稳定
type StoreHealth struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// CompositeHealth 两库合成的整体健康状态
type CompositeHealth struct {
	MongoDB StoreHealth `json:"mongodb"`
	Neo4j   StoreHealth `json:"neo4j"`
	Status  string      `json:"status"`
}

// Healthy 两个存储都连通才算健康
func (h *CompositeHealth) Healthy() bool {
	return h.MongoDB.Status == StatusConnected && h.Neo4j.Status == StatusConnected
}
