package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/user/filmbridge/internal/apperr"
	"github.com/user/filmbridge/internal/utils"
)

// 分页默认值与上限
const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// listMoviesQuery 分页参数，负数由 validator 拒绝，0 归一化为默认值
type listMoviesQuery struct {
	Page  int `form:"page" binding:"omitempty,gte=0"`
	Limit int `form:"limit" binding:"omitempty,gte=0"`
}

// ListMovies 分页列出 MongoDB 里的电影
func (h *Handler) ListMovies(c *gin.Context) {
	var query listMoviesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.Fail(c, apperr.Validation("page 和 limit 必须是非负整数"))
		return
	}

	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = defaultPageLimit
	}
	if query.Limit > maxPageLimit {
		query.Limit = maxPageLimit
	}

	movies, total, err := h.Repos.Movies.ListPage(c.Request.Context(), query.Page, query.Limit)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.OK(c, gin.H{
		"page":   query.Page,
		"limit":  query.Limit,
		"total":  total,
		"count":  len(movies),
		"movies": movies,
	})
}

// SearchMovies 按标题和/或演员搜索，两个参数至少要有一个
func (h *Handler) SearchMovies(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	actor := strings.TrimSpace(c.Query("actor"))
	if name == "" && actor == "" {
		utils.Fail(c, apperr.Validation("必须提供 name 或 actor 参数之一"))
		return
	}

	movies, err := h.Repos.Movies.Search(c.Request.Context(), name, actor)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.OK(c, gin.H{
		"count":  len(movies),
		"movies": movies,
	})
}

// UpdateMovie 按标题整串匹配（忽略大小写）做部分更新
func (h *Handler) UpdateMovie(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		utils.Fail(c, apperr.Validation("电影标题不能为空"))
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.Fail(c, apperr.Validation("请求体必须是合法的 JSON 对象"))
		return
	}
	if len(fields) == 0 {
		utils.Fail(c, apperr.Validation("更新内容不能为空"))
		return
	}

	modified, err := h.Repos.Movies.UpdateByTitle(c.Request.Context(), name, fields)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.OK(c, gin.H{
		"message":        "更新成功",
		"modified_count": modified,
	})
}

// CommonMovies 两库对账报告
func (h *Handler) CommonMovies(c *gin.Context) {
	result, err := h.Reconcile.Reconcile(c.Request.Context())
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.OK(c, gin.H{
		"mongodb_count": result.MongoCount,
		"neo4j_count":   result.Neo4jCount,
		"common_count":  result.CommonCount,
		"common_movies": result.CommonMovies,
	})
}

// MovieReviewers 列出评价过某部电影的用户
func (h *Handler) MovieReviewers(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		utils.Fail(c, apperr.Validation("电影标题不能为空"))
		return
	}

	reviewers, err := h.Repos.Graph.ReviewersOf(c.Request.Context(), name)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.OK(c, gin.H{
		"movie":       reviewers.Movie,
		"users_count": len(reviewers.Users),
		"users":       reviewers.Users,
	})
}
