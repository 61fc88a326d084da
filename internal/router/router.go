package router

import (
	"github.com/gin-gonic/gin"
	"github.com/user/filmbridge/internal/handler"
)

// RegisterRoutes 注册所有路由。
// /movies/search 和 /movies/common 是字面路由，gin 的路由树
// 优先匹配字面量，所以不会被 /movies/:name 吞掉
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	r.GET("/", h.Index)
	r.GET("/health", h.HealthCheck)

	movies := r.Group("/movies")
	{
		movies.GET("", h.ListMovies)
		movies.GET("/search", h.SearchMovies)
		movies.GET("/common", h.CommonMovies)
		movies.PUT("/:name", h.UpdateMovie)
		movies.GET("/:name/users", h.MovieReviewers)
	}

	r.GET("/users/:name", h.UserRatings)
}
