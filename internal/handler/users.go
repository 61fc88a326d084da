package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/user/filmbridge/internal/apperr"
	"github.com/user/filmbridge/internal/utils"
)

// UserRatings 列出某个用户评价过的全部电影
func (h *Handler) UserRatings(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		utils.Fail(c, apperr.Validation("用户名不能为空"))
		return
	}

	ratings, err := h.Repos.Graph.MoviesRatedBy(c.Request.Context(), name)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.OK(c, gin.H{
		"user":               ratings.User,
		"born":               ratings.Born,
		"movies_rated_count": ratings.RatedCount,
		"rated_movies":       ratings.RatedMovies,
	})
}
