package handler

import (
	"github.com/gin-gonic/gin"
)

// Index 端点一览，固定内容，永不失败
func (h *Handler) Index(c *gin.Context) {
	c.JSON(200, gin.H{
		"service": "filmbridge",
		"endpoints": gin.H{
			"GET /movies":              "分页列出 MongoDB 中的电影（参数 page、limit）",
			"GET /movies/search":       "按标题或演员搜索电影（参数 name、actor，至少一个）",
			"PUT /movies/{name}":       "按标题整串匹配（忽略大小写）部分更新电影字段",
			"GET /movies/common":       "统计同时存在于 MongoDB 和 Neo4j 的电影",
			"GET /movies/{name}/users": "列出评价过某部电影的用户（标题子串匹配）",
			"GET /users/{name}":        "列出某个用户评价过的电影（用户名子串匹配）",
			"GET /health":              "两个存储的连通状态",
		},
		"notes": "搜索参数中的正则元字符原样透传到两个存储的模式匹配",
	})
}
