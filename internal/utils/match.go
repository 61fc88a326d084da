package utils

import (
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// 两个存储的匹配语法各不相同：MongoDB 的 $regex 天然是子串匹配，
// Neo4j 的 =~ 是整串相等匹配，需要两端补通配符才能模拟子串搜索。
// 用户输入中的正则元字符原样透传，与匹配意图的偏差是已接受的限制。

// MongoContains 大小写不敏感的任意位置子串匹配
func MongoContains(s string) bson.Regex {
	return bson.Regex{Pattern: s, Options: "i"}
}

// MongoExact 大小写不敏感的整字段精确匹配（仅用于按标题更新，
// 避免子串语义误伤同名近似的其他记录）
func MongoExact(s string) bson.Regex {
	return bson.Regex{Pattern: "^" + s + "$", Options: "i"}
}

// CypherContains 生成 Neo4j =~ 用的 (?i).*s.* 模式
func CypherContains(s string) string {
	return "(?i).*" + s + ".*"
}

// NormalizeIdentityKey 跨库比较标题前的统一归一化：
// 去首尾空白、压缩连续空白、转小写
func NormalizeIdentityKey(title string) string {
	return strings.ToLower(strings.Join(strings.Fields(title), " "))
}
