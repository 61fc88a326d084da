package config

import (
	"os"
	"strconv"
	"time"
)

// Config 应用配置
type Config struct {
	Env                string
	Port               string
	MongoURI           string
	MongoDB            string
	MongoCollection    string
	Neo4jURI           string
	Neo4jUser          string
	Neo4jPassword      string
	QueryTimeout       time.Duration
	ReconcileSampleCap int
}

// Load 加载配置
func Load() *Config {
	timeoutSec, _ := strconv.Atoi(getEnv("QUERY_TIMEOUT_SECONDS", "10"))
	if timeoutSec <= 0 {
		timeoutSec = 10
	}

	sampleCap, _ := strconv.Atoi(getEnv("RECONCILE_SAMPLE_CAP", "1000"))
	if sampleCap <= 0 {
		sampleCap = 1000
	}

	return &Config{
		Env:                getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "5000"),
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:            getEnv("MONGO_DB", "sample_mflix"),
		MongoCollection:    getEnv("MONGO_COLLECTION", "movies"),
		Neo4jURI:           getEnv("NEO4J_URI", "neo4j://localhost:7687"),
		Neo4jUser:          getEnv("NEO4J_USER", "neo4j"),
		Neo4jPassword:      getEnv("NEO4J_PASSWORD", "neo4j"),
		QueryTimeout:       time.Duration(timeoutSec) * time.Second,
		ReconcileSampleCap: sampleCap,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
