package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/user/filmbridge/internal/config"
	"github.com/user/filmbridge/internal/handler"
	"github.com/user/filmbridge/internal/middleware"
	"github.com/user/filmbridge/internal/repository"
	"github.com/user/filmbridge/internal/router"
)

func main() {
	// 加载环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件，使用系统环境变量")
	}

	// 加载配置
	cfg := config.Load()

	ctx := context.Background()

	// 初始化 MongoDB
	mongoClient, err := repository.InitMongo(ctx, cfg)
	if err != nil {
		log.Fatalf("MongoDB 连接失败: %v", err)
	}
	defer mongoClient.Disconnect(ctx)

	// 初始化 Neo4j
	neo4jDriver, err := repository.InitNeo4j(ctx, cfg)
	if err != nil {
		log.Fatalf("Neo4j 连接失败: %v", err)
	}
	defer neo4jDriver.Close(ctx)

	// 初始化仓库
	repos := repository.NewRepositories(
		repository.NewMovieRepository(mongoClient, cfg),
		repository.NewGraphRepository(neo4jDriver, cfg),
	)

	// 初始化 Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// 启用 gzip，默认压缩级别
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 中间件
	r.Use(middleware.Logger())
	r.Use(middleware.Security())
	r.Use(middleware.CORS())

	// 初始化 Handler 并注册路由
	h := handler.NewHandler(repos, cfg)
	router.RegisterRoutes(r, h)

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	// 在 goroutine 中启动服务器，这样我们就可以监听信号
	go func() {
		log.Printf("服务器启动于 http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("服务器启动失败: %v", err)
		}
	}()

	// 等待中断信号以优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("正在关闭服务器...")

	// 5 秒超时上下文用于关闭过程
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("服务器强制关闭:", err)
	}

	log.Println("服务器已退出")
}
