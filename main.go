package main

import (
	"context"
	"fmt"

	"github.com/Salimjon123/Alijahon/configs"
	"github.com/Salimjon123/Alijahon/middlewares"
	"github.com/Salimjon123/Alijahon/routes"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := configs.LoadConfig()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		logrus.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedSettings(); err != nil {
		logrus.Fatalf("seed settings failed: %v", err)
	}

	// Redis is optional: without it the leaderboard and chart caches
	// just pass through.
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
		})
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
	}

	// HTTP
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, rdb)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logrus.Infof("server running at %s", addr)
	if err := r.Run(addr); err != nil {
		logrus.Fatal(err)
	}
}
