package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/EspacoLashStudio/studio-agenda/internal/config"
	dbpkg "github.com/EspacoLashStudio/studio-agenda/internal/db"
	"github.com/EspacoLashStudio/studio-agenda/internal/middleware"
	"github.com/EspacoLashStudio/studio-agenda/internal/notify"
	"github.com/EspacoLashStudio/studio-agenda/internal/routes"
)

func main() {

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg, logger)

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	reminder := notify.NewReminder(db, cfg, logger)
	if err := reminder.Start(); err != nil {
		logger.Fatal("failed to start reminder job", zap.Error(err))
	}
	defer reminder.Stop()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg, logger)

	logger.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
