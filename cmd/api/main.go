package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pencilhq/orderform-gateway/internal/config"
	"github.com/pencilhq/orderform-gateway/internal/erp"
	"github.com/pencilhq/orderform-gateway/internal/handlers"
	"github.com/pencilhq/orderform-gateway/internal/logger"
)

func setupRouter(cfg handlers.HandlerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers.RegisterRoutes(r, cfg)

	return r
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zl.Sync()

	hc := handlers.HandlerConfig{
		Config: cfg,
		Tokens: erp.NewTokenProvider(cfg.OAuth, zl),
		Orders: erp.NewClient(cfg.ERP, zl),
		Logger: zl,
	}

	r := setupRouter(hc)

	addr := ":" + cfg.App.Port
	zl.Info("starting server",
		zap.String("addr", addr),
		zap.String("env", cfg.App.Env))
	if err := r.Run(addr); err != nil {
		zl.Fatal("server exited", zap.Error(err))
	}
}
