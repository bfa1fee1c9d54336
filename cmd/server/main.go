package main

import (
	"github.com/DishankChauhan/ChainImpact/internal/config"
	"github.com/DishankChauhan/ChainImpact/internal/database"
	"github.com/DishankChauhan/ChainImpact/internal/ledger"
	"github.com/DishankChauhan/ChainImpact/internal/logger"
	"github.com/DishankChauhan/ChainImpact/internal/router"
	"github.com/DishankChauhan/ChainImpact/internal/task"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Log); err != nil {
		logger.Fatal("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Init(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}

	ldg := ledger.New()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.Setup(db, ldg, cfg)

	manager := task.Start(db, cfg)
	defer manager.Stop()

	logger.Info("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
