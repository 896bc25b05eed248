package main

import (
	"log"
	"net/http"

	_ "estore/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"estore/internal/cache"
	"estore/internal/config"
	"estore/internal/db"
	"estore/internal/handler"
	"estore/internal/logger"
	"estore/internal/model"
	"estore/internal/repository"
	"estore/internal/router"
	"estore/internal/service"
)

// @title E-Store Inventory API
// @version 1.0
// @description Store inventory backend with user authentication, item CRUD, and department issuance.
// @host localhost:5300
// @BasePath /
// @schemes http
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.LogLevel, cfg.Environment); err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer logger.Sync()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logger.L().Fatal("database init", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.StoreItem{},
		&model.Issue{},
	); err != nil {
		logger.L().Fatal("auto-migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	itemRepo := repository.NewItemRepository(gormDB)
	issueRepo := repository.NewIssueRepository(gormDB)
	txManager := repository.NewTxManager(gormDB)

	// Services
	authService := service.NewAuthService(userRepo)
	inventoryService := service.NewInventoryService(itemRepo, cacheClient)
	issuanceService := service.NewIssuanceService(txManager, issueRepo, cacheClient)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	issueHandler := handler.NewIssueHandler(issuanceService)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, authHandler, inventoryHandler, issueHandler)

	addr := ":" + cfg.ServerPort
	logger.L().Info("server starting", zap.String("addr", addr))
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.L().Fatal("server start", zap.Error(err))
	}
}
