package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"casevault/internal/casevault/config"
	"casevault/internal/casevault/handler"
	"casevault/internal/casevault/ledger"
	"casevault/internal/casevault/repository"
	"casevault/internal/casevault/router"
	"casevault/internal/casevault/service"
	"casevault/internal/casevault/util"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		util.GetLogger().Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. Init Logger at the configured level
	util.InitLogger(cfg.LogLevel)
	logger := util.GetLogger()

	// 3. Init MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}

	// 4. Init Layers
	db := client.Database(cfg.DBName)
	repo := repository.NewMongoRepository(db, repository.CollectionNames{
		Cases:        cfg.CasesCollection,
		CaseDocs:     cfg.CaseDocsCollection,
		PersonalDocs: cfg.PersonalDocsCollection,
		AuditLogs:    cfg.AuditLogsCollection,
		Users:        cfg.UsersCollection,
	})

	// Ensure Indexes (non-fatal: reads and writes work without them)
	if err := repo.EnsureCaseIndexes(context.Background()); err != nil {
		logger.Warn("Failed to ensure case indexes", "error", err)
	}
	if err := repo.EnsureDocumentIndexes(context.Background()); err != nil {
		logger.Warn("Failed to ensure document indexes", "error", err)
	}
	if err := repo.EnsurePersonalIndexes(context.Background()); err != nil {
		logger.Warn("Failed to ensure personal document indexes", "error", err)
	}
	if err := repo.EnsureAuditIndexes(context.Background()); err != nil {
		logger.Warn("Failed to ensure audit indexes", "error", err)
	}

	var notifier ledger.Notifier = ledger.NoopNotifier{}
	if cfg.LedgerEnabled {
		notifier = ledger.NewHTTPNotifier(cfg.LedgerRPCURL, cfg.LedgerTimeout)
		logger.Info("Ledger notifications enabled", "endpoint", cfg.LedgerRPCURL)
	}

	svc := service.NewService(repo, notifier)
	h := handler.NewVaultHandler(svc)

	// 5. Init Echo & Routes
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	}))

	router.RegisterRoutes(e, h)

	// 6. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("shutting down the server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server Shutdown Failed", "error", err)
	}

	if err := client.Disconnect(ctx); err != nil {
		logger.Error("Failed to disconnect DB", "error", err)
	}

	logger.Info("Server exited properly")
}
