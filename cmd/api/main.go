package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/caronvincent/todo-burbanie/internal/adapter/auth"
	dbadapter "github.com/caronvincent/todo-burbanie/internal/adapter/db"
	httpadapter "github.com/caronvincent/todo-burbanie/internal/adapter/http"
	"github.com/caronvincent/todo-burbanie/internal/adapter/http/handlers"
	httpmiddleware "github.com/caronvincent/todo-burbanie/internal/adapter/http/middleware"
	"github.com/caronvincent/todo-burbanie/internal/app/service"
	"github.com/caronvincent/todo-burbanie/internal/config"
	"github.com/caronvincent/todo-burbanie/pkg/logger"
	"github.com/caronvincent/todo-burbanie/pkg/translator"
)

const migrationTimeout = 30 * time.Second

func main() {
	cfg := config.LoadConfig()

	log := logger.New(logger.Config{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(log)
	defer func() {
		if err := log.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		log.Fatal("failed to connect to database", zap.String("driver", cfg.DbDriver), zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), migrationTimeout)
	err = dbadapter.Migrate(ctx, db)
	cancel()
	if err != nil {
		log.Fatal("failed to apply migrations", zap.Error(err))
	}

	users, err := auth.LoadUserStore(cfg.UsersFile)
	if err != nil {
		log.Fatal("failed to load users", zap.String("file", cfg.UsersFile), zap.Error(err))
	}

	categoryRepository := dbadapter.NewCategoryRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)
	categoryService := service.NewCategoryService(categoryRepository)
	taskService := service.NewTaskService(taskRepository, categoryRepository)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := httpmiddleware.NewHTTPMetrics(registry, cfg.AppName)

	r := gin.New()
	r.Use(
		gin.Recovery(),
		httpmiddleware.RequestID(),
		httpmiddleware.GinZapMiddleware(log),
		metrics.Handler(),
	)
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		log.Fatal("invalid trusted proxies", zap.Strings("proxies", cfg.TrustedProxies), zap.Error(err))
	}

	httpadapter.RegisterRoutes(r, httpmiddleware.BasicAuth(users, cfg.AuthRealm), httpadapter.Handlers{
		Health:   handlers.NewHealthHandler(db, cfg.AppName),
		Category: handlers.NewCategoryHandler(categoryService),
		Task:     handlers.NewTaskHandler(taskService),
	})
	httpadapter.RegisterMetrics(r, registry)

	addr := ":" + cfg.AppPort
	log.Info("starting server", zap.String("addr", addr), zap.String("driver", cfg.DbDriver))
	if err := r.Run(addr); err != nil {
		log.Fatal("could not start server", zap.Error(err))
	}
}
