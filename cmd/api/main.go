package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpadapter "taskflow/internal/adapter/http"
	"taskflow/internal/adapter/http/handlers"
	httpmiddleware "taskflow/internal/adapter/http/middleware"
	"taskflow/internal/adapter/records"
	"taskflow/internal/app/service"
	"taskflow/internal/app/session"
	"taskflow/internal/config"
	"taskflow/internal/core/ports"
	"taskflow/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()

	store, cleanup, err := buildStore(cfg)
	if err != nil {
		logger.Fatal("failed to initialize record store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer cleanup()

	taskService := service.NewTaskService(records.NewTaskRepository(store))
	categoryService := service.NewCategoryService(records.NewCategoryRepository(store))
	reconciler := service.NewReconciler(records.NewCategoryRepository(store))
	notifier := session.NewLogNotifier(logger)

	sess := session.New(taskService, categoryService, reconciler, notifier, translator.LanguageEn)
	if err := sess.Load(context.Background()); err != nil {
		logger.Warn("initial load failed", zap.Error(err))
	}

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger), httpmiddleware.MetricsMiddleware())
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	healthHandler := handlers.NewHealthHandler(store, cfg.AppName, cfg.AppVersion)
	taskHandler := handlers.NewTaskHandler(sess)
	categoryHandler := handlers.NewCategoryHandler(sess)
	dashboardHandler := handlers.NewDashboardHandler(sess)
	httpadapter.RegisterRoutes(r, healthHandler, taskHandler, categoryHandler, dashboardHandler)

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr), zap.String("store_driver", cfg.StoreDriver))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}

func buildStore(cfg *config.Config) (ports.RecordStore, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMySQL:
		db, err := records.ConnectDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := db.Close(); err != nil {
				zap.L().Warn("failed to close mysql connection", zap.Error(err))
			}
		}
		return records.NewSQLStore(db), cleanup, nil
	default:
		store := records.NewMemoryStore(
			records.WithSeed(ports.KindTask, records.SeedTasks()),
			records.WithSeed(ports.KindCategory, records.SeedCategories()),
			records.WithLatency(cfg.MockLatency),
		)
		return store, func() {}, nil
	}
}
