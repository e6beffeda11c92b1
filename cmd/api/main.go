package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "todolist/internal/adapter/db"
	httpadapter "todolist/internal/adapter/http"
	"todolist/internal/adapter/http/handlers"
	httpmiddleware "todolist/internal/adapter/http/middleware"
	"todolist/internal/app/service"
	"todolist/internal/config"
	"todolist/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: translator.SupportedLanguages,
	})

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.String("driver", cfg.DbDriver), zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	taskRepository := dbadapter.NewTaskRepository(db)
	categoryRepository := dbadapter.NewCategoryRepository(db)
	unitOfWork := dbadapter.NewUnitOfWork(db)

	taskService := service.NewTaskService(
		taskRepository,
		categoryRepository,
		service.WithSorter(service.TaskSorter{NullsLastAlways: cfg.SortNullsLastAlways}),
	)
	categoryService := service.NewCategoryService(categoryRepository)
	transferService := service.NewTransferService(taskRepository, unitOfWork)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Strings("proxies", cfg.TrustedProxies), zap.Error(err))
	}
	if cfg.AuthJWTSecret == "" {
		logger.Warn("AUTH_JWT_SECRET is empty, trusting the X-Owner-ID header")
	}

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:     handlers.NewHealthHandler(db),
		Tasks:      handlers.NewTaskHandler(taskService),
		Categories: handlers.NewCategoryHandler(categoryService),
		Transfer:   handlers.NewTransferHandler(transferService),
	}, cfg.AuthJWTSecret)

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr), zap.String("driver", cfg.DbDriver))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
