package main

import (
	"context"
	"log"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/taskdeck/backend/api/handler"
	"github.com/taskdeck/backend/internal/config"
	"github.com/taskdeck/backend/internal/infrastructure/monitor"
	"github.com/taskdeck/backend/internal/middleware"
	"github.com/taskdeck/backend/internal/router"
	"github.com/taskdeck/backend/internal/services"
	"github.com/taskdeck/backend/internal/services/lifecycle"
	"github.com/taskdeck/backend/pkg/httpcontext"
	"github.com/taskdeck/backend/pkg/logger"
	"github.com/taskdeck/backend/repository/inmemory"
	taskUC "github.com/taskdeck/backend/usecase/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	appCtx := manager.NotifyContext(context.Background())

	taskRepo := inmemory.NewTaskRepository()
	history := inmemory.NewActionHistory(cfg.History.MaxDepth)

	mon := monitor.New(taskRepo, history, cfg.Monitor.Interval, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	if cfg.Stats.Enabled {
		reporter := services.NewStatsReporter(mon, zapLogger, services.ReporterConfig{
			Interval: cfg.Stats.Interval,
		})
		reporter.Start()
		manager.Register("stats_reporter", func(ctx context.Context) error {
			reporter.Stop(ctx)
			return nil
		})
	}

	taskUseCase := taskUC.New(taskRepo, history, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Task:   apiHandler.NewTaskHandler(taskUseCase, ctxAdapter, zapLogger),
		Health: apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	accessLog := middleware.AccessLog(zapLogger)
	r := router.New(handlers, accessLog)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
