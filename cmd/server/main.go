package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"salom-api/internal/config"
	"salom-api/internal/handler"
	"salom-api/internal/i18n"
	"salom-api/internal/logger"
	"salom-api/internal/service"
	"salom-api/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat, "salom-api")
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	if err := i18n.Init(cfg.DefaultLocale); err != nil {
		zlog.Fatal("init i18n", zap.Error(err))
	}

	st, err := store.New(cfg.DataDir, zlog)
	if err != nil {
		zlog.Fatal("init store", zap.Error(err))
	}
	if err := store.Seed(st, time.Now()); err != nil {
		zlog.Fatal("seed data", zap.Error(err))
	}

	// Services
	districtSvc := service.NewDistrictService(st)
	departmentSvc := service.NewDepartmentService(st)
	employeeSvc := service.NewEmployeeService(st)
	attendanceSvc := service.NewAttendanceService(st)
	statsSvc := service.NewStatisticsService(st)

	// Routes
	mux := http.NewServeMux()
	handler.NewDistrictHandler(districtSvc, zlog).RegisterRoutes(mux)
	handler.NewDepartmentHandler(departmentSvc, zlog).RegisterRoutes(mux)
	handler.NewEmployeeHandler(employeeSvc, zlog).RegisterRoutes(mux)
	handler.NewAttendanceHandler(attendanceSvc, statsSvc, zlog).RegisterRoutes(mux)
	handler.RegisterHealthRoutes(mux)

	// Middleware, innermost first: locale extraction, request logging, the
	// user-agent gate, then CORS so preflights are answered at the edge.
	var root http.Handler = mux
	root = handler.Locale(root)
	root = handler.Logging(zlog)(root)
	root = handler.RequestFilter(root)
	root = handler.CORS(cfg.AllowedOrigins)(root)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("server started", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	srv.Shutdown(ctx)
}
