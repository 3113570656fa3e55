package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	approveVisitHandler "github.com/m04kA/FLM-VisitService/internal/api/handlers/approve_visit"
	cancelVisitHandler "github.com/m04kA/FLM-VisitService/internal/api/handlers/cancel_visit"
	rejectVisitHandler "github.com/m04kA/FLM-VisitService/internal/api/handlers/reject_visit"
	reserveVisitHandler "github.com/m04kA/FLM-VisitService/internal/api/handlers/reserve_visit"
	"github.com/m04kA/FLM-VisitService/internal/api/middleware"
	"github.com/m04kA/FLM-VisitService/internal/config"
	slotStore "github.com/m04kA/FLM-VisitService/internal/infra/storage/slot"
	visiteventRepo "github.com/m04kA/FLM-VisitService/internal/infra/storage/visitevent"
	notifyClient "github.com/m04kA/FLM-VisitService/internal/integrations/notifyservice"
	notificationsService "github.com/m04kA/FLM-VisitService/internal/service/notifications"
	approveVisitUC "github.com/m04kA/FLM-VisitService/internal/usecase/approve_visit"
	cancelVisitUC "github.com/m04kA/FLM-VisitService/internal/usecase/cancel_visit"
	rejectVisitUC "github.com/m04kA/FLM-VisitService/internal/usecase/reject_visit"
	reserveVisitUC "github.com/m04kA/FLM-VisitService/internal/usecase/reserve_visit"
	"github.com/m04kA/FLM-VisitService/pkg/logger"
	"github.com/m04kA/FLM-VisitService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting FLM-VisitService...")
	log.Info("Configuration loaded from config.toml")

	// Таймзона календарной арифметики слотов
	location, err := cfg.Scheduler.Location()
	if err != nil {
		log.Fatal("Failed to resolve scheduler timezone: %v", err)
	}
	log.Info("Scheduler timezone: %s", location)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных журнала событий (если включена)
	var eventRepository *visiteventRepo.Repository
	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		eventRepository = visiteventRepo.NewRepository(db)
	} else {
		log.Info("Visit event journal disabled")
	}

	// Инициализируем клиент NotifyService
	notifyServiceClient := notifyClient.NewClient(
		cfg.NotifyService.URL,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	log.Info("NotifyService client initialized (url=%s, timeout=%ds)",
		cfg.NotifyService.URL, cfg.NotifyService.Timeout)

	// Хранилище слотов живет в памяти процесса
	store := slotStore.NewStore()

	// Сервис уведомлений. Опциональные зависимости передаются как
	// интерфейсы, чтобы typed-nil указатель не превратился в non-nil
	// интерфейс внутри сервиса.
	var eventJournal notificationsService.EventRepository
	if eventRepository != nil {
		eventJournal = eventRepository
	}
	var transitionMetrics notificationsService.MetricsRecorder
	if metricsCollector != nil {
		transitionMetrics = metricsCollector
	}
	notifier := notificationsService.NewService(notifyServiceClient, eventJournal, transitionMetrics, log)

	// Инициализируем use cases
	reserveVisitUseCase := reserveVisitUC.NewUseCase(store, notifier, location, log)
	approveVisitUseCase := approveVisitUC.NewUseCase(store, notifier, log)
	rejectVisitUseCase := rejectVisitUC.NewUseCase(store, notifier, log)
	cancelVisitUseCase := cancelVisitUC.NewUseCase(store, notifier, log)

	// Инициализируем handlers
	reserveVisit := reserveVisitHandler.NewHandler(reserveVisitUseCase, log)
	approveVisit := approveVisitHandler.NewHandler(approveVisitUseCase, log)
	rejectVisit := rejectVisitHandler.NewHandler(rejectVisitUseCase, log)
	cancelVisit := cancelVisitHandler.NewHandler(cancelVisitUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Резервирование слота визита
	api.HandleFunc("/flats/{flatId}/visits", reserveVisit.Handle).Methods(http.MethodPost)

	// Подтверждение визита владельцем
	api.HandleFunc("/flats/{flatId}/visits/{startTime}/approve", approveVisit.Handle).Methods(http.MethodPatch)

	// Отклонение визита владельцем
	api.HandleFunc("/flats/{flatId}/visits/{startTime}/reject", rejectVisit.Handle).Methods(http.MethodPatch)

	// Отмена визита посетителем
	api.HandleFunc("/flats/{flatId}/visits/{startTime}/cancel", cancelVisit.Handle).Methods(http.MethodPatch)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
