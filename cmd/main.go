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

	cancelAppointmentHandler "github.com/medpoint/MP-SchedulingService/internal/api/handlers/cancel_appointment"
	getAppointmentHandler "github.com/medpoint/MP-SchedulingService/internal/api/handlers/get_appointment"
	getPatientAppointmentsHandler "github.com/medpoint/MP-SchedulingService/internal/api/handlers/get_patient_appointments"
	getProviderAppointmentsHandler "github.com/medpoint/MP-SchedulingService/internal/api/handlers/get_provider_appointments"
	getProviderAvailabilityHandler "github.com/medpoint/MP-SchedulingService/internal/api/handlers/get_provider_availability"
	getProviderSlotsHandler "github.com/medpoint/MP-SchedulingService/internal/api/handlers/get_provider_slots"
	scheduleAppointmentHandler "github.com/medpoint/MP-SchedulingService/internal/api/handlers/schedule_appointment"
	updateProviderAvailabilityHandler "github.com/medpoint/MP-SchedulingService/internal/api/handlers/update_provider_availability"
	"github.com/medpoint/MP-SchedulingService/internal/api/middleware"
	"github.com/medpoint/MP-SchedulingService/internal/config"
	appointmentRepo "github.com/medpoint/MP-SchedulingService/internal/infra/storage/appointment"
	providerRepo "github.com/medpoint/MP-SchedulingService/internal/infra/storage/provider"
	patientRecordsClient "github.com/medpoint/MP-SchedulingService/internal/integrations/patientrecords"
	appointmentsService "github.com/medpoint/MP-SchedulingService/internal/service/appointments"
	availabilityService "github.com/medpoint/MP-SchedulingService/internal/service/availability"
	getProviderSlotsUC "github.com/medpoint/MP-SchedulingService/internal/usecase/get_provider_slots"
	scheduleAppointmentUC "github.com/medpoint/MP-SchedulingService/internal/usecase/schedule_appointment"
	"github.com/medpoint/MP-SchedulingService/pkg/dbmetrics"
	"github.com/medpoint/MP-SchedulingService/pkg/logger"
	"github.com/medpoint/MP-SchedulingService/pkg/metrics"
	"github.com/medpoint/MP-SchedulingService/pkg/txmanager"
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

	log.Info("Starting MP-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Сбор метрик connection pool
	if cfg.Metrics.Enabled {
		dbmetrics.CollectPoolStats(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Инициализируем клиент сервиса медкарт
	recordsClient := patientRecordsClient.NewClient(
		cfg.PatientRecords.URL,
		time.Duration(cfg.PatientRecords.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (PatientRecords=%s timeout=%ds)",
		cfg.PatientRecords.URL, cfg.PatientRecords.Timeout)

	// Инициализируем репозитории и transaction manager
	appointmentRepository := appointmentRepo.NewRepository(db)
	providerRepository := providerRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, txMgr, log)
	availabilitySvc := availabilityService.NewService(providerRepository, txMgr, log)

	// Доменные метрики передаются в usecase только если включены
	var domainMetrics scheduleAppointmentUC.MetricsCollector
	if cfg.Metrics.Enabled {
		domainMetrics = metricsCollector
	}

	// Инициализируем use cases
	scheduleAppointmentUseCase := scheduleAppointmentUC.NewUseCase(
		providerRepository,
		appointmentRepository,
		recordsClient,
		txMgr,
		nil, // страховая проверка по умолчанию
		domainMetrics,
		log,
	)

	getProviderSlotsUseCase := getProviderSlotsUC.NewUseCase(providerRepository, log)

	// Инициализируем handlers
	scheduleAppointment := scheduleAppointmentHandler.NewHandler(scheduleAppointmentUseCase, log)
	getProviderSlots := getProviderSlotsHandler.NewHandler(getProviderSlotsUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	getPatientAppointments := getPatientAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getProviderAppointments := getProviderAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getProviderAvailability := getProviderAvailabilityHandler.NewHandler(availabilitySvc, log)
	updateProviderAvailability := updateProviderAvailabilityHandler.NewHandler(availabilitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные слоты врача на день
	api.HandleFunc("/providers/{providerId}/slots",
		getProviderSlots.Handle).Methods(http.MethodGet)

	// Окна доступности врача
	api.HandleFunc("/providers/{providerId}/availability",
		getProviderAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи на приём ---
	// Планирование приёма
	protected.HandleFunc("/appointments", scheduleAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// История записей пациента
	protected.HandleFunc("/patients/{patientId}/appointments", getPatientAppointments.Handle).Methods(http.MethodGet)

	// --- Управление расписанием врачей ---
	// Записи врача за период
	protected.HandleFunc("/providers/{providerId}/appointments", getProviderAppointments.Handle).Methods(http.MethodGet)

	// Замена расписания врача
	protected.HandleFunc("/providers/{providerId}/availability", updateProviderAvailability.Handle).Methods(http.MethodPut)

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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
