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

	applySlotsBulkHandler "github.com/m04kA/HSP-ScheduleService/internal/api/handlers/apply_slots_bulk"
	createAppointmentHandler "github.com/m04kA/HSP-ScheduleService/internal/api/handlers/create_appointment"
	createDateHandler "github.com/m04kA/HSP-ScheduleService/internal/api/handlers/create_date"
	createSlotHandler "github.com/m04kA/HSP-ScheduleService/internal/api/handlers/create_slot"
	deleteDateHandler "github.com/m04kA/HSP-ScheduleService/internal/api/handlers/delete_date"
	deleteSlotHandler "github.com/m04kA/HSP-ScheduleService/internal/api/handlers/delete_slot"
	getAvailableDatesHandler "github.com/m04kA/HSP-ScheduleService/internal/api/handlers/get_available_dates"
	getAvailableSlotsHandler "github.com/m04kA/HSP-ScheduleService/internal/api/handlers/get_available_slots"
	listAppointmentsHandler "github.com/m04kA/HSP-ScheduleService/internal/api/handlers/list_appointments"
	listSlotsAdminHandler "github.com/m04kA/HSP-ScheduleService/internal/api/handlers/list_slots_admin"
	updateAppointmentStatusHandler "github.com/m04kA/HSP-ScheduleService/internal/api/handlers/update_appointment_status"
	updateDateHandler "github.com/m04kA/HSP-ScheduleService/internal/api/handlers/update_date"
	updateSlotHandler "github.com/m04kA/HSP-ScheduleService/internal/api/handlers/update_slot"
	"github.com/m04kA/HSP-ScheduleService/internal/api/middleware"
	"github.com/m04kA/HSP-ScheduleService/internal/config"
	appointmentRepo "github.com/m04kA/HSP-ScheduleService/internal/infra/storage/appointment"
	calendarRepo "github.com/m04kA/HSP-ScheduleService/internal/infra/storage/calendar"
	slotRepo "github.com/m04kA/HSP-ScheduleService/internal/infra/storage/slot"
	catalogServiceClient "github.com/m04kA/HSP-ScheduleService/internal/integrations/catalogservice"
	userServiceClient "github.com/m04kA/HSP-ScheduleService/internal/integrations/userservice"
	appointmentsService "github.com/m04kA/HSP-ScheduleService/internal/service/appointments"
	calendarService "github.com/m04kA/HSP-ScheduleService/internal/service/calendar"
	capacityService "github.com/m04kA/HSP-ScheduleService/internal/service/capacity"
	slotsService "github.com/m04kA/HSP-ScheduleService/internal/service/slots"
	applySlotsBulkUC "github.com/m04kA/HSP-ScheduleService/internal/usecase/apply_slots_bulk"
	createAppointmentUC "github.com/m04kA/HSP-ScheduleService/internal/usecase/create_appointment"
	getAvailableDatesUC "github.com/m04kA/HSP-ScheduleService/internal/usecase/get_available_dates"
	getAvailableSlotsUC "github.com/m04kA/HSP-ScheduleService/internal/usecase/get_available_slots"
	"github.com/m04kA/HSP-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/HSP-ScheduleService/pkg/logger"
	"github.com/m04kA/HSP-ScheduleService/pkg/metrics"
	"github.com/m04kA/HSP-ScheduleService/pkg/simpletxmanager"
	"github.com/m04kA/HSP-ScheduleService/pkg/txmanager"
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

	log.Info("Starting HSP-ScheduleService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем интеграционных клиентов
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s timeout=%ds, CatalogService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout, cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		calendarRepository    *calendarRepo.Repository
		slotRepository        *slotRepo.Repository
		appointmentRepository *appointmentRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		calendarRepository = calendarRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		calendarRepository = calendarRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	calendarSvc := calendarService.NewService(calendarRepository, catalogClient, log)
	slotSvc := slotsService.NewService(slotRepository, catalogClient, log)
	appointmentSvc := appointmentsService.NewService(appointmentRepository, userClient, log)
	capacityTracker := capacityService.NewTracker(calendarRepository, appointmentRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		slotRepository,
		capacityTracker,
		txMgr,
		log,
	)
	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(
		calendarRepository,
		capacityTracker,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		calendarRepository,
		slotRepository,
		log,
	)
	applySlotsBulkUseCase := applySlotsBulkUC.NewUseCase(
		slotSvc,
		calendarRepository,
		log,
	)

	// Инициализируем handlers
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	createDate := createDateHandler.NewHandler(calendarSvc, log)
	updateDate := updateDateHandler.NewHandler(calendarSvc, log)
	deleteDate := deleteDateHandler.NewHandler(calendarSvc, log)
	listSlotsAdmin := listSlotsAdminHandler.NewHandler(slotSvc, log)
	createSlot := createSlotHandler.NewHandler(slotSvc, log)
	applySlotsBulk := applySlotsBulkHandler.NewHandler(applySlotsBulkUseCase, log)
	updateSlot := updateSlotHandler.NewHandler(slotSvc, log)
	deleteSlot := deleteSlotHandler.NewHandler(slotSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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

	// Даты, открытые для записи
	api.HandleFunc("/available-dates", getAvailableDates.Handle).Methods(http.MethodGet)

	// Доступные слоты на дату
	api.HandleFunc("/available-time-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание записи на обслуживание
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (тот же middleware; роли — забота шлюза)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth)

	// --- Календарные даты ---
	admin.HandleFunc("/available-dates", createDate.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/available-dates/{dateId}", updateDate.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/available-dates/{dateId}", deleteDate.Handle).Methods(http.MethodDelete)

	// --- Временные слоты ---
	admin.HandleFunc("/available-time-slots", listSlotsAdmin.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/available-time-slots", createSlot.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/available-time-slots/bulk", applySlotsBulk.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/available-time-slots/{slotId}", updateSlot.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/available-time-slots/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)

	// --- Записи на обслуживание ---
	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPut)

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
