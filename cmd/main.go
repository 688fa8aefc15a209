package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	attributesHandler "github.com/m04kA/Truckify-BookingService/internal/api/handlers/attributes"
	bookingFlowHandler "github.com/m04kA/Truckify-BookingService/internal/api/handlers/booking_flow"
	campersHandler "github.com/m04kA/Truckify-BookingService/internal/api/handlers/campers"
	cancelBookingHandler "github.com/m04kA/Truckify-BookingService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/Truckify-BookingService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/Truckify-BookingService/internal/api/handlers/create_booking"
	exportBookingsHandler "github.com/m04kA/Truckify-BookingService/internal/api/handlers/export_bookings"
	getBookingHandler "github.com/m04kA/Truckify-BookingService/internal/api/handlers/get_booking"
	getCalendarDataHandler "github.com/m04kA/Truckify-BookingService/internal/api/handlers/get_calendar_data"
	getMonthGridHandler "github.com/m04kA/Truckify-BookingService/internal/api/handlers/get_month_grid"
	getSettingsHandler "github.com/m04kA/Truckify-BookingService/internal/api/handlers/get_settings"
	healthHandler "github.com/m04kA/Truckify-BookingService/internal/api/handlers/health"
	listBookingsHandler "github.com/m04kA/Truckify-BookingService/internal/api/handlers/list_bookings"
	updateBookingHandler "github.com/m04kA/Truckify-BookingService/internal/api/handlers/update_booking"
	updateSettingsHandler "github.com/m04kA/Truckify-BookingService/internal/api/handlers/update_settings"
	uploadHandler "github.com/m04kA/Truckify-BookingService/internal/api/handlers/upload"
	"github.com/m04kA/Truckify-BookingService/internal/api/middleware"
	"github.com/m04kA/Truckify-BookingService/internal/calendar"
	"github.com/m04kA/Truckify-BookingService/internal/config"
	"github.com/m04kA/Truckify-BookingService/internal/flow"
	attributeRepo "github.com/m04kA/Truckify-BookingService/internal/infra/storage/attribute"
	bookingRepo "github.com/m04kA/Truckify-BookingService/internal/infra/storage/booking"
	camperRepo "github.com/m04kA/Truckify-BookingService/internal/infra/storage/camper"
	"github.com/m04kA/Truckify-BookingService/internal/infra/storage/flowstate"
	"github.com/m04kA/Truckify-BookingService/internal/infra/storage/migrate"
	settingsRepo "github.com/m04kA/Truckify-BookingService/internal/infra/storage/settings"
	"github.com/m04kA/Truckify-BookingService/internal/infra/storage/uploads"
	attributesService "github.com/m04kA/Truckify-BookingService/internal/service/attributes"
	bookingsService "github.com/m04kA/Truckify-BookingService/internal/service/bookings"
	campersService "github.com/m04kA/Truckify-BookingService/internal/service/campers"
	settingsService "github.com/m04kA/Truckify-BookingService/internal/service/settings"
	checkAvailabilityUC "github.com/m04kA/Truckify-BookingService/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/Truckify-BookingService/internal/usecase/create_booking"
	getCalendarDataUC "github.com/m04kA/Truckify-BookingService/internal/usecase/get_calendar_data"
	"github.com/m04kA/Truckify-BookingService/migrations"
	"github.com/m04kA/Truckify-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Truckify-BookingService/pkg/logger"
	"github.com/m04kA/Truckify-BookingService/pkg/metrics"
	"github.com/m04kA/Truckify-BookingService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting Truckify-BookingService...")
	log.Info("Configuration loaded from %s", configPath)

	// Метрики; при выключенных метриках collector остаётся nil
	var metricsCollector *metrics.Metrics
	var dbRecorder dbmetrics.Recorder
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		dbRecorder = metricsCollector
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

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, dbRecorder, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	if cfg.Database.Migrate {
		if err := migrate.NewMigrator(wrappedDB, txMgr, migrations.Files, log).Up(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Репозитории
	camperRepository := camperRepo.NewRepository(wrappedDB)
	attributeRepository := attributeRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	settingsRepository := settingsRepo.NewRepository(wrappedDB)

	// Хранилище сессий бронирования
	checks := map[string]healthHandler.Check{"postgres": wrappedDB.PingContext}
	flowTTL := time.Duration(cfg.Flow.TTLMinutes) * time.Minute

	var flowStore flow.Store
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		flowStore = flowstate.NewRedisStore(rdb, flowTTL)
		log.Info("Booking flow state stored in redis (address=%s, ttl=%s)", cfg.Redis.Address, flowTTL)
	} else {
		flowStore = flowstate.NewMemoryStore(flowTTL)
		log.Warn("Redis disabled, booking flow state kept in memory (ttl=%s)", flowTTL)
	}

	fileStore, err := uploads.NewFileStore(cfg.Uploads.Dir)
	if err != nil {
		log.Fatal("Failed to prepare uploads dir: %v", err)
	}

	// Сервисы
	camperSvc := campersService.NewService(camperRepository, log)
	attributeSvc := attributesService.NewService(attributeRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, camperRepository, txMgr, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)

	// Use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		camperRepository,
		bookingRepository,
		settingsSvc,
		metricsCollector,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		camperRepository,
		attributeRepository,
		settingsSvc,
		txMgr,
		metricsCollector,
		log,
	)
	getCalendarDataUseCase := getCalendarDataUC.NewUseCase(camperRepository, bookingRepository, log)

	// Календарь выбора дат и сессии бронирования
	grids := calendar.NewGridCache(0)
	bookingCalendar := calendar.NewController(calendar.BookingPolicy, calendar.WithGridCache(grids))
	flowController := flow.NewController(
		flowStore,
		bookingCalendar,
		checkAvailabilityUseCase,
		createBookingUseCase,
		attributeRepository,
		metricsCollector,
		log,
	)

	// Handlers
	campers := campersHandler.NewHandler(camperSvc, log)
	attributes := attributesHandler.NewHandler(attributeSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	getCalendarData := getCalendarDataHandler.NewHandler(getCalendarDataUseCase, log)
	getMonthGrid := getMonthGridHandler.NewHandler(grids, log)
	upload := uploadHandler.NewHandler(fileStore, cfg.Uploads.PublicURL, int64(cfg.Uploads.MaxSizeMB)<<20, log)
	bookingFlow := bookingFlowHandler.NewHandler(flowController, log)
	health := healthHandler.NewHandler(checks, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", health.Live).Methods(http.MethodGet)
	r.HandleFunc("/readyz", health.Ready).Methods(http.MethodGet)

	// Загруженные файлы; регистрируется до /api, т.к. префикс по умолчанию /api/uploads
	uploadsPrefix := strings.TrimRight(cfg.Uploads.PublicURL, "/") + "/"
	r.PathPrefix(uploadsPrefix).
		Handler(http.StripPrefix(uploadsPrefix, http.FileServer(http.Dir(fileStore.Dir())))).
		Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Language(settingsSvc, log))

	// ============================================================
	// ПАНЕЛЬ УПРАВЛЕНИЯ
	// ============================================================

	// --- Кемперы ---
	api.HandleFunc("/campers", campers.List).Methods(http.MethodGet)
	api.HandleFunc("/campers", campers.Create).Methods(http.MethodPost)
	api.HandleFunc("/campers/{id:[0-9]+}", campers.Get).Methods(http.MethodGet)
	api.HandleFunc("/campers/{id:[0-9]+}", campers.Update).Methods(http.MethodPut)
	api.HandleFunc("/campers/{id:[0-9]+}", campers.Delete).Methods(http.MethodDelete)

	// --- Опции ---
	api.HandleFunc("/attributes", attributes.List).Methods(http.MethodGet)
	api.HandleFunc("/attributes", attributes.Create).Methods(http.MethodPost)
	api.HandleFunc("/attributes/{id:[0-9]+}", attributes.Get).Methods(http.MethodGet)
	api.HandleFunc("/attributes/{id:[0-9]+}", attributes.Update).Methods(http.MethodPut)
	api.HandleFunc("/attributes/{id:[0-9]+}", attributes.Delete).Methods(http.MethodDelete)

	// --- Бронирования ---
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/export", exportBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id:[0-9]+}", updateBooking.Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{id:[0-9]+}", cancelBooking.Handle).Methods(http.MethodDelete)

	// --- Настройки и календарь ---
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)
	api.HandleFunc("/calendar", getCalendarData.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar/grid", getMonthGrid.Handle).Methods(http.MethodGet)

	// --- Файлы ---
	api.HandleFunc("/upload", upload.Handle).Methods(http.MethodPost)

	// ============================================================
	// ПУБЛИЧНОЕ БРОНИРОВАНИЕ (с ограничением частоты запросов)
	// ============================================================

	public := api.NewRoute().Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log)
		public.Use(limiter.Middleware)
		log.Info("Rate limit enabled: %.1f rps, burst %d", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	public.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)
	public.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	public.HandleFunc("/flow", bookingFlow.Start).Methods(http.MethodPost)
	public.HandleFunc("/flow/{id}", bookingFlow.Get).Methods(http.MethodGet)
	public.HandleFunc("/flow/{id}", bookingFlow.Restart).Methods(http.MethodDelete)
	public.HandleFunc("/flow/{id}/calendar", bookingFlow.Calendar).Methods(http.MethodGet)
	public.HandleFunc("/flow/{id}/calendar/click", bookingFlow.Click).Methods(http.MethodPost)
	public.HandleFunc("/flow/{id}/calendar/navigate", bookingFlow.Navigate).Methods(http.MethodPost)
	public.HandleFunc("/flow/{id}/camper", bookingFlow.SelectCamper).Methods(http.MethodPost)
	public.HandleFunc("/flow/{id}/attributes", bookingFlow.SetAttributes).Methods(http.MethodPost)
	public.HandleFunc("/flow/{id}/customer", bookingFlow.SubmitCustomer).Methods(http.MethodPost)

	// CORS оборачивает весь роутер: preflight OPTIONS не совпадает ни с одним маршрутом
	var handler http.Handler = r
	if len(cfg.CORS.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.CORS.AllowedOrigins)(r)
		log.Info("CORS enabled for %v", cfg.CORS.AllowedOrigins)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
