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

	createAvailabilityHandler "github.com/hairmatch/HM-ReserveService/internal/api/handlers/create_availability"
	createAvailabilityMultipleHandler "github.com/hairmatch/HM-ReserveService/internal/api/handlers/create_availability_multiple"
	createReserveHandler "github.com/hairmatch/HM-ReserveService/internal/api/handlers/create_reserve"
	getAvailableSlotsHandler "github.com/hairmatch/HM-ReserveService/internal/api/handlers/get_available_slots"
	getReserveHandler "github.com/hairmatch/HM-ReserveService/internal/api/handlers/get_reserve"
	listAgendaHandler "github.com/hairmatch/HM-ReserveService/internal/api/handlers/list_agenda"
	listAvailabilityHandler "github.com/hairmatch/HM-ReserveService/internal/api/handlers/list_availability"
	listReservesHandler "github.com/hairmatch/HM-ReserveService/internal/api/handlers/list_reserves"
	removeAgendaHandler "github.com/hairmatch/HM-ReserveService/internal/api/handlers/remove_agenda"
	removeAvailabilityHandler "github.com/hairmatch/HM-ReserveService/internal/api/handlers/remove_availability"
	removeReserveHandler "github.com/hairmatch/HM-ReserveService/internal/api/handlers/remove_reserve"
	updateAvailabilityHandler "github.com/hairmatch/HM-ReserveService/internal/api/handlers/update_availability"
	updateAvailabilityMultipleHandler "github.com/hairmatch/HM-ReserveService/internal/api/handlers/update_availability_multiple"
	"github.com/hairmatch/HM-ReserveService/internal/api/middleware"
	"github.com/hairmatch/HM-ReserveService/internal/config"
	agendaRepo "github.com/hairmatch/HM-ReserveService/internal/infra/storage/agenda"
	availabilityRepo "github.com/hairmatch/HM-ReserveService/internal/infra/storage/availability"
	reserveRepo "github.com/hairmatch/HM-ReserveService/internal/infra/storage/reserve"
	catalogServiceClient "github.com/hairmatch/HM-ReserveService/internal/integrations/catalogservice"
	usersServiceClient "github.com/hairmatch/HM-ReserveService/internal/integrations/usersservice"
	agendaService "github.com/hairmatch/HM-ReserveService/internal/service/agenda"
	availabilityService "github.com/hairmatch/HM-ReserveService/internal/service/availability"
	reservesService "github.com/hairmatch/HM-ReserveService/internal/service/reserves"
	createReserveUC "github.com/hairmatch/HM-ReserveService/internal/usecase/create_reserve"
	getAvailableSlotsUC "github.com/hairmatch/HM-ReserveService/internal/usecase/get_available_slots"
	"github.com/hairmatch/HM-ReserveService/pkg/dbmetrics"
	"github.com/hairmatch/HM-ReserveService/pkg/logger"
	"github.com/hairmatch/HM-ReserveService/pkg/metrics"
	"github.com/hairmatch/HM-ReserveService/pkg/simpletxmanager"
	"github.com/hairmatch/HM-ReserveService/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting HM-ReserveService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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

	usersClient := usersServiceClient.NewClient(
		cfg.UsersService.URL,
		time.Duration(cfg.UsersService.Timeout)*time.Second,
		log,
	)
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UsersService=%s timeout=%ds, CatalogService=%s timeout=%ds)",
		cfg.UsersService.URL, cfg.UsersService.Timeout, cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	var (
		availabilityRepository *availabilityRepo.Repository
		agendaRepository       *agendaRepo.Repository
		reserveRepository      *reserveRepo.Repository
	)

	// Transaction manager interface shared by services and use cases.
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		agendaRepository = agendaRepo.NewRepository(wrappedDB)
		reserveRepository = reserveRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		availabilityRepository = availabilityRepo.NewRepository(db)
		agendaRepository = agendaRepo.NewRepository(db)
		reserveRepository = reserveRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	availabilitySvc := availabilityService.NewService(
		availabilityRepository,
		usersClient,
		txMgr,
		log,
	)
	reservesSvc := reservesService.NewService(
		reserveRepository,
		agendaRepository,
		usersClient,
		txMgr,
		log,
	)
	agendaSvc := agendaService.NewService(
		agendaRepository,
		reserveRepository,
		usersClient,
		txMgr,
		log,
	)

	createReserveUseCase := createReserveUC.NewUseCase(
		agendaRepository,
		reserveRepository,
		usersClient,
		catalogClient,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		availabilityRepository,
		agendaRepository,
		usersClient,
		catalogClient,
		cfg.Booking.SlotGranularityMinutes,
		log,
	)

	createReserve := createReserveHandler.NewHandler(createReserveUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getReserve := getReserveHandler.NewHandler(reservesSvc, log)
	listReserves := listReservesHandler.NewHandler(reservesSvc, log)
	removeReserve := removeReserveHandler.NewHandler(reservesSvc, log)
	createAvailability := createAvailabilityHandler.NewHandler(availabilitySvc, log)
	createAvailabilityMultiple := createAvailabilityMultipleHandler.NewHandler(availabilitySvc, log)
	listAvailability := listAvailabilityHandler.NewHandler(availabilitySvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(availabilitySvc, log)
	updateAvailabilityMultiple := updateAvailabilityMultipleHandler.NewHandler(availabilitySvc, log)
	removeAvailability := removeAvailabilityHandler.NewHandler(availabilitySvc, log)
	listAgenda := listAgendaHandler.NewHandler(agendaSvc, log)
	removeAgenda := removeAgendaHandler.NewHandler(agendaSvc, log)

	r := mux.NewRouter()

	r.Use(middleware.RequestID)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// --- Reserves ---
	r.HandleFunc("/reserve/slots/{hairdresser_id}", getAvailableSlots.Handle).Methods(http.MethodPost)
	r.HandleFunc("/reserve/create", createReserve.Handle).Methods(http.MethodPost)
	r.HandleFunc("/reserve/list", listReserves.Handle).Methods(http.MethodGet)
	r.HandleFunc("/reserve/list/{customer_id}", listReserves.Handle).Methods(http.MethodGet)
	r.HandleFunc("/reserve/remove/{reserve_id}", removeReserve.Handle).Methods(http.MethodDelete)
	r.HandleFunc("/reserve/{reserve_id}", getReserve.Handle).Methods(http.MethodGet)

	// --- Availability ---
	r.HandleFunc("/availability/create", createAvailability.Handle).Methods(http.MethodPost)
	r.HandleFunc("/availability/create/multiple/{hairdresser_id}", createAvailabilityMultiple.Handle).Methods(http.MethodPost)
	r.HandleFunc("/availability/list/{hairdresser_id}", listAvailability.Handle).Methods(http.MethodGet)
	r.HandleFunc("/availability/update/multiple/{hairdresser_id}", updateAvailabilityMultiple.Handle).Methods(http.MethodPut)
	r.HandleFunc("/availability/update/{availability_id}", updateAvailability.Handle).Methods(http.MethodPut)
	r.HandleFunc("/availability/remove/{availability_id}", removeAvailability.Handle).Methods(http.MethodDelete)

	// --- Agenda ---
	r.HandleFunc("/agenda/list", listAgenda.Handle).Methods(http.MethodGet)
	r.HandleFunc("/agenda/list/{hairdresser_id}", listAgenda.Handle).Methods(http.MethodGet)
	r.HandleFunc("/agenda/remove/{agenda_id}", removeAgenda.Handle).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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
