package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	domainRepo "udaansathi-service/internal/domain/repository"
	"udaansathi-service/internal/infrastructure/config"
	"udaansathi-service/internal/infrastructure/oauth"
	"udaansathi-service/internal/infrastructure/persistence"
	"udaansathi-service/internal/interface/mailer"
	storeRepo "udaansathi-service/internal/interface/repository"
	"udaansathi-service/internal/interface/rest"
	"udaansathi-service/internal/usecase"
	"udaansathi-service/pkg/logger"
	"udaansathi-service/pkg/metrics"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	defer log.Sync()
	log.Info("Starting Udaan Sathi backend")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up the realtime database. Created once and shared by all
	// requests for the lifetime of the process.
	log.Info("Connecting to Firebase realtime database")
	firebaseClient, err := persistence.NewFirebaseClient(ctx, cfg.FirebaseDatabaseURL, cfg.FirebaseCredentialsFile)
	if err != nil {
		log.Fatal("Failed to connect to Firebase", "error", err)
	}
	store := storeRepo.NewFirebaseStore(firebaseClient, cfg.StoreTimeout)

	// Set up the email dispatch log (optional)
	var dispatchLog domainRepo.DispatchLogRepository
	var disconnectMongo func()
	if cfg.MongoURI != "" {
		log.Info("Connecting to MongoDB")
		mongoClient, mongoDB, err := persistence.NewMongoDatabase(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB", "error", err)
		}
		dispatchLog = storeRepo.NewMongoDispatchLogRepository(mongoDB)
		disconnectMongo = func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				log.Error("MongoDB disconnect error", "error", err)
			}
		}
	} else {
		log.Warn("MONGODB_DSN not set, email dispatch log disabled")
	}

	// Set up airport reference data
	var airportRepository domainRepo.AirportRepository
	if cfg.PostgresURI != "" {
		log.Info("Connecting to PostgreSQL")
		gormDB, err := persistence.NewPostgres(cfg.PostgresURI)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", "error", err)
		}
		airportRepository, err = storeRepo.NewGormAirportRepository(gormDB)
		if err != nil {
			log.Fatal("Failed to prepare airport reference table", "error", err)
		}
	} else {
		log.Warn("POSTGRES_URI not set, using built-in airport set")
		airportRepository = storeRepo.NewStaticAirportRepository()
	}

	// Set up mailer
	var mail domainRepo.Mailer
	switch cfg.MailProvider {
	case config.MailProviderGmail:
		gmailOAuth := oauth.NewGmailOAuth(cfg.GmailClientID, cfg.GmailClientSecret, cfg.GmailRefreshToken, log)
		mail, err = mailer.NewGmailMailer(ctx, gmailOAuth.GetTokenSource(ctx), cfg.MailFrom, log)
		if err != nil {
			log.Fatal("Failed to create Gmail mailer", "error", err)
		}
	default:
		mail = mailer.NewResendMailer(cfg.MailAPIURL, cfg.MailAPIKey, cfg.MailFrom, cfg.MailTimeout, log)
	}

	// Set up repositories
	flightRepository := storeRepo.NewStoreFlightRepository(store, log)
	archiveRepository := storeRepo.NewStoreArchiveRepository(store)
	notificationRepository := storeRepo.NewStoreNotificationRepository(store)
	refundRepository := storeRepo.NewStoreRefundRepository(store)

	// Set up use cases
	appMetrics := metrics.NewMetrics(prometheus.DefaultRegisterer, "udaansathi")
	notifier := usecase.NewNotifier(notificationRepository, mail, dispatchLog, appMetrics, log)
	disruptions := usecase.NewDisruptionOrchestrator(flightRepository, archiveRepository, notifier, appMetrics, log)
	refunds := usecase.NewRefundService(refundRepository, archiveRepository, log)
	tickets := usecase.NewTicketRenderer()

	// Set up HTTP server
	server := rest.NewServer(
		":"+cfg.Port,
		cfg.AllowedOrigins,
		log,
		flightRepository,
		airportRepository,
		notificationRepository,
		disruptions,
		refunds,
		tickets,
	)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Run(ctx)
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		log.Info("Received signal", "signal", sig)
	case err := <-serverErr:
		if err != nil {
			log.Error("HTTP server error", "error", err)
		}
	}

	cancel() // Stop the HTTP server

	if disconnectMongo != nil {
		disconnectMongo()
	}

	log.Info("Udaan Sathi backend stopped")
}
