package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bankbot-actions/action"
	"bankbot-actions/config"
	"bankbot-actions/db"
	"bankbot-actions/handler"
	"bankbot-actions/logger"
	"bankbot-actions/repository"
	"bankbot-actions/router"
	"bankbot-actions/service"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	runMigrations()

	// The card list cache is optional; without Redis the service reads
	// through to the database every time.
	var cache service.ICacheClient
	if config.AppConfig.Redis.Host != "" {
		redisClient, err := db.ConnectRedis()
		if err != nil {
			logger.Log.Fatalf("Error connecting to Redis: %v", err)
		}
		defer redisClient.Close()
		cache = redisClient
	}

	// --- Wiring All Layers Together ---
	accountRepo := repository.NewAccountRepository(database)
	cardRepo := repository.NewCreditCardRepository(database)
	transactionRepo := repository.NewTransactionRepository(database)
	offlineRepo := repository.NewOfflineTransactionRepository(database)
	recipientRepo := repository.NewRecipientRepository(database)
	currencyRepo := repository.NewCurrencyAccountRepository(database)

	profileService := service.NewProfileService(accountRepo, transactionRepo, offlineRepo, recipientRepo, cardRepo)
	cardService := service.NewCardService(database, accountRepo, cardRepo, transactionRepo, cache)
	currencyService := service.NewCurrencyService(accountRepo, cardRepo, currencyRepo)
	seedService := service.NewSeedService(accountRepo, cardRepo, transactionRepo, recipientRepo, currencyRepo)

	registry := action.NewRegistry(
		action.NewSessionStart(seedService),
		action.NewShowAccounts(cardService),
		action.NewShowCurrencyAccounts(currencyService),
		action.NewShowCurrencies(currencyService),
		action.NewShowBalance(profileService),
		action.NewShowRecipients(profileService),
		action.NewShowTransactions(profileService),
		action.NewCreateCurrencyAccount(currencyService),
		action.NewPayCC(cardService),
		action.NewValidateCurrCreateForm(cardService, currencyService),
		action.NewValidatePayCCForm(cardService, profileService),
	)

	actionHandler := handler.NewActionHandler(registry)
	r := router.NewRouter(actionHandler)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Action server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}

func runMigrations() {
	mig, err := migrate.New("file://db/migrations", db.URL())
	if err != nil {
		logger.Log.Fatalf("Cannot create migrate instance: %v", err)
	}
	if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
		logger.Log.Fatalf("Failed to run migrate up: %v", err)
	}
	logger.Log.Info("Database migrations applied")
}
