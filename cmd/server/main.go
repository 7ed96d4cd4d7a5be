package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/corebank/backend/docs"
	"github.com/corebank/backend/internal/audit"
	"github.com/corebank/backend/internal/config"
	"github.com/corebank/backend/internal/database"
	"github.com/corebank/backend/internal/handlers"
	"github.com/corebank/backend/internal/services"
)

// @title Core Banking Backend API
// @version 1.0
// @description Customer, account and ledger API for a core banking system
// @host localhost:8080
// @BasePath /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	config.Init(".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[CONFIG] Invalid configuration: %v", err)
	}

	docs.SwaggerInfo.Title = "Core Banking Backend API"
	docs.SwaggerInfo.Description = "Customer, account and ledger API for a core banking system"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = "localhost:" + cfg.Port
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	ctx := context.Background()

	db := database.InitDatabase(ctx, cfg.Database)
	defer db.Close()

	redisClient := database.InitRedis(ctx, cfg.Redis)
	if redisClient != nil {
		defer redisClient.Close()
	}

	auditLogger := audit.NewAuditLogger()
	tokenService := services.NewTokenService(cfg.JWT.SecretKey, cfg.JWT.Expiry)
	authService := services.NewAuthService(db, redisClient, tokenService, cfg.Auth, auditLogger)
	accountService := services.NewAccountService(db)
	ledgerService := services.NewLedgerService(db)
	transactionService := services.NewTransactionService(db, ledgerService, auditLogger)
	customerService := services.NewCustomerService(db)
	reportService := services.NewReportService(db)
	qrService := services.NewQRService(accountService)

	router := handlers.NewRouter(handlers.RouterDeps{
		Tokens:         tokenService,
		Auth:           authService,
		Accounts:       accountService,
		Transactions:   transactionService,
		Customers:      customerService,
		Reports:        reportService,
		QR:             qrService,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RequestTimeout: cfg.RequestTimeout,
	})

	server := newServer(cfg, router)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server stopped")
}

// newServer leaves the write deadline past the request timeout so timed out
// handlers still deliver their 503.
func newServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
