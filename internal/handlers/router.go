package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	mW "github.com/corebank/backend/internal/middleware"
	"github.com/corebank/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// RouterDeps holds everything the HTTP surface needs.
type RouterDeps struct {
	Tokens         mW.TokenParser
	Auth           authService
	Accounts       accountService
	Transactions   transactionService
	Customers      customerService
	Reports        reportService
	QR             qrService
	AllowedOrigins []string
	RequestTimeout time.Duration
}

func NewRouter(deps RouterDeps) http.Handler {
	authHandler := NewAuthHandler(deps.Auth)
	accountHandler := NewAccountHandler(deps.Accounts)
	transactionHandler := NewTransactionHandler(deps.Transactions)
	customerHandler := NewCustomerHandler(deps.Customers)
	reportHandler := NewReportHandler(deps.Reports)
	qrHandler := NewQRHandler(deps.QR)

	timeout := deps.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mW.SecurityHeaders)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Public
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)
	r.Get("/auth/roles/all", authHandler.Roles)

	r.Group(func(r chi.Router) {
		r.Use(mW.Authenticate(deps.Tokens))

		r.Group(func(r chi.Router) {
			r.Use(mW.RequireRoles(models.RoleAdmin))

			r.Post("/accounts/create/{customerId}", accountHandler.CreateAccount)
			r.Get("/accounts/all", accountHandler.ListAccounts)
			r.Get("/accounts/withPagination", accountHandler.ListAccountsPage)

			r.Get("/customers/all", customerHandler.ListCustomers)
			r.Get("/customers/{customerId}", customerHandler.GetCustomer)
			r.Delete("/customers/{customerId}", customerHandler.DeleteCustomer)
		})

		r.Group(func(r chi.Router) {
			r.Use(mW.RequireRoles(models.RoleAdmin, models.RoleCustomer))

			r.Get("/accounts/balance/{accountNumber}", accountHandler.GetBalance)
			r.Get("/accounts/qr/{accountNumber}", qrHandler.AccountQR)
		})

		r.Post("/transactions/deposit", transactionHandler.Deposit)
		r.Post("/transactions/withdraw", transactionHandler.Withdraw)
		r.Get("/transactions/history/{accountNumber}", transactionHandler.History)

		r.Get("/reports/generate-report", reportHandler.GenerateReport)

		r.Post("/customers/{customerId}/addAddress", customerHandler.AddAddress)
		r.Get("/customers/{customerId}/getAddresses", customerHandler.GetAddresses)
	})

	return r
}
