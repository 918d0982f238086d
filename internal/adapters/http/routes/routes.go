package routes

import (
	"bankcore/internal/adapters/http/handlers"
	"bankcore/internal/adapters/persistence/repositories"
	"bankcore/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB) {
	// Initialize repositories
	accountRepo := repositories.NewAccountRepository(db)
	loanRepo := repositories.NewLoanRepository(db)

	// Initialize services
	validator := services.NewDocumentValidator()
	scorer := services.NewRandomCreditScorer()
	accountService := services.NewAccountService(accountRepo, validator)
	loanService := services.NewLoanService(loanRepo, scorer)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	accountHandler := handlers.NewAccountHandler(accountService)
	loanHandler := handlers.NewLoanHandler(loanService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	setupAccountRoutes(apiV1, accountHandler, loanHandler)
	setupLoanRoutes(apiV1, loanHandler)
}

// setupAccountRoutes configures account and document routes
func setupAccountRoutes(router fiber.Router, accountHandler *handlers.AccountHandler, loanHandler *handlers.LoanHandler) {
	router.Post("/accounts", accountHandler.Create)
	router.Get("/accounts", accountHandler.List)
	// lookup must register before the :number wildcard
	router.Get("/accounts/lookup", accountHandler.Lookup)
	router.Get("/accounts/:number", accountHandler.Get)
	router.Get("/accounts/:number/loans", loanHandler.GetByAccount)

	router.Post("/documents/validate", accountHandler.ValidateDocuments)
}

// setupLoanRoutes configures loan routes
func setupLoanRoutes(router fiber.Router, handler *handlers.LoanHandler) {
	router.Post("/loans", handler.Apply)
	router.Post("/loans/:loan_id/verify-salary", handler.VerifySalary)
	router.Get("/loans/status/:identifier", handler.GetStatus)
}
