package routes

import (
	"time"

	"sacco-ledger/internal/adapters/http/handlers"
	"sacco-ledger/internal/adapters/http/middleware"
	"sacco-ledger/internal/adapters/persistence/repositories"
	"sacco-ledger/internal/config"
	"sacco-ledger/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	memberRepo := repositories.NewMemberRepository(db)
	savingsRepo := repositories.NewSavingsRepository(db)
	loanRepo := repositories.NewLoanRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	settingsService := services.NewSettingsService(settingsRepo)
	memberService := services.NewMemberService(memberRepo)
	savingsService := services.NewSavingsService(savingsRepo, memberRepo, settingsService)
	loanService := services.NewLoanService(loanRepo, memberRepo)
	paymentService := services.NewPaymentService(paymentRepo, memberRepo, settingsService)
	summaryService := services.NewSummaryService(db)
	backupService := services.NewBackupService(cfg.Database.Path, cfg.Database.BackupDir)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, cfg)
	authHandler := handlers.NewAuthHandler(authService)
	memberHandler := handlers.NewMemberHandler(memberService)
	savingsHandler := handlers.NewSavingsHandler(savingsService)
	loanHandler := handlers.NewLoanHandler(loanService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	backupHandler := handlers.NewBackupHandler(backupService)

	// Health routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// API v1
	api := app.Group("/api/v1")

	// Auth routes
	auth := api.Group("/auth", middleware.NoCacheHeaders())
	auth.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	auth.Put("/password", middleware.AuthMiddleware(cfg), authHandler.ChangePassword)

	// User management (admin only)
	users := api.Group("/auth/users", middleware.AuthMiddleware(cfg), middleware.AdminOnly())
	users.Post("/", authHandler.CreateUser)
	users.Get("/", authHandler.ListUsers)

	// Member routes
	members := api.Group("/members", middleware.AuthMiddleware(cfg))
	members.Post("/", memberHandler.Register)
	members.Get("/", memberHandler.List)
	members.Get("/:member_id", memberHandler.Get)
	members.Delete("/:member_id", middleware.AdminOnly(), memberHandler.Delete)

	// Savings routes
	savings := api.Group("/savings", middleware.AuthMiddleware(cfg))
	savings.Post("/", savingsHandler.RecordDeposit)
	savings.Get("/member/:member_id", savingsHandler.ListByMember)
	savings.Get("/member/:member_id/accrue", savingsHandler.Accrue)
	savings.Delete("/:transaction_id", middleware.AdminOnly(), savingsHandler.Delete)

	// Loan routes
	loans := api.Group("/loans", middleware.AuthMiddleware(cfg))
	loans.Post("/", loanHandler.Apply)
	loans.Get("/member/:member_id", loanHandler.ListByMember)
	loans.Get("/:transaction_id/schedule", loanHandler.Schedule)
	loans.Delete("/:transaction_id", middleware.AdminOnly(), loanHandler.Delete)

	// Summary and export routes
	summary := api.Group("/summary", middleware.AuthMiddleware(cfg))
	summary.Get("/", summaryHandler.Summary)
	summary.Get("/manual-interest", summaryHandler.ManualInterest)
	summary.Get("/export/savings", summaryHandler.ExportSavings)
	summary.Get("/export/loans", summaryHandler.ExportLoans)

	// Settings routes
	settings := api.Group("/settings", middleware.AuthMiddleware(cfg))
	settings.Get("/", middleware.CacheControl(5*time.Minute), settingsHandler.Get)
	settings.Put("/", middleware.AdminOnly(), settingsHandler.Update)

	// Payment routes
	payments := api.Group("/payments", middleware.AuthMiddleware(cfg))
	payments.Post("/", paymentHandler.CreateIntent)
	payments.Get("/member/:member_id", paymentHandler.ListByMember)

	// Backup routes (admin only)
	backups := api.Group("/backups",
		middleware.NoCacheHeaders(),
		middleware.AuthMiddleware(cfg),
		middleware.AdminOnly(),
	)
	backups.Post("/", backupHandler.Snapshot)
	backups.Get("/", backupHandler.List)
	backups.Post("/restore", middleware.StrictRateLimiter(), backupHandler.Restore)
}
