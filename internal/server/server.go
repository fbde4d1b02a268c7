package server

import (
	"context"
	"log"
	"os"
	"time"

	awsclient "github.com/facturepro/facturepro-api/internal/client/aws"
	stripeclient "github.com/facturepro/facturepro-api/internal/client/payment/stripe"
	"github.com/facturepro/facturepro-api/internal/config"
	"github.com/facturepro/facturepro-api/internal/constants"
	"github.com/facturepro/facturepro-api/internal/db"
	"github.com/facturepro/facturepro-api/internal/handlers"
	"github.com/facturepro/facturepro-api/internal/helpers"
	"github.com/facturepro/facturepro-api/internal/interfaces"
	"github.com/facturepro/facturepro-api/internal/logger"
	"github.com/facturepro/facturepro-api/internal/metrics"
	"github.com/facturepro/facturepro-api/internal/middleware"
	"github.com/facturepro/facturepro-api/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Handlers bundles everything the router needs
type Handlers struct {
	Documents     *handlers.DocumentHandler
	Tax           *handlers.TaxHandler
	Subscriptions *handlers.SubscriptionHandler
	Health        *handlers.HealthHandler

	Authenticator       *middleware.Authenticator
	SubscriptionService interfaces.SubscriptionService
	RateLimiter         *middleware.RateLimiter
	Metrics             *metrics.Metrics
	Stage               string
}

var (
	routeHandlers *Handlers
	dbPool        *pgxpool.Pool
)

// InitializeHandlers loads configuration, connects to the database and
// builds every service and handler. It exits the process on failure.
func InitializeHandlers() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		os.Setenv("STAGE", stage)
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	logger.InitLogger(stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", stage))

	ctx := context.Background()

	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	cfg, err := config.LoadWithSecrets(ctx, secretsClient)
	if err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	dsn, err := secretsClient.DatabaseDSN(ctx, stage)
	if err != nil {
		logger.Fatal("Failed to resolve database DSN", zap.Error(err))
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal("Unable to parse database DSN", zap.Error(err))
	}
	poolConfig.MaxConns = 20
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 15 * time.Minute

	dbPool, err = pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool with config", zap.Error(err))
	}

	checkoutClient, err := stripeclient.NewCheckoutClient(cfg.Stripe)
	if err != nil {
		logger.Fatal("Failed to initialize Stripe checkout client", zap.Error(err))
	}

	routeHandlers = buildHandlers(cfg, dbPool, checkoutClient, prometheus.NewRegistry())
	logger.Info("Handlers initialized",
		zap.Int("jurisdictions", len(cfg.Policy.Jurisdictions)),
		zap.Int("exempt_emails", len(cfg.Policy.ExemptEmails)),
	)
}

func buildHandlers(cfg *config.Config, pool *pgxpool.Pool, provider interfaces.PaymentProvider, registry *prometheus.Registry) *Handlers {
	appMetrics := metrics.NewMetrics(registry)
	clock := services.SystemClock{}
	store := db.NewStore(pool)

	taxService := services.NewTaxService(cfg.Policy.Jurisdictions)
	documentService := services.NewDocumentService(store, taxService, appMetrics, clock)
	conversionService := services.NewQuoteConversionService(store, appMetrics, clock)
	exportService := services.NewExportService(store, clock)
	evaluator := services.NewAccessEvaluator(cfg.Policy, clock)
	subscriptionService := services.NewSubscriptionService(store, provider, evaluator, appMetrics, clock, services.CheckoutPollConfig{
		Interval:    cfg.PaymentPollInterval,
		MaxAttempts: cfg.PaymentPollMaxAttempts,
	})

	common := handlers.NewCommonServices(handlers.CommonServicesConfig{Logger: logger.Log})

	return &Handlers{
		Documents:           handlers.NewDocumentHandler(common, documentService, conversionService, exportService, logger.Log),
		Tax:                 handlers.NewTaxHandler(common, taxService),
		Subscriptions:       handlers.NewSubscriptionHandler(common, subscriptionService, logger.Log),
		Health:              handlers.NewHealthHandler(pool, logger.Log),
		Authenticator:       middleware.NewAuthenticator(cfg.JWTSecret),
		SubscriptionService: subscriptionService,
		RateLimiter:         middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		Metrics:             appMetrics,
		Stage:               cfg.Stage,
	}
}

// InitializeRoutes registers middleware and routes on the router using the
// handlers built by InitializeHandlers.
func InitializeRoutes(router *gin.Engine) {
	if routeHandlers == nil {
		logger.Fatal("InitializeRoutes called before InitializeHandlers")
	}
	RegisterRoutes(router, routeHandlers)
}

// RegisterRoutes wires middleware and every API route onto router
func RegisterRoutes(router *gin.Engine, h *Handlers) {
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(configureCORS())
	router.Use(middleware.RequestLoggingMiddleware())
	router.Use(middleware.DetailedLoggingMiddleware(h.Stage == helpers.StageLocal))
	if h.Metrics != nil {
		router.Use(h.Metrics.GinMiddleware())
		router.GET("/metrics", h.Metrics.Handler())
	}

	router.GET("/health", h.Health.Health)

	v1 := router.Group("/api/v1")
	v1.Use(h.Authenticator.RequireAuth())
	if h.RateLimiter != nil {
		v1.Use(h.RateLimiter.Middleware())
	}

	// Gated routes change data and require an active subscription
	gated := middleware.RequireAccess(h.SubscriptionService)

	documents := v1.Group("/documents")
	{
		documents.POST("/totals", h.Documents.ComputeTotals)
		documents.GET("/export", h.Documents.ExportDocuments)
		documents.GET("", h.Documents.ListDocuments)
		documents.GET("/:document_id", h.Documents.GetDocument)

		documents.POST("", gated, h.Documents.CreateDocument)
		documents.PUT("/:document_id/items", gated, h.Documents.UpdateItems)
		documents.PUT("/:document_id/tax-profile", gated, h.Documents.UpdateTaxProfile)
		documents.PUT("/:document_id/notes", gated, h.Documents.UpdateNotes)
		documents.POST("/:document_id/status", gated, h.Documents.UpdateStatus)
		documents.POST("/:document_id/convert", gated, h.Documents.ConvertQuote)
		documents.DELETE("/:document_id", gated, h.Documents.DeleteDocument)
	}

	tax := v1.Group("/tax")
	{
		tax.GET("/jurisdictions", h.Tax.ListJurisdictions)
		tax.GET("/jurisdictions/:code", h.Tax.GetJurisdiction)
	}

	subscription := v1.Group("/subscription")
	{
		subscription.GET("/access", h.Subscriptions.GetAccess)
		subscription.POST("/checkout", h.Subscriptions.StartCheckout)
		subscription.POST("/checkout/:session_id/await", h.Subscriptions.AwaitCheckout)
	}
}

// Shutdown releases the database pool and background workers
func Shutdown() {
	if routeHandlers != nil && routeHandlers.RateLimiter != nil {
		routeHandlers.RateLimiter.Stop()
	}
	if dbPool != nil {
		dbPool.Close()
	}
}

func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	if origins := helpers.SplitList(os.Getenv("CORS_ALLOWED_ORIGINS")); len(origins) > 0 {
		corsConfig.AllowOrigins = origins
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", constants.WorkspaceIDHeader, middleware.CorrelationIDHeader}
	corsConfig.ExposeHeaders = []string{
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"Retry-After",
		middleware.CorrelationIDHeader,
	}
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
