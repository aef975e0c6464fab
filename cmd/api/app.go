package main

import (
	"net/http"
	"os"

	"easyrent-backend/internal/currency"
	"easyrent-backend/internal/handlers"
	"easyrent-backend/internal/jobs"
	"easyrent-backend/internal/middleware"
	"easyrent-backend/internal/repositories"
	"easyrent-backend/internal/services"
	"easyrent-backend/internal/transformers"
	"easyrent-backend/internal/validators"
	"easyrent-backend/pkg/cache"
	"easyrent-backend/pkg/config"
	"easyrent-backend/pkg/database"
	"easyrent-backend/pkg/logger"
	"easyrent-backend/pkg/metrics"
	"easyrent-backend/pkg/nbkr"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"golang.org/x/time/rate"
)

// App represents the application structure
type App struct {
	Config           *config.Config
	Router           *gin.Engine
	PropertyHandler  *handlers.PropertyHandler
	UserHandler      *handlers.UserHandler
	MessageHandler   *handlers.MessageHandler
	CurrencyHandler  *handlers.CurrencyHandler
	ConstantsHandler *handlers.ConstantsHandler
	RateLimiter      *middleware.RateLimiter
	RateSyncCron     *cron.Cron
	Server           *http.Server
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	// Initialize infrastructure
	app.initializeDatabase()
	app.initializeCache()
	app.initializeMetrics()
	app.initializeRateLimiter()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// initialize the database connection
func (a *App) initializeDatabase() {
	if err := database.InitDB(a.Config); err != nil {
		logger.Logger.Errorf("Failed to initialize database: %v", err)
		os.Exit(1)
	}
}

// initialize the Redis cache
func (a *App) initializeCache() {
	if err := cache.InitRedis(a.Config); err != nil {
		logger.Logger.Errorf("Failed to initialize Redis: %v", err)
		os.Exit(1)
	}
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the rate limiter
func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(rate.Limit(100/60.0), 10)
	go a.RateLimiter.Cleanup()
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	// repositories
	propertyRepo := repositories.NewPropertyRepository(database.DB)
	propertyCache := repositories.NewPropertyCache(cache.RedisClient)
	userRepo := repositories.NewUserRepository(database.DB)
	messageRepo := repositories.NewMessageRepository(database.DB)
	rateRepo := repositories.NewRateRepository(database.DB)

	// transformers
	propTrans := transformers.NewPropertyTransformer()

	// validators
	propertyValidator := validators.NewPropertyValidator()
	userValidator := validators.NewUserValidator()
	messageValidator := validators.NewMessageValidator()

	// services
	propertyService := services.NewPropertyService(propertyRepo, userRepo, propertyCache, propTrans, propertyValidator)
	searchService := services.NewPropertySearchService(propertyRepo, userRepo, propertyCache, propTrans)
	userService := services.NewUserService(userRepo, userValidator, a.Config)
	messageService := services.NewMessageService(messageRepo, userRepo, messageValidator)

	// currency core
	rateStore := currency.NewStore(rateRepo)
	synchronizer := currency.NewSynchronizer(rateStore, nbkr.NewClient(a.Config.Currency.FeedURL))

	// handlers
	a.PropertyHandler = handlers.NewPropertyHandler(propertyService, searchService)
	a.UserHandler = handlers.NewUserHandler(userService)
	a.MessageHandler = handlers.NewMessageHandler(messageService)
	a.CurrencyHandler = handlers.NewCurrencyHandler(rateStore, synchronizer)
	a.ConstantsHandler = handlers.NewConstantsHandler()

	// recurring feed synchronization
	scheduler, err := jobs.StartRateSync(synchronizer, a.Config.Currency.SyncSchedule)
	if err != nil {
		logger.Logger.Errorf("Failed to schedule rate sync: %v", err)
		os.Exit(1)
	}
	a.RateSyncCron = scheduler
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	if a.RateSyncCron != nil {
		a.RateSyncCron.Stop()
	}
	database.CloseDB()
	cache.CloseRedis()
}
