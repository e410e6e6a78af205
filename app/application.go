package app

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/Truthmedia123/newapp12345/api"
	"github.com/Truthmedia123/newapp12345/cache"
	"github.com/Truthmedia123/newapp12345/config"
	"github.com/Truthmedia123/newapp12345/database"
	"github.com/Truthmedia123/newapp12345/repository"
	"github.com/Truthmedia123/newapp12345/scheduler"
	"github.com/Truthmedia123/newapp12345/service"
)

// Application represents the main application with all its dependencies
type Application struct {
	config     *config.Config
	db         *gorm.DB
	cacheStore *cache.Store
	redisStore *cache.RedisStore
	server     *api.Server
	scheduler  *scheduler.Scheduler
}

// NewApplication creates and initializes a new application instance
func NewApplication() (*Application, error) {
	app := &Application{}

	if err := app.loadConfiguration(); err != nil {
		return nil, err
	}

	if err := app.initializeDatabase(); err != nil {
		return nil, err
	}

	if err := app.initializeServices(); err != nil {
		return nil, err
	}

	return app, nil
}

func (app *Application) loadConfiguration() error {
	slog.Info("Loading configuration...")

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return fmt.Errorf("load application configuration: %w", err)
	}

	app.config = cfg
	slog.Info("Configuration loaded successfully")
	return nil
}

func (app *Application) initializeDatabase() error {
	slog.Info("Initializing database...")

	db, err := database.InitDB(app.config.Database)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		return fmt.Errorf("initialize database connection: %w", err)
	}

	if err := database.RunMigrations(db); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		return fmt.Errorf("run database migrations: %w", err)
	}

	app.db = db
	slog.Info("Database initialized successfully")
	return nil
}

func (app *Application) initializeServices() error {
	slog.Info("Initializing services...")

	app.cacheStore = cache.NewStore(
		time.Duration(app.config.Cache.DefaultTTLSeconds)*time.Second,
		time.Duration(app.config.Cache.SweepIntervalSeconds)*time.Second,
	)
	directoryCache := cache.NewDirectoryCache(app.cacheStore)

	// Profile view counters go to Redis when configured so the
	// counts survive restarts. The in-memory store is the fallback.
	counter, err := app.createViewCounter()
	if err != nil {
		return fmt.Errorf("create view counter: %w", err)
	}

	vendorRepo := repository.NewVendorRepository(app.db)
	blogRepo := repository.NewBlogRepository(app.db)
	inviteRepo := repository.NewInviteRepository(app.db)
	rsvpRepo := repository.NewRSVPRepository(app.db)

	vendorService := service.NewVendorService(vendorRepo, directoryCache, counter)
	searchService := service.NewSearchService(vendorRepo, directoryCache)
	blogService := service.NewBlogService(blogRepo)
	rsvpService := service.NewRSVPService(inviteRepo, rsvpRepo)

	app.server = api.NewServer(
		app.db,
		app.config,
		app.cacheStore,
		vendorService,
		searchService,
		blogService,
		rsvpService,
	)
	app.scheduler = scheduler.NewScheduler(app.db, app.config, directoryCache)

	slog.Info("Services initialized successfully")
	return nil
}

func (app *Application) createViewCounter() (service.Counter, error) {
	if app.config.Cache.Type != "redis" {
		return app.cacheStore, nil
	}

	slog.Debug("Connecting to Redis for view counters", "addr", app.config.Cache.RedisAddr)
	redisStore, err := cache.NewRedisStore(&cache.RedisConfig{
		Addr:     app.config.Cache.RedisAddr,
		Password: app.config.Cache.RedisPassword,
		DB:       app.config.Cache.RedisDB,
	})
	if err != nil {
		return nil, err
	}

	app.redisStore = redisStore
	return redisStore, nil
}

// Start starts the application
func (app *Application) Start() error {
	slog.Info("Starting application...")

	slog.Info("Starting scheduler...")
	go app.scheduler.Start()

	slog.Info("Starting HTTP server", "port", app.config.Server.Port)
	return app.server.Start()
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	slog.Info("Shutting down application...")

	if app.cacheStore != nil {
		app.cacheStore.Stop()
	}

	if app.redisStore != nil {
		if err := app.redisStore.Close(); err != nil {
			slog.Warn("Error closing Redis connection", "error", err)
		}
	}

	if app.db != nil {
		if err := database.CloseDB(app.db); err != nil {
			slog.Warn("Error closing database", "error", err)
		}
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (app *Application) Config() *config.Config {
	return app.config
}
