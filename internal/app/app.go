package app

import (
	"context"
	"fmt"
	"fxwidget/internal/adapters"
	"fxwidget/internal/adapters/cache"
	"fxwidget/internal/adapters/httpclient"
	"fxwidget/internal/adapters/memory"
	"fxwidget/internal/adapters/postgres"
	"fxwidget/internal/adapters/redis"
	"fxwidget/internal/api"
	"fxwidget/internal/config"
	"fxwidget/internal/favorite"
	favoritehandler "fxwidget/internal/favorite/handler"
	"fxwidget/internal/platform/db"
	httpserver "fxwidget/internal/platform/http"
	"fxwidget/internal/rate"
	ratehandler "fxwidget/internal/rate/handler"
	"fxwidget/internal/widget"
	sessionhandler "fxwidget/internal/widget/handler"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and rate refresh
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(appCfg.Logging.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (storage connect, first rates load)
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// Favorites storage
	favoriteRepo, closeRepo, err := newFavoriteRepository(startupCtx, appCfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	rateClient := httpclient.NewExchangeRateClient(&http.Client{Timeout: httpTimeout}, appCfg.RatesAPI.BaseURL)

	// Rates are loaded once; a failure leaves the widget in the unavailable state
	rateStore := rate.NewStore(rateClient, appCfg.RatesAPI.Anchor)
	if loadErr := rateStore.Load(startupCtx); loadErr != nil {
		logrus.WithError(loadErr).Warn("Starting without exchange rates")
	} else {
		logrus.Info("✅ Exchange rates loaded")
	}

	if appCfg.Scheduler.RefreshIntervalSec > 0 {
		scheduler := rate.NewScheduler(rateStore, time.Duration(appCfg.Scheduler.RefreshIntervalSec)*time.Second)
		defer func() {
			if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
				logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
			}
		}()
		if startErr := scheduler.Start(ctx); startErr != nil {
			logrus.WithError(startErr).Error("Failed to start scheduler")
			return startErr
		}
		logrus.Info("✅ Scheduler activation successful")
	}

	// Services
	historical := rate.NewHistoricalFetcher(rateClient)
	validator := rate.NewValidator(rateStore)
	favorites := favorite.NewService(favoriteRepo)

	sessions, err := cache.NewSessionCache(appCfg.Sessions.MaxItems, time.Duration(appCfg.Sessions.TTLSeconds)*time.Second)
	if err != nil {
		return err
	}
	defer sessions.Close()
	deps := widget.Deps{Rates: rateStore, Historical: historical, Favorites: favorites, Validator: validator}

	// Handlers and router
	router := api.NewRouter(
		ratehandler.NewRateHandler(rateStore, historical),
		favoritehandler.NewFavoriteHandler(favorites, validator),
		sessionhandler.NewSessionHandler(sessions, func() *widget.Session { return widget.NewSession(deps) }),
	)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

// newFavoriteRepository opens the configured favorites backend. The returned
// func releases its connections.
func newFavoriteRepository(ctx context.Context, cfg *config.AppConfig) (adapters.FavoriteRepository, func(), error) {
	switch cfg.Favorites.Backend {
	case config.FavoritesBackendPostgres:
		if err := db.Migrate(ctx, cfg.DbServer.GetConnectionStr()); err != nil {
			logrus.WithError(err).Error("Error migrating db")
			return nil, nil, err
		}
		pool, err := db.Connect(ctx, cfg.DbServer)
		if err != nil {
			logrus.WithError(err).Error("Error connecting to db")
			return nil, nil, err
		}
		logrus.Info("✅ Postgres connection successful")
		return postgres.NewFavoriteRepository(pool), pool.Close, nil

	case config.FavoritesBackendRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			logrus.WithError(err).Error("Error connecting to redis")
			return nil, nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.Redis.Addr, err)
		}
		logrus.Info("✅ Redis connection successful")
		return redis.NewFavoriteRepository(client), func() { _ = client.Close() }, nil

	default:
		logrus.Warn("Favorites are kept in memory and will not survive a restart")
		return memory.NewFavoriteRepository(), func() {}, nil
	}
}
