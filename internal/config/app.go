package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	FavoritesBackendMemory   = "memory"
	FavoritesBackendPostgres = "postgres"
	FavoritesBackendRedis    = "redis"
)

type HTTPServer struct {
	Port                   string `mapstructure:"port"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds"`
}

func (s HTTPServer) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSeconds) * time.Second
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// RatesAPI points at an exchangerate-api compatible quotation service.
type RatesAPI struct {
	BaseURL string `mapstructure:"base_url"`
	Anchor  string `mapstructure:"anchor"`
}

type Scheduler struct {
	RefreshIntervalSec int `mapstructure:"refresh_interval_sec"`
}

type Favorites struct {
	Backend string `mapstructure:"backend"`
}

type Sessions struct {
	MaxItems   int64 `mapstructure:"max_items"`
	TTLSeconds int   `mapstructure:"ttl_seconds"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	RatesAPI   RatesAPI   `mapstructure:"rates_api"`
	Scheduler  Scheduler  `mapstructure:"scheduler"`
	Favorites  Favorites  `mapstructure:"favorites"`
	DbServer   DbServer   `mapstructure:"db_server"`
	Redis      Redis      `mapstructure:"redis"`
	Sessions   Sessions   `mapstructure:"sessions"`
	Logging    Logging    `mapstructure:"logging"`
}

// Init reads config.yaml (optional) and environment overrides.
func Init() (*AppConfig, error) {
	return Load("config.yaml")
}

func Load(path string) (*AppConfig, error) {
	var cfg AppConfig

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetDefault("http_server.port", "8080")
	v.SetDefault("http_server.shutdown_timeout_seconds", 10)
	v.SetDefault("http_client.timeout_seconds", 10)
	v.SetDefault("rates_api.base_url", "https://api.exchangerate-api.com/v4/latest")
	v.SetDefault("rates_api.anchor", "USD")
	v.SetDefault("scheduler.refresh_interval_sec", 0)
	v.SetDefault("favorites.backend", FavoritesBackendMemory)
	v.SetDefault("db_server.max_conns", 10)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("sessions.max_items", 10000)
	v.SetDefault("sessions.ttl_seconds", 3600)
	v.SetDefault("logging.level", "info")

	// http env vars
	_ = v.BindEnv("http_server.port", "HTTP_PORT")
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	// rates api env vars
	_ = v.BindEnv("rates_api.base_url", "RATES_API_BASE_URL")
	_ = v.BindEnv("rates_api.anchor", "RATES_API_ANCHOR")
	_ = v.BindEnv("scheduler.refresh_interval_sec", "RATES_REFRESH_INTERVAL_SEC")

	// favorites storage env vars
	_ = v.BindEnv("favorites.backend", "FAVORITES_BACKEND")
	_ = v.BindEnv("db_server.host", "DB_HOST")
	_ = v.BindEnv("db_server.port", "DB_PORT")
	_ = v.BindEnv("db_server.user", "DB_USER")
	_ = v.BindEnv("db_server.pass", "DB_PASS")
	_ = v.BindEnv("db_server.name", "DB_NAME")
	_ = v.BindEnv("db_server.max_conns", "DB_MAX_CONNS")
	_ = v.BindEnv("redis.addr", "REDIS_ADDR")
	_ = v.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = v.BindEnv("redis.db", "REDIS_DB")

	_ = v.BindEnv("logging.level", "LOG_LEVEL")

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *AppConfig) validate() error {
	switch c.Favorites.Backend {
	case FavoritesBackendMemory, FavoritesBackendPostgres, FavoritesBackendRedis:
	default:
		return fmt.Errorf("unknown favorites backend %q", c.Favorites.Backend)
	}
	if c.RatesAPI.BaseURL == "" {
		return errors.New("rates api base url is required")
	}
	if c.RatesAPI.Anchor == "" {
		return errors.New("rates api anchor currency is required")
	}
	return nil
}
