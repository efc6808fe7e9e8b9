package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Catalog  CatalogConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Routing  RoutingConfig
	Location LocationConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type CatalogConfig struct {
	WisataPath string
	EventsPath string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	RouteCacheTTL time.Duration
	StatsCacheTTL time.Duration
}

type RoutingConfig struct {
	BaseURL        string
	Profile        string
	RequestTimeout int // seconds
}

type LocationConfig struct {
	ProviderURL    string
	RequestTimeout time.Duration
	MaxFixAge      time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Running without a .env file is fine, environment variables still apply
		if _, statErr := os.Stat(".env"); statErr == nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Catalog: CatalogConfig{
			WisataPath: viper.GetString("CATALOG_WISATA_PATH"),
			EventsPath: viper.GetString("CATALOG_EVENTS_PATH"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			RouteCacheTTL: time.Duration(viper.GetInt("ROUTE_CACHE_TTL")) * time.Second,
			StatsCacheTTL: time.Duration(viper.GetInt("STATS_CACHE_TTL")) * time.Second,
		},
		Routing: RoutingConfig{
			BaseURL:        viper.GetString("ROUTING_BASE_URL"),
			Profile:        viper.GetString("ROUTING_PROFILE"),
			RequestTimeout: viper.GetInt("ROUTING_REQUEST_TIMEOUT"),
		},
		Location: LocationConfig{
			ProviderURL:    viper.GetString("LOCATION_PROVIDER_URL"),
			RequestTimeout: time.Duration(viper.GetInt("LOCATION_REQUEST_TIMEOUT")) * time.Second,
			MaxFixAge:      time.Duration(viper.GetInt("LOCATION_MAX_FIX_AGE")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Catalog.WisataPath == "" {
		cfg.Catalog.WisataPath = "data/wisata.json"
	}
	if cfg.Catalog.EventsPath == "" {
		cfg.Catalog.EventsPath = "data/events.json"
	}
	if cfg.Cache.RouteCacheTTL == 0 {
		cfg.Cache.RouteCacheTTL = 300 * time.Second
	}
	if cfg.Cache.StatsCacheTTL == 0 {
		cfg.Cache.StatsCacheTTL = 600 * time.Second
	}
	if cfg.Routing.BaseURL == "" {
		cfg.Routing.BaseURL = "https://router.project-osrm.org"
	}
	if cfg.Routing.Profile == "" {
		cfg.Routing.Profile = "driving"
	}
	if cfg.Routing.RequestTimeout == 0 {
		cfg.Routing.RequestTimeout = 30
	}
	if cfg.Location.RequestTimeout == 0 {
		cfg.Location.RequestTimeout = 10 * time.Second
	}
	if cfg.Location.MaxFixAge == 0 {
		cfg.Location.MaxFixAge = 60 * time.Second
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
