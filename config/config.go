package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fekuna/omnipos-catalog-sync/internal/model"
	"github.com/fekuna/omnipos-catalog-sync/internal/pkg/database"
)

const DefaultCatalogURL = "https://dummyjson.com/products"

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Database DatabaseConfig
	Catalog  CatalogConfig
	Sync     SyncConfig
}

type ServerConfig struct {
	AppEnv string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type DatabaseConfig struct {
	Driver         string
	Host           string
	Port           string
	User           string
	Password       string
	DBName         string
	SSLMode        string
	ConnectTimeout int
}

type CatalogConfig struct {
	URL     string
	Timeout int
}

type SyncConfig struct {
	Mode string
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv: getEnv("APP_ENV", "production"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "info"),
			Encoding:          getEnv("LOGGER_ENCODING", "json"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Database: DatabaseConfig{
			Driver:         strings.ToLower(getEnv("DB_DRIVER", database.DriverMySQL)),
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnv("DB_PORT", ""),
			User:           getEnv("DB_USER", ""),
			Password:       getEnv("DB_PASS", ""),
			DBName:         getEnv("DB_NAME", ""),
			SSLMode:        getEnv("DB_SSLMODE", "disable"),
			ConnectTimeout: getEnvInt("DB_CONNECT_TIMEOUT", 5),
		},
		Catalog: CatalogConfig{
			URL:     getEnv("CATALOG_URL", DefaultCatalogURL),
			Timeout: getEnvInt("CATALOG_TIMEOUT", 10),
		},
		Sync: SyncConfig{
			Mode: strings.ToLower(getEnv("SYNC_MODE", model.SyncModeValue.String())),
		},
	}
}

// Validate reports every setting that would make a sync run impossible.
func (c *Config) Validate() error {
	var errs []error

	switch c.Database.Driver {
	case database.DriverMySQL, database.DriverPostgres:
	default:
		errs = append(errs, fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver))
	}
	if c.Database.DBName == "" {
		errs = append(errs, errors.New("DB_NAME is required"))
	}
	if c.Catalog.URL == "" {
		errs = append(errs, errors.New("CATALOG_URL is required"))
	}
	if _, err := model.ParseSyncMode(c.Sync.Mode); err != nil {
		errs = append(errs, fmt.Errorf("unsupported SYNC_MODE %q: %w", c.Sync.Mode, err))
	}

	return errors.Join(errs...)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
