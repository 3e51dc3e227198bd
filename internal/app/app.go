// Package app wires configuration, logging and the sync use case together
// for the command line entry points.
package app

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/fekuna/omnipos-catalog-sync/config"
	"github.com/fekuna/omnipos-catalog-sync/internal/catalog/client"
	"github.com/fekuna/omnipos-catalog-sync/internal/inventory"
	"github.com/fekuna/omnipos-catalog-sync/internal/inventory/repository"
	"github.com/fekuna/omnipos-catalog-sync/internal/inventory/usecase"
	"github.com/fekuna/omnipos-catalog-sync/internal/model"
	"github.com/fekuna/omnipos-catalog-sync/internal/pkg/database"
	"github.com/fekuna/omnipos-catalog-sync/internal/pkg/logger"
)

// Overrides are command line values that take precedence over the
// environment. Empty fields leave the environment value in place.
type Overrides struct {
	EnvFile    string
	Mode       string
	CatalogURL string
	DBDriver   string
}

// LoadConfig reads the optional env file, the process environment and the
// overrides, then validates the result. A missing env file is not an error.
func LoadConfig(o Overrides) (*config.Config, error) {
	if o.EnvFile != "" {
		if err := godotenv.Load(o.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", o.EnvFile, err)
		}
	}

	cfg := config.LoadEnv()
	if o.Mode != "" {
		cfg.Sync.Mode = strings.ToLower(o.Mode)
	}
	if o.CatalogURL != "" {
		cfg.Catalog.URL = o.CatalogURL
	}
	if o.DBDriver != "" {
		cfg.Database.Driver = strings.ToLower(o.DBDriver)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func NewLogger(cfg *config.Config) logger.ZapLogger {
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.IsDevelopment() {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	return logger.NewZapLogger(logConfig)
}

func DatabaseConfig(cfg *config.Config) database.Config {
	return database.Config{
		Driver:         cfg.Database.Driver,
		Host:           cfg.Database.Host,
		Port:           cfg.Database.Port,
		User:           cfg.Database.User,
		Password:       cfg.Database.Password,
		DBName:         cfg.Database.DBName,
		SSLMode:        cfg.Database.SSLMode,
		ConnectTimeout: time.Duration(cfg.Database.ConnectTimeout) * time.Second,
	}
}

func NewSyncUseCase(cfg *config.Config, log logger.ZapLogger) (inventory.UseCase, error) {
	mode, err := model.ParseSyncMode(cfg.Sync.Mode)
	if err != nil {
		return nil, err
	}

	connector := repository.NewConnector(DatabaseConfig(cfg), mode)
	catalogClient := client.NewHTTPClient(cfg.Catalog.URL, time.Duration(cfg.Catalog.Timeout)*time.Second)

	return usecase.NewSyncUseCase(connector, catalogClient, mode, log), nil
}
