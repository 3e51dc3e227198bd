// Package database opens the single, exclusively owned SQL connection a sync
// run works on.
package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"

	// pgxDriverName is the database/sql name registered by pgx/v5/stdlib.
	pgxDriverName = "pgx"
)

type Config struct {
	Driver         string
	Host           string
	Port           string
	User           string
	Password       string
	DBName         string
	SSLMode        string
	ConnectTimeout time.Duration
}

// DSN returns the database/sql driver name and data source name for cfg.
func DSN(cfg *Config) (string, string, error) {
	switch cfg.Driver {
	case DriverMySQL:
		mc := mysql.NewConfig()
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(cfg.Host, portOrDefault(cfg.Port, "3306"))
		mc.DBName = cfg.DBName
		mc.ParseTime = true
		mc.Timeout = cfg.ConnectTimeout
		return DriverMySQL, mc.FormatDSN(), nil

	case DriverPostgres:
		q := url.Values{}
		if cfg.SSLMode != "" {
			q.Set("sslmode", cfg.SSLMode)
		}
		if cfg.ConnectTimeout > 0 {
			q.Set("connect_timeout", strconv.Itoa(int(cfg.ConnectTimeout/time.Second)))
		}
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(cfg.User, cfg.Password),
			Host:     net.JoinHostPort(cfg.Host, portOrDefault(cfg.Port, "5432")),
			Path:     "/" + cfg.DBName,
			RawQuery: q.Encode(),
		}
		return pgxDriverName, u.String(), nil

	default:
		return "", "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Open connects and pings. The returned handle never holds more than one
// connection; callers own it and must Close it.
func Open(ctx context.Context, cfg *Config) (*sqlx.DB, error) {
	driverName, dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s at %s: %w", cfg.Driver, cfg.Host, err)
	}

	return db, nil
}

func portOrDefault(port, fallback string) string {
	if port == "" {
		return fallback
	}
	return port
}
