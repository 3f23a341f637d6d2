package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type Config struct {
	AppPort  string
	AppEnv   string
	LogLevel string

	DBDriver      string
	DatabaseURL   string
	DBHost        string
	DBPort        string
	DBName        string
	DBUser        string
	DBPass        string
	DBSSLMode     string
	SQLitePath    string
	DBAutoMigrate bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	IdempTTLSecs int

	// AutoRejectInterval of zero disables the in-process scheduler.
	AutoRejectInterval time.Duration
	AutoRejectLockTTL  time.Duration
	Timezone           string
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// Load reads the environment after applying the given .env files (".env" when none are
// named). Missing env files are ignored; variables already set win over file values.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	c := &Config{
		AppPort:  getenv("APP_PORT", "8080"),
		AppEnv:   getenv("APP_ENV", "development"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		DBDriver:    strings.ToLower(getenv("DB_DRIVER", DriverPostgres)),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getenv("DB_HOST", "localhost"),
		DBName:      getenv("DB_NAME", "wfh"),
		DBUser:      getenv("DB_USER", "wfh"),
		DBPass:      os.Getenv("DB_PASS"),
		DBSSLMode:   getenv("DB_SSLMODE", "disable"),
		SQLitePath:  getenv("SQLITE_PATH", "wfh.db"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		Timezone: getenv("APP_TIMEZONE", "UTC"),
	}
	defaultPort := "5432"
	if c.DBDriver == DriverMySQL {
		defaultPort = "3306"
	}
	c.DBPort = getenv("DB_PORT", defaultPort)

	var err error
	if c.RedisDB, err = atoi("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if c.IdempTTLSecs, err = atoi("IDEMPOTENCY_TTL_SECONDS", 300); err != nil {
		return nil, err
	}
	if c.AutoRejectInterval, err = duration("AUTO_REJECT_INTERVAL", time.Hour); err != nil {
		return nil, err
	}
	if c.AutoRejectLockTTL, err = duration("AUTO_REJECT_LOCK_TTL", 5*time.Minute); err != nil {
		return nil, err
	}
	if c.DBAutoMigrate, err = strconv.ParseBool(getenv("DB_AUTO_MIGRATE", "true")); err != nil {
		return nil, fmt.Errorf("invalid DB_AUTO_MIGRATE: %w", err)
	}
	return c, nil
}

func atoi(k string, d int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return d, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", k, v, err)
	}
	return n, nil
}

func duration(k string, d time.Duration) (time.Duration, error) {
	v := os.Getenv(k)
	if v == "" {
		return d, nil
	}
	if v == "0" {
		return 0, nil
	}
	n, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", k, v, err)
	}
	return n, nil
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if _, err := net.LookupPort("tcp", c.AppPort); err != nil {
		return fmt.Errorf("invalid APP_PORT %q: %w", c.AppPort, err)
	}

	switch c.DBDriver {
	case DriverPostgres, DriverMySQL:
		if c.DatabaseURL == "" {
			if c.DBHost == "" || c.DBPort == "" || c.DBName == "" || c.DBUser == "" {
				return errors.New("missing DB config (DB_HOST/PORT/NAME/USER or DATABASE_URL)")
			}
			if _, err := net.LookupPort("tcp", c.DBPort); err != nil {
				return fmt.Errorf("invalid DB_PORT %q: %w", c.DBPort, err)
			}
		}
	case DriverSQLite:
		if c.SQLitePath == "" && c.DatabaseURL == "" {
			return errors.New("missing SQLITE_PATH")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (postgres, mysql, sqlite)", c.DBDriver)
	}

	if c.IdempTTLSecs <= 0 {
		return fmt.Errorf("IDEMPOTENCY_TTL_SECONDS must be positive, got %d", c.IdempTTLSecs)
	}
	if c.AutoRejectInterval < 0 {
		return fmt.Errorf("AUTO_REJECT_INTERVAL must not be negative, got %s", c.AutoRejectInterval)
	}
	if c.AutoRejectLockTTL <= 0 {
		return fmt.Errorf("AUTO_REJECT_LOCK_TTL must be positive, got %s", c.AutoRejectLockTTL)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// DSN returns DATABASE_URL when set, otherwise one built for the driver.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	switch c.DBDriver {
	case DriverMySQL:
		// parseTime is needed for DATE columns
		return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=UTC&charset=utf8mb4",
			c.DBUser, c.DBPass, net.JoinHostPort(c.DBHost, c.DBPort), c.DBName)
	case DriverSQLite:
		return c.SQLitePath
	default:
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(c.DBUser, c.DBPass),
			Host:     net.JoinHostPort(c.DBHost, c.DBPort),
			Path:     "/" + c.DBName,
			RawQuery: "sslmode=" + url.QueryEscape(c.DBSSLMode) + "&TimeZone=UTC",
		}
		return u.String()
	}
}

func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c *Config) IsProduction() bool { return strings.EqualFold(c.AppEnv, "production") }

func (c *Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func (c *Config) IdempotencyTTL() time.Duration { return time.Duration(c.IdempTTLSecs) * time.Second }
