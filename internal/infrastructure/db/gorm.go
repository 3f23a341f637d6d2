package db

import (
	"fmt"
	"log/slog"
	"time"

	"wfh-leave-backend/internal/config"
	"wfh-leave-backend/internal/domain/employee"
	"wfh-leave-backend/internal/domain/wfh"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialector picks the gorm driver for a configured DB_DRIVER.
func Dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case config.DriverPostgres:
		return postgres.Open(dsn), nil
	case config.DriverMySQL:
		return mysql.Open(dsn), nil
	case config.DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}
}

func OpenGorm(driver, dsn string, level logger.LogLevel) (*gorm.DB, error) {
	dial, err := Dialector(driver, dsn)
	if err != nil {
		return nil, err
	}
	return OpenGormWithDialector(dial, level)
}

// OpenGormWithDialector opens, tunes the pool and pings. The log level defaults to Warn.
func OpenGormWithDialector(dial gorm.Dialector, level ...logger.LogLevel) (*gorm.DB, error) {
	lvl := logger.Warn
	if len(level) > 0 {
		lvl = level[0]
	}
	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(lvl),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	if dial.Name() == "sqlite" {
		// one writer at a time; also keeps ":memory:" a single database
		sqlDB.SetMaxOpenConns(1)
	}
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	slog.Info("gorm: connected", "dialect", dial.Name())
	return db, nil
}

// Open connects with the configured driver. SQL statements are logged only at debug level.
func Open(cfg *config.Config) (*gorm.DB, error) {
	level := logger.Warn
	if cfg.SlogLevel() <= slog.LevelDebug {
		level = logger.Info
	}
	return OpenGorm(cfg.DBDriver, cfg.DSN(), level)
}

// Migrate creates or updates the schema. Employees go first for the foreign keys.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&employee.Employee{}, &wfh.WFHRequest{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// Close releases the pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
