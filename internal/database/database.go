package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"scaffold-service/internal/config"
	"scaffold-service/internal/logger"
	"scaffold-service/internal/models"
)

var DB *gorm.DB

// Dialector returns the GORM dialector for the configured dialect.
func Dialector(cfg config.Database) (gorm.Dialector, error) {
	switch cfg.Dialect {
	case config.DialectPostgres:
		return postgres.Open(cfg.DSN()), nil
	case config.DialectMySQL:
		return mysql.Open(cfg.DSN()), nil
	case config.DialectSQLite:
		return sqlite.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database dialect %q", cfg.Dialect)
	}
}

// Open opens a GORM connection for cfg. If the initial ping fails the
// underlying pool is closed before the error is returned.
func Open(cfg config.Database, gormCfg *gorm.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		if db != nil {
			if sqlDB, dbErr := db.DB(); dbErr == nil {
				_ = sqlDB.Close()
			}
		}
		return nil, err
	}
	return db, nil
}

// ConnectDatabase opens the live connection and migrates the service's own tables.
func ConnectDatabase(cfg config.Database, log *logrus.Logger) error {
	db, err := Open(cfg, &gorm.Config{
		Logger: logger.NewGormLogger(log, gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.WithField("dialect", cfg.Dialect).Info("Database connection established")

	// Only the scaffold history table is owned by this service; generated
	// entities are never migrated from here.
	if err := db.AutoMigrate(&models.ScaffoldRecord{}); err != nil {
		return fmt.Errorf("failed to auto-migrate database schema: %w", err)
	}
	log.Info("Database schema migration completed.")

	DB = db
	return nil
}

// GetDB returns the gorm database instance
func GetDB() *gorm.DB {
	return DB
}

// Close releases the live connection pool.
func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
