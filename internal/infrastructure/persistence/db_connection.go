package persistence

import (
	"fmt"
	"log"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/infrastructure/persistence/models"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDBConnection creates a database connection based on settings
// Supports both production and test environments
func NewDBConnection(settings config.DatabaseSettings) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	switch settings.Type {
	case config.PostgresDbType:
		db, err = connectPostgres(settings)
	case config.MysqlDbType:
		db, err = connectMySQL(settings)
	case config.SqliteDbType:
		db, err = connectSQLite(settings)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", settings.Type)
	}

	if err != nil {
		return nil, err
	}

	return db, nil
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		// Unique violations surface as gorm.ErrDuplicatedKey
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	}
}

// connectPostgres establishes PostgreSQL connection with optional database creation
func connectPostgres(settings config.DatabaseSettings) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(settings.DSN), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// If Name is specified, ensure it exists
	if settings.Name != "" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
		}

		// Idempotent, the error for an existing database is ignored
		_, _ = sqlDB.Exec(fmt.Sprintf("CREATE DATABASE %s", settings.Name))

		if err := sqlDB.Close(); err != nil {
			return nil, fmt.Errorf("failed to close initial DB connection: %w", err)
		}

		dsn := fmt.Sprintf("%s dbname=%s", settings.DSN, settings.Name)
		db, err = gorm.Open(postgres.Open(dsn), gormConfig())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database '%s': %w", settings.Name, err)
		}
	}

	return db, nil
}

// connectMySQL establishes MySQL connection. The schema is part of the DSN.
func connectMySQL(settings config.DatabaseSettings) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(settings.DSN), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL: %w", err)
	}
	return db, nil
}

// connectSQLite establishes SQLite connection
func connectSQLite(settings config.DatabaseSettings) (*gorm.DB, error) {
	dsn := settings.DSN
	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}

	// SQLite serializes writers; a single connection avoids "database is locked"
	// and keeps :memory: databases shared across queries.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// Migrate creates or updates all tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// DropDatabase drops a PostgreSQL database (test cleanup utility)
func DropDatabase(adminDSN, dbName string) error {
	db, err := gorm.Open(postgres.Open(adminDSN), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer func() {
		if err := CloseDB(db); err != nil {
			log.Printf("Warning: failed to close database connection: %v", err)
		}
	}()

	err = db.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS %s", dbName)).Error
	if err != nil {
		return fmt.Errorf("failed to drop database '%s': %w", dbName, err)
	}

	return nil
}
