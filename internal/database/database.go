package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"ir-analyzer/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB holds the database connection
var DB *gorm.DB

// Config holds database configuration. The default driver is a local sqlite
// file; DB_DRIVER=postgres switches to a server deployment.
type Config struct {
	Driver   string
	DataDir  string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// LoadConfig loads database configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Driver:   getEnv("DB_DRIVER", "sqlite"),
		DataDir:  getEnv("DATA_DIR", "data"),
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		DBName:   getEnv("DB_NAME", "ir_analyzer"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
}

// Connect establishes the database connection for the configured driver
func Connect(config *Config) error {
	var dialector gorm.Dialector

	switch config.Driver {
	case "sqlite":
		if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
		dialector = sqlite.Open(filepath.Join(config.DataDir, "ir_analyzer.db"))

	case "postgres":
		// Build DSN without empty password parameter
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s dbname=%s sslmode=%s",
			config.Host, config.Port, config.User, config.DBName, config.SSLMode,
		)
		if config.Password != "" {
			dsn = fmt.Sprintf(
				"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
				config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode,
			)
		}
		dialector = postgres.Open(dsn)

	default:
		return fmt.Errorf("unsupported database driver: %s", config.Driver)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Printf("Successfully connected to %s database", config.Driver)
	return nil
}

// Migrate runs database migrations
func Migrate() error {
	if DB == nil {
		return fmt.Errorf("database connection not established")
	}

	err := models.AutoMigrate(DB)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// Close closes the database connection
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

// getEnv returns environment variable value or default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
