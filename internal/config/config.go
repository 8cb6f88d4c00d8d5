package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server   Server
	Database Database
	Redis    Redis
	JWT      JWT
	Oracle   Oracle
	Platform Platform
	Jobs     Jobs
}

// Server holds server configuration
type Server struct {
	Port string
	Env  string
}

// Database holds database configuration
type Database struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (d Database) URL() string {
	return "postgres://" + d.User + ":" + d.Password + "@" + d.Host + ":" + strconv.Itoa(d.Port) + "/" + d.DBName + "?sslmode=" + d.SSLMode + "&prepare_threshold=0"
}

// Redis holds Redis configuration
type Redis struct {
	URL      string
	Password string
}

// JWT holds token signing configuration
type JWT struct {
	Secret       string
	AccessExpiry time.Duration
}

// Oracle holds price feed configuration
type Oracle struct {
	FeedRPC string
}

// Platform holds the marketplace operator identity
type Platform struct {
	Authority string
}

// Jobs holds background job configuration
type Jobs struct {
	InactivitySweepInterval time.Duration
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: Server{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: Database{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "nft_marketplace"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: Redis{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWT{
			Secret:       getEnv("JWT_SECRET", "change-this-in-production"),
			AccessExpiry: getEnvAsDuration("JWT_ACCESS_EXPIRY", 15*time.Minute),
		},
		Oracle: Oracle{
			FeedRPC: getEnv("ORACLE_FEED_RPC_URL", "https://sepolia.base.org"),
		},
		Platform: Platform{
			Authority: getEnv("PLATFORM_AUTHORITY", ""),
		},
		Jobs: Jobs{
			InactivitySweepInterval: getEnvAsDuration("INACTIVITY_SWEEP_INTERVAL", time.Hour),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
