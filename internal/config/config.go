package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Storage    StorageConfig
	Attendance AttendanceConfig
	Redis      RedisConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

type StorageConfig struct {
	Type     string // "local"
	BasePath string
	BaseURL  string
}

// AttendanceConfig carries the geofence and shift policy knobs. The
// office fields are the fallback used when an employee profile has no
// office override of its own.
type AttendanceConfig struct {
	OfficeLatitude     float64
	OfficeLongitude    float64
	OfficeRadiusMeters float64
	MaxGPSAccuracy     float64
	OfficeTimezone     string
}

// RedisConfig is optional; an empty Addr disables the rate limiter.
type RedisConfig struct {
	Addr             string
	Password         string
	DB               int
	RateLimitPerMin  int
}

func Load() (*Config, error) {
	// A missing .env is fine in containerized deploys; env vars win anyway.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "absensi"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Storage configuration
	config.Storage = StorageConfig{
		Type:     getEnv("STORAGE_TYPE", "local"),
		BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/uploads"),
	}

	// Attendance policy configuration
	officeLat, err := getEnvFloat("OFFICE_LATITUDE", -6.200000)
	if err != nil {
		return nil, err
	}
	officeLon, err := getEnvFloat("OFFICE_LONGITUDE", 106.816666)
	if err != nil {
		return nil, err
	}
	officeRadius, err := getEnvFloat("OFFICE_RADIUS", 100)
	if err != nil {
		return nil, err
	}
	maxAccuracy, err := getEnvFloat("MAX_GPS_ACCURACY", 50)
	if err != nil {
		return nil, err
	}

	config.Attendance = AttendanceConfig{
		OfficeLatitude:     officeLat,
		OfficeLongitude:    officeLon,
		OfficeRadiusMeters: officeRadius,
		MaxGPSAccuracy:     maxAccuracy,
		OfficeTimezone:     getEnv("OFFICE_TIMEZONE", "Asia/Jakarta"),
	}

	// Redis configuration (optional)
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	rateLimit, err := strconv.Atoi(getEnv("RATE_LIMIT_PER_MINUTE", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE: %w", err)
	}

	config.Redis = RedisConfig{
		Addr:            getEnv("REDIS_ADDR", ""),
		Password:        getEnv("REDIS_PASSWORD", ""),
		DB:              redisDB,
		RateLimitPerMin: rateLimit,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Attendance.OfficeRadiusMeters <= 0 {
		return fmt.Errorf("OFFICE_RADIUS must be positive")
	}
	if c.Attendance.MaxGPSAccuracy <= 0 {
		return fmt.Errorf("MAX_GPS_ACCURACY must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
