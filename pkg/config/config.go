package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Maps      MapsConfig
	Platforms PlatformsConfig
	Scheduler SchedulerConfig
	Suggest   SuggestConfig
	Logger    LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
	RefreshExp time.Duration
}

// MapsConfig configures the Google Places integration. When APIKey is empty
// the service runs on the static fallback provider instead.
type MapsConfig struct {
	APIKey         string
	SearchRadiusM  int
	RequestTimeout time.Duration
}

type PlatformsConfig struct {
	BookingAPIKey string
	BookingAPIURL string
	AirbnbAPIKey  string
	AirbnbAPIURL  string
}

type SchedulerConfig struct {
	Enabled      bool
	PollInterval time.Duration
}

type SuggestConfig struct {
	// MaxSuggestions bounds the ranked list returned to staff.
	MaxSuggestions int
	// HistoricalLimit bounds how many past exchanges feed the historical source.
	HistoricalLimit int
	// SourceTimeout bounds each candidate source query.
	SourceTimeout time.Duration
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// A missing .env file is fine; plain environment variables are used
	// directly in Docker/K8s deployments.

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	jwtExp, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24"))
	refreshExp, _ := strconv.Atoi(getEnv("JWT_REFRESH_EXPIRATION_HOURS", "168"))
	searchRadius, _ := strconv.Atoi(getEnv("MAPS_SEARCH_RADIUS_M", "2000"))
	mapsTimeout, _ := strconv.Atoi(getEnv("MAPS_REQUEST_TIMEOUT", "5"))
	pollInterval, _ := strconv.Atoi(getEnv("SCHEDULER_POLL_INTERVAL_SEC", "300"))
	maxSuggestions, _ := strconv.Atoi(getEnv("SUGGEST_MAX", "3"))
	historicalLimit, _ := strconv.Atoi(getEnv("SUGGEST_HISTORICAL_LIMIT", "5"))
	sourceTimeout, _ := strconv.Atoi(getEnv("SUGGEST_SOURCE_TIMEOUT", "3"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "guestdesk"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			Expiration: time.Duration(jwtExp) * time.Hour,
			RefreshExp: time.Duration(refreshExp) * time.Hour,
		},
		Maps: MapsConfig{
			APIKey:         getEnv("MAPS_API_KEY", ""),
			SearchRadiusM:  searchRadius,
			RequestTimeout: time.Duration(mapsTimeout) * time.Second,
		},
		Platforms: PlatformsConfig{
			BookingAPIKey: getEnv("BOOKING_API_KEY", ""),
			BookingAPIURL: getEnv("BOOKING_API_URL", "https://distribution-xml.booking.com/2.5/json"),
			AirbnbAPIKey:  getEnv("AIRBNB_API_KEY", ""),
			AirbnbAPIURL:  getEnv("AIRBNB_API_URL", "https://api.airbnb.com/v2"),
		},
		Scheduler: SchedulerConfig{
			Enabled:      getEnv("SCHEDULER_ENABLED", "false") == "true",
			PollInterval: time.Duration(pollInterval) * time.Second,
		},
		Suggest: SuggestConfig{
			MaxSuggestions:  maxSuggestions,
			HistoricalLimit: historicalLimit,
			SourceTimeout:   time.Duration(sourceTimeout) * time.Second,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
