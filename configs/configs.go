package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type ConfigStruct struct {
	Port                      string
	AccessTokenSecret         string
	RefreshTokenSecret        string
	AccessTokenTTL            time.Duration
	RefreshTokenTTL           time.Duration
	WaitForRedisConnectionSec int
	RedisUrl                  string
	RedisPassword             string
	MongodbDatabaseUrl        string
	MongodbDatabaseName       string
	DbUrl                     string
	RabbitMqUrl               string
	RabbitMqExchange          string
	FirebaseProjectId         string
	FirebaseCredentialsFile   string
	CatalogApiUrl             string
	CatalogTimeout            time.Duration
	CorsAllowedOrigins        []string
	SentryDns                 string
	SentryRelease             string
	PrintErrors               bool
	LogFile                   string
}

var configs = ConfigStruct{}

func GetConfigs() ConfigStruct {
	return configs
}

func LoadEnvVariables() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	configs.Port = getEnv("PORT", "3000")
	configs.DbUrl = os.Getenv("POSTGRES_DATABASE_URL")
	configs.AccessTokenSecret = os.Getenv("ACCESS_TOKEN_SECRET")
	configs.RefreshTokenSecret = os.Getenv("REFRESH_TOKEN_SECRET")
	configs.AccessTokenTTL = getDuration("ACCESS_TOKEN_TTL", time.Hour)
	configs.RefreshTokenTTL = getDuration("REFRESH_TOKEN_TTL", 30*24*time.Hour)
	configs.RedisUrl = os.Getenv("REDIS_URL")
	configs.RedisPassword = os.Getenv("REDIS_PASSWORD")
	configs.WaitForRedisConnectionSec, _ = strconv.Atoi(os.Getenv("WAIT_REDIS_CONNECTION_SEC"))
	configs.MongodbDatabaseUrl = os.Getenv("MONGODB_DATABASE_URL")
	configs.MongodbDatabaseName = getEnv("MONGODB_DATABASE_NAME", "showtracker")
	configs.RabbitMqUrl = os.Getenv("RABBITMQ_URL")
	configs.RabbitMqExchange = getEnv("RABBITMQ_EXCHANGE", "showtracker.activity")
	configs.FirebaseProjectId = os.Getenv("FIREBASE_PROJECT_ID")
	configs.FirebaseCredentialsFile = os.Getenv("FIREBASE_CREDENTIALS_FILE")
	configs.CatalogApiUrl = getEnv("CATALOG_API_URL", "https://api.tvmaze.com")
	configs.CatalogTimeout = getDuration("CATALOG_TIMEOUT", 8*time.Second)
	configs.CorsAllowedOrigins = strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), "---")
	for i := range configs.CorsAllowedOrigins {
		configs.CorsAllowedOrigins[i] = strings.TrimSpace(configs.CorsAllowedOrigins[i])
	}
	configs.SentryDns = os.Getenv("SENTRY_DNS")
	configs.SentryRelease = os.Getenv("SENTRY_RELEASE")
	configs.PrintErrors = os.Getenv("PRINT_ERRORS") == "true"
	configs.LogFile = os.Getenv("LOG_FILE")
}

func getEnv(key string, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid duration for %s: %v", key, err)
		return fallback
	}
	return d
}
