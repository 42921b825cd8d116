package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	AppEnv string

	// HTTP server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	CORSOrigins  []string

	// Database
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	DBMaxRetries  int
	DBAutoMigrate bool

	// Redis / Kafka
	RedisAddr          string
	KafkaBroker        string
	OutboxPollInterval time.Duration

	// Tokens
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
	JWTIssuer          string
	JWTAudience        string

	// Security
	BcryptRounds   int
	RateLimitRPS   float64
	RateLimitBurst int
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Validate rejects configurations that would make token kinds indistinguishable.
func (c *Config) Validate() error {
	if c.AccessTokenSecret == "" || c.RefreshTokenSecret == "" {
		return errors.New("ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET are required")
	}
	if c.AccessTokenSecret == c.RefreshTokenSecret {
		return errors.New("ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET must differ")
	}
	if c.AccessTokenExpiry <= 0 || c.RefreshTokenExpiry <= 0 {
		return errors.New("token expiry must be positive")
	}
	return nil
}

// Load reads an optional .env file then the process environment.
func Load() *Config {
	log := zap.L().Named("config")

	envPaths := []string{".env", "../.env", "../../.env"}
	loaded := false
	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			log.Info("environment loaded", zap.String("path", path))
			loaded = true
			break
		}
	}
	if !loaded {
		log.Debug(".env file not found, using process environment")
	}

	cfg := &Config{
		AppEnv: getEnv("APP_ENV", "development"),

		Port:         getEnv("PORT", "3500"),
		ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
		CORSOrigins:  getEnvAsList("CORS_ORIGINS", []string{"http://localhost:3000"}),

		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", ""),
		DBName:        getEnv("DB_NAME", "hms"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		DBMaxRetries:  getEnvAsInt("DB_MAX_RETRIES", 5),
		DBAutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", false),

		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker:        getEnv("KAFKA_BROKER", ""),
		OutboxPollInterval: getEnvAsDuration("OUTBOX_POLL_INTERVAL", 3*time.Second),

		AccessTokenSecret:  getEnv("ACCESS_TOKEN_SECRET", ""),
		RefreshTokenSecret: getEnv("REFRESH_TOKEN_SECRET", ""),
		AccessTokenExpiry:  getEnvAsDuration("ACCESS_TOKEN_EXPIRY", 15*time.Minute),
		RefreshTokenExpiry: getEnvAsDuration("REFRESH_TOKEN_EXPIRY", 7*24*time.Hour),
		JWTIssuer:          getEnv("JWT_ISSUER", "hms-api"),
		JWTAudience:        getEnv("JWT_AUDIENCE", "hms-client"),

		BcryptRounds:   getEnvAsInt("BCRYPT_ROUNDS", 10),
		RateLimitRPS:   getEnvAsFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", 10),
	}

	if cfg.BcryptRounds < 10 {
		cfg.BcryptRounds = 10
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return v
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return v
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return v
	}
	return fallback
}

func getEnvAsList(key string, fallback []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
