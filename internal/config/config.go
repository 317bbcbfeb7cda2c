package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// MinJWTSecretLength is the shortest HS256 signing key the server accepts.
const MinJWTSecretLength = 32

var (
	ErrJWTSecretMissing  = errors.New("JWT_SECRET is not set")
	ErrJWTSecretTooShort = errors.New("JWT_SECRET is shorter than 32 bytes")
)

type Config struct {
	AppPort           string
	DbHost            string
	DbPort            string
	DbUser            string
	DbPassword        string
	DbName            string
	DbParams          string
	TrustedProxies    []string
	JWTSecret         string
	JWTIssuer         string
	JWTTokenTTL       time.Duration
	BcryptCost        int
	RedisAddr         string
	AuthRateLimit     int
	AuthRateWindow    time.Duration
	TranslationFolder string
	ShutdownTimeout   time.Duration
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:           getEnv("APP_PORT", "8080"),
		DbHost:            getEnv("MYSQL_HOST", "db"),
		DbPort:            getEnv("MYSQL_PORT", "3306"),
		DbUser:            getEnv("MYSQL_USER", "taskmanager"),
		DbPassword:        getEnv("MYSQL_PASSWORD", "taskmanager"),
		DbName:            getEnv("MYSQL_DATABASE", "taskmanager"),
		DbParams:          getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		TrustedProxies:    parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		JWTIssuer:         getEnv("JWT_ISSUER", "taskmanager"),
		JWTTokenTTL:       getEnvDuration("JWT_TTL", 24*time.Hour),
		BcryptCost:        getEnvInt("BCRYPT_COST", 10),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		AuthRateLimit:     getEnvInt("AUTH_RATE_LIMIT", 10),
		AuthRateWindow:    getEnvDuration("AUTH_RATE_WINDOW", time.Minute),
		TranslationFolder: getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		ShutdownTimeout:   getEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}

// Validate rejects settings the server must not start with.
func (c *Config) Validate() error {
	switch {
	case c.JWTSecret == "":
		return ErrJWTSecretMissing
	case len(c.JWTSecret) < MinJWTSecretLength:
		return ErrJWTSecretTooShort
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
