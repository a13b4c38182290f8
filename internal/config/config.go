package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	// URL, when set, takes precedence over the discrete fields.
	URL string

	PoolMinSize    int
	PoolMaxSize    int
	AcquireTimeout time.Duration
}

type Config struct {
	ServerPort     string
	AuthServerPort string
	GinMode        string
	LogMode        string

	FormsBasePath string
	AuthBasePath  string
	FormsSeedFile string

	CORSAllowOrigins []string

	FormsDB DBConfig
	AuthDB  DBConfig
}

// Load reads a .env file when present and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	pool := func() (int, int, time.Duration) {
		return getEnvInt("DB_POOL_MIN_SIZE", 1),
			getEnvInt("DB_POOL_MAX_SIZE", 10),
			time.Duration(getEnvInt("DB_POOL_TIMEOUT", 30)) * time.Second
	}

	cfg := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8000"),
		AuthServerPort:   getEnv("AUTH_SERVER_PORT", "8001"),
		GinMode:          getEnv("GIN_MODE", "release"),
		LogMode:          getEnv("LOG_MODE", "production"),
		FormsBasePath:    getEnv("FORMS_BASE_PATH", "/api/forms"),
		AuthBasePath:     getEnv("AUTH_BASE_PATH", "/api/auth"),
		FormsSeedFile:    getEnv("FORMS_SEED_FILE", ""),
		CORSAllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "http://localhost,http://localhost:3000")),
		FormsDB: DBConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnv("POSTGRES_PORT", "5432"),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", "password"),
			Name:     getEnv("POSTGRES_DB", "forms_db"),
			URL:      getEnv("DATABASE_URL", ""),
		},
		AuthDB: DBConfig{
			URL: getEnv("AUTH_DATABASE_URL", "postgresql://admin:1234@db_auth:5432/auth_db"),
		},
	}
	cfg.FormsDB.PoolMinSize, cfg.FormsDB.PoolMaxSize, cfg.FormsDB.AcquireTimeout = pool()
	cfg.AuthDB.PoolMinSize, cfg.AuthDB.PoolMaxSize, cfg.AuthDB.AcquireTimeout = pool()

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		log.Printf("Invalid integer for %s=%q, using %d", key, raw, fallback)
		return fallback
	}
	return v
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
