package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
)

// Database is the connection descriptor resolved once at process start.
type Database struct {
	Backend Backend
	DSN     string
}

type Config struct {
	AppURL                 string
	Database               Database
	RedisAddr              string
	RedisQueueKey          string
	APIPrefix              string
	RateLimit              int
	ShutdownTimeoutSeconds int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		Database:               ResolveDatabase(getEnv("DATABASE_URL", "")),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		RedisQueueKey:          getEnv("REDIS_QUEUE_KEY", "task_queue"),
		APIPrefix:              getEnv("API_PREFIX", "/api"),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}

	validate(cfg)
	return cfg
}

const (
	canonicalPostgresScheme = "postgres://"
	legacyPostgresScheme    = "postgresql://"
	sqliteScheme            = "sqlite://"

	defaultTempRoot   = "/tmp"
	defaultSQLitePath = "tickets.db"
)

// ResolveDatabase picks the storage backend for the process lifetime. An
// explicit DATABASE_URL wins; otherwise an existing temp root (ephemeral and
// serverless hosts) selects SQLite under it, and the working directory is the
// final fallback.
func ResolveDatabase(explicitURL string) Database {
	return resolveDatabase(explicitURL, runtime.GOOS, defaultTempRoot)
}

func resolveDatabase(explicitURL, goos, tempRoot string) Database {
	if explicitURL != "" {
		if strings.HasPrefix(explicitURL, legacyPostgresScheme) {
			explicitURL = canonicalPostgresScheme + strings.TrimPrefix(explicitURL, legacyPostgresScheme)
		}
		if strings.HasPrefix(explicitURL, canonicalPostgresScheme) {
			return Database{Backend: BackendPostgres, DSN: explicitURL}
		}
		return Database{Backend: BackendSQLite, DSN: strings.TrimPrefix(explicitURL, sqliteScheme)}
	}

	if goos != "windows" {
		if info, err := os.Stat(tempRoot); err == nil && info.IsDir() {
			return Database{Backend: BackendSQLite, DSN: filepath.Join(tempRoot, defaultSQLitePath)}
		}
	}

	return Database{Backend: BackendSQLite, DSN: defaultSQLitePath}
}

func validate(cfg Config) {
	if cfg.Database.DSN == "" {
		log.Fatal("resolved database DSN must not be empty")
	}
	if cfg.RedisQueueKey == "" {
		log.Fatal("REDIS_QUEUE_KEY must not be empty")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		log.Fatal("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}
