package config

import (
	"os"
	"strconv"
	"time"

	"github.com/nileshd/newsguard/internal/logger"
)

type Config struct {
	AppPort string

	// CronSpec drives periodic refresh cycles.
	CronSpec string
	// SourceTimeout bounds one feed fetch inside a cycle.
	SourceTimeout time.Duration
	// MaxPerSource caps entries taken from a single feed per cycle.
	MaxPerSource int

	// SnapshotPath is the durable twin of the in-memory snapshot.
	SnapshotPath string
	// FeedsFile optionally replaces the built-in source registry (YAML).
	FeedsFile string

	// Optional collaborators; empty disables the feature.
	PostgresDSN  string
	RedisAddr    string
	OracleAPIURL string
	OracleAPIKey string
	OracleModel  string
	OCRAPIURL    string

	LogLevel string
	LogFile  string
}

func Load() *Config {
	cfg := &Config{
		AppPort:       getEnv("APP_PORT", "9000"),
		CronSpec:      getEnv("CRON_SPEC", "*/20 * * * *"),
		SourceTimeout: time.Duration(getEnvInt("SOURCE_TIMEOUT_SECONDS", 10)) * time.Second,
		MaxPerSource:  getEnvInt("MAX_PER_SOURCE", 25),
		SnapshotPath:  getEnv("SNAPSHOT_PATH", "data/news_snapshot.json"),
		FeedsFile:     getEnv("FEEDS_FILE", ""),
		PostgresDSN:   getEnv("POSTGRES_DSN", ""),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		OracleAPIURL:  getEnv("ORACLE_API_URL", ""),
		OracleAPIKey:  getEnv("ORACLE_API_KEY", ""),
		OracleModel:   getEnv("ORACLE_MODEL", "gemini-1.5-flash"),
		OCRAPIURL:     getEnv("OCR_API_URL", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFile:       getEnv("LOG_FILE", ""),
	}

	logger.Infof("config loaded: port=%s cron=%s snapshot=%s", cfg.AppPort, cfg.CronSpec, cfg.SnapshotPath)
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
