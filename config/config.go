package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds application configuration loaded from environment variables and .env file.
type AppConfig struct {
	// HTTP config
	Port    string
	GinMode string

	// Logging config
	LogLevel      string
	LogFile       string
	LogMaxSize    int // MB
	LogMaxBackups int
	LogMaxAge     int // days
	LogCompress   bool

	// Dataset generation config
	DatasetSeed int64
	PolicyCount int
	ClaimCount  int

	// In-memory store config
	StoreDBName         string
	StoreHost           string
	StorePort           int // 0 = pick a free port
	StoreMaxOpenConns   int
	StoreStartupTimeout time.Duration
	SlowQueryThreshold  time.Duration

	// Logs every SQL statement at DEBUG. Noisy, development only.
	EnableSQLTrace bool

	// Number of query runs kept for /api/runs
	RunHistorySize int
}

// Cfg is the global application configuration instance.
var Cfg AppConfig

// LoadConfig loads application configuration from .env file and environment variables.
// A missing .env file is not an error.
func LoadConfig() error {
	if err := godotenv.Load(); err != nil {
		// Use standard log here since logger is not initialized yet
		log.Printf("[WARN] .env file not found or cannot be loaded: %v", err)
	} else {
		log.Printf("[INFO] .env file loaded successfully")
	}

	Cfg = fromEnv()

	log.Printf("[INFO] Config loaded - Port: %s, LogLevel: %s, Seed: %d, Policies: %d, Claims: %d",
		Cfg.Port, Cfg.LogLevel, Cfg.DatasetSeed, Cfg.PolicyCount, Cfg.ClaimCount)
	log.Printf("[INFO] Store config - DB: %s@%s:%d, MaxOpenConns: %d, StartupTimeout: %v",
		Cfg.StoreDBName, Cfg.StoreHost, Cfg.StorePort, Cfg.StoreMaxOpenConns, Cfg.StoreStartupTimeout)

	return nil
}

func fromEnv() AppConfig {
	return AppConfig{
		Port:    getEnv("PORT", "8081"),
		GinMode: getEnv("GIN_MODE", "release"),

		LogLevel:      getEnv("LOG_LEVEL", "INFO"),
		LogFile:       getEnv("LOG_FILE", "logs/ormcheatsheet.log"),
		LogMaxSize:    getEnvInt("LOG_MAX_SIZE", 10),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
		LogMaxAge:     getEnvInt("LOG_MAX_AGE", 28),
		LogCompress:   getEnvBool("LOG_COMPRESS", true),

		DatasetSeed: getEnvInt64("DATASET_SEED", 41),
		PolicyCount: getEnvInt("POLICY_COUNT", 100),
		ClaimCount:  getEnvInt("CLAIM_COUNT", 30),

		StoreDBName:         getEnv("STORE_DB_NAME", "cheatsheet"),
		StoreHost:           getEnv("STORE_HOST", "localhost"),
		StorePort:           getEnvInt("STORE_PORT", 0),
		StoreMaxOpenConns:   getEnvInt("STORE_MAX_OPEN_CONNS", 8),
		StoreStartupTimeout: getEnvSeconds("STORE_STARTUP_TIMEOUT", 5),
		SlowQueryThreshold:  getEnvMillis("SLOW_QUERY_THRESHOLD_MS", 200),

		EnableSQLTrace: getEnvBool("ENABLE_SQL_TRACE", false),
		RunHistorySize: getEnvInt("RUN_HISTORY_SIZE", 500),
	}
}

func getEnv(key, defaultVal string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return intVal
		}
		log.Printf("[WARN] invalid integer for %s=%q, using default %d", key, val, defaultVal)
	}
	return defaultVal
}

func getEnvInt64(key string, defaultVal int64) int64 {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64); err == nil {
			return intVal
		}
		log.Printf("[WARN] invalid integer for %s=%q, using default %d", key, val, defaultVal)
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if boolVal, err := strconv.ParseBool(strings.TrimSpace(val)); err == nil {
			return boolVal
		}
	}
	return defaultVal
}

func getEnvSeconds(key string, defaultVal int) time.Duration {
	return time.Duration(getEnvInt(key, defaultVal)) * time.Second
}

func getEnvMillis(key string, defaultVal int) time.Duration {
	return time.Duration(getEnvInt(key, defaultVal)) * time.Millisecond
}
