package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store kinds accepted by SESSION_STORE.
const (
	StoreFile     = "file"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config aggregates runtime configuration for the portal.
type Config struct {
	App      AppConfig
	Backend  BackendConfig
	Session  SessionConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Shell    ShellConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// BackendConfig points at the exam backend.
type BackendConfig struct {
	BaseURL        string
	APIPrefix      string
	TimeoutSeconds int
}

// SessionConfig selects where the credential record is persisted.
type SessionConfig struct {
	Store    string
	FilePath string
	Secret   string
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// ShellConfig describes the desktop window the portal opens.
type ShellConfig struct {
	DevMode      bool
	DevOrigin    string
	OpenOnStart  bool
	Width        int
	Height       int
	MinWidth     int
	MinHeight    int
	ReadyTimeout int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	store := strings.ToLower(getEnv("SESSION_STORE", StoreFile))
	switch store {
	case StoreFile, StoreRedis, StorePostgres, StoreMemory:
	default:
		return nil, fmt.Errorf("invalid SESSION_STORE: %q", store)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "exam-portal"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "127.0.0.1"),
			Port:                  getEnv("APP_PORT", "5174"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Backend: BackendConfig{
			BaseURL:        strings.TrimRight(getEnv("BACKEND_BASE_URL", "http://localhost:8080"), "/"),
			APIPrefix:      getEnv("BACKEND_API_PREFIX", "/api"),
			TimeoutSeconds: getEnvAsInt("BACKEND_TIMEOUT_SECONDS", 10),
		},
		Session: SessionConfig{
			Store:    store,
			FilePath: getEnv("SESSION_FILE", defaultSessionFile()),
			Secret:   os.Getenv("SESSION_SECRET"),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 4)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 1)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:      getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password:  os.Getenv("REDIS_PASSWORD"),
			DB:        redisDB,
			KeyPrefix: getEnv("REDIS_KEY_PREFIX", "exam-portal:session"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Shell: ShellConfig{
			DevMode:      getEnvAsBool("SHELL_DEV_MODE", false),
			DevOrigin:    getEnv("SHELL_DEV_ORIGIN", "http://localhost:5173"),
			OpenOnStart:  getEnvAsBool("SHELL_OPEN_ON_START", false),
			Width:        getEnvAsInt("SHELL_WIDTH", 1200),
			Height:       getEnvAsInt("SHELL_HEIGHT", 800),
			MinWidth:     getEnvAsInt("SHELL_MIN_WIDTH", 800),
			MinHeight:    getEnvAsInt("SHELL_MIN_HEIGHT", 600),
			ReadyTimeout: getEnvAsInt("SHELL_READY_TIMEOUT_SECONDS", 15),
		},
	}

	return cfg, nil
}

// SecretPath is where a generated sealing secret is kept when
// SESSION_SECRET is not set.
func (s SessionConfig) SecretPath() string {
	return filepath.Join(filepath.Dir(s.FilePath), "session.key")
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// BaseURL returns the URL the portal is reachable at.
func (a AppConfig) BaseURL() string {
	return fmt.Sprintf("http://%s", a.Addr())
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// APIBaseURL joins the backend base URL and API prefix.
func (b BackendConfig) APIBaseURL() string {
	prefix := strings.TrimRight(b.APIPrefix, "/")
	if prefix != "" && !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return strings.TrimRight(b.BaseURL, "/") + prefix
}

// Timeout returns the per-request backend timeout.
func (b BackendConfig) Timeout() time.Duration {
	if b.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(b.TimeoutSeconds) * time.Second
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".exam-portal", "session.json")
	}
	return filepath.Join(home, ".exam-portal", "session.json")
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
