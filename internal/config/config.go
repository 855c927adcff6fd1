package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

type AppConfig struct {
	AppName     string
	Environment string
}

type HTTPConfig struct {
	Port            string
	FrontendOrigins []string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration

	RunMigrations bool
	RunSeeders    bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

var errInvalidEnv = errors.New("invalid environment variables")

// Load reads the process environment. A .env file in the working directory is
// applied first when present; variables already set in the environment win.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, error) {
	var invalid []string
	str := func(key, def string) string {
		v := strings.TrimSpace(getenv(key))
		if v == "" {
			return def
		}
		return v
	}
	dur := func(key string, def time.Duration) time.Duration {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return def
		}
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			invalid = append(invalid, key)
			return def
		}
		return d
	}
	i32 := func(key string, def int32) int32 {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return def
		}
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || n < 0 {
			invalid = append(invalid, key)
			return def
		}
		return int32(n)
	}
	flag := func(key string, def bool) bool {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return def
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return b
	}

	cfg := Config{}

	cfg.App = AppConfig{
		AppName:     str("APP_NAME", "upath-backend"),
		Environment: str("APP_ENV", "development"),
	}

	// PORT and the libpq PG* variables are accepted as fallbacks.
	cfg.HTTP = HTTPConfig{
		Port:            str("HTTP_PORT", str("PORT", "4000")),
		FrontendOrigins: splitList(str("FRONTEND_ORIGIN", "http://localhost:5173")),
		ShutdownTimeout: dur("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
	if _, err := strconv.Atoi(strings.TrimPrefix(cfg.HTTP.Port, ":")); err != nil {
		invalid = append(invalid, "HTTP_PORT")
	}

	cfg.Database = DatabaseConfig{
		DBHost:     str("DB_HOST", str("PGHOST", "localhost")),
		DBPort:     str("DB_PORT", str("PGPORT", "5432")),
		DBName:     str("DB_NAME", str("PGDATABASE", "upath_db")),
		DBUser:     str("DB_USER", str("PGUSER", "postgres")),
		DBPassword: strings.TrimSpace(firstNonEmpty(getenv("DB_PASSWORD"), getenv("PGPASSWORD"))),
		DBSSLMode:  str("DB_SSL_MODE", "disable"),

		ConnectTimeout:        dur("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:          i32("DB_POOL_MAX_CONNS", 10),
		PoolMinConns:          i32("DB_POOL_MIN_CONNS", 0),
		PoolMaxConnLifetime:   dur("DB_POOL_MAX_CONN_LIFETIME", time.Hour),
		PoolMaxConnIdleTime:   dur("DB_POOL_MAX_CONN_IDLE_TIME", 30*time.Minute),
		PoolHealthCheckPeriod: dur("DB_POOL_HEALTH_CHECK_PERIOD", time.Minute),

		RunMigrations: flag("DB_RUN_MIGRATIONS", true),
		RunSeeders:    flag("DB_RUN_SEEDERS", true),
	}
	if _, err := strconv.Atoi(cfg.Database.DBPort); err != nil {
		invalid = append(invalid, "DB_PORT")
	}

	cfg.Redis = RedisConfig{
		Host:     str("REDIS_HOST", "localhost"),
		Port:     str("REDIS_PORT", "6379"),
		Password: strings.TrimSpace(getenv("REDIS_PASSWORD")),
		TTL:      dur("REDIS_TTL", 10*time.Minute),
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
