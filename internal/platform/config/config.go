package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string
	LogLevel    string

	DatabaseDriver string
	PostgresDSN    string
	SQLitePath     string

	BusDriver          string
	RedisAddress       string
	RedisPassword      string
	RedisDB            int
	RedisChannelPrefix string

	JWTSecret string
	JWTTTL    time.Duration

	SinkBuffer          int
	WSWriteTimeout      time.Duration
	WSPingInterval      time.Duration
	WSAllowedOrigins    []string
	PublishTimeout      time.Duration
	EnableManagerFanout bool

	TallyWinnerPolicy   string
	ManagerEmailDomains []string
}

const (
	DatabasePostgres = "postgres"
	DatabaseSQLite   = "sqlite"
	DatabaseMemory   = "memory"

	BusMemory = "memory"
	BusRedis  = "redis"
)

// Load reads environment variables, optionally layered over a config.yaml
// found in . or ./config. Environment always wins.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("SERVICE_NAME", "wahlfang")
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATABASE_DRIVER", DatabasePostgres)
	v.SetDefault("POSTGRES_DSN", "")
	v.SetDefault("SQLITE_PATH", "wahlfang.db")
	v.SetDefault("BUS_DRIVER", BusMemory)
	v.SetDefault("REDIS_ADDRESS", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_CHANNEL_PREFIX", "wahlfang:live:")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_TTL", "12h")
	v.SetDefault("SINK_BUFFER", 16)
	v.SetDefault("WS_WRITE_TIMEOUT", "10s")
	v.SetDefault("WS_PING_INTERVAL", "30s")
	v.SetDefault("WS_ALLOWED_ORIGINS", "")
	v.SetDefault("PUBLISH_TIMEOUT", "2s")
	v.SetDefault("ENABLE_MANAGER_FANOUT", "false")
	v.SetDefault("TALLY_WINNER_POLICY", "insertion_order")
	v.SetDefault("MANAGER_EMAIL_DOMAINS", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		ServiceName: strings.TrimSpace(v.GetString("SERVICE_NAME")),
		HTTPPort:    strings.TrimSpace(v.GetString("HTTP_PORT")),
		LogLevel:    strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL"))),

		DatabaseDriver: strings.ToLower(strings.TrimSpace(v.GetString("DATABASE_DRIVER"))),
		PostgresDSN:    v.GetString("POSTGRES_DSN"),
		SQLitePath:     v.GetString("SQLITE_PATH"),

		BusDriver:          strings.ToLower(strings.TrimSpace(v.GetString("BUS_DRIVER"))),
		RedisAddress:       v.GetString("REDIS_ADDRESS"),
		RedisPassword:      v.GetString("REDIS_PASSWORD"),
		RedisDB:            v.GetInt("REDIS_DB"),
		RedisChannelPrefix: v.GetString("REDIS_CHANNEL_PREFIX"),

		JWTSecret: v.GetString("JWT_SECRET"),
		JWTTTL:    v.GetDuration("JWT_TTL"),

		SinkBuffer:          v.GetInt("SINK_BUFFER"),
		WSWriteTimeout:      v.GetDuration("WS_WRITE_TIMEOUT"),
		WSPingInterval:      v.GetDuration("WS_PING_INTERVAL"),
		WSAllowedOrigins:    splitList(v.GetString("WS_ALLOWED_ORIGINS")),
		PublishTimeout:      v.GetDuration("PUBLISH_TIMEOUT"),
		EnableManagerFanout: parseBool(v.GetString("ENABLE_MANAGER_FANOUT"), false),

		TallyWinnerPolicy:   strings.TrimSpace(v.GetString("TALLY_WINNER_POLICY")),
		ManagerEmailDomains: splitList(v.GetString("MANAGER_EMAIL_DOMAINS")),
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "wahlfang"
	}
	if cfg.HTTPPort == "" {
		cfg.HTTPPort = "8080"
	}

	switch cfg.DatabaseDriver {
	case DatabasePostgres, DatabaseSQLite, DatabaseMemory:
	default:
		return Config{}, fmt.Errorf("unsupported DATABASE_DRIVER %q", cfg.DatabaseDriver)
	}
	switch cfg.BusDriver {
	case BusMemory, BusRedis:
	default:
		return Config{}, fmt.Errorf("unsupported BUS_DRIVER %q", cfg.BusDriver)
	}
	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, value := range strings.Split(raw, ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			out = append(out, value)
		}
	}
	return out
}

func parseBool(raw string, fallback bool) bool {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
