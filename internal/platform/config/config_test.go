package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ServiceName != "wahlfang" || cfg.HTTPPort != "8080" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.DatabaseDriver != DatabasePostgres || cfg.BusDriver != BusMemory {
		t.Fatalf("unexpected drivers %s/%s", cfg.DatabaseDriver, cfg.BusDriver)
	}
	if cfg.JWTTTL != 12*time.Hour || cfg.WSPingInterval != 30*time.Second {
		t.Fatalf("unexpected durations %s/%s", cfg.JWTTTL, cfg.WSPingInterval)
	}
	if cfg.EnableManagerFanout {
		t.Fatalf("expected manager fan-out disabled by default")
	}
	if cfg.TallyWinnerPolicy != "insertion_order" {
		t.Fatalf("expected insertion_order policy, got %s", cfg.TallyWinnerPolicy)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_DRIVER", "SQLite")
	t.Setenv("BUS_DRIVER", "redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("ENABLE_MANAGER_FANOUT", "on")
	t.Setenv("WS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("MANAGER_EMAIL_DOMAINS", "example.org")
	t.Setenv("TALLY_WINNER_POLICY", "vote_count")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatabaseDriver != DatabaseSQLite || cfg.BusDriver != BusRedis || cfg.RedisDB != 3 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.JWTTTL != 90*time.Minute {
		t.Fatalf("expected 90m ttl, got %s", cfg.JWTTTL)
	}
	if !cfg.EnableManagerFanout {
		t.Fatalf("expected manager fan-out enabled")
	}
	if len(cfg.WSAllowedOrigins) != 2 || cfg.WSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins %v", cfg.WSAllowedOrigins)
	}
	if len(cfg.ManagerEmailDomains) != 1 || cfg.TallyWinnerPolicy != "vote_count" {
		t.Fatalf("unexpected tally/manager config %+v", cfg)
	}
}

func TestLoadRejectsUnknownDrivers(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_DRIVER", "mysql")
	if _, err := Load(); err == nil {
		t.Fatalf("expected unsupported database driver error")
	}

	t.Setenv("DATABASE_DRIVER", "memory")
	t.Setenv("BUS_DRIVER", "kafka")
	if _, err := Load(); err == nil {
		t.Fatalf("expected unsupported bus driver error")
	}
}
