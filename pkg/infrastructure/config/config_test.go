package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DB_PATH", "PORT", "MIGRATIONS_DIR", "WORKERS", "PLANT_NAME", "PLANT_COUNTRY", "PLANT_ZIP"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.DBPath != defaultDBPath {
		t.Errorf("DBPath=%q, want %q", cfg.DBPath, defaultDBPath)
	}
	if cfg.Port != defaultPort {
		t.Errorf("Port=%q, want %q", cfg.Port, defaultPort)
	}
	if cfg.Workers != defaultWorkers {
		t.Errorf("Workers=%d, want %d", cfg.Workers, defaultWorkers)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_PATH", "/tmp/test.db")
	t.Setenv("WORKERS", "8")
	t.Setenv("PLANT_COUNTRY", "CZ")

	cfg := Load()
	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("DBPath=%q, want /tmp/test.db", cfg.DBPath)
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers=%d, want 8", cfg.Workers)
	}
	if cfg.PlantCountry != "CZ" {
		t.Errorf("PlantCountry=%q, want CZ", cfg.PlantCountry)
	}
}

func TestLoadIgnoresInvalidWorkers(t *testing.T) {
	t.Setenv("WORKERS", "not-a-number")

	cfg := Load()
	if cfg.Workers != defaultWorkers {
		t.Errorf("Workers=%d, want default %d", cfg.Workers, defaultWorkers)
	}
}

func TestLoadDotEnv(t *testing.T) {
	t.Setenv("LGC_TEST_A", "")
	t.Setenv("LGC_TEST_B", "already")

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := []byte(`
# local overrides
LGC_TEST_A="one"
LGC_TEST_B=fromfile
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}

	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}
	if got := os.Getenv("LGC_TEST_A"); got != "one" {
		t.Errorf("LGC_TEST_A=%q, want one", got)
	}
	if got := os.Getenv("LGC_TEST_B"); got != "already" {
		t.Errorf("existing env must win, got %q", got)
	}
}
