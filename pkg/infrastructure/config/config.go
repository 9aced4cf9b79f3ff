package config

import (
	"os"
	"strconv"
)

const (
	defaultDBPath        = "./logicost.db"
	defaultPort          = "8080"
	defaultMigrationsDir = "migrations"
	defaultWorkers       = 4
	defaultPlantName     = "Plant"
	defaultPlantCountry  = "DE"
	defaultPlantZip      = "38"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	DBPath        string
	Port          string
	MigrationsDir string
	Workers       int
	PlantName     string
	PlantCountry  string
	PlantZip      string
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: load local dev environment variables. Production should use
	// real env injection.
	_ = loadDotEnv(".env")

	cfg := Config{
		DBPath:        os.Getenv("DB_PATH"),
		Port:          os.Getenv("PORT"),
		MigrationsDir: os.Getenv("MIGRATIONS_DIR"),
		PlantName:     os.Getenv("PLANT_NAME"),
		PlantCountry:  os.Getenv("PLANT_COUNTRY"),
		PlantZip:      os.Getenv("PLANT_ZIP"),
	}

	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.MigrationsDir == "" {
		cfg.MigrationsDir = defaultMigrationsDir
	}
	if cfg.PlantName == "" {
		cfg.PlantName = defaultPlantName
	}
	if cfg.PlantCountry == "" {
		cfg.PlantCountry = defaultPlantCountry
	}
	if cfg.PlantZip == "" {
		cfg.PlantZip = defaultPlantZip
	}

	cfg.Workers = defaultWorkers
	if v := os.Getenv("WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Workers = n
		}
	}

	return cfg
}
