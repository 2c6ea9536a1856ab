package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const DefaultBaseFee = 5000

type Config struct {
	Env             string  // dev, prod
	LogLevel        string  // zap level name
	HospitalName    string  // printed on bills
	Currency        string  // display label only
	BaseFee         float64 // doctor's visit fee
	MetricsTextfile string  // optional Prometheus textfile written on exit
	SeedDoctors     int     // fake doctors registered at startup
	SeedPatients    int     // fake patients registered at startup
	SeedSlots       int     // slots offered by each fake doctor
	Seed            uint64  // fake data seed, 0 means time based
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:             getEnv("APP_ENV", "dev"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		HospitalName:    getEnv("HOSPITAL_NAME", "St Benedict Hospital"),
		Currency:        getEnv("CURRENCY", "JMD$"),
		BaseFee:         getFloat("BASE_FEE", DefaultBaseFee),
		MetricsTextfile: os.Getenv("METRICS_TEXTFILE"),
		SeedDoctors:     getInt("SEED_DOCTORS", 0),
		SeedPatients:    getInt("SEED_PATIENTS", 0),
		SeedSlots:       getInt("SEED_SLOTS", 5),
		Seed:            uint64(getInt("SEED", 0)),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Default is the configuration used when nothing is set in the environment.
func Default() Config {
	return Config{
		Env:          "dev",
		LogLevel:     "info",
		HospitalName: "St Benedict Hospital",
		Currency:     "JMD$",
		BaseFee:      DefaultBaseFee,
		SeedSlots:    5,
	}
}

func (c Config) Validate() error {
	if c.BaseFee < 0 {
		return errors.New("BASE_FEE must not be negative")
	}
	if c.SeedDoctors < 0 || c.SeedPatients < 0 || c.SeedSlots < 0 {
		return errors.New("SEED_DOCTORS, SEED_PATIENTS and SEED_SLOTS must not be negative")
	}
	if c.SeedDoctors > 0 && c.SeedSlots == 0 {
		return errors.New("SEED_SLOTS must be > 0 when SEED_DOCTORS is set")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		fmt.Fprintf(os.Stderr, "invalid integer for %s=%q, using default %d\n", key, v, def)
	}
	return def
}

func getFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		fmt.Fprintf(os.Stderr, "invalid number for %s=%q, using default %g\n", key, v, def)
	}
	return def
}
