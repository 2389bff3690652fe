package config

import (
	"os"
	"strconv"
)

type Config struct {
	Environment string
	LogLevel    string

	Data struct {
		CombinedFile  string
		WatchlistFile string
		OutputDir     string
	}

	Backtest struct {
		RewardMultiple float64
		Workers        int
	}

	Fetch struct {
		Category   string
		Interval   string
		WindowDays int
	}

	Exchange struct {
		APIKey  string
		Secret  string
		Testnet bool
	}

	Monitoring struct {
		PrometheusPort int
		HealthPort     int
	}
}

func Load() *Config {
	cfg := &Config{
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	cfg.Data.CombinedFile = getEnv("DATA_FILE", "data/combined.csv")
	cfg.Data.WatchlistFile = getEnv("WATCHLIST_FILE", "combined_watchlist.csv")
	cfg.Data.OutputDir = getEnv("OUTPUT_DIR", "data")

	cfg.Backtest.RewardMultiple = getEnvFloat("REWARD_MULTIPLE", 1.25)
	cfg.Backtest.Workers = getEnvInt("WORKERS", 0)

	cfg.Fetch.Category = getEnv("BYBIT_CATEGORY", "spot")
	cfg.Fetch.Interval = getEnv("FETCH_INTERVAL", "D")
	cfg.Fetch.WindowDays = getEnvInt("FETCH_WINDOW_DAYS", 160)

	cfg.Exchange.APIKey = getEnv("BYBIT_API_KEY", "")
	cfg.Exchange.Secret = getEnv("BYBIT_API_SECRET", "")
	cfg.Exchange.Testnet = getEnvBool("BYBIT_TESTNET", false)

	cfg.Monitoring.PrometheusPort = getEnvInt("PROMETHEUS_PORT", 8080)
	cfg.Monitoring.HealthPort = getEnvInt("HEALTH_PORT", 8081)

	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}
