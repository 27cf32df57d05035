package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads the configuration from the environment. When envFile paths are
// given, the first one that loads wins; otherwise the default .env is tried.
// A missing .env file is not an error.
func Load(envFile ...string) (*App, error) {
	logger := slog.Default()

	loaded := false
	for _, path := range envFile {
		if err := godotenv.Load(path); err != nil {
			logger.Debug("environment file not loaded", "path", path, "error", err)
			continue
		}
		logger.Info("environment loaded from file", "path", path)
		loaded = true
		break
	}
	if !loaded && len(envFile) == 0 {
		if err := godotenv.Load(); err != nil {
			logger.Warn("no .env file found, using system environment")
		}
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	logger.Info("app config loaded",
		"env", cfg.Env,
		"server_host", cfg.Server.Host,
		"server_port", cfg.Server.Port,
		"db", maskValue(cfg.DB.Url),
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
	)
	return &cfg, nil
}

// maskValue hides all but the edges of a secret for logging.
func maskValue(value string) string {
	if len(value) <= 6 {
		return "****"
	}
	return value[:3] + "****" + value[len(value)-3:]
}
