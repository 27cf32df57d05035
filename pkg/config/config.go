// Package config loads the application configuration from the environment,
// optionally seeded from a .env file.
package config

import "time"

// App is the root application configuration.
type App struct {
	Env       string `envconfig:"APP_ENV" default:"development"`
	Server    Server
	DB        DB
	RateLimit RateLimit
}

// Server configures the HTTP listener.
type Server struct {
	Host         string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port         int           `envconfig:"SERVER_PORT" default:"3000"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"10s"`
}

// DB configures the database connection.
type DB struct {
	Url             string        `envconfig:"DATABASE_URL"`
	MaxOpenConns    int           `envconfig:"DATABASE_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DATABASE_MAX_IDLE_CONNS" default:"25"`
	ConnMaxLifetime time.Duration `envconfig:"DATABASE_CONN_MAX_LIFETIME" default:"1h"`
}

// RateLimit configures the HTTP request limiter.
type RateLimit struct {
	MaxRequests int           `envconfig:"RATE_LIMIT_MAX_REQUESTS" default:"20"`
	Window      time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1s"`
}
