package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config del servicio, cargada desde variables de entorno.
type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	DBDSN     string `env:"DB_DSN"`
	AppName   string `env:"APP_NAME" envDefault:"beneficiary-trajectory"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Zona en la que se interpretan las fechas de calendario de la trayectoria.
	TimelineTZ string `env:"TIMELINE_TZ" envDefault:"America/Argentina/Buenos_Aires"`

	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`

	UserDirectory UserDirectory `envPrefix:"USER_DIRECTORY_"`
	IAM           IAM           `envPrefix:"IAM_"`
	Tracing       Tracing       `envPrefix:"TRACING_"`

	// SeedFile: JSON con datos iniciales para el storage in-memory (solo sin DB_DSN).
	SeedFile string `env:"SEED_FILE"`
}

// UserDirectory vacío => actores desde el storage local.
type UserDirectory struct {
	URL      string        `env:"URL"`
	APIKey   string        `env:"API_KEY"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"3s"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`
}

// IAM vacío => modo dev (headers X-Debug-*).
type IAM struct {
	URL    string `env:"URL"`
	APIKey string `env:"API_KEY"`
}

// Tracing vacío => spans no-op.
type Tracing struct {
	Endpoint    string  `env:"ENDPOINT"`
	Enabled     bool    `env:"ENABLED" envDefault:"true"`
	SampleRatio float64 `env:"SAMPLE_RATIO" envDefault:"1"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := cfg.Location(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Addr() string {
	p := strings.TrimSpace(c.Port)
	if strings.HasPrefix(p, ":") {
		return p
	}
	return ":" + p
}

func (c Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.TimelineTZ)
	if tz == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMELINE_TZ %q: %w", tz, err)
	}
	return loc, nil
}

func (c Config) IAMEnabled() bool {
	return strings.TrimSpace(c.IAM.URL) != ""
}

func (c Config) UserDirectoryEnabled() bool {
	return strings.TrimSpace(c.UserDirectory.URL) != ""
}
