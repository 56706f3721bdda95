package envconfig

import (
	"fmt"
	"net/url"

	"github.com/caarlos0/env/v11"
)

type postgresEnv struct {
	Host          string `env:"POSTGRES_HOST,required"`
	Port          int    `env:"POSTGRES_PORT,required"`
	User          string `env:"POSTGRES_USER,required"`
	Password      string `env:"POSTGRES_PASSWORD,required"`
	DBName        string `env:"POSTGRES_DB,required"`
	SSLMode       string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
	MigrationsDir string `env:"MIGRATION_DIRECTORY,required"`
}

type postgres struct {
	raw postgresEnv
}

func NewPostgresConfig() (*postgres, error) {
	var raw postgresEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &postgres{raw: raw}, nil
}

func (cfg *postgres) MigrationDirectory() string {
	return cfg.raw.MigrationsDir
}

// DSN assembles the pool connection URL. Credentials are URL-escaped so a
// password with reserved characters survives the round trip.
func (cfg *postgres) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.raw.User, cfg.raw.Password),
		Host:     fmt.Sprintf("%s:%d", cfg.raw.Host, cfg.raw.Port),
		Path:     "/" + cfg.raw.DBName,
		RawQuery: "sslmode=" + cfg.raw.SSLMode,
	}

	return u.String()
}
