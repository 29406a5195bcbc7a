package app

import (
	"fmt"

	"github.com/joefazee/crud/app/database"
	"github.com/joefazee/crud/app/persons"
	"github.com/joefazee/crud/internal/cache"
	"github.com/joefazee/crud/internal/deps"
	"github.com/joefazee/crud/internal/nexus"
	"github.com/joefazee/crud/internal/security"
)

type Config struct {
	DB       database.Config
	Cache    cache.Config
	Security security.Config
	Persons  persons.Config

	Store    string `env:"APP_STORE" env-default:"memory" validate:"oneof=memory postgres"`
	AppHost  string `env:"APP_HOST" env-default:"localhost"`
	AppPort  string `env:"APP_PORT" env-default:"8080"`
	Env      string `env:"APP_ENV" env-default:"development"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
}

// Validate checks every module config. Database credentials are only
// required for the postgres store.
func (c *Config) Validate() error {
	if c.Store == deps.PostgresStore {
		if err := c.DB.Validate(); err != nil {
			return err
		}
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Security.Validate(); err != nil {
		return err
	}
	if err := c.Persons.Validate(); err != nil {
		return fmt.Errorf("invalid persons config: %w", err)
	}
	return nil
}

// Addr is the listen address of the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

// LoadConfig loads the application configuration from environment variables or a config file.
func LoadConfig(opts ...nexus.LoaderOption) (*Config, error) {
	c := &Config{}
	if err := nexus.NewLoader(opts...).Load(c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
