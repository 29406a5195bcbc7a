package persons

import (
	"fmt"
	"time"
)

type Config struct {
	ResponseHeaderKey   string        `env:"PERSONS_RESPONSE_HEADER_KEY" env-default:"X-Persons-Service"`
	ResponseHeaderValue string        `env:"PERSONS_RESPONSE_HEADER_VALUE" env-default:"crud"`
	DisableEdit         bool          `env:"PERSONS_DISABLE_EDIT"`
	DisableDelete       bool          `env:"PERSONS_DISABLE_DELETE"`
	TokenTTL            time.Duration `env:"PERSONS_TOKEN_TTL" env-default:"1h"`
	ExcelColumns        string        `env:"PERSONS_EXCEL_COLUMNS" env-default:"full"`
}

func (c *Config) Validate() error {
	if c.TokenTTL <= 0 {
		return fmt.Errorf("persons: token ttl must be positive, got %s", c.TokenTTL)
	}
	if _, ok := ParseColumnSet(c.ExcelColumns); !ok {
		return fmt.Errorf("persons: unknown excel column set %q", c.ExcelColumns)
	}
	return nil
}

func GetDefaultConfig() *Config {
	return &Config{
		ResponseHeaderKey:   "X-Persons-Service",
		ResponseHeaderValue: "crud",
		TokenTTL:            time.Hour,
		ExcelColumns:        string(ColumnsFull),
	}
}
