package security

import (
	"fmt"

	"github.com/joefazee/crud/models"
)

type Config struct {
	SymmetricKey string `env:"TOKEN_SYMMETRIC_KEY" env-default:"12345678901234567890123456789012"`
}

func (c *Config) Validate() error {
	if len(c.SymmetricKey) != SymmetricKeySize {
		return fmt.Errorf("%w: token symmetric key must be %d bytes", models.ErrInvalidTokenKey, SymmetricKeySize)
	}
	return nil
}

func GetDefaultConfig() *Config {
	return &Config{
		SymmetricKey: "12345678901234567890123456789012",
	}
}
