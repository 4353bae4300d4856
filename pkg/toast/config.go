package toast

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the recognized configuration surface for a toast Manager.
type Config struct {
	// Corner is the default container for records that do not name one.
	Corner Corner `env:"TOAST_CORNER" envDefault:"top-right"`

	// DefaultDuration is applied to freshly emitted records that carry
	// no explicit duration. Zero keeps them persistent.
	DefaultDuration time.Duration `env:"TOAST_DEFAULT_DURATION" envDefault:"0"`

	// Kinds restricts the severities Emit accepts. Empty allows all.
	Kinds []Kind `env:"TOAST_KINDS" envSeparator:","`

	// ShowServerFlashes toggles flash reconciliation entirely.
	ShowServerFlashes bool `env:"TOAST_SHOW_SERVER_FLASHES" envDefault:"true"`
}

// Validate checks the configuration for internally consistent values.
func (c Config) Validate() error {
	if c.Corner != "" && !c.Corner.Valid() {
		return fmt.Errorf("%w: unknown corner %q", ErrInvalidConfig, c.Corner)
	}
	for _, k := range c.Kinds {
		if k == "" {
			return fmt.Errorf("%w: empty kind in allow-set", ErrInvalidConfig)
		}
	}
	if c.DefaultDuration < 0 {
		return fmt.Errorf("%w: negative default duration", ErrInvalidConfig)
	}
	return nil
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		Corner:            CornerTopRight,
		ShowServerFlashes: true,
	}
}

var defaultEnvLoaded sync.Once

// LoadConfig loads the toast configuration from environment variables,
// reading a .env file first if one is present.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file might not exist and that's ok
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
