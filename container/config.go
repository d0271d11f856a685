package container

import (
	"go.uber.org/zap"

	"github.com/arloliu/e57/internal/options"
)

// Config holds the settings applied by Open.
type Config struct {
	validate bool
	logger   *zap.Logger
}

func newConfig() *Config {
	return &Config{
		validate: true,
		logger:   zap.NewNop(),
	}
}

// Option configures Open.
type Option = options.Option[*Config]

// WithValidation turns the file header checks on or off. When on (the
// default), Open rejects a file whose signature is not "ASTM-E57" or whose
// physical length is not a multiple of its page size. Discriminant tags of
// sections and packets are checked either way.
func WithValidation(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.validate = enabled
	})
}

// WithLogger sets the logger used for debug output. A nil logger keeps the
// default no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return options.NoError(func(c *Config) {
		if logger != nil {
			c.logger = logger
		}
	})
}
