package arena

import (
	"io"

	"github.com/sirupsen/logrus"
)

type Option func(o *options)

type options struct {
	cfg    *Config
	logger *logrus.Logger
}

func newDefaultLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}

// WithDefaultOptions returns the default options.
func WithDefaultOptions() []Option {
	return []Option{
		WithConfig(DefaultConfig),
		WithLogger(DefaultLogger),
	}
}

// WithConfig sets the arena config. Missing fields fall back to the defaults.
func WithConfig(cfg *Config) Option {
	if cfg == nil {
		return func(o *options) {
			o.cfg = DefaultConfig
		}
	}
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithLogger sets the logger used by the arena and its container.
func WithLogger(logger *logrus.Logger) Option {
	if logger == nil {
		return func(o *options) {
			o.logger = DefaultLogger
		}
	}
	return func(o *options) {
		o.logger = logger
	}
}

// WithSilentLogger discards every log line.
func WithSilentLogger() Option {
	return func(o *options) {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.logger = l
	}
}

func (c *Config) InsertDefaults() {
	if c.InitialCapacity == nil || *c.InitialCapacity < 0 {
		c.InitialCapacity = &DefaultInitialCapacity
	}
	if c.ZeroOnFree == nil {
		c.ZeroOnFree = &DefaultZeroOnFree
	}
}
