package registry

import (
	"fmt"

	"github.com/arloliu/go-strqueue/logger"
	"github.com/arloliu/go-strqueue/strqueue"

	envlib "github.com/caarlos0/env/v11"
)

const (
	// DefaultRemoveBufferSize is the default capacity of the buffer used by RemoveHeadString.
	DefaultRemoveBufferSize = 1024

	// MaxRemoveBufferSize is the largest accepted remove buffer capacity.
	MaxRemoveBufferSize = 1 << 20
)

// Config represents the configuration of a Registry.
type Config struct {
	// removeBufferSize defines the capacity of the pooled buffer used by RemoveHeadString,
	// including the terminating zero byte. Longer strings are truncated.
	// Defaults to 1024.
	removeBufferSize int

	// allocator is passed to every queue created by the registry.
	// Defaults to strqueue.DefaultAllocator().
	allocator strqueue.Allocator

	// logger provides a logger instance for logging handle lifecycle and failed operations.
	logger logger.Logger
	// logLevel, when set, overrides the level of the logger.
	logLevel *logger.Level

	// metrics collects operation counters. A fresh Metrics is created if not set.
	metrics *Metrics
}

// NewConfig creates a registry configuration with default values and applies opts in order.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		removeBufferSize: DefaultRemoveBufferSize,
		allocator:        strqueue.DefaultAllocator(),
	}

	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return cfg, err
		}
	}

	switch {
	case cfg.logger == nil && cfg.logLevel != nil:
		// don't change the level of the shared default logger
		cfg.logger = logger.NewSlog(*cfg.logLevel, false)
	case cfg.logger == nil:
		cfg.logger = logger.GetLogger()
	case cfg.logLevel != nil:
		cfg.logger.SetLevel(*cfg.logLevel)
	}

	if cfg.metrics == nil {
		cfg.metrics = &Metrics{}
	}

	return cfg, nil
}

// RemoveBufferSize returns the capacity of the buffer used by RemoveHeadString.
func (cfg *Config) RemoveBufferSize() int {
	return cfg.removeBufferSize
}

// Logger returns the configured logger.
func (cfg *Config) Logger() logger.Logger {
	return cfg.logger
}

// Metrics returns the configured metrics.
func (cfg *Config) Metrics() *Metrics {
	return cfg.metrics
}

// Option represents a functional option for configuring a Registry.
type Option interface {
	apply(*Config) error
}

type optFunc struct {
	name      string
	applyFunc func(*Config) error
}

func (o *optFunc) apply(cfg *Config) error {
	if cfg == nil {
		return ErrConfigNil
	}
	if err := o.applyFunc(cfg); err != nil {
		return fmt.Errorf("%s: %w", o.name, err)
	}

	return nil
}

func newOptFunc(name string, f func(*Config) error) *optFunc {
	return &optFunc{name: name, applyFunc: f}
}

// WithLogger sets the logger used by the registry.
// An error is returned if l is nil.
//
// The default is the package default logger of the logger package.
func WithLogger(l logger.Logger) Option {
	return newOptFunc("WithLogger", func(cfg *Config) error {
		if l == nil {
			return ErrLoggerNil
		}
		cfg.logger = l

		return nil
	})
}

// WithLogLevel sets the minimum level of the registry logger.
func WithLogLevel(level logger.Level) Option {
	return newOptFunc("WithLogLevel", func(cfg *Config) error {
		if level < logger.DebugLevel || level > logger.FatalLevel {
			return fmt.Errorf("log level %d out of range", level)
		}
		cfg.logLevel = &level

		return nil
	})
}

// WithRemoveBufferSize sets the capacity of the buffer used by RemoveHeadString.
// An error is returned if size is outside [1, MaxRemoveBufferSize].
//
// The default value is 1024.
func WithRemoveBufferSize(size int) Option {
	return newOptFunc("WithRemoveBufferSize", func(cfg *Config) error {
		if size < 1 || size > MaxRemoveBufferSize {
			return fmt.Errorf("remove buffer size %d out of range [1, %d]", size, MaxRemoveBufferSize)
		}
		cfg.removeBufferSize = size

		return nil
	})
}

// WithAllocator sets the allocator used by every queue the registry creates.
// A nil allocator restores the default.
func WithAllocator(a strqueue.Allocator) Option {
	return newOptFunc("WithAllocator", func(cfg *Config) error {
		if a == nil {
			a = strqueue.DefaultAllocator()
		}
		cfg.allocator = a

		return nil
	})
}

// WithMetrics sets the Metrics instance updated by the registry.
// Several registries may share one Metrics.
func WithMetrics(m *Metrics) Option {
	return newOptFunc("WithMetrics", func(cfg *Config) error {
		if m == nil {
			return ErrMetricsNil
		}
		cfg.metrics = m

		return nil
	})
}

// EnvironmentVariables maps the environment variables understood by OptionsFromEnv.
type EnvironmentVariables struct {
	LogLevel         string `env:"STRQUEUE_LOG_LEVEL" envDefault:"info"`
	RemoveBufferSize int    `env:"STRQUEUE_REMOVE_BUFFER_SIZE" envDefault:"1024"`
}

// OptionsFromEnv reads EnvironmentVariables and converts them to options.
//
// The returned options are validated when applied by New or NewConfig.
func OptionsFromEnv() ([]Option, error) {
	env, err := envlib.ParseAs[EnvironmentVariables]()
	if err != nil {
		return nil, err
	}

	level, err := logger.ParseLevel(env.LogLevel)
	if err != nil {
		return nil, err
	}

	return []Option{
		WithLogLevel(level),
		WithRemoveBufferSize(env.RemoveBufferSize),
	}, nil
}
