package gen

import (
	"errors"
	"maps"
	"runtime"

	"github.com/syssam/strata"
)

// Config configures model building and code generation.
type Config struct {
	// Target is the output directory for generated code.
	Target string
	// Package is the generated package name. Defaults to the model's
	// package, or the database name when neither is set.
	Package string
	// Platform names the SQL platform DDL is emitted for.
	Platform string
	// Header is an extra comment line placed under the generated-code
	// marker of each file.
	Header string
	// BuildProperties configure the compilation (default behaviors,
	// table prefix, string format).
	BuildProperties strata.BuildProperties
	// MaxBehaviorApplications caps the behavior scheduler. Zero means
	// no cap.
	MaxBehaviorApplications int
	// Workers bounds parallel file emission. Defaults to GOMAXPROCS.
	Workers int
}

// Option configures code generation.
type Option func(*Config) error

// WithTarget sets the output directory.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithPackage sets the generated package name.
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithPlatform sets the SQL platform by name.
// Supported platforms: "sqlite", "mysql", "postgres".
func WithPlatform(name string) Option {
	return func(c *Config) error {
		switch name {
		case "sqlite", "mysql", "postgres":
			c.Platform = name
			return nil
		default:
			return NewConfigError("Platform", name, "unsupported platform; use sqlite, mysql, or postgres")
		}
	}
}

// WithHeader sets the extra header comment of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithBuildProperties merges build properties into the configuration.
func WithBuildProperties(props strata.BuildProperties) Option {
	return func(c *Config) error {
		if c.BuildProperties == nil {
			c.BuildProperties = make(strata.BuildProperties)
		}
		maps.Copy(c.BuildProperties, props)
		return nil
	}
}

// WithBuildProperty sets one build property.
func WithBuildProperty(name, value string) Option {
	return WithBuildProperties(strata.BuildProperties{name: value})
}

// WithDefaultBehaviors sets the behaviors applied to every database,
// through the corresponding build property.
func WithDefaultBehaviors(names ...string) Option {
	return WithBuildProperty(defaultBehaviorsProperty, joinList(names))
}

// WithMaxBehaviorApplications caps the behavior scheduler.
func WithMaxBehaviorApplications(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return NewConfigError("MaxBehaviorApplications", n, "cap cannot be negative")
		}
		c.MaxBehaviorApplications = n
		return nil
	}
}

// WithWorkers bounds parallel file emission.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewConfigError("Workers", n, "worker count must be positive")
		}
		c.Workers = n
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}
