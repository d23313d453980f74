// Package config loads typed configuration from the environment.
//
// Struct fields are bound with caarlos0/env tags. Before parsing, variables
// from .env files are loaded with godotenv; variables already present in the
// process environment win over file values.
//
//	type Config struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	cfg, err := config.Load[Config]()
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrParsingConfig indicates the environment could not be bound to the struct.
	ErrParsingConfig = errors.New("config: failed to parse environment")

	// ErrLoadingEnvFile indicates an existing .env file could not be read.
	ErrLoadingEnvFile = errors.New("config: failed to load env file")
)

type options struct {
	prefix string
	files  []string
}

// Option configures Load.
type Option func(*options)

// WithPrefix only binds variables starting with prefix, e.g. "NEWSLETTER_".
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles sets the .env files to read. Missing files are skipped.
// Default is ".env".
func WithEnvFiles(files ...string) Option {
	return func(o *options) { o.files = files }
}

// Load builds a T from the environment.
func Load[T any](opts ...Option) (T, error) {
	var cfg T
	o := options{files: []string{".env"}}
	for _, opt := range opts {
		opt(&o)
	}

	for _, f := range o.files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return cfg, fmt.Errorf("%w: %s: %v", ErrLoadingEnvFile, f, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: o.prefix}); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad is Load that exits the process on failure.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return cfg
}
