package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrNilPointer is returned when Load is called with a nil target.
	ErrNilPointer = errors.New("config target must be a non-nil pointer")

	// ErrParsingConfig wraps env tag parsing failures.
	ErrParsingConfig = errors.New("failed to parse config from environment")
)

var loadDotEnv sync.Once

// Load fills a configuration struct from environment variables using its
// `env` tags. The first call in a process also loads a .env file if one
// exists, so local development and tests can keep credentials out of the
// shell.
//
//	var cfg mongostore.Config
//	if err := config.Load(&cfg); err != nil { ... }
func Load[T any](v *T) error {
	loadDotEnv.Do(func() {
		// Missing .env is the normal production case.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad is Load for configuration the process cannot start without; it
// panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
