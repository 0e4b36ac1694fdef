package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded by LoadEnv when no paths are given.
const DefaultEnvFile = ".env"

// LoadEnv loads the given .env files into the process environment without
// overriding variables that are already set. Earlier files take precedence.
//
// With no paths it loads DefaultEnvFile and a missing default file is not an
// error. Explicit paths must exist.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}

// Load parses environment variables into the struct pointed to by v using
// its `env` and `envDefault` field tags.
//
// Example:
//
//	type WebhookConfig struct {
//		URL     string        `env:"FORMKIT_WEBHOOK_URL,required"`
//		Secret  string        `env:"FORMKIT_WEBHOOK_SECRET"`
//		Timeout time.Duration `env:"FORMKIT_WEBHOOK_TIMEOUT" envDefault:"10s"`
//	}
//
//	var cfg WebhookConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
