// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files into the process environment.
//     Variables already set in the environment win over file values.
//   - Load parses the environment into any struct annotated with `env` tags.
//   - MustLoad panics on failure, for configuration a program cannot start
//     without.
//
// # Usage
//
//	type Config struct {
//	    WebhookURL string        `env:"FORMKIT_WEBHOOK_URL,required"`
//	    Timeout    time.Duration `env:"FORMKIT_WEBHOOK_TIMEOUT" envDefault:"10s"`
//	}
//
//	if err := config.LoadEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// Errors wrap the sentinels ErrLoadingEnvFile, ErrParsingConfig and
// ErrNilPointer and can be matched with errors.Is.
package config
