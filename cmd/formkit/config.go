package main

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/intake"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/submission"
)

// Export formats accepted by FORMKIT_EXPORTS.
const (
	exportPDF = "pdf"
	exportCSV = "csv"
)

type appConfig struct {
	Env      string `env:"FORMKIT_ENV" envDefault:"development"`
	LogLevel string `env:"FORMKIT_LOG_LEVEL"`

	WebhookURL     string        `env:"FORMKIT_WEBHOOK_URL"`
	WebhookSecret  string        `env:"FORMKIT_WEBHOOK_SECRET"`
	WebhookTimeout time.Duration `env:"FORMKIT_WEBHOOK_TIMEOUT" envDefault:"10s"`

	OutputDir   string   `env:"FORMKIT_OUTPUT_DIR" envDefault:"."`
	Exports     []string `env:"FORMKIT_EXPORTS" envSeparator:"," envDefault:"pdf"`
	PDFTitle    string   `env:"FORMKIT_PDF_TITLE"`
	PDFPageSize string   `env:"FORMKIT_PDF_PAGE_SIZE" envDefault:"A4"`

	DateLayout string `env:"FORMKIT_DATE_LAYOUT"`
	TimeLayout string `env:"FORMKIT_TIME_LAYOUT"`

	// parsed LogLevel; nil keeps the environment's level
	logLevel *slog.Level
}

func loadConfig(envFiles ...string) (appConfig, error) {
	var cfg appConfig
	if err := config.LoadEnv(envFiles...); err != nil {
		return cfg, err
	}
	if err := config.Load(&cfg); err != nil {
		return cfg, err
	}
	if cfg.DateLayout == "" {
		cfg.DateLayout = submission.DefaultDateLayout
	}
	if cfg.TimeLayout == "" {
		cfg.TimeLayout = submission.DefaultTimeLayout
	}
	cfg.Exports = normalizeFormats(cfg.Exports)
	if cfg.LogLevel != "" {
		lvl, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return cfg, fmt.Errorf("%w: FORMKIT_LOG_LEVEL: %w", config.ErrParsingConfig, err)
		}
		cfg.logLevel = &lvl
	}
	return cfg, nil
}

func (c appConfig) loggerOptions(out io.Writer) []logger.Option {
	opts := []logger.Option{
		logger.WithEnvironment(c.Env, "formkit"),
		logger.WithOutput(out),
		logger.WithContextExtractors(intake.LogApplicationID),
	}
	if c.logLevel != nil {
		opts = append(opts, logger.WithLevel(*c.logLevel))
	}
	return opts
}

// normalizeFormats lower-cases and trims export names, dropping blanks
// so that "pdf, CSV" selects both formats.
func normalizeFormats(formats []string) []string {
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func (c appConfig) exports(format string) bool {
	return slices.Contains(c.Exports, format)
}

// unknownExports lists configured formats formkit cannot write.
func (c appConfig) unknownExports() []string {
	var unknown []string
	for _, e := range c.Exports {
		if e != exportPDF && e != exportCSV {
			unknown = append(unknown, e)
		}
	}
	return unknown
}
