// Command formkit fills in a form defined in YAML, validates it, submits the
// answers to a webhook and exports a PDF and/or CSV copy.
//
// Usage:
//
//	formkit -form membership.yaml                 # interactive
//	formkit -form membership.yaml -values a.yaml  # non-interactive
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/dmitrymomot/formkit/pkg/export"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/formdef"
	"github.com/dmitrymomot/formkit/pkg/intake"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/prompt"
	"github.com/dmitrymomot/formkit/pkg/submission"
	"github.com/dmitrymomot/formkit/pkg/validator"
	"github.com/dmitrymomot/formkit/pkg/webhook"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, prompt.ErrAborted) {
			fmt.Fprintln(os.Stderr, "formkit:", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("formkit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	defPath := fs.String("form", "", "form definition file (YAML)")
	valuesPath := fs.String("values", "", "values file (YAML); skips interactive prompts")
	envFile := fs.String("env-file", "", ".env file to load (default ./.env if present)")
	outDir := fs.String("out", "", "export directory (overrides FORMKIT_OUTPUT_DIR)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *defPath == "" {
		fs.Usage()
		return errors.New("-form is required")
	}

	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}
	cfg, err := loadConfig(envFiles...)
	if err != nil {
		return err
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}

	log := logger.New(cfg.loggerOptions(stderr)...)
	logger.SetAsDefault(log)

	f, err := formdef.LoadFile(*defPath)
	if err != nil {
		return err
	}
	log = log.With(logger.Form(f.ID))

	v := form.NewValidator(form.WithPresenter(fieldLogger(log)))
	collector := submission.NewCollector(submission.WithLayouts(cfg.DateLayout, cfg.TimeLayout))
	session := prompt.NewSession(v, prompt.WithDriver(prompt.NewSurveyDriver(stdout)))
	handler := intake.NewHandler(v, collector,
		intake.WithWebhook(cfg.WebhookURL,
			webhook.WithSignature(cfg.WebhookSecret),
			webhook.WithTimeout(cfg.WebhookTimeout),
		),
		intake.WithNotifier(session),
		intake.WithLogger(log),
	)

	if *valuesPath != "" {
		vals, err := formdef.LoadValuesFile(*valuesPath)
		if err != nil {
			return err
		}
		if err := vals.Apply(f); err != nil {
			return err
		}
	} else {
		if err := session.Fill(ctx, f); err != nil {
			return err
		}
		ok, err := session.ConfirmSubmit(ctx)
		if err != nil {
			return err
		}
		if !ok {
			log.InfoContext(ctx, "submission cancelled by user")
			return nil
		}
	}

	rec, submitErr := handler.Submit(ctx, f)
	if errors.Is(submitErr, intake.ErrValidationFailed) {
		for _, fe := range validator.ExtractValidationErrors(submitErr) {
			fmt.Fprintf(stdout, "  %s: %s\n", fe.Field, fe.Message)
		}
		return submitErr
	}
	if rec != nil {
		if err := writeExports(cfg, f, rec, stdout, log); err != nil {
			return errors.Join(submitErr, err)
		}
	}
	return submitErr
}

// fieldLogger records each failing field at debug level.
func fieldLogger(log *slog.Logger) form.Presenter {
	return form.PresenterFunc(func(c *form.Control, r validator.Result) {
		if r.Valid {
			return
		}
		log.Debug("field invalid",
			logger.Field(c.Name),
			logger.Kind(c.Kind),
			slog.String("message", r.Message),
		)
	})
}

func writeExports(cfg appConfig, f *form.Form, rec *submission.Record, stdout io.Writer, log *slog.Logger) error {
	labels := export.FormLabels(f)
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if cfg.exports(exportPDF) {
		title := cfg.PDFTitle
		if title == "" {
			title = f.Title
		}
		pdf := export.NewPDFExporter(
			export.WithTitle(title),
			export.WithPageSize(cfg.PDFPageSize),
			export.WithPDFLabels(labels),
		)
		path := filepath.Join(cfg.OutputDir, export.Filename(rec, exportPDF))
		if err := writeFile(path, func(w io.Writer) error { return pdf.Write(w, rec) }); err != nil {
			return err
		}
		fmt.Fprintln(stdout, "PDF written to", path)
	}

	if cfg.exports(exportCSV) {
		csv := export.NewCSVExporter(export.WithCSVLabels(labels))
		path := filepath.Join(cfg.OutputDir, export.Filename(rec, exportCSV))
		if err := writeFile(path, func(w io.Writer) error { return csv.Write(w, rec) }); err != nil {
			return err
		}
		fmt.Fprintln(stdout, "CSV written to", path)
	}

	for _, e := range cfg.unknownExports() {
		log.Warn("unknown export format ignored", slog.String("format", e))
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(fh); err != nil {
		_ = fh.Close()
		_ = os.Remove(path)
		return err
	}
	return fh.Close()
}
