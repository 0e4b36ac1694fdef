package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/intake"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/webhook"
)

func setEnv(t *testing.T, webhookURL, outDir string) {
	t.Helper()
	t.Setenv("FORMKIT_ENV", "production")
	t.Setenv("FORMKIT_WEBHOOK_URL", webhookURL)
	t.Setenv("FORMKIT_WEBHOOK_SECRET", "s3cret")
	t.Setenv("FORMKIT_OUTPUT_DIR", outDir)
	t.Setenv("FORMKIT_EXPORTS", "pdf,csv")
}

func exported(t *testing.T, dir, ext string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "application-APP-*."+ext))
	require.NoError(t, err)
	return matches
}

func TestRun_SubmitsAndExports(t *testing.T) {
	var (
		payload map[string]any
		verr    error
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		headers, err := webhook.ExtractSignatureHeaders(r.Header)
		if err == nil {
			verr = webhook.VerifySignature("s3cret", body, headers, 0)
		} else {
			verr = err
		}
		_ = json.Unmarshal(body, &payload)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	out := t.TempDir()
	setEnv(t, srv.URL, out)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{
		"-form", "testdata/membership.yaml",
		"-values", "testdata/values.yaml",
	}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	require.NoError(t, verr)
	assert.Equal(t, "Ada Lovelace", payload["full_name"])
	assert.Equal(t, []any{"go", "zig"}, payload["topics"])
	assert.Equal(t, "pro", payload["plan"])
	assert.Equal(t, true, payload["terms"])
	assert.Equal(t, "cli", payload["_source"])
	assert.NotContains(t, payload["_formFields"], "_source")

	pdfs := exported(t, out, "pdf")
	require.Len(t, pdfs, 1)
	raw, err := os.ReadFile(pdfs[0])
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF-")))

	csvs := exported(t, out, "csv")
	require.Len(t, csvs, 1)
	raw, err = os.ReadFile(csvs[0])
	require.NoError(t, err)
	header := strings.SplitN(string(raw), "\n", 2)[0]
	assert.Contains(t, header, "Full name")
	assert.Contains(t, header, "Why do you want to join?")
	assert.Contains(t, string(raw), "go; zig")

	assert.Contains(t, stdout.String(), "Your application has been submitted.")
	assert.Contains(t, stdout.String(), "PDF written to")
	assert.Contains(t, stderr.String(), `"msg":"submission delivered"`)
	assert.Contains(t, stderr.String(), `"application_id":"APP-`)
}

func TestRun_ValidationFailure(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { hits++ }))
	defer srv.Close()

	out := t.TempDir()
	setEnv(t, srv.URL, out)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{
		"-form", "testdata/membership.yaml",
		"-values", "testdata/invalid.yaml",
	}, &stdout, &stderr)
	require.ErrorIs(t, err, intake.ErrValidationFailed)

	assert.Zero(t, hits)
	assert.Empty(t, exported(t, out, "pdf"))
	assert.Contains(t, stdout.String(), intake.MessageInvalidForm)
	assert.Contains(t, stdout.String(), "full_name: Must be at least 2 characters")
	assert.Contains(t, stdout.String(), "email: Please enter a valid email address")
	assert.Contains(t, stdout.String(), "topics: Please select at least 2 options")
	assert.Contains(t, stdout.String(), "terms: This box must be checked to continue")
}

func TestRun_DeliveryFailureStillExports(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	out := t.TempDir()
	setEnv(t, srv.URL, out)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{
		"-form", "testdata/membership.yaml",
		"-values", "testdata/values.yaml",
	}, &stdout, &stderr)
	require.ErrorIs(t, err, intake.ErrSubmissionFailed)

	assert.Len(t, exported(t, out, "pdf"), 1)
	assert.Contains(t, stdout.String(), intake.MessageSubmitFailed)
	assert.Contains(t, stderr.String(), "webhook delivery failed")
}

func TestRun_ExportListIsNormalized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	out := t.TempDir()
	setEnv(t, srv.URL, out)
	t.Setenv("FORMKIT_EXPORTS", " PDF, csv ,docx")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{
		"-form", "testdata/membership.yaml",
		"-values", "testdata/values.yaml",
	}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	assert.Len(t, exported(t, out, "pdf"), 1)
	assert.Len(t, exported(t, out, "csv"), 1)

	var warning map[string]any
	for _, line := range strings.Split(stderr.String(), "\n") {
		if strings.Contains(line, "unknown export format ignored") {
			require.NoError(t, json.Unmarshal([]byte(line), &warning))
		}
	}
	require.NotNil(t, warning, stderr.String())
	assert.Equal(t, "docx", warning["format"])
	assert.Equal(t, "membership", warning["form"])
}

func TestRun_RequiresForm(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), nil, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-form")
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{
		"FORMKIT_ENV", "FORMKIT_WEBHOOK_URL", "FORMKIT_WEBHOOK_TIMEOUT", "FORMKIT_OUTPUT_DIR",
		"FORMKIT_EXPORTS", "FORMKIT_PDF_TITLE", "FORMKIT_DATE_LAYOUT", "FORMKIT_TIME_LAYOUT",
		"FORMKIT_LOG_LEVEL",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Empty(t, cfg.WebhookURL)
	assert.Equal(t, "10s", cfg.WebhookTimeout.String())
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, []string{"pdf"}, cfg.Exports)
	assert.Equal(t, "1/2/2006", cfg.DateLayout)
	assert.Equal(t, "3:04:05 PM", cfg.TimeLayout)
	assert.True(t, cfg.exports(exportPDF))
	assert.False(t, cfg.exports(exportCSV))
	assert.Nil(t, cfg.logLevel)
}

func TestLoadConfigLogLevel(t *testing.T) {
	t.Setenv("FORMKIT_LOG_LEVEL", "warn")
	cfg, err := loadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg.logLevel)
	assert.Equal(t, slog.LevelWarn, *cfg.logLevel)

	t.Setenv("FORMKIT_LOG_LEVEL", "loud")
	_, err = loadConfig()
	assert.ErrorIs(t, err, config.ErrParsingConfig)
	assert.ErrorIs(t, err, logger.ErrInvalidLevel)
}

func TestNormalizeFormats(t *testing.T) {
	cfg := appConfig{Exports: normalizeFormats([]string{" pdf", "CSV ", "", "  ", "docx"})}
	assert.Equal(t, []string{"pdf", "csv", "docx"}, cfg.Exports)
	assert.True(t, cfg.exports(exportPDF))
	assert.True(t, cfg.exports(exportCSV))
	assert.Equal(t, []string{"docx"}, cfg.unknownExports())
}
