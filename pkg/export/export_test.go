package export_test

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/export"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/submission"
)

func collect(t *testing.T, controls ...*form.Control) *submission.Record {
	t.Helper()
	c := submission.NewCollector(
		submission.WithClock(func() time.Time { return time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC) }),
		submission.WithIDGenerator(func(time.Time) string { return "APP-1-007" }),
	)
	rec, err := c.Collect(&form.Form{Controls: controls})
	require.NoError(t, err)
	return rec
}

func sampleRecord(t *testing.T) *submission.Record {
	return collect(t,
		&form.Control{Name: "full_name", Type: form.TypeText, Value: "Al, Jr."},
		&form.Control{Name: "bio", Type: form.TypeTextarea, Value: "<b>Hello</b> & welcome"},
		&form.Control{Name: "topics", Type: form.TypeCheckbox, Value: "go", Checked: true},
		&form.Control{Name: "topics", Type: form.TypeCheckbox, Value: "rust", Checked: true},
		&form.Control{Name: "terms", Type: form.TypeCheckbox, Checked: true},
		&form.Control{Name: "_csrf", Type: form.TypeHidden, Value: "secret"},
	)
}

func TestCSVExporter_Write(t *testing.T) {
	var buf bytes.Buffer
	err := export.NewCSVExporter().Write(&buf, sampleRecord(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "applicationId,submittedAt,full_name,bio,topics,terms", lines[0])
	assert.Equal(t, `APP-1-007,2026-10-17T09:00:00Z,"Al, Jr.",<b>Hello</b> & welcome,go; rust,Yes`, lines[1])
	assert.NotContains(t, buf.String(), "secret")
}

func TestCSVExporter_KeepsValuesVerbatim(t *testing.T) {
	rec := collect(t, &form.Control{Name: "hint", Type: form.TypeText, Value: "use <tab> here"})

	var buf bytes.Buffer
	require.NoError(t, export.NewCSVExporter().Write(&buf, rec))
	assert.Contains(t, buf.String(), ",use <tab> here\n")
}

func TestCSVExporter_Options(t *testing.T) {
	var buf bytes.Buffer
	e := export.NewCSVExporter(
		export.WithComma(';'),
		export.WithListSeparator("|"),
		export.WithCSVLabels(export.LabelsFrom(map[string]string{"full_name": "Name"})),
	)
	require.NoError(t, e.Write(&buf, sampleRecord(t)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "applicationId;submittedAt;Name;Bio;Topics;Terms", lines[0])
	assert.Contains(t, lines[1], ";go|rust;")
	assert.Contains(t, lines[1], ";Al, Jr.;", "comma no longer needs quoting")
}

func TestCSVExporter_Errors(t *testing.T) {
	var buf bytes.Buffer
	e := export.NewCSVExporter()
	assert.ErrorIs(t, e.Write(&buf), export.ErrNoRecords)
	assert.ErrorIs(t, e.Write(&buf, nil), export.ErrNilRecord)
}

func TestPDFExporter_Write(t *testing.T) {
	var buf bytes.Buffer
	e := export.NewPDFExporter(export.WithTitle("Membership Application"))

	require.NoError(t, e.Write(&buf, sampleRecord(t)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.ErrorIs(t, e.Write(&buf, nil), export.ErrNilRecord)
}

func TestPDFExporter_Paginates(t *testing.T) {
	var controls []*form.Control
	for i := 0; i < 80; i++ {
		controls = append(controls, &form.Control{
			Name:  "answer_" + strconv.Itoa(i),
			Type:  form.TypeTextarea,
			Value: strings.Repeat("long answer text ", 20),
		})
	}

	var buf bytes.Buffer
	e := export.NewPDFExporter(export.WithPageSize("Letter"), export.WithPDFLabels(export.Humanize))
	require.NoError(t, e.Write(&buf, collect(t, controls...)))
	assert.Greater(t, bytes.Count(buf.Bytes(), []byte("/Type /Page\n")), 1)
}

func TestPDFExporter_SplitsTallRows(t *testing.T) {
	rec := collect(t, &form.Control{
		Name:  "motivation",
		Type:  form.TypeTextarea,
		Value: strings.Repeat("lorem ipsum dolor sit amet ", 800),
	})

	var buf bytes.Buffer
	require.NoError(t, export.NewPDFExporter().Write(&buf, rec))
	// About 300 wrapped lines at 6mm each need at least six A4 pages.
	assert.GreaterOrEqual(t, bytes.Count(buf.Bytes(), []byte("/Type /Page\n")), 6)
}

func TestHumanize(t *testing.T) {
	tests := map[string]string{
		"first_name":   "First name",
		"first-name":   "First name",
		"firstName":    "First name",
		"email":        "Email",
		"address.zip2": "Address zip2",
		"FULL_NAME":    "Full name",
		"über_uns":     "Über uns",
		"":             "",
	}
	for in, want := range tests {
		assert.Equal(t, want, export.Humanize(in), in)
	}
}

func TestFormLabels(t *testing.T) {
	f := &form.Form{Controls: []*form.Control{
		{Name: "full_name", Label: "Your name"},
		{Name: "plan", Label: "Plan"},
		{Name: "plan", Label: "Other"},
		{Name: "zip_code"},
	}}
	l := export.FormLabels(f)
	assert.Equal(t, "Your name", l("full_name"))
	assert.Equal(t, "Plan", l("plan"), "first declared label wins")
	assert.Equal(t, "Zip code", l("zip_code"))
	assert.Equal(t, "Zip code", export.FormLabels(nil)("zip_code"))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "application-APP-1-007.pdf", export.Filename(sampleRecord(t), ".pdf"))
	assert.Equal(t, "application-APP-1-007.csv", export.Filename(sampleRecord(t), "csv"))
}
