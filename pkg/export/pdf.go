package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/dmitrymomot/formkit/pkg/submission"
)

// Page geometry in millimetres.
const (
	pageMargin  = 15.0
	labelWidth  = 60.0
	lineHeight  = 6.0
	cellPadding = 1.5
)

// PDFExporter renders one record per document: a title, an application
// header, then a label/value table that flows across pages. Construct it
// once and reuse it; it holds configuration only.
type PDFExporter struct {
	title    string
	pageSize string
	listSep  string
	labels   Labeler
	clean    plainText
}

type PDFOption func(*PDFExporter)

// WithTitle sets the document heading. Default "Application Summary".
func WithTitle(title string) PDFOption {
	return func(e *PDFExporter) {
		if title = strings.TrimSpace(title); title != "" {
			e.title = title
		}
	}
}

// WithPageSize sets the page size name understood by fpdf ("A4", "Letter").
func WithPageSize(size string) PDFOption {
	return func(e *PDFExporter) {
		if size != "" {
			e.pageSize = size
		}
	}
}

// WithPDFLabels sets how field names become row labels.
func WithPDFLabels(l Labeler) PDFOption {
	return func(e *PDFExporter) {
		if l != nil {
			e.labels = l
		}
	}
}

func NewPDFExporter(opts ...PDFOption) *PDFExporter {
	e := &PDFExporter{
		title:    "Application Summary",
		pageSize: "A4",
		listSep:  ", ",
		labels:   Humanize,
		clean:    newPlainText(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Write renders r as a PDF document to w.
func (e *PDFExporter) Write(w io.Writer, r *submission.Record) error {
	if r == nil {
		return ErrNilRecord
	}

	pdf := fpdf.New("P", "mm", e.pageSize, "")
	pdf.SetTitle(e.title, true)
	pdf.SetCreator("formkit", true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.AliasNbPages("")

	// core fonts are cp1252
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-pageMargin)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, lineHeight, tr(fmt.Sprintf("%s - page %d/{nb}", r.ApplicationID(), pdf.PageNo())), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	e.writeHeader(pdf, tr, r)
	e.writeTable(pdf, tr, r)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}
	return nil
}

func (e *PDFExporter) writeHeader(pdf *fpdf.Fpdf, tr func(string) string, r *submission.Record) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(e.title), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, lineHeight, tr("Application ID: "+r.ApplicationID()), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, lineHeight, tr(fmt.Sprintf("Submitted: %s %s", r.Date(), r.Time())), "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func (e *PDFExporter) writeTable(pdf *fpdf.Fpdf, tr func(string) string, r *submission.Record) {
	pageW, pageH := pdf.GetPageSize()
	valueWidth := pageW - 2*pageMargin - labelWidth
	bottom := pageH - 2*pageMargin

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Helvetica", "", 10)

	for _, entry := range r.Flatten(e.listSep) {
		label := tr(e.labels(entry.Name))
		value := tr(e.clean.Clean(entry.Value))
		if value == "" {
			value = "-"
		}

		pdf.SetFont("Helvetica", "B", 10)
		labelLines := pdf.SplitLines([]byte(label), labelWidth-2*cellPadding)
		pdf.SetFont("Helvetica", "", 10)
		valueLines := pdf.SplitLines([]byte(value), valueWidth-2*cellPadding)

		rowHeight := float64(max(len(labelLines), len(valueLines), 1)) * lineHeight
		if pdf.GetY()+rowHeight > bottom && rowHeight <= bottom-pageMargin {
			pdf.AddPage()
		}

		// Rows taller than a page continue on the next one.
		for len(labelLines) > 0 || len(valueLines) > 0 {
			fit := int((bottom - pdf.GetY()) / lineHeight)
			if fit < 1 {
				pdf.AddPage()
				continue
			}
			n := min(max(len(labelLines), len(valueLines)), fit)
			var labelChunk, valueChunk [][]byte
			labelChunk, labelLines = splitAt(labelLines, n)
			valueChunk, valueLines = splitAt(valueLines, n)
			e.writeRow(pdf, labelChunk, valueChunk, n, valueWidth)
		}
	}
}

func (e *PDFExporter) writeRow(pdf *fpdf.Fpdf, labelLines, valueLines [][]byte, rows int, valueWidth float64) {
	rowHeight := float64(rows) * lineHeight
	x, y := pdf.GetX(), pdf.GetY()
	pdf.Rect(x, y, labelWidth, rowHeight, "FD")
	pdf.Rect(x+labelWidth, y, valueWidth, rowHeight, "D")

	pdf.SetFont("Helvetica", "B", 10)
	e.writeLines(pdf, x, y, labelLines)
	pdf.SetFont("Helvetica", "", 10)
	e.writeLines(pdf, x+labelWidth, y, valueLines)

	pdf.SetXY(x, y+rowHeight)
}

func splitAt(lines [][]byte, n int) (head, tail [][]byte) {
	n = min(n, len(lines))
	return lines[:n], lines[n:]
}

func (e *PDFExporter) writeLines(pdf *fpdf.Fpdf, x, y float64, lines [][]byte) {
	for i, line := range lines {
		pdf.SetXY(x+cellPadding, y+float64(i)*lineHeight)
		pdf.CellFormat(0, lineHeight, string(line), "", 0, "L", false, 0, "")
	}
}

// Filename returns the conventional download name for a record export,
// e.g. "application-APP-1712345678901-042.pdf".
func Filename(r *submission.Record, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	return fmt.Sprintf("application-%s.%s", r.ApplicationID(), ext)
}
