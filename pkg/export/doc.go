// Package export renders submission records as PDF documents and CSV rows.
//
// Both exporters see only the user-facing fields of a record: metadata such
// as the application identifier goes to the document header (PDF) or to
// dedicated leading columns (CSV), never into the field table. The PDF
// strips markup from values before rendering; CSV cells carry the recorded
// values unchanged.
package export
