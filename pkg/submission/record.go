package submission

import (
	"encoding/json"
	"slices"
	"strings"
	"time"
)

// Metadata keys injected into every record.
const (
	KeyApplicationID = "applicationId"
	KeySubmittedAt   = "submittedAt"
	KeyDate          = "submissionDate"
	KeyTime          = "submissionTime"
	KeyFormFields    = "_formFields"
)

// InternalPrefix marks control names that are plumbing, not user data.
const InternalPrefix = "_"

// IsMetadataKey reports whether name is reserved for injected metadata.
func IsMetadataKey(name string) bool {
	switch name {
	case KeyApplicationID, KeySubmittedAt, KeyDate, KeyTime, KeyFormFields:
		return true
	}
	return false
}

// Record is a read-only snapshot of one submission. Values are string, bool
// or []string. Accessors return copies.
type Record struct {
	formID        string
	names         []string
	values        map[string]any
	applicationID string
	submittedAt   time.Time
	date          string
	clock         string
	formFields    []string
}

func (r *Record) FormID() string         { return r.formID }
func (r *Record) ApplicationID() string  { return r.applicationID }
func (r *Record) SubmittedAt() time.Time { return r.submittedAt }

// Timestamp is SubmittedAt in ISO-8601 (RFC 3339) form.
func (r *Record) Timestamp() string { return r.submittedAt.Format(time.RFC3339Nano) }

// Date is the submission date formatted with the collector's date layout.
func (r *Record) Date() string { return r.date }

// Time is the submission time formatted with the collector's time layout.
func (r *Record) Time() string { return r.clock }

// FormFields lists the user-facing field names in document order: internal
// names and metadata keys are excluded.
func (r *Record) FormFields() []string { return slices.Clone(r.formFields) }

// Names lists every collected name in document order, internal names included.
func (r *Record) Names() []string { return slices.Clone(r.names) }

// Value returns the value collected for name.
func (r *Record) Value(name string) (any, bool) {
	v, ok := r.values[name]
	if !ok {
		return nil, false
	}
	if list, isList := v.([]string); isList {
		return slices.Clone(list), true
	}
	return v, true
}

// Map returns the flat payload: collected fields followed by metadata.
// Metadata overwrites a collected field of the same name.
func (r *Record) Map() map[string]any {
	out := make(map[string]any, len(r.values)+5)
	for name, v := range r.values {
		if list, isList := v.([]string); isList {
			v = slices.Clone(list)
		}
		out[name] = v
	}
	out[KeyApplicationID] = r.applicationID
	out[KeySubmittedAt] = r.Timestamp()
	out[KeyDate] = r.date
	out[KeyTime] = r.clock
	out[KeyFormFields] = slices.Clone(r.formFields)
	return out
}

// MarshalJSON encodes the flat payload.
func (r *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Map())
}

// Entry is one flattened field.
type Entry struct {
	Name  string
	Value string
}

// DefaultListSeparator joins multi-value fields when flattening.
const DefaultListSeparator = "; "

// Flatten returns the user-facing fields as strings, in document order.
// Lists are joined with sep; booleans render as Yes/No.
func (r *Record) Flatten(sep string) []Entry {
	out := make([]Entry, 0, len(r.formFields))
	for _, name := range r.formFields {
		out = append(out, Entry{Name: name, Value: FormatValue(r.values[name], sep)})
	}
	return out
}

// FormatValue renders a record value as text.
func FormatValue(v any, sep string) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "Yes"
		}
		return "No"
	case []string:
		return strings.Join(val, sep)
	default:
		b, _ := json.Marshal(val)
		return string(b)
	}
}
