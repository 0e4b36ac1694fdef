package submission

import (
	"strings"
	"time"

	"github.com/dmitrymomot/formkit/pkg/form"
)

// Default layouts for the human-readable date and time metadata.
const (
	DefaultDateLayout = "1/2/2006"
	DefaultTimeLayout = "3:04:05 PM"
)

// checkedWithoutValue is what a browser submits for a checked radio button
// that declares no value.
const checkedWithoutValue = "on"

// Collector builds Records from forms. It holds only configuration and is
// safe for concurrent use.
type Collector struct {
	now        func() time.Time
	newID      IDGenerator
	dateLayout string
	timeLayout string
}

type CollectorOption func(*Collector)

func WithClock(now func() time.Time) CollectorOption {
	return func(c *Collector) {
		if now != nil {
			c.now = now
		}
	}
}

func WithIDGenerator(gen IDGenerator) CollectorOption {
	return func(c *Collector) {
		if gen != nil {
			c.newID = gen
		}
	}
}

// WithLayouts sets the Go time layouts of the date and time metadata.
// Empty layouts keep the defaults.
func WithLayouts(date, clock string) CollectorOption {
	return func(c *Collector) {
		if date != "" {
			c.dateLayout = date
		}
		if clock != "" {
			c.timeLayout = clock
		}
	}
}

func NewCollector(opts ...CollectorOption) *Collector {
	c := &Collector{
		now:        time.Now,
		newID:      NewApplicationID,
		dateLayout: DefaultDateLayout,
		timeLayout: DefaultTimeLayout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect snapshots f into a Record.
//
// Text-like controls contribute their value, even when empty. Checked
// checkboxes contribute their value, or true when they declare none; checked
// radios contribute their value. A name seen twice becomes a list. Checkbox
// names with nothing checked are recorded as false.
func (c *Collector) Collect(f *form.Form) (*Record, error) {
	if f == nil {
		return nil, ErrNilForm
	}

	rec := &Record{
		formID: f.ID,
		values: make(map[string]any),
	}

	seen := make(map[string]bool)
	checkboxes := make(map[string]bool)
	for _, ctl := range f.Controls {
		if ctl.Name == "" {
			continue
		}
		if !seen[ctl.Name] {
			seen[ctl.Name] = true
			rec.names = append(rec.names, ctl.Name)
		}
		if ctl.Type == form.TypeCheckbox {
			checkboxes[ctl.Name] = true
		}
		if ctl.IsCheckable() && !ctl.Checked {
			continue
		}
		rec.add(ctl.Name, controlValue(ctl))
	}
	if len(rec.names) == 0 {
		return nil, ErrEmptyForm
	}

	for name := range checkboxes {
		if _, ok := rec.values[name]; !ok {
			rec.values[name] = false
		}
	}

	// Names whose controls contributed nothing (unchecked radio groups) are
	// dropped, matching what a browser would submit.
	names := rec.names[:0]
	for _, name := range rec.names {
		if _, ok := rec.values[name]; ok {
			names = append(names, name)
		}
	}
	rec.names = names

	now := c.now()
	rec.applicationID = c.newID(now)
	rec.submittedAt = now
	rec.date = now.Format(c.dateLayout)
	rec.clock = now.Format(c.timeLayout)
	for _, name := range rec.names {
		if strings.HasPrefix(name, InternalPrefix) || IsMetadataKey(name) {
			continue
		}
		rec.formFields = append(rec.formFields, name)
	}

	return rec, nil
}

func controlValue(ctl *form.Control) any {
	if !ctl.IsCheckable() || ctl.Value != "" {
		return ctl.Value
	}
	if ctl.Type == form.TypeCheckbox {
		return true
	}
	return checkedWithoutValue
}

// add accumulates a value. The second occurrence of a name turns the entry
// into a list of both values; later occurrences are appended.
func (r *Record) add(name string, v any) {
	cur, ok := r.values[name]
	if !ok {
		r.values[name] = v
		return
	}
	if list, isList := cur.([]string); isList {
		r.values[name] = append(list, listItem(v))
		return
	}
	r.values[name] = []string{listItem(cur), listItem(v)}
}

func listItem(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return checkedWithoutValue
		}
		return "off"
	}
	return ""
}
