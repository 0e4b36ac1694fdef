package form

import (
	"math"
	"strconv"
	"strings"
)

// InputType is the UI control type. It decides how a value is entered and
// collected; the Kind decides how it is validated.
type InputType string

const (
	TypeText     InputType = "text"
	TypeEmail    InputType = "email"
	TypeTel      InputType = "tel"
	TypeNumber   InputType = "number"
	TypeDate     InputType = "date"
	TypeSelect   InputType = "select"
	TypeCheckbox InputType = "checkbox"
	TypeRadio    InputType = "radio"
	TypeTextarea InputType = "textarea"
	TypeHidden   InputType = "hidden"
)

// Constraint attribute names.
const (
	AttrMinLength  = "minlength"
	AttrMaxLength  = "maxlength"
	AttrMin        = "min"
	AttrMax        = "max"
	AttrMinChecked = "min-checked"
)

// Option is a selectable choice of a select, radio or checkbox control.
type Option struct {
	Value string
	Label string
}

// Control is a single form input together with its declared metadata.
// Checkbox and radio controls hold one choice each; members of a group share
// Name. Value of a checkbox or radio is the value submitted when checked.
type Control struct {
	Name     string
	Label    string
	Type     InputType
	Kind     Kind
	Required bool
	Attrs    map[string]string
	Options  []Option

	Value   string
	Checked bool
}

// Attr returns a raw constraint attribute, or "" when absent.
func (c *Control) Attr(name string) string {
	if c == nil || c.Attrs == nil {
		return ""
	}
	return strings.TrimSpace(c.Attrs[name])
}

// IsCheckable reports whether the control is a checkbox or radio button.
func (c *Control) IsCheckable() bool {
	return c.Type == TypeCheckbox || c.Type == TypeRadio
}

// DisplayName returns the label, falling back to the name.
func (c *Control) DisplayName() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Name
}

// OptionLabel returns the label of the option matching Value, falling back
// to Value. It names a single checkbox or radio button within its group.
func (c *Control) OptionLabel() string {
	for _, o := range c.Options {
		if o.Value == c.Value && o.Label != "" {
			return o.Label
		}
	}
	return c.Value
}

// intAttr parses a non-negative integer attribute. Missing, malformed or
// negative values yield def.
func (c *Control) intAttr(name string, def int) int {
	raw := c.Attr(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}

// floatAttr parses a finite float attribute, yielding def otherwise.
func (c *Control) floatAttr(name string, def float64) float64 {
	raw := c.Attr(name)
	if raw == "" {
		return def
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return def
	}
	return n
}

// Form is an ordered collection of controls. Order is document order and is
// significant: it decides group representatives and record field order.
type Form struct {
	ID       string
	Title    string
	Controls []*Control
}

// Field returns the first control named name, or nil.
func (f *Form) Field(name string) *Control {
	for _, c := range f.Controls {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Siblings returns every control sharing name, in document order.
func (f *Form) Siblings(name string) []*Control {
	var out []*Control
	for _, c := range f.Controls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// CheckedCount counts checked controls sharing name.
func (f *Form) CheckedCount(name string) int {
	n := 0
	for _, c := range f.Controls {
		if c.Name == name && c.IsCheckable() && c.Checked {
			n++
		}
	}
	return n
}

// SetValue sets the value of the first non-checkable control named name.
func (f *Form) SetValue(name, value string) bool {
	for _, c := range f.Controls {
		if c.Name == name && !c.IsCheckable() {
			c.Value = value
			return true
		}
	}
	return false
}

// Check sets the checked state of checkable controls named name. Radio
// buttons are exclusive: checking one clears its siblings. With an empty
// value every member is affected.
func (f *Form) Check(name, value string, checked bool) bool {
	found := false
	for _, c := range f.Controls {
		if c.Name != name || !c.IsCheckable() {
			continue
		}
		switch {
		case value == "" || c.Value == value:
			c.Checked = checked
			found = true
		case c.Type == TypeRadio && checked:
			c.Checked = false
		}
	}
	return found
}
