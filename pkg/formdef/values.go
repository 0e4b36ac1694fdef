package formdef

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Values maps field names to entered values: a scalar for text-like fields
// and single choices, true/false for checkboxes, a list for multi-choice
// groups.
type Values map[string]any

// LoadValuesFile reads a YAML values file.
func LoadValuesFile(path string) (Values, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("formdef: open %s: %w", path, err)
	}
	defer func() { _ = fh.Close() }()
	return ParseValues(fh)
}

func ParseValues(r io.Reader) (Values, error) {
	var v Values
	if err := yaml.NewDecoder(r).Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return Values{}, nil
		}
		return nil, errors.Join(ErrInvalidValues, err)
	}
	return v, nil
}

// Apply writes values into f, in the way a user filling the form would.
// It does not validate.
func (v Values) Apply(f *form.Form) error {
	for name, raw := range v {
		ctl := f.Field(name)
		if ctl == nil {
			return fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
		if !ctl.IsCheckable() {
			f.SetValue(name, scalar(raw))
			continue
		}

		// reset the group before applying the new selection
		f.Check(name, "", false)
		switch val := raw.(type) {
		case nil:
		case bool:
			// a radio group has no single "on" state; false only clears it
			if val && ctl.Type == form.TypeRadio {
				return fmt.Errorf("%w: %q needs an option, not true", ErrInvalidValues, name)
			}
			f.Check(name, "", val)
		case []any:
			if len(val) > 1 && ctl.Type == form.TypeRadio {
				return fmt.Errorf("%w: %q accepts a single option", ErrInvalidValues, name)
			}
			for _, item := range val {
				if !f.Check(name, scalar(item), true) {
					return fmt.Errorf("%w: %q has no option %q", ErrInvalidValues, name, scalar(item))
				}
			}
		default:
			if !f.Check(name, scalar(val), true) {
				return fmt.Errorf("%w: %q has no option %q", ErrInvalidValues, name, scalar(val))
			}
		}
	}
	return nil
}

func scalar(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return val.Format(validator.DateLayout)
	default:
		return fmt.Sprint(v)
	}
}
