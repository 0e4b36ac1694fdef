// Package formdef loads form definitions and filled-in values from YAML.
//
// A definition lists fields in document order. Checkbox and radio fields
// with options expand into one control per option sharing the field name and
// label, which is how groups are declared:
//
//	id: membership
//	title: Membership Application
//	fields:
//	  - name: email
//	    type: email
//	    kind: email
//	    required: true
//	  - name: topics
//	    type: checkbox
//	    kind: checkbox-group
//	    attrs: {min-checked: 2}
//	    options: [{value: go}, {value: rust}, {value: zig}]
//
// Constraint attributes are kept as raw strings; malformed values are
// tolerated here and resolved permissively by the validator.
package formdef

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/pkg/form"
)

var (
	ErrInvalidDefinition = errors.New("formdef: invalid form definition")
	ErrInvalidValues     = errors.New("formdef: invalid form values")
	ErrUnknownField      = errors.New("formdef: unknown field")
)

// Definition is the YAML shape of a form.
type Definition struct {
	ID     string     `yaml:"id"`
	Title  string     `yaml:"title"`
	Fields []FieldDef `yaml:"fields"`
}

// FieldDef is the YAML shape of one field.
type FieldDef struct {
	Name     string            `yaml:"name"`
	Label    string            `yaml:"label"`
	Type     string            `yaml:"type"`
	Kind     string            `yaml:"kind"`
	Required bool              `yaml:"required"`
	Attrs    map[string]string `yaml:"attrs"`
	Value    string            `yaml:"value"`
	Options  []OptionDef       `yaml:"options"`
}

type OptionDef struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

var inputTypes = map[string]form.InputType{
	"":         form.TypeText,
	"text":     form.TypeText,
	"email":    form.TypeEmail,
	"tel":      form.TypeTel,
	"number":   form.TypeNumber,
	"date":     form.TypeDate,
	"select":   form.TypeSelect,
	"checkbox": form.TypeCheckbox,
	"radio":    form.TypeRadio,
	"textarea": form.TypeTextarea,
	"hidden":   form.TypeHidden,
}

// LoadFile reads a definition file and builds the form.
func LoadFile(path string) (*form.Form, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("formdef: open %s: %w", path, err)
	}
	defer func() { _ = fh.Close() }()
	return Parse(fh)
}

// Parse decodes a YAML definition and builds the form.
func Parse(r io.Reader) (*form.Form, error) {
	var def Definition
	if err := yaml.NewDecoder(r).Decode(&def); err != nil {
		return nil, errors.Join(ErrInvalidDefinition, err)
	}
	return def.Build()
}

// Build converts the definition to a form. Kind tags are kept permissive:
// an unknown tag yields an always-valid control rather than an error.
func (d Definition) Build() (*form.Form, error) {
	if len(d.Fields) == 0 {
		return nil, fmt.Errorf("%w: no fields", ErrInvalidDefinition)
	}

	f := &form.Form{ID: d.ID, Title: d.Title}
	for i, fd := range d.Fields {
		name := strings.TrimSpace(fd.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: field %d has no name", ErrInvalidDefinition, i)
		}
		typ, ok := inputTypes[strings.ToLower(strings.TrimSpace(fd.Type))]
		if !ok {
			return nil, fmt.Errorf("%w: field %q has unknown type %q", ErrInvalidDefinition, name, fd.Type)
		}

		options := make([]form.Option, 0, len(fd.Options))
		for _, o := range fd.Options {
			label := o.Label
			if label == "" {
				label = o.Value
			}
			options = append(options, form.Option{Value: o.Value, Label: label})
		}

		base := form.Control{
			Name:     name,
			Label:    fd.Label,
			Type:     typ,
			Kind:     form.ParseKind(fd.Kind),
			Required: fd.Required,
			Attrs:    fd.Attrs,
			Options:  options,
			Value:    fd.Value,
		}

		if (typ == form.TypeCheckbox || typ == form.TypeRadio) && len(options) > 0 {
			for _, o := range options {
				c := base
				c.Value = o.Value
				f.Controls = append(f.Controls, &c)
			}
			continue
		}
		c := base
		f.Controls = append(f.Controls, &c)
	}
	return f, nil
}
