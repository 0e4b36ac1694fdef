package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/intake"
	"github.com/dmitrymomot/formkit/pkg/submission"
)

// noneOption lets the user leave an optional choice unanswered.
const noneOption = "(none)"

// Session fills forms through a Driver and reports the submit flow back to
// the user. It implements intake.Notifier.
type Session struct {
	driver    Driver
	validator *form.Validator
}

// Option configures a Session.
type Option func(*Session)

// WithDriver overrides the prompt driver. Nil is ignored.
func WithDriver(d Driver) Option {
	return func(s *Session) {
		if d != nil {
			s.driver = d
		}
	}
}

// NewSession creates a Session validating answers with v.
func NewSession(v *form.Validator, opts ...Option) *Session {
	s := &Session{validator: v}
	for _, opt := range opts {
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(os.Stdout)
	}
	return s
}

var _ intake.Notifier = (*Session)(nil)

// Fill asks for every field of f in document order. Each name is asked once;
// a group is asked as a single question. Hidden controls are skipped.
// Values already present in f are offered as defaults.
func (s *Session) Fill(ctx context.Context, f *form.Form) error {
	if f.Title != "" {
		if err := s.driver.Info(ctx, f.Title); err != nil {
			return err
		}
	}

	asked := make(map[string]bool)
	for _, c := range f.Controls {
		if c.Name == "" || c.Type == form.TypeHidden || asked[c.Name] {
			continue
		}
		asked[c.Name] = true
		if err := s.ask(ctx, f, c); err != nil {
			return fmt.Errorf("prompt: %s: %w", c.Name, err)
		}
	}
	return nil
}

// ConfirmSubmit asks whether the filled form should be submitted.
func (s *Session) ConfirmSubmit(ctx context.Context) (bool, error) {
	return s.driver.Confirm(ctx, ConfirmConfig{Message: "Submit application?", Default: true})
}

func (s *Session) ask(ctx context.Context, f *form.Form, c *form.Control) error {
	switch c.Type {
	case form.TypeCheckbox:
		members := f.Siblings(c.Name)
		if len(members) > 1 || c.Kind == form.KindCheckboxGroup {
			return s.askCheckboxes(ctx, f, c, members)
		}
		return s.askConfirm(ctx, f, c)
	case form.TypeRadio:
		return s.askRadio(ctx, f, c, f.Siblings(c.Name))
	case form.TypeSelect:
		return s.askSelect(ctx, f, c)
	case form.TypeTextarea:
		return s.askText(ctx, f, c, true)
	default:
		return s.askText(ctx, f, c, false)
	}
}

// fieldCheck validates c after v has been written to the form.
func (s *Session) fieldCheck(f *form.Form, c *form.Control) func(string) error {
	return func(v string) error {
		f.SetValue(c.Name, v)
		if res := s.validator.ValidateField(f, c); !res.Valid {
			return errors.New(res.Message)
		}
		return nil
	}
}

func (s *Session) askText(ctx context.Context, f *form.Form, c *form.Control, multiline bool) error {
	var (
		val string
		err error
	)
	if multiline {
		val, err = s.driver.TextArea(ctx, TextAreaConfig{
			Message:   c.DisplayName(),
			Default:   c.Value,
			Help:      hint(c),
			Validator: s.fieldCheck(f, c),
		})
	} else {
		val, err = s.driver.Input(ctx, InputConfig{
			Message:   c.DisplayName(),
			Default:   c.Value,
			Help:      hint(c),
			Validator: s.fieldCheck(f, c),
		})
	}
	if err != nil {
		return err
	}
	f.SetValue(c.Name, val)
	return nil
}

// untilValid repeats ask until c validates, showing each failure.
func (s *Session) untilValid(ctx context.Context, f *form.Form, c *form.Control, ask func() error) error {
	for {
		if err := ask(); err != nil {
			return err
		}
		res := s.validator.ValidateField(f, c)
		if res.Valid {
			return nil
		}
		if err := s.driver.Error(ctx, res.Message); err != nil {
			return err
		}
	}
}

func (s *Session) askSelect(ctx context.Context, f *form.Form, c *form.Control) error {
	if len(c.Options) == 0 {
		return ErrNoOptions
	}
	var labels, values []string
	if !c.Required {
		labels, values = append(labels, noneOption), append(values, "")
	}
	for _, o := range c.Options {
		label := o.Label
		if label == "" {
			label = o.Value
		}
		labels, values = append(labels, label), append(values, o.Value)
	}

	return s.untilValid(ctx, f, c, func() error {
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      c.DisplayName(),
			Options:      labels,
			DefaultIndex: indexOf(values, c.Value),
			Help:         hint(c),
		})
		if err != nil {
			return err
		}
		val := ""
		if idx >= 0 && idx < len(values) {
			val = values[idx]
		}
		f.SetValue(c.Name, val)
		return nil
	})
}

func (s *Session) askRadio(ctx context.Context, f *form.Form, c *form.Control, members []*form.Control) error {
	offset := 0
	var labels []string
	if !c.Required {
		labels = append(labels, noneOption)
		offset = 1
	}
	def := 0
	for i, m := range members {
		labels = append(labels, m.OptionLabel())
		if m.Checked {
			def = i + offset
		}
	}

	return s.untilValid(ctx, f, c, func() error {
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      c.DisplayName(),
			Options:      labels,
			DefaultIndex: def,
			Help:         hint(c),
		})
		if err != nil {
			return err
		}
		for i, m := range members {
			m.Checked = i+offset == idx
		}
		return nil
	})
}

func (s *Session) askCheckboxes(ctx context.Context, f *form.Form, c *form.Control, members []*form.Control) error {
	labels := make([]string, len(members))
	var defaults []int
	for i, m := range members {
		labels[i] = m.OptionLabel()
		if m.Checked {
			defaults = append(defaults, i)
		}
	}

	return s.untilValid(ctx, f, c, func() error {
		picked, err := s.driver.MultiSelect(ctx, SelectConfig{
			Message:  c.DisplayName(),
			Options:  labels,
			Defaults: defaults,
			Help:     hint(c),
		})
		if err != nil {
			return err
		}
		for _, m := range members {
			m.Checked = false
		}
		for _, i := range picked {
			if i >= 0 && i < len(members) {
				members[i].Checked = true
			}
		}
		defaults = picked
		return nil
	})
}

func (s *Session) askConfirm(ctx context.Context, f *form.Form, c *form.Control) error {
	return s.untilValid(ctx, f, c, func() error {
		ok, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: c.DisplayName(),
			Default: c.Checked,
			Help:    hint(c),
		})
		if err != nil {
			return err
		}
		c.Checked = ok
		return nil
	})
}

// hint describes the constraints of c for the prompt's help text.
func hint(c *form.Control) string {
	var parts []string
	if c.Required {
		parts = append(parts, "required")
	}
	switch c.Kind {
	case form.KindText, form.KindTextarea:
		if v := c.Attr(form.AttrMinLength); v != "" {
			parts = append(parts, "at least "+v+" characters")
		}
		if v := c.Attr(form.AttrMaxLength); v != "" {
			parts = append(parts, "at most "+v+" characters")
		}
	case form.KindNumber:
		if v := c.Attr(form.AttrMin); v != "" {
			parts = append(parts, "min "+v)
		}
		if v := c.Attr(form.AttrMax); v != "" {
			parts = append(parts, "max "+v)
		}
	case form.KindDate:
		parts = append(parts, "YYYY-MM-DD")
	case form.KindCheckboxGroup:
		if v := c.Attr(form.AttrMinChecked); v != "" {
			parts = append(parts, "select at least "+v)
		}
	}
	return strings.Join(parts, ", ")
}

// SetBusy announces an in-flight submission.
func (s *Session) SetBusy(busy bool) {
	if busy {
		_ = s.driver.Info(context.Background(), "Submitting...")
	}
}

// Alert shows a submit flow error.
func (s *Session) Alert(message string) {
	_ = s.driver.Error(context.Background(), message)
}

// Submitted confirms delivery and prints the submitted answers.
func (s *Session) Submitted(rec *submission.Record) {
	ctx := context.Background()
	_ = s.driver.Info(ctx, fmt.Sprintf(intake.MessageSubmitSucceeded, rec.ApplicationID()))
	for _, e := range rec.Flatten(submission.DefaultListSeparator) {
		_ = s.driver.Info(ctx, fmt.Sprintf("  %s: %s", e.Name, e.Value))
	}
}
