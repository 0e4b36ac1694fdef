package form

import (
	"time"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Presenter consumes validation results, typically to show or clear a
// field's error message. It is called once per validated field or group.
type Presenter interface {
	Present(c *Control, r validator.Result)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(c *Control, r validator.Result)

func (fn PresenterFunc) Present(c *Control, r validator.Result) { fn(c, r) }

type nopPresenter struct{}

func (nopPresenter) Present(*Control, validator.Result) {}

// Validator dispatches controls to their kind rules. It holds no per-form
// state and is safe for concurrent use.
type Validator struct {
	presenter Presenter
	now       func() time.Time
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithPresenter sets the consumer of field results. Nil is ignored.
func WithPresenter(p Presenter) ValidatorOption {
	return func(v *Validator) {
		if p != nil {
			v.presenter = p
		}
	}
}

// WithClock overrides the time source of date rules.
func WithClock(now func() time.Time) ValidatorOption {
	return func(v *Validator) {
		if now != nil {
			v.now = now
		}
	}
}

// NewValidator creates a Validator.
func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{
		presenter: nopPresenter{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidateField validates a single control and presents the result.
// Controls without a recognised kind are always valid and are not presented.
// For group kinds the result covers the whole group, so validating any member
// yields the same outcome.
func (v *Validator) ValidateField(f *Form, c *Control) validator.Result {
	if c == nil || c.Kind == KindNone {
		return validator.Pass()
	}
	res := Rule(c.Kind)(Input{Form: f, Control: c, Now: v.now()})
	v.presenter.Present(c, res)
	return res
}

// ValidateGroup validates the group named name through its first member.
// An unknown name is valid.
func (v *Validator) ValidateGroup(f *Form, name string) validator.Result {
	return v.ValidateField(f, f.Field(name))
}

// ValidateForm validates every annotated control. Group kinds are collapsed
// to one representative per name, the first in document order. Every field is
// evaluated even after a failure.
func (v *Validator) ValidateForm(f *Form) Report {
	var report Report
	for _, c := range representatives(f) {
		res := v.ValidateField(f, c)
		report.Results = append(report.Results, FieldResult{
			Name:   c.Name,
			Kind:   c.Kind,
			Result: res,
		})
	}
	return report
}

// representatives returns the controls to validate in one pass: every
// annotated ordinary control plus the first member of each group.
func representatives(f *Form) []*Control {
	if f == nil {
		return nil
	}
	groups := make(map[string]*Control)
	out := make([]*Control, 0, len(f.Controls))
	for _, c := range f.Controls {
		if c.Kind == KindNone {
			continue
		}
		if c.Kind.IsGroup() {
			if _, seen := groups[c.Name]; seen {
				continue
			}
			groups[c.Name] = c
		}
		out = append(out, c)
	}
	return out
}

// FieldResult is the outcome for one field or group.
type FieldResult struct {
	Name   string
	Kind   Kind
	Result validator.Result
}

// Report is the outcome of a whole-form pass, in document order.
type Report struct {
	Results []FieldResult
}

// Valid is the logical AND of all results.
func (r Report) Valid() bool {
	for _, fr := range r.Results {
		if !fr.Result.Valid {
			return false
		}
	}
	return true
}

// Result returns the result recorded for name.
func (r Report) Result(name string) (validator.Result, bool) {
	for _, fr := range r.Results {
		if fr.Name == name {
			return fr.Result, true
		}
	}
	return validator.Result{}, false
}

// Err returns nil for a valid report, otherwise validator.ValidationErrors
// listing every failed field.
func (r Report) Err() error {
	var errs validator.ValidationErrors
	for _, fr := range r.Results {
		if fr.Result.Valid {
			continue
		}
		errs.Add(validator.ValidationError{
			Field:   fr.Name,
			Code:    fr.Result.Code,
			Message: fr.Result.Message,
		})
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}
