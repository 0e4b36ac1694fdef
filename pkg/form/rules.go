package form

import (
	"math"
	"strings"
	"time"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// maxDateAgeYears bounds how far in the past a date input may lie.
const maxDateAgeYears = 100

// Input is everything a rule may look at. Form is needed by group kinds to
// count checked siblings; Now anchors date rules.
type Input struct {
	Form    *Form
	Control *Control
	Now     time.Time
}

// RuleFunc validates one control. It never panics and never returns an
// error: failures are reported in the Result.
type RuleFunc func(in Input) validator.Result

// Rule returns the rule registered for k. KindNone and any value outside the
// declared set map to a rule that always passes.
func Rule(k Kind) RuleFunc {
	switch k {
	case KindText:
		return checkText
	case KindEmail:
		return checkEmail
	case KindPhone:
		return checkPhone
	case KindNumber:
		return checkNumber
	case KindDate:
		return checkDate
	case KindSelect:
		return checkSelect
	case KindCheckboxGroup:
		return checkCheckboxGroup
	case KindRadio:
		return checkRadio
	case KindRequiredCheckbox:
		return checkRequiredCheckbox
	case KindTextarea:
		return checkTextarea
	case KindNone:
		return passThrough
	default:
		return passThrough
	}
}

func passThrough(Input) validator.Result {
	return validator.Pass()
}

func checkText(in Input) validator.Result {
	c := in.Control
	value := strings.TrimSpace(c.Value)
	if value == "" {
		return requiredOrPass(c, validator.RequiredString(c.Name, c.Value))
	}
	return validator.Evaluate(
		validator.MinLenString(c.Name, value, c.intAttr(AttrMinLength, 1)),
		validator.MaxLenString(c.Name, value, c.intAttr(AttrMaxLength, -1)),
	)
}

func checkEmail(in Input) validator.Result {
	c := in.Control
	if strings.TrimSpace(c.Value) == "" {
		return requiredOrPass(c, validator.RequiredString(c.Name, c.Value))
	}
	return validator.Evaluate(validator.ValidEmail(c.Name, c.Value))
}

func checkPhone(in Input) validator.Result {
	c := in.Control
	if strings.TrimSpace(c.Value) == "" {
		return requiredOrPass(c, validator.RequiredString(c.Name, c.Value))
	}
	return validator.Evaluate(validator.ValidPhone(c.Name, c.Value))
}

func checkNumber(in Input) validator.Result {
	c := in.Control
	if c.Value == "" {
		return requiredOrPass(c, validator.NotEmpty(c.Name, c.Value))
	}
	n, ok := validator.ParseNumber(c.Value)
	if !ok {
		return validator.Evaluate(validator.ValidNumber(c.Name, c.Value))
	}
	return validator.Evaluate(
		validator.MinNum(c.Name, n, c.floatAttr(AttrMin, math.Inf(-1))),
		validator.MaxNum(c.Name, n, c.floatAttr(AttrMax, math.Inf(1))),
	)
}

func checkDate(in Input) validator.Result {
	c := in.Control
	if c.Value == "" {
		return requiredOrPass(c, validator.NotEmpty(c.Name, c.Value))
	}
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}
	d, ok := validator.ParseDate(c.Value, now.Location())
	if !ok {
		return validator.Evaluate(validator.ValidDate(c.Name, c.Value, now.Location()))
	}
	return validator.Evaluate(
		validator.NotFutureDate(c.Name, d, now),
		validator.WithinYears(c.Name, d, now, maxDateAgeYears),
	)
}

func checkSelect(in Input) validator.Result {
	c := in.Control
	if c.Value == "" {
		return requiredOrPass(c, validator.Selected(c.Name, c.Value))
	}
	return validator.Pass()
}

// checkCheckboxGroup applies regardless of Required: a group always needs
// its minimum number of ticks.
func checkCheckboxGroup(in Input) validator.Result {
	c := in.Control
	return validator.Evaluate(
		validator.MinChecked(c.Name, checkedCount(in), c.intAttr(AttrMinChecked, 1)),
	)
}

func checkRadio(in Input) validator.Result {
	c := in.Control
	if !c.Required {
		return validator.Pass()
	}
	return validator.Evaluate(validator.AnyChecked(c.Name, checkedCount(in)))
}

func checkRequiredCheckbox(in Input) validator.Result {
	c := in.Control
	if !c.Required {
		return validator.Pass()
	}
	return validator.Evaluate(validator.Accepted(c.Name, c.Checked))
}

func checkTextarea(in Input) validator.Result {
	c := in.Control
	value := strings.TrimSpace(c.Value)
	if value == "" {
		return requiredOrPass(c, validator.RequiredString(c.Name, c.Value))
	}
	return validator.Evaluate(
		validator.MaxLenString(c.Name, value, c.intAttr(AttrMaxLength, -1)),
	)
}

// requiredOrPass evaluates the required rule for empty values of required
// controls; empty optional values pass.
func requiredOrPass(c *Control, required validator.Rule) validator.Result {
	if !c.Required {
		return validator.Pass()
	}
	return validator.Evaluate(required)
}

// checkedCount counts checked siblings. A control evaluated outside a form
// counts only itself.
func checkedCount(in Input) int {
	if in.Form == nil {
		if in.Control.Checked {
			return 1
		}
		return 0
	}
	return in.Form.CheckedCount(in.Control.Name)
}
