// Package form models a form as an ordered set of named controls and
// validates them.
//
// Each Control carries a Kind (the declared validation category), a required
// flag and raw constraint attributes such as "minlength" or "min-checked".
// The Kind selects exactly one rule from a closed set (see Rule). Unknown kind
// tags parse to KindNone, which always validates.
//
// Validator runs the rules. ValidateField checks a single control and reports
// the outcome to a Presenter; ValidateForm checks every annotated control once,
// collapsing checkbox groups and radio groups to their first member so each
// group is validated exactly once. Whole-form validation never stops early:
// every field receives feedback in a single pass.
//
// Malformed constraint attributes never fail validation. They fall back to the
// permissive default for that constraint.
package form
