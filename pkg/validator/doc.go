// Package validator provides small, composable validation rules for form
// input: required checks, length and numeric bounds, e-mail and phone
// formats, calendar date windows and checked-count constraints.
//
// Every exported rule constructor returns a Rule that pairs a boolean Check
// with the ValidationError describing the failure. Rules are evaluated either
// with Apply, which aggregates every failure into ValidationErrors (an error),
// or with Evaluate, which stops at the first failed rule and returns a Result
// suitable for per-field UI feedback.
//
// # Usage
//
//	res := validator.Evaluate(
//	    validator.RequiredString("email", email),
//	    validator.ValidEmail("email", email),
//	)
//	if !res.Valid {
//	    show(res.Message)
//	}
//
// Rules never panic on malformed input; callers decide which rules apply
// (for example, skipping format checks for an empty optional field).
//
// The package is stateless and goroutine-safe.
package validator
