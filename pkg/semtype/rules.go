package semtype

import "errors"

// Rule checks a single property of a candidate value inside a gateway. Rules
// keep gateways declarative: each exported rule constructor pairs a boolean
// check with the sentinel error reported when it fails.
type Rule[B any] struct {
	Check func(B) bool
	Error error
}

// Check builds a Rule from a predicate and the error to report when the
// predicate is false.
func Check[B any](fn func(B) bool, err error) Rule[B] {
	return Rule[B]{Check: fn, Error: err}
}

// Apply evaluates every rule against the candidate and joins the errors of
// all failed rules, or returns nil when all pass. Callers match individual
// failures with errors.Is.
func Apply[B any](candidate B, rules ...Rule[B]) error {
	var errs []error
	for _, rule := range rules {
		if !rule.Check(candidate) {
			errs = append(errs, rule.Error)
		}
	}
	return errors.Join(errs...)
}

// Normalize threads a value through a chain of transformations, left to
// right. Useful for composing the normalization half of a gateway before its
// rules run.
func Normalize[B any](value B, transforms ...func(B) B) B {
	result := value
	for _, transform := range transforms {
		result = transform(result)
	}
	return result
}
