// Package validation provides blend problem validation utilities.
package validation

import (
	"errors"
	"fmt"

	"github.com/openblend/blend-planner/pkg/constants"
	"github.com/openblend/blend-planner/pkg/mathutil"
)

// Error describes a rejected input field. Inputs that fail validation never
// reach the LP backend.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is (or wraps) an input validation failure.
func IsValidation(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}

// Option mirrors one priced ingredient offered for the blend.
type Option struct {
	Name string
	ABV  float64
	Cost float64
}

// Target mirrors the desired product: total volume and alcohol by volume.
type Target struct {
	Volume float64
	ABV    float64
}

// CheckTarget validates the desired product: volume strictly positive, abv a
// fraction in [0,1]. The negated comparisons also reject NaN.
func CheckTarget(t Target) error {
	if !(t.Volume > 0) {
		return &Error{
			Field:  "desired_product.volume",
			Reason: fmt.Sprintf("must be greater than 0, got %v", t.Volume),
		}
	}
	if !mathutil.IsFinite(t.Volume) {
		return &Error{
			Field:  "desired_product.volume",
			Reason: "must be finite",
		}
	}
	if !(t.ABV >= constants.MinABV && t.ABV <= constants.MaxABV) {
		return &Error{
			Field:  "desired_product.abv",
			Reason: fmt.Sprintf("must be within [%v, %v], got %v", constants.MinABV, constants.MaxABV, t.ABV),
		}
	}
	return nil
}

// CheckOption validates a single ingredient: non-empty name, abv in [0,1],
// non-negative finite cost.
func CheckOption(o Option) error {
	if o.Name == "" {
		return &Error{Field: "options.name", Reason: "must not be empty"}
	}
	if !(o.ABV >= constants.MinABV && o.ABV <= constants.MaxABV) {
		return &Error{
			Field:  fmt.Sprintf("options[%s].abv", o.Name),
			Reason: fmt.Sprintf("must be within [%v, %v], got %v", constants.MinABV, constants.MaxABV, o.ABV),
		}
	}
	if !(o.Cost >= 0) {
		return &Error{
			Field:  fmt.Sprintf("options[%s].cost", o.Name),
			Reason: fmt.Sprintf("must be non-negative, got %v", o.Cost),
		}
	}
	if !mathutil.IsFinite(o.Cost) {
		return &Error{
			Field:  fmt.Sprintf("options[%s].cost", o.Name),
			Reason: "must be finite",
		}
	}
	return nil
}

// CheckProblem validates the desired product together with all ingredient
// options. Ingredient names act as variable keys in the LP, so duplicates are
// a contract violation.
func CheckProblem(t Target, opts []Option) error {
	if len(opts) == 0 {
		return &Error{Field: "options", Reason: "at least one ingredient is required"}
	}
	if err := CheckTarget(t); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(opts))
	for _, o := range opts {
		if err := CheckOption(o); err != nil {
			return err
		}
		if _, dup := seen[o.Name]; dup {
			return &Error{
				Field:  "options.name",
				Reason: fmt.Sprintf("duplicate ingredient name %q", o.Name),
			}
		}
		seen[o.Name] = struct{}{}
	}
	return nil
}
