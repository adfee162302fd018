// Package validation checks configuration and plan input.
//
// Struct tags are evaluated with go-playground/validator; programmatic checks
// that span several fields use the collecting Validator. Both report failures
// as a single INVALID_INPUT AppError whose "fields" detail lists each field.
//
// # Struct Tag Validation
//
//	type Step struct {
//	    Op string `yaml:"op" validate:"required,oneof=take drop"`
//	    N  int    `yaml:"n" validate:"gte=0"`
//	}
//	err := validation.Validate(step)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Custom(step.N > 0, "steps[2].n", "must be positive for repeat")
//	err := v.Err()
package validation
