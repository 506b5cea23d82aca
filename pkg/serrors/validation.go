package serrors

import (
	"fmt"
	"strings"
)

// FieldError describes a single offending input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every field complaint collected while validating a
// request. It is always returned wrapped into an ErrBadRequest *Error.
type ValidationError struct {
	Fields []FieldError
}

func (v *ValidationError) Error() string {
	parts := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}

	return strings.Join(parts, "; ")
}

// Validator accumulates field errors. The zero value is ready to use.
type Validator struct {
	fields []FieldError
}

// Check records msg for field when ok is false.
func (v *Validator) Check(ok bool, field, msgFmt string, args ...any) {
	if !ok {
		v.fields = append(v.fields, FieldError{Field: field, Message: fmt.Sprintf(msgFmt, args...)})
	}
}

// Required records a "is required" complaint when value is blank.
func (v *Validator) Required(field, value string) {
	v.Check(strings.TrimSpace(value) != "", field, "is required")
}

// Err returns nil when no complaint was recorded, otherwise a BAD_REQUEST
// error wrapping a *ValidationError.
func (v *Validator) Err() error {
	if len(v.fields) == 0 {
		return nil
	}

	return Invalid(v.fields...)
}

// Invalid builds a BAD_REQUEST error for the given field complaints.
func Invalid(fields ...FieldError) *Error {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Field)
	}

	return Wrap(ErrBadRequest, &ValidationError{Fields: fields}, "invalid fields [%s]", strings.Join(names, ", "))
}
