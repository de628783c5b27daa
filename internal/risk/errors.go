package risk

import (
	"errors"
	"fmt"
)

// Field names as they appear on the wire.
const (
	FieldAge           = "age"
	FieldSystolicBP    = "systolicBP"
	FieldCholesterol   = "cholesterol"
	FieldHeartRate     = "heartRate"
	FieldBloodSugar    = "bloodSugar"
	FieldBMI           = "bmi"
	FieldExercise      = "exerciseLevel"
	FieldSmoking       = "smokingStatus"
	FieldFamilyHistory = "familyHistory"
)

// Kind classifies a validation failure.
type Kind string

const (
	KindOutOfRange       Kind = "out_of_range"
	KindUnknownEnumValue Kind = "unknown_enum_value"
	KindMissingField     Kind = "missing_field"
)

var (
	ErrOutOfRange       = errors.New("value out of range")
	ErrUnknownEnumValue = errors.New("unknown enum value")
	ErrMissingField     = errors.New("missing field")
)

// ValidationError reports the first field of a profile that failed
// validation. It matches the sentinel for its Kind under errors.Is.
type ValidationError struct {
	Kind   Kind
	Field  string
	Value  string // offending input, empty for missing fields
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	switch e.Kind {
	case KindOutOfRange:
		return ErrOutOfRange
	case KindUnknownEnumValue:
		return ErrUnknownEnumValue
	case KindMissingField:
		return ErrMissingField
	default:
		return nil
	}
}

func newOutOfRange(field string, value float64, d Domain) *ValidationError {
	return &ValidationError{
		Kind:   KindOutOfRange,
		Field:  field,
		Value:  formatNumber(value),
		Reason: fmt.Sprintf("must be between %s and %s", formatNumber(d.Min), formatNumber(d.Max)),
	}
}

func newUnknownEnum(field, value string) *ValidationError {
	return &ValidationError{
		Kind:   KindUnknownEnumValue,
		Field:  field,
		Value:  value,
		Reason: "not a recognised option",
	}
}

func newMissing(field string) *ValidationError {
	return &ValidationError{
		Kind:   KindMissingField,
		Field:  field,
		Reason: "is required",
	}
}

func formatNumber(v float64) string {
	return fmt.Sprintf("%g", v)
}
