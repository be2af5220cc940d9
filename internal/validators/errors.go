package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation is matched by every [*ValidationError].
	ErrValidation = errors.New("validation failed")
)

// Field-level messages. They are returned to API callers verbatim.
const (
	MsgRequired         = "is required"
	MsgInvalidEmail     = "must be a valid email address"
	MsgPasswordTooShort = "must be at least 6 characters"
	MsgTooLong          = "is too long"
	MsgInvalidRole      = "must be client or nutritionist"
	MsgInvalidMealType  = "must be one of BREAKFAST, MORNING_SNACK, LUNCH, AFTERNOON_SNACK, DINNER"
	MsgInvalidTime      = "must be in HH:MM format"
	MsgNegative         = "must not be negative"
	MsgNotPositive      = "must be greater than zero"
	MsgInvalidDay       = "must be between 1 and 7"
	MsgInvalidRange     = "must not be before week_start"
	MsgInvalidSource    = "must be manual or integration"
	MsgNoChanges        = "at least one field must be provided"
	MsgNotAllowed       = "is not allowed for this role"
	MsgUnknownReference = "does not exist"
)

// FieldError names one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every rejected field of one input.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidation) true for any *ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// add records a failed field.
func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// err returns e when at least one field failed, nil otherwise.
func (e *ValidationError) err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
