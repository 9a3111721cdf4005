package protocol

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every *CodecError unwraps to one of these, so callers
// can branch with errors.Is.
var (
	ErrInvalidAction   = errors.New("invalid action")
	ErrMissingField    = errors.New("missing required field")
	ErrOutOfRange      = errors.New("value out of range")
	ErrPayloadTooShort = errors.New("payload too short")
	ErrUnknownCommand  = errors.New("unknown command")
)

// ErrorType represents the category of codec error that occurred
type ErrorType int

const (
	// ErrTypeValidation indicates an encode-time field check failed
	ErrTypeValidation ErrorType = iota
	// ErrTypeLength indicates a payload was shorter than its layout allows
	ErrTypeLength
	// ErrTypeUnknownCommand indicates a frame carried an unregistered command code
	ErrTypeUnknownCommand
)

func (et ErrorType) String() string {
	switch et {
	case ErrTypeValidation:
		return "Validation Error"
	case ErrTypeLength:
		return "Length Error"
	case ErrTypeUnknownCommand:
		return "Unknown Command"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// CodecError describes a failed encode or decode.
type CodecError struct {
	Type    ErrorType // Category of error
	Command Command   // Datagram being encoded or decoded
	Field   string    // Offending field, if any
	Message string    // Human-readable detail
	Err     error     // One of the sentinel errors
}

func (e *CodecError) Error() string {
	var where string
	if e.Field != "" {
		where = fmt.Sprintf("%s.%s", e.Command, e.Field)
	} else {
		where = e.Command.String()
	}
	return fmt.Sprintf("%s: %s: %s", e.Type, where, e.Message)
}

// Unwrap returns the sentinel error for errors.Is checks
func (e *CodecError) Unwrap() error {
	return e.Err
}

func invalidAction(cmd Command, a Action) *CodecError {
	return &CodecError{
		Type:    ErrTypeValidation,
		Command: cmd,
		Field:   "action",
		Message: fmt.Sprintf("invalid action %d, must be GET or SET", uint8(a)),
		Err:     ErrInvalidAction,
	}
}

func missingField(cmd Command, field string) *CodecError {
	return &CodecError{
		Type:    ErrTypeValidation,
		Command: cmd,
		Field:   field,
		Message: "required for SET action",
		Err:     ErrMissingField,
	}
}

func outOfRange(cmd Command, field, format string, args ...any) *CodecError {
	return &CodecError{
		Type:    ErrTypeValidation,
		Command: cmd,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
		Err:     ErrOutOfRange,
	}
}

func tooShort(cmd Command, got, want int) *CodecError {
	return &CodecError{
		Type:    ErrTypeLength,
		Command: cmd,
		Message: fmt.Sprintf("%d bytes (minimum %d)", got, want),
		Err:     ErrPayloadTooShort,
	}
}

// IsValidationError checks if an error is an encode-time validation error
func IsValidationError(err error) bool {
	var codecErr *CodecError
	return errors.As(err, &codecErr) && codecErr.Type == ErrTypeValidation
}

// IsLengthError checks if an error is a decode-time length error
func IsLengthError(err error) bool {
	var codecErr *CodecError
	return errors.As(err, &codecErr) && codecErr.Type == ErrTypeLength
}
