package capture

import (
	"errors"
	"fmt"
)

// Error codes for input load failures.
const (
	ErrCodeInputNotFound  = "INPUT_NOT_FOUND"
	ErrCodeInputMalformed = "INPUT_MALFORMED"
)

// LoadError is a load failure with an associated error code.
type LoadError struct {
	Code    string
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.Code, e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// ErrInputNotFound creates an error for an input path that is not a readable file.
func ErrInputNotFound(path string, cause error) error {
	return &LoadError{
		Code:    ErrCodeInputNotFound,
		Path:    path,
		Message: "input file not found",
		Cause:   cause,
	}
}

// ErrInputMalformed creates an error for input content that is not a JSON record list.
func ErrInputMalformed(path, message string, cause error) error {
	return &LoadError{
		Code:    ErrCodeInputMalformed,
		Path:    path,
		Message: message,
		Cause:   cause,
	}
}

// IsNotFound reports whether err is an INPUT_NOT_FOUND load error.
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeInputNotFound)
}

// IsMalformed reports whether err is an INPUT_MALFORMED load error.
func IsMalformed(err error) bool {
	return hasCode(err, ErrCodeInputMalformed)
}

func hasCode(err error, code string) bool {
	var le *LoadError
	return errors.As(err, &le) && le.Code == code
}
