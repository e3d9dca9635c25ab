// Package errors defines the coded errors sysmon commands return.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Codes group failures by where they came from.
const (
	ErrConfig  = "CONFIG"  // config file missing, unreadable or out of range
	ErrMetrics = "METRICS" // an OS metric query failed
	ErrExec    = "EXEC"    // the program or an external tool could not run
)

// Error is a failure with a code, a one-line message, an optional hint for
// the user and an optional underlying cause. Error() prints the message
// after a cross mark, then the cause and the hint on their own indented
// paragraphs.
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New returns an Error without a cause.
func New(code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion}
}

// Wrap attaches message to err under ErrMetrics, the code of most runtime failures.
func Wrap(err error, message string) *Error {
	return WrapWithCode(err, ErrMetrics, message, "")
}

// WrapWithCode attaches code, message and suggestion to err.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion, Cause: err}
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "✗ %s\n", e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, "\n  %s\n", e.Cause.Error())
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "\n  %s\n", e.Suggestion)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// CodeOf returns the code of the first *Error in err's chain, or "" if there is none.
func CodeOf(err error) string {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return ""
}

// IsCode reports whether err's chain holds an *Error with the given code.
func IsCode(err error, code string) bool {
	return code != "" && CodeOf(err) == code
}
