package proptree

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that a load target file does not exist.
var ErrNotFound = errors.New("proptree: settings file not found")

// FormatError reports that a loaded file failed document validation: its top
// level is not a JSON object, or the sentinel key/value check did not match.
// The original decode or mismatch cause is preserved for Unwrap.
type FormatError struct {
	Filename string
	Reason   string
	Err      error
}

func (e *FormatError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("proptree: invalid document %s: %s: %v", e.Filename, e.Reason, e.Err)
	}
	return fmt.Sprintf("proptree: invalid document %s: %s", e.Filename, e.Reason)
}

func (e *FormatError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// CoercionError reports that a typed item could not parse its raw stored
// value. It is a recoverable per-read failure, never a panic.
type CoercionError struct {
	Name string
	Raw  any
	Err  error
}

func (e *CoercionError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("proptree: item %q cannot coerce %#v: %v", e.Name, e.Raw, e.Err)
}

func (e *CoercionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func coercionError(name string, raw any, err error) error {
	return &CoercionError{Name: name, Raw: raw, Err: err}
}
