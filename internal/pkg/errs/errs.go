package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the unwrap target of each error type.
// Callers classify failures with errors.Is against these values.
var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrObjectAlreadyExists = errors.New("object already exists")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrValueIsRequired     = errors.New("value is required")
	ErrVersionIsInvalid    = errors.New("version is invalid")
)

// ObjectNotFoundError indicates that a requested object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("object not found: param is: %s, ID is: %s (cause: %s)", e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("object not found: %s", e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ObjectAlreadyExistsError indicates that an object with the same identity
// already exists, typically surfaced from a storage uniqueness constraint.
type ObjectAlreadyExistsError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectAlreadyExistsError creates an ObjectAlreadyExistsError without an underlying cause.
func NewObjectAlreadyExistsError(paramName string, id any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id}
}

// NewObjectAlreadyExistsErrorWithCause creates an ObjectAlreadyExistsError wrapping an underlying cause.
func NewObjectAlreadyExistsErrorWithCause(paramName string, id any, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectAlreadyExistsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("object already exists: param is: %s, ID is: %s (cause: %s)", e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("object already exists: %s", e.ID)
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}

// ValueIsInvalidError indicates that a supplied value fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is invalid: %s (cause: %s)", e.ParamName, e.Cause)
	}
	return fmt.Sprintf("value is invalid: %s", e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a value lies outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value any, minValue any, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value any,
	minValue any,
	maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := sanitize(fmt.Sprintf("value is invalid: %v is %s, min value is %v, max value is %v",
		e.Value, e.ParamName, e.Min, e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is required: %s (cause: %s)", e.ParamName, e.Cause)
	}
	return fmt.Sprintf("value is required: %s", e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError indicates that an aggregate version check failed.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError wrapping an underlying cause.
func NewVersionIsInvalidError(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError without an underlying cause.
func NewVersionIsInvalidErrorWithCause(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("version is invalid: %s (cause: %s)", e.ParamName, e.Cause)
	}
	return fmt.Sprintf("version is invalid: %s", e.ParamName)
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// sanitize collapses newlines so error messages stay on one log line.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}
