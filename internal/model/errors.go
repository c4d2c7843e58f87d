package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrExists             = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

func NewError(model string, err error) error {
	return fmt.Errorf("%s: %w", strings.ToLower(model), err)
}

// InvalidDataError reports a single field holding a value outside its domain.
type InvalidDataError struct {
	Field   string
	Message string
}

func NewInvalidDataError(field, message string) *InvalidDataError {
	return &InvalidDataError{Field: field, Message: message}
}

func (e *InvalidDataError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// InvalidDocumentError reports a violated business rule. Violations holds
// every problem found by an aggregate check, in the order they were found.
type InvalidDocumentError struct {
	Message    string
	Violations []string
	Err        error
}

func NewInvalidDocumentError(message string, violations ...string) *InvalidDocumentError {
	return &InvalidDocumentError{Message: message, Violations: violations}
}

// NotFoundDocumentError is a business rule failure caused by a missing record.
func NotFoundDocumentError(message string) *InvalidDocumentError {
	return &InvalidDocumentError{Message: message, Err: ErrNotFound}
}

func (e *InvalidDocumentError) Error() string {
	if len(e.Violations) == 0 {
		return e.Message
	}

	var b strings.Builder
	b.WriteString(e.Message)
	b.WriteString(":")
	for _, v := range e.Violations {
		b.WriteString("\n- ")
		b.WriteString(v)
	}

	return b.String()
}

func (e *InvalidDocumentError) Unwrap() error {
	return e.Err
}

// DatabaseError wraps a persistence failure with the operation that hit it.
type DatabaseError struct {
	Op  string
	Err error
}

func NewDatabaseError(op string, err error) *DatabaseError {
	return &DatabaseError{Op: op, Err: err}
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("database error: %s: %v", e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}
