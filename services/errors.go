package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrDeletionDeclined is returned when the caller declines a cascading delete.
// No rows are touched in that case.
var ErrDeletionDeclined = errors.New("deletion declined")

// ValidationError reports malformed input: a bad number or date, or a value
// outside one of the fixed enumerations.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports that a referenced row does not exist where existence
// is required.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

// IntegrityError reports a foreign-key violation or primary-key collision on
// write.
type IntegrityError struct {
	Op  string
	Err error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s: integrity constraint violated: %v", e.Op, e.Err)
}

func (e *IntegrityError) Unwrap() error { return e.Err }

// StoreError reports a failure in the underlying relational engine.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: store failure: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// classifyWriteError maps a gorm write error onto the error taxonomy. The
// connection is opened with TranslateError, so key collisions and orphan
// references arrive as gorm sentinel errors regardless of driver.
func classifyWriteError(op string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return &IntegrityError{Op: op, Err: err}
	}
	return &StoreError{Op: op, Err: err}
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsIntegrity reports whether err is an IntegrityError
func IsIntegrity(err error) bool {
	var ie *IntegrityError
	return errors.As(err, &ie)
}
