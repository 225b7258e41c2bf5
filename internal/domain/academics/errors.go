package academics

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode classifies failures surfaced by the store, assembler and mutator.
type ErrorCode string

const (
	CodeNotFound            ErrorCode = "not_found"
	CodeConstraintViolation ErrorCode = "constraint_violation"
	CodeAggregateFailure    ErrorCode = "aggregate_failure"
	CodeRelationMissing     ErrorCode = "relation_missing"
	CodeValidation          ErrorCode = "validation"
	CodeInternal            ErrorCode = "internal"
)

// Error is the canonical failure wrapper. Kind and ID are set when the
// failure concerns one specific entity.
type Error struct {
	Code    ErrorCode
	Op      string
	Kind    Kind
	ID      int64
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := strings.TrimSpace(e.Op)
	msg := strings.TrimSpace(e.Message)
	switch {
	case op != "" && msg != "":
		return fmt.Sprintf("%s: %s (%s)", op, msg, e.Code)
	case op != "":
		return fmt.Sprintf("%s (%s)", op, e.Code)
	case msg != "":
		return fmt.Sprintf("%s (%s)", msg, e.Code)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

func NewError(code ErrorCode, op, message string, cause error) error {
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(message),
		Cause:   cause,
	}
}

// NotFound reports that the entity kind/id does not exist.
func NotFound(op string, kind Kind, id int64) error {
	return &Error{
		Code:    CodeNotFound,
		Op:      strings.TrimSpace(op),
		Kind:    kind,
		ID:      id,
		Message: fmt.Sprintf("%s with id %d not found", kind, id),
	}
}

// RelationMissing reports a joined key that the batch result did not contain.
func RelationMissing(op string, kind Kind, id int64) error {
	return &Error{
		Code:    CodeRelationMissing,
		Op:      strings.TrimSpace(op),
		Kind:    kind,
		ID:      id,
		Message: fmt.Sprintf("related %s with id %d is missing", kind, id),
	}
}

func ConstraintViolation(op, message string, cause error) error {
	return NewError(CodeConstraintViolation, op, message, cause)
}

func Validation(op, message string) error {
	return NewError(CodeValidation, op, message, nil)
}

// Wrap annotates err with code unless it already carries one.
func Wrap(code ErrorCode, op string, err error) error {
	if err == nil {
		return nil
	}
	var existing *Error
	if errors.As(err, &existing) && code != CodeAggregateFailure {
		return err
	}
	return NewError(code, op, err.Error(), err)
}

func IsCode(err error, code ErrorCode) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Code == code
}

func CodeOf(err error) ErrorCode {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Code
}
