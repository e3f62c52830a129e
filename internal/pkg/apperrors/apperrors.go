// Package apperrors classifies failures that cross a service boundary so the
// HTTP layer and the job runners can react per category.
package apperrors

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

type ErrorType string

const (
	ErrTypeParse       ErrorType = "PARSE"
	ErrTypeCoercion    ErrorType = "COERCION"
	ErrTypeGeocodeMiss ErrorType = "GEOCODE_MISS"
	ErrTypeNetwork     ErrorType = "NETWORK"
	ErrTypeAuth        ErrorType = "AUTH"
	ErrTypeNotFound    ErrorType = "NOT_FOUND"
	ErrTypeConflict    ErrorType = "CONFLICT"
	ErrTypeInternal    ErrorType = "INTERNAL"
)

type DomainError struct {
	Type    ErrorType
	Message string
	Err     error
	Stack   []byte
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func (e *DomainError) StackTrace() []byte {
	return e.Stack
}

func New(errType ErrorType, message string, err error) *DomainError {
	var stack []byte
	if err != nil {
		var stackErr *goerrors.Error
		if errors.As(err, &stackErr) {
			stack = stackErr.Stack()
		} else {
			stack = goerrors.Wrap(err, 2).Stack()
		}
	} else {
		stack = goerrors.New(message).Stack()
	}

	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
		Stack:   stack,
	}
}

func Network(message string, err error) *DomainError {
	return New(ErrTypeNetwork, message, err)
}

func Auth(message string) *DomainError {
	return New(ErrTypeAuth, message, nil)
}

func NotFound(message string, err error) *DomainError {
	return New(ErrTypeNotFound, message, err)
}

func Conflict(message string, err error) *DomainError {
	return New(ErrTypeConflict, message, err)
}

func Internal(message string, err error) *DomainError {
	return New(ErrTypeInternal, message, err)
}

// TypeOf returns the category of err, or ErrTypeInternal when err carries none.
func TypeOf(err error) ErrorType {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Type
	}
	return ErrTypeInternal
}

// Is reports whether err is a DomainError of the given type.
func Is(err error, errType ErrorType) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Type == errType
}
