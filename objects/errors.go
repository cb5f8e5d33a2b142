/*
File    : fen/objects/errors.go
Package : objects
*/
package objects

import "fmt"

// ErrorKind tags the taxonomy of runtime failures the evaluator can
// raise.
type ErrorKind string

const (
	UndefinedVariable ErrorKind = "UndefinedVariable"
	NotCallable       ErrorKind = "NotCallable"
	NotObject         ErrorKind = "NotObject"
	PropertyNotFound  ErrorKind = "PropertyNotFound"
	InvalidIndex      ErrorKind = "InvalidIndex"
	NotIndexable      ErrorKind = "NotIndexable"
	InvalidOperation  ErrorKind = "InvalidOperation"
	NotAssignable     ErrorKind = "NotAssignable"
	Other             ErrorKind = "Other"
)

// RuntimeError is an interpreter error carrying the offending value
// (or nil, when there is none) for diagnostics.
type RuntimeError struct {
	Kind    ErrorKind
	Target  Value
	Message string
}

// NewRuntimeError builds a RuntimeError of the given kind against target.
func NewRuntimeError(kind ErrorKind, target Value) *RuntimeError {
	return &RuntimeError{Kind: kind, Target: target}
}

// NewOtherError builds an Other-kind RuntimeError carrying a message.
func NewOtherError(target Value, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Kind: Other, Target: target, Message: fmt.Sprintf(format, args...)}
}

// NewInvalidOperationError builds an InvalidOperation RuntimeError for
// an operator applied to operand types it doesn't support.
func NewInvalidOperationError(target Value, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Kind: InvalidOperation, Target: target, Message: fmt.Sprintf(format, args...)}
}

func (e *RuntimeError) Error() string {
	target := "<none>"
	if e.Target != nil {
		target = e.Target.Inspect()
	}
	switch e.Kind {
	case UndefinedVariable:
		return fmt.Sprintf("Variable not found: %s", e.Message)
	case NotCallable:
		return fmt.Sprintf("Not callable: %s", target)
	case NotObject:
		return fmt.Sprintf("Not an object: %s", target)
	case PropertyNotFound:
		return fmt.Sprintf("Property not found: %s", target)
	case InvalidIndex:
		return fmt.Sprintf("Cannot index with: %s", target)
	case NotIndexable:
		return fmt.Sprintf("Not indexable: %s", target)
	case InvalidOperation:
		return fmt.Sprintf("Invalid operation: %s", e.Message)
	case NotAssignable:
		return fmt.Sprintf("Not assignable: %s", target)
	default:
		return fmt.Sprintf("%s: %s", e.Message, target)
	}
}
