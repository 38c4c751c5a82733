package strata

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors for schema compilation.
var (
	// ErrDuplicateEntity is returned when a named entity is registered twice
	// within the same scope (e.g. two tables with the same name).
	ErrDuplicateEntity = errors.New("strata: duplicate entity")

	// ErrUnknownBehavior is returned when a behavior declaration names an
	// implementation that was never registered.
	ErrUnknownBehavior = errors.New("strata: unknown behavior")

	// ErrInvalidArgument is returned for values rejected by the schema model,
	// such as an unsupported string serialization format.
	ErrInvalidArgument = errors.New("strata: invalid argument")
)

// DuplicateEntityError reports a name collision inside a single scope.
// It aborts the current schema compilation; there is no partial-success mode.
type DuplicateEntityError struct {
	Kind  string // entity kind: "table", "column", ...
	Name  string // colliding name
	Scope string // owning scope, e.g. the database or table name
}

// Error returns the error string.
func (e *DuplicateEntityError) Error() string {
	var b strings.Builder
	b.WriteString("strata: duplicate ")
	b.WriteString(e.Kind)
	fmt.Fprintf(&b, " %q", e.Name)
	if e.Scope != "" {
		fmt.Fprintf(&b, " in %s", e.Scope)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel for DuplicateEntityError.
// This allows errors.Is(err, ErrDuplicateEntity) to return true.
func (e *DuplicateEntityError) Is(target error) bool {
	return target == ErrDuplicateEntity
}

// NewDuplicateEntityError returns a new DuplicateEntityError.
func NewDuplicateEntityError(kind, name, scope string) *DuplicateEntityError {
	return &DuplicateEntityError{Kind: kind, Name: name, Scope: scope}
}

// IsDuplicateEntityError reports whether the error is a DuplicateEntityError.
func IsDuplicateEntityError(err error) bool {
	if err == nil {
		return false
	}
	var e *DuplicateEntityError
	return errors.As(err, &e) || errors.Is(err, ErrDuplicateEntity)
}

// UnknownBehaviorError reports an unresolvable behavior name. It is fatal:
// no partial schema is handed to the emitters.
type UnknownBehaviorError struct {
	Name  string   // requested behavior name
	Known []string // registered behavior names, for the error message
}

// Error returns the error string.
func (e *UnknownBehaviorError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("strata: unknown behavior %q", e.Name)
	}
	return fmt.Sprintf("strata: unknown behavior %q (registered: %s)", e.Name, strings.Join(e.Known, ", "))
}

// Is reports whether the target matches the sentinel for UnknownBehaviorError.
func (e *UnknownBehaviorError) Is(target error) bool {
	return target == ErrUnknownBehavior
}

// NewUnknownBehaviorError returns a new UnknownBehaviorError.
func NewUnknownBehaviorError(name string, known ...string) *UnknownBehaviorError {
	return &UnknownBehaviorError{Name: name, Known: known}
}

// IsUnknownBehaviorError reports whether the error is an UnknownBehaviorError.
func IsUnknownBehaviorError(err error) bool {
	if err == nil {
		return false
	}
	var e *UnknownBehaviorError
	return errors.As(err, &e) || errors.Is(err, ErrUnknownBehavior)
}

// InvalidArgumentError reports a value the schema model rejects, for example
// an unsupported string serialization format or a foreign key referencing a
// table that does not exist.
type InvalidArgumentError struct {
	Name    string // argument or attribute name
	Value   any    // offending value, if meaningful
	Message string
}

// Error returns the error string.
func (e *InvalidArgumentError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("strata: invalid %s %v: %s", e.Name, e.Value, e.Message)
	}
	return fmt.Sprintf("strata: invalid %s: %s", e.Name, e.Message)
}

// Is reports whether the target matches the sentinel for InvalidArgumentError.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewInvalidArgumentError returns a new InvalidArgumentError.
func NewInvalidArgumentError(name string, value any, message string) *InvalidArgumentError {
	return &InvalidArgumentError{Name: name, Value: value, Message: message}
}

// IsInvalidArgumentError reports whether the error is an InvalidArgumentError.
func IsInvalidArgumentError(err error) bool {
	if err == nil {
		return false
	}
	var e *InvalidArgumentError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidArgument)
}
