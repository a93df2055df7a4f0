package models

import (
	"errors"
	"fmt"
)

// ErrEmptySelection is returned when a query selects no models at all.
var ErrEmptySelection = errors.New("no models selected")

// ValidationError reports a query field that failed its range check. It is
// always detected before resolution begins.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// UnknownModelError reports a selection that names a model which was never
// registered.
type UnknownModelError struct {
	Name string
}

func (e *UnknownModelError) Error() string {
	return fmt.Sprintf("unknown model %q", e.Name)
}

// DuplicateModelError reports a registration collision. It is a programmer
// error and fatal at startup.
type DuplicateModelError struct {
	Name string
}

func (e *DuplicateModelError) Error() string {
	return fmt.Sprintf("model %q already registered", e.Name)
}
