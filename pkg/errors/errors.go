// Package errors provides structured error handling for the bindings library.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a configuration loading or resolution error.
	KindConfig
	// KindStorage indicates a persistent store error.
	KindStorage
	// KindInspect indicates an inspector server error.
	KindInspect
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindStorage:
		return "storage"
	case KindInspect:
		return "inspect"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// BindingsError represents a structured error in the bindings library.
//
// The synchronization core itself has no fallible operations; errors surface
// only from the ambient layers (configuration, storage, inspector, CLI).
type BindingsError struct {
	// Op is the operation that failed (e.g., "storage.Open").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Path is the file or endpoint involved, if applicable.
	Path string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BindingsError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *BindingsError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "tree.Owner.Pump").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the bindings library.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *BindingsError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
