// Error taxonomy for building, running and interpreting searches.
//
// Every error type unwraps to a package sentinel so callers can use
// errors.Is for classification and errors.As for the details.

package ripgrep

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors wrapped by the typed errors below.
var (
	ErrUnknownOption      = errors.New("unknown option")
	ErrArity              = errors.New("option arity mismatch")
	ErrInvalidValue       = errors.New("invalid option value")
	ErrMutuallyExclusive  = errors.New("mutually exclusive options")
	ErrAlreadyExecuted    = errors.New("search already executed")
	ErrNotExecuted        = errors.New("search not executed")
	ErrExecutableNotFound = errors.New("ripgrep executable not found")
	ErrProcessSpawn       = errors.New("failed to start ripgrep")
	ErrProcess            = errors.New("ripgrep reported an error")
	ErrUnstructuredOutput = errors.New("output is not structured")
	ErrMalformedRecord    = errors.New("malformed record")
	ErrTimeout            = errors.New("ripgrep timed out")
)

// UnknownOptionError is returned when a name or short flag does not
// resolve to a registered option.
type UnknownOptionError struct {
	Name        string
	Suggestions []string // close registered names, best first
}

func (e *UnknownOptionError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown option %q", e.Name)
	}
	return fmt.Sprintf("unknown option %q (did you mean %s?)", e.Name, strings.Join(e.Suggestions, ", "))
}

func (e *UnknownOptionError) Unwrap() error { return ErrUnknownOption }

// ArityError is returned when the number of values passed for an option
// does not match its arity.
type ArityError struct {
	Option Option
	Got    int
}

func (e *ArityError) Error() string {
	spec := e.Option.Spec()
	if spec.Arity == ArityNone {
		return fmt.Sprintf("option %s takes no value, got %d", spec.Name, e.Got)
	}
	return fmt.Sprintf("option %s takes exactly one value, got %d", spec.Name, e.Got)
}

func (e *ArityError) Unwrap() error { return ErrArity }

// InvalidValueError is returned when an option restricted to a fixed
// vocabulary receives a value outside it.
type InvalidValueError struct {
	Option Option
	Value  string
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for option %s: %s", e.Value, e.Option.Spec().Name, e.Reason)
}

func (e *InvalidValueError) Unwrap() error { return ErrInvalidValue }

// MutuallyExclusiveOptionError is returned when a second option from the
// same exclusion group is applied. The first option stays recorded.
type MutuallyExclusiveOptionError struct {
	Option Option
	Prior  Option
	Group  Group
}

func (e *MutuallyExclusiveOptionError) Error() string {
	return fmt.Sprintf("option %s conflicts with %s (group %q)",
		e.Option.Spec().Name, e.Prior.Spec().Name, e.Group)
}

func (e *MutuallyExclusiveOptionError) Unwrap() error { return ErrMutuallyExclusive }

// AlreadyExecutedError is returned by mutating calls made after Run.
type AlreadyExecutedError struct {
	Op string
}

func (e *AlreadyExecutedError) Error() string {
	return fmt.Sprintf("%s: search already executed", e.Op)
}

func (e *AlreadyExecutedError) Unwrap() error { return ErrAlreadyExecuted }

// NotExecutedError is returned by output views requested before Run.
type NotExecutedError struct {
	View string
}

func (e *NotExecutedError) Error() string {
	return fmt.Sprintf("%s: search has not been run", e.View)
}

func (e *NotExecutedError) Unwrap() error { return ErrNotExecuted }

// ExecutableNotFoundError is returned when neither the explicit binary
// path nor a search-path lookup yields an executable.
type ExecutableNotFoundError struct {
	Name string
	Err  error
}

func (e *ExecutableNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ripgrep executable %q not found: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("ripgrep executable %q not found", e.Name)
}

func (e *ExecutableNotFoundError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrExecutableNotFound}
	}
	return []error{ErrExecutableNotFound, e.Err}
}

// ProcessSpawnError is an OS-level failure to start the process.
type ProcessSpawnError struct {
	Binary string
	Err    error
}

func (e *ProcessSpawnError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Binary, e.Err)
}

func (e *ProcessSpawnError) Unwrap() []error { return []error{ErrProcessSpawn, e.Err} }

// ProcessError reports a ripgrep exit status of 2 or more, or termination
// by a signal. Stderr holds what the tool printed.
type ProcessError struct {
	ExitCode int
	Stderr   string
}

func (e *ProcessError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("ripgrep failed with exit code %d", e.ExitCode)
	}
	return fmt.Sprintf("ripgrep failed with exit code %d: %s", e.ExitCode, msg)
}

func (e *ProcessError) Unwrap() error { return ErrProcess }

// UnstructuredOutputError is returned by record views when the search was
// not built with the JSON output option.
type UnstructuredOutputError struct {
	View string
}

func (e *UnstructuredOutputError) Error() string {
	return fmt.Sprintf("%s requires JSON output; apply the json option before running", e.View)
}

func (e *UnstructuredOutputError) Unwrap() error { return ErrUnstructuredOutput }

// MalformedRecordError identifies the stdout line (0-based) that could not
// be decoded into a record.
type MalformedRecordError struct {
	Line int
	Err  error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record on line %d: %v", e.Line, e.Err)
}

func (e *MalformedRecordError) Unwrap() []error { return []error{ErrMalformedRecord, e.Err} }

// TimeoutError is returned when the process outlives its deadline. Any
// partial output is discarded.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	if e.Timeout <= 0 {
		return "ripgrep timed out"
	}
	return fmt.Sprintf("ripgrep timed out after %s", e.Timeout)
}

func (e *TimeoutError) Unwrap() error { return ErrTimeout }
