// Package faerr defines the error kinds produced by the automata library and
// the diagnostic line format the command-line tool prints for them.
//
// Errors carry a module tag and the source location where they were raised,
// so a failure anywhere in an algorithm chain can be reported as a single
// line of the form:
//
//	[BUECHI] modsub.go:20 subset construction work list is empty: invalid argument
package faerr

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
)

// Module identifies the part of the library an error originated in.
type Module string

const (
	ModBuechi Module = "BUECHI"
	ModCore   Module = "CORE"
	ModFADot  Module = "FADOT"
	ModFAIO   Module = "FAIO"
	ModFAMod  Module = "FAMOD"
	ModStore  Module = "STORE"
	ModTool   Module = "TOOL"
)

var (
	// ErrInvalidArgument is the kind of error returned when an operation is
	// called with arguments outside its contract, such as an empty work list
	// or a non-Büchi automaton handed to the complementation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotImplemented is the kind of error returned by algorithms that the
	// library advertises but does not yet provide.
	ErrNotImplemented = errors.New("function not implemented")

	// ErrDomain is the kind of error returned when an internal value falls
	// outside its domain; it always indicates an invariant violation.
	ErrDomain = errors.New("value out of domain")

	// ErrIO is the kind of error for problems reading or writing automaton
	// files. The faio readers and writers do not return it; they wrap the
	// underlying file or codec error directly.
	ErrIO = errors.New("input/output error")
)

type diagError struct {
	mod  Module
	file string
	line int
	msg  string
	wrap error
}

func (e *diagError) Error() string {
	if e.wrap != nil {
		return e.msg + ": " + e.wrap.Error()
	}
	return e.msg
}

func (e *diagError) Unwrap() error {
	return e.wrap
}

func newDiag(mod Module, err error, msg string) error {
	de := &diagError{
		mod:  mod,
		msg:  msg,
		wrap: err,
	}

	// skip newDiag and its public caller
	_, file, line, ok := runtime.Caller(2)
	if ok {
		de.file = filepath.Base(file)
		de.line = line
	}

	return de
}

// Invalid returns an ErrInvalidArgument error tagged with the given module.
func Invalid(mod Module, msg string) error {
	return newDiag(mod, ErrInvalidArgument, msg)
}

// Invalidf is Invalid with a format string.
func Invalidf(mod Module, format string, a ...interface{}) error {
	return newDiag(mod, ErrInvalidArgument, fmt.Sprintf(format, a...))
}

// NotImplemented returns an ErrNotImplemented error for the named algorithm.
func NotImplemented(mod Module, what string) error {
	return newDiag(mod, ErrNotImplemented, what)
}

// Domain returns an ErrDomain error tagged with the given module.
func Domain(mod Module, msg string) error {
	return newDiag(mod, ErrDomain, msg)
}

// Wrap returns an error tagged with the given module that wraps err with
// additional context.
func Wrap(mod Module, err error, msg string) error {
	return newDiag(mod, err, msg)
}

// Wrapf is Wrap with a format string.
func Wrapf(mod Module, err error, format string, a ...interface{}) error {
	return newDiag(mod, err, fmt.Sprintf(format, a...))
}

// Diagnostic formats err as the single diagnostic line written to the error
// stream on failure. Errors created by this package include their module tag
// and origin; any other error is attributed to the tool itself.
func Diagnostic(err error) string {
	var de *diagError
	if errors.As(err, &de) {
		cause := "unknown error"
		if de.wrap != nil {
			cause = de.wrap.Error()
		}
		return fmt.Sprintf(" [%s] %s:%d %s: %s", de.mod, de.file, de.line, de.msg, cause)
	}
	return fmt.Sprintf(" [%s] %s", ModTool, err.Error())
}
