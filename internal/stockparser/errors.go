package stockparser

import (
	"errors"
	"fmt"
)

// ExitCode is the process status reported for an invocation.
type ExitCode int

// Exit codes are part of the command line contract and must stay stable.
const (
	ExitOK            ExitCode = 0
	ExitFileNotFound  ExitCode = 1
	ExitInvalidOption ExitCode = 2
	ExitDataNotFound  ExitCode = 3
	ExitMalformedRow  ExitCode = 4
	ExitUnexpected    ExitCode = 5
)

// Kind classifies an Error.
type Kind int

const (
	// FileNotFound means the input path is not an existing regular file.
	FileNotFound Kind = iota + 1
	// InvalidOption means the requested options cannot be served.
	InvalidOption
	// DataNotFound means the requested company is not a column of the file.
	DataNotFound
	// MalformedRow means a data row could not be read.
	MalformedRow
)

func (k Kind) String() string {
	switch k {
	case FileNotFound:
		return "file not found"
	case InvalidOption:
		return "invalid option"
	case DataNotFound:
		return "data not found"
	case MalformedRow:
		return "malformed row"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ExitCode returns the process status for k.
func (k Kind) ExitCode() ExitCode {
	switch k {
	case FileNotFound:
		return ExitFileNotFound
	case InvalidOption:
		return ExitInvalidOption
	case DataNotFound:
		return ExitDataNotFound
	case MalformedRow:
		return ExitMalformedRow
	}
	return ExitUnexpected
}

// Error is a classified failure that ends an invocation.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf builds an Error of the given kind.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error of the given kind around a cause.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of the first Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// ExitCodeFor maps any error to a process status. Nil is success and
// unclassified errors are ExitUnexpected.
func ExitCodeFor(err error) ExitCode {
	if err == nil {
		return ExitOK
	}
	return KindOf(err).ExitCode()
}
