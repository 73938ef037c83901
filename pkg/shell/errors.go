package shell

import (
	"errors"
	"fmt"
)

// ErrScriptNotFound is returned by OpenScript when the script is missing.
var ErrScriptNotFound = errors.New("script file not found")

// Kind classifies command failures. None of them end the session.
type Kind int

const (
	KindUsage Kind = iota
	KindNotFound
	KindTypeMismatch
	KindExists
	KindIO
	KindUnavailable
	KindUnknownCommand
)

var kindNames = map[Kind]string{
	KindUsage:          "usage",
	KindNotFound:       "not_found",
	KindTypeMismatch:   "type_mismatch",
	KindExists:         "already_exists",
	KindIO:             "io",
	KindUnavailable:    "vfs_unavailable",
	KindUnknownCommand: "unknown_command",
}

// String returns the kind name used in logs.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is a failed command. It renders as a single line.
type Error struct {
	Kind Kind
	Cmd  string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Cmd == "" {
		return "Error: " + e.Msg
	}
	return "Error: " + e.Cmd + ": " + e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func usageError(cmd, usage string) *Error {
	return &Error{Kind: KindUsage, Cmd: cmd, Msg: "usage: " + usage}
}

func errorf(kind Kind, cmd, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Cmd: cmd, Msg: fmt.Sprintf(format, args...)}
}

var errNotLoaded = &Error{Kind: KindUnavailable, Msg: "VFS not loaded"}
