// Package shell implements the command interpreter that runs over a memfs
// tree: the session state, the command table and the script runner.
//
// The package never writes to a terminal. Execute returns the lines a
// command produced; a front-end decides how to show them.
package shell

import (
	"strings"

	"vfsh/pkg/logging"
	vfs "vfsh/pkg/vfs"
	"vfsh/pkg/vfs/diskfs"
	"vfsh/pkg/vfs/memfs"
)

// DefaultTailLines is the number of lines tail prints without -n.
const DefaultTailLines = 10

// Result is the outcome of one command line.
type Result struct {
	Lines []string
	Err   error
	Exit  bool
}

// Session holds the state one command line can read or change.
type Session struct {
	tree      *memfs.FS
	backing   *diskfs.FS
	cwd       string
	exited    bool
	tailLines int
}

// Option configures a Session.
type Option func(*Session)

// WithTailLines sets the default line count for tail.
func WithTailLines(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.tailLines = n
		}
	}
}

// WithBacking sets the directory tail reads file contents from.
func WithBacking(backing *diskfs.FS) Option {
	return func(s *Session) {
		s.backing = backing
	}
}

// NewSession creates a session over tree. A nil tree gives a session in
// which every tree command reports that the VFS is not loaded.
func NewSession(tree *memfs.FS, opts ...Option) *Session {
	s := &Session{
		tree:      tree,
		cwd:       vfs.Root,
		tailLines: DefaultTailLines,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load builds a session from the real directory at root.
func Load(root string, opts ...Option) (*Session, error) {
	backing, err := diskfs.New(root)
	if err != nil {
		return nil, err
	}
	tree, err := backing.Build()
	if err != nil {
		return nil, err
	}
	return NewSession(tree, append([]Option{WithBacking(backing)}, opts...)...), nil
}

// Cwd returns the current directory.
func (s *Session) Cwd() string {
	return s.cwd
}

// Exited reports whether exit has run.
func (s *Session) Exited() bool {
	return s.exited
}

// Loaded reports whether the session has a tree.
func (s *Session) Loaded() bool {
	return s.tree != nil
}

// Execute runs one command line.
func (s *Session) Execute(line string) Result {
	if s.exited {
		return Result{Exit: true}
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Result{}
	}

	name := strings.ToLower(fields[0])
	args := fields[1:]

	cmd := GetCommand(name)
	if cmd == nil {
		err := &Error{Kind: KindUnknownCommand, Msg: "Unknown command '" + name + "'"}
		logging.Debug("unknown command", logging.String("cmd", name))
		return errorResult(err)
	}

	if cmd.NeedsTree && s.tree == nil {
		logging.Debug("command rejected",
			logging.String("cmd", name),
			logging.String("kind", KindUnavailable.String()),
		)
		return errorResult(errNotLoaded)
	}

	lines, err := cmd.Func(s, args)
	if err != nil {
		var kind string
		if e, ok := err.(*Error); ok {
			kind = e.Kind.String()
		}
		logging.Debug("command failed",
			logging.String("cmd", name),
			logging.String("cwd", s.cwd),
			logging.String("kind", kind),
			logging.Err(err),
		)
		return errorResult(err)
	}

	logging.Debug("command executed",
		logging.String("cmd", name),
		logging.String("cwd", s.cwd),
		logging.Int("lines", len(lines)),
	)
	return Result{Lines: lines, Exit: s.exited}
}

func errorResult(err error) Result {
	return Result{Lines: []string{err.Error()}, Err: err}
}

// resolve turns a command argument into an absolute path.
func (s *Session) resolve(arg string) string {
	return vfs.Resolve(arg, s.cwd)
}
