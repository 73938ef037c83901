package shell

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"vfsh/pkg/vfs/memfs"
)

// CommandFunc runs a command against a session and returns its output.
type CommandFunc func(s *Session, args []string) ([]string, error)

// Command is an entry in the command table.
type Command struct {
	Name      string
	Func      CommandFunc
	Help      string
	NeedsTree bool
}

// Output sentinels.
const (
	EmptyDir  = "(empty)"
	NoResults = "(no results)"
	Farewell  = "Exiting shell..."
)

// commands holds every command the dispatcher knows.
var commands = []Command{
	{"ls", builtinLs, "List directory contents", true},
	{"cd", builtinCd, "Change the current directory", true},
	{"pwd", builtinPwd, "Print the current working directory", false},
	{"find", builtinFind, "Find entries by exact name", true},
	{"tail", builtinTail, "Print the last lines of a file", true},
	{"mkdir", builtinMkdir, "Create a directory", true},
	{"touch", builtinTouch, "Create an empty file", true},
	{"exit", builtinExit, "Exit the shell", false},
	{"help", builtinHelp, "Show this help message", false},
}

// commandMap maps command names to commands.
var commandMap = make(map[string]*Command)

func init() {
	for i := range commands {
		commandMap[commands[i].Name] = &commands[i]
	}
}

// GetCommand returns the command with the given name.
func GetCommand(name string) *Command {
	return commandMap[name]
}

// IsCommand returns true if name is a known command.
func IsCommand(name string) bool {
	_, ok := commandMap[name]
	return ok
}

// builtinLs lists a directory. Tokens starting with '-' are ignored.
func builtinLs(s *Session, args []string) ([]string, error) {
	target := ""
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			target = arg
			break
		}
	}

	path := s.resolve(target)
	n, ok := s.tree.Lookup(path)
	if !ok {
		return nil, errorf(KindNotFound, "ls", "%s: no such directory", path)
	}

	switch n := n.(type) {
	case *memfs.File:
		return nil, errorf(KindTypeMismatch, "ls", "%s: not a directory", path)
	case *memfs.Dir:
		if n.Len() == 0 {
			return []string{EmptyDir}, nil
		}
		lines := make([]string, 0, n.Len())
		for _, name := range n.Names() {
			child, _ := n.Child(name)
			if _, isDir := child.(*memfs.Dir); isDir {
				name += "/"
			}
			lines = append(lines, name)
		}
		return lines, nil
	}
	panic(fmt.Sprintf("shell: unexpected node %T", n))
}

// builtinCd changes the current directory.
func builtinCd(s *Session, args []string) ([]string, error) {
	if len(args) != 1 {
		return nil, usageError("cd", "cd <path>")
	}

	path := s.resolve(args[0])
	n, ok := s.tree.Lookup(path)
	if !ok {
		return nil, errorf(KindNotFound, "cd", "%s: no such directory", path)
	}

	switch n.(type) {
	case *memfs.File:
		return nil, errorf(KindTypeMismatch, "cd", "%s: not a directory", path)
	case *memfs.Dir:
		s.cwd = path
		return []string{"Changed directory to " + path}, nil
	}
	panic(fmt.Sprintf("shell: unexpected node %T", n))
}

// builtinPwd prints the current working directory.
func builtinPwd(s *Session, args []string) ([]string, error) {
	if len(args) != 0 {
		return nil, usageError("pwd", "pwd")
	}
	return []string{s.cwd}, nil
}

// builtinFind searches the whole tree for entries with an exact name.
func builtinFind(s *Session, args []string) ([]string, error) {
	if len(args) != 1 {
		return nil, usageError("find", "find <name>")
	}

	matches := s.tree.Find(args[0])
	if len(matches) == 0 {
		return []string{NoResults}, nil
	}
	return matches, nil
}

// builtinTail prints the last lines of a file, read from the backing
// directory rather than the tree.
func builtinTail(s *Session, args []string) ([]string, error) {
	count := s.tailLines
	var operands []string

	for i := 0; i < len(args); i++ {
		if args[i] != "-n" {
			operands = append(operands, args[i])
			continue
		}
		if i+1 >= len(args) {
			return nil, usageError("tail", "tail [-n N] <path>")
		}
		i++
		v, err := strconv.Atoi(args[i])
		if err != nil || v <= 0 {
			return nil, errorf(KindUsage, "tail", "invalid line count '%s'", args[i])
		}
		count = v
	}

	if len(operands) != 1 {
		return nil, usageError("tail", "tail [-n N] <path>")
	}

	path := s.resolve(operands[0])
	n, ok := s.tree.Lookup(path)
	if !ok {
		return nil, errorf(KindNotFound, "tail", "%s: no such file", path)
	}

	switch n.(type) {
	case *memfs.Dir:
		return nil, errorf(KindTypeMismatch, "tail", "%s: is a directory", path)
	case *memfs.File:
		if s.backing == nil {
			return nil, errorf(KindIO, "tail", "%s: no backing directory", path)
		}
		lines, err := s.backing.Tail(path, count)
		if err != nil {
			return nil, &Error{Kind: KindIO, Cmd: "tail", Msg: fmt.Sprintf("%s: read failed: %v", path, err), Err: err}
		}
		return lines, nil
	}
	panic(fmt.Sprintf("shell: unexpected node %T", n))
}

// builtinMkdir creates an empty directory.
func builtinMkdir(s *Session, args []string) ([]string, error) {
	if len(args) != 1 {
		return nil, usageError("mkdir", "mkdir <path>")
	}

	path := s.resolve(args[0])
	if err := s.tree.Mkdir(path); err != nil {
		return nil, createError("mkdir", "directory", path, err)
	}
	return nil, nil
}

// builtinTouch creates an empty file.
func builtinTouch(s *Session, args []string) ([]string, error) {
	if len(args) != 1 {
		return nil, usageError("touch", "touch <path>")
	}

	path := s.resolve(args[0])
	if err := s.tree.Create(path); err != nil {
		return nil, createError("touch", "file", path, err)
	}
	return nil, nil
}

// createError maps memfs creation errors to command errors.
func createError(cmd, what, path string, err error) *Error {
	e := &Error{Cmd: cmd, Err: err}
	switch {
	case errors.Is(err, memfs.ErrFileExists):
		e.Kind = KindExists
		e.Msg = fmt.Sprintf("cannot create %s '%s': %s already exists", what, path, what)
	case errors.Is(err, memfs.ErrParentNotFound):
		e.Kind = KindNotFound
		e.Msg = fmt.Sprintf("cannot create %s '%s': parent not found", what, path)
	case errors.Is(err, memfs.ErrNotDirectory):
		e.Kind = KindTypeMismatch
		e.Msg = fmt.Sprintf("cannot create %s '%s': parent is not a directory", what, path)
	default:
		e.Kind = KindUsage
		e.Msg = fmt.Sprintf("cannot create %s '%s': %v", what, path, err)
	}
	return e
}

// builtinExit ends the session.
func builtinExit(s *Session, args []string) ([]string, error) {
	s.exited = true
	return []string{Farewell}, nil
}

// builtinHelp lists the commands.
func builtinHelp(s *Session, args []string) ([]string, error) {
	names := make([]string, 0, len(commandMap))
	for name := range commandMap {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := []string{"Commands:"}
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("  %-6s %s", name, commandMap[name].Help))
	}
	return lines, nil
}
