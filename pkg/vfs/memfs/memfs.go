// Package memfs provides the in-memory VFS tree.
// A tree is owned by a single session and is not safe for concurrent use.
package memfs

import (
	"errors"
	"fmt"
	"sort"

	vfs "vfsh/pkg/vfs"
)

// ErrFileNotFound is returned when a file is not found.
var ErrFileNotFound = errors.New("memfs: file not found")

// ErrParentNotFound is returned when the parent of a new node is missing.
var ErrParentNotFound = errors.New("memfs: parent not found")

// ErrFileExists is returned when a file already exists.
var ErrFileExists = errors.New("memfs: file already exists")

// ErrNotDirectory is returned when a path is not a directory.
var ErrNotDirectory = errors.New("memfs: not a directory")

// ErrInvalidName is returned for names that cannot appear in a directory.
var ErrInvalidName = errors.New("memfs: invalid name")

// Node is a directory or a file. The set of implementations is closed:
// every Node is either a *Dir or a *File.
type Node interface {
	node()
}

// Dir is a directory node. Children are keyed by name; keys are unique
// and case-sensitive.
type Dir struct {
	children map[string]Node
}

// File is a regular file node. Only the size is mirrored.
type File struct {
	Size int64
}

func (*Dir) node()  {}
func (*File) node() {}

// NewDir creates an empty directory node.
func NewDir() *Dir {
	return &Dir{children: make(map[string]Node)}
}

// Child returns the named child.
func (d *Dir) Child(name string) (Node, bool) {
	n, ok := d.children[name]
	return n, ok
}

// Len returns the number of children.
func (d *Dir) Len() int {
	return len(d.children)
}

// Names returns the child names sorted lexicographically.
func (d *Dir) Names() []string {
	names := make([]string, 0, len(d.children))
	for name := range d.children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Add inserts a fresh child. Existing children are never replaced.
func (d *Dir) Add(name string, n Node) error {
	if !validName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if _, ok := d.children[name]; ok {
		return ErrFileExists
	}
	d.children[name] = n
	return nil
}

// FS is an in-memory VFS tree.
type FS struct {
	root *Dir
}

// New creates a tree containing only an empty root directory.
func New() *FS {
	return &FS{root: NewDir()}
}

// NewFromRoot wraps an existing root directory.
func NewFromRoot(root *Dir) *FS {
	if root == nil {
		root = NewDir()
	}
	return &FS{root: root}
}

// Root returns the root directory.
func (fs *FS) Root() *Dir {
	return fs.root
}

// Lookup returns the node at the given absolute path. Absence is reported
// through the boolean, never as an error.
func (fs *FS) Lookup(path string) (Node, bool) {
	n, err := fs.nodeFromPath(path)
	if err != nil {
		return nil, false
	}
	return n, true
}

// nodeFromPath walks the tree and returns the node at the given path.
func (fs *FS) nodeFromPath(path string) (Node, error) {
	var node Node = fs.root

	for _, part := range vfs.Segments(path) {
		dir, ok := node.(*Dir)
		if !ok {
			return nil, ErrFileNotFound
		}

		child, ok := dir.children[part]
		if !ok {
			return nil, ErrFileNotFound
		}

		node = child
	}

	return node, nil
}

// Stat reports whether path is a directory.
func (fs *FS) Stat(path string) (isDir bool, err error) {
	n, err := fs.nodeFromPath(path)
	if err != nil {
		return false, err
	}
	_, isDir = n.(*Dir)
	return isDir, nil
}

// ReadDir returns the directory at path.
func (fs *FS) ReadDir(path string) (*Dir, error) {
	n, err := fs.nodeFromPath(path)
	if err != nil {
		return nil, err
	}

	switch n := n.(type) {
	case *Dir:
		return n, nil
	case *File:
		return nil, ErrNotDirectory
	default:
		panic(fmt.Sprintf("memfs: unexpected node %T", n))
	}
}

// Mkdir creates an empty directory at path. The parent must already exist.
func (fs *FS) Mkdir(path string) error {
	return fs.create(path, NewDir())
}

// Create creates an empty file at path. The parent must already exist.
func (fs *FS) Create(path string) error {
	return fs.create(path, &File{})
}

// create grafts n under the parent of path. Every check happens before the
// tree is touched, so a failed call leaves it unchanged.
func (fs *FS) create(path string, n Node) error {
	path = vfs.Clean(path)
	if path == vfs.Root {
		return ErrFileExists
	}

	parentPath, name := vfs.Split(path)

	parent, err := fs.nodeFromPath(parentPath)
	if err != nil {
		return ErrParentNotFound
	}

	dir, ok := parent.(*Dir)
	if !ok {
		return ErrNotDirectory
	}

	return dir.Add(name, n)
}

// WalkFunc is called for every node visited by Walk.
type WalkFunc func(path, name string, n Node)

// Walk visits every node below the root in pre-order. Siblings are
// visited in name order. The root itself is not visited.
func (fs *FS) Walk(fn WalkFunc) {
	walk(vfs.Root, fs.root, fn)
}

func walk(path string, dir *Dir, fn WalkFunc) {
	for _, name := range dir.Names() {
		child := dir.children[name]
		childPath := vfs.Join(path, name)
		fn(childPath, name, child)
		if sub, ok := child.(*Dir); ok {
			walk(childPath, sub, fn)
		}
	}
}

// Find returns the absolute paths of every node named name, sorted
// lexicographically. Only exact name matches count.
func (fs *FS) Find(name string) []string {
	var matches []string
	fs.Walk(func(path, childName string, _ Node) {
		if childName == name {
			matches = append(matches, path)
		}
	})
	sort.Strings(matches)
	return matches
}

// Count returns the number of nodes in the tree, including the root.
func (fs *FS) Count() int {
	count := 1
	fs.Walk(func(string, string, Node) {
		count++
	})
	return count
}

func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] == '/' {
			return false
		}
	}
	return true
}
