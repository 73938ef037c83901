// Package diskfs mirrors a real directory into a memfs tree and reads file
// contents back from that directory on demand.
package diskfs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"vfsh/pkg/logging"
	vfs "vfsh/pkg/vfs"
	"vfsh/pkg/vfs/memfs"
)

// ErrRootNotFound is returned by Build when the backing root is missing.
var ErrRootNotFound = fmt.Errorf("diskfs: root not found: %w", os.ErrNotExist)

// ErrRootNotDir is returned by Build when the backing root is a file.
var ErrRootNotDir = errors.New("diskfs: root is not a directory")

// FS is a read-only view of a backing directory.
type FS struct {
	root string
	fs   afero.Fs
}

// New creates a view of the real directory at root. A relative root is
// made absolute against the process working directory.
func New(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("diskfs: resolve %s: %w", root, err)
	}
	return NewWithFs(afero.NewOsFs(), abs), nil
}

// NewWithFs creates a view of root inside base. root must be absolute in
// base. Tests use an afero.MemMapFs here.
func NewWithFs(base afero.Fs, root string) *FS {
	root = filepath.Clean(root)
	return &FS{
		root: root,
		fs:   afero.NewReadOnlyFs(afero.NewBasePathFs(base, root)),
	}
}

// Root returns the backing directory.
func (fs *FS) Root() string {
	return fs.root
}

// Build walks the backing directory and returns its in-memory mirror.
// Directories that cannot be listed are kept, without children.
func (fs *FS) Build() (*memfs.FS, error) {
	start := time.Now()

	info, err := fs.fs.Stat(string(filepath.Separator))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, fs.root)
		}
		return nil, fmt.Errorf("diskfs: stat %s: %w", fs.root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotDir, fs.root)
	}

	root := memfs.NewDir()
	fs.fill(vfs.Root, root)

	tree := memfs.NewFromRoot(root)
	logging.Info("vfs loaded",
		logging.String("root", fs.root),
		logging.Int("nodes", tree.Count()),
		logging.Duration("duration", time.Since(start)),
	)
	return tree, nil
}

// fill adds the entries of the backing directory at path to dir.
func (fs *FS) fill(path string, dir *memfs.Dir) {
	entries, err := afero.ReadDir(fs.fs, fs.fullPath(path))
	if err != nil {
		logging.Debug("skipping unreadable directory",
			logging.String("path", path),
			logging.Err(err),
		)
		return
	}

	for _, entry := range entries {
		childPath := vfs.Join(path, entry.Name())

		var child memfs.Node
		if entry.IsDir() {
			sub := memfs.NewDir()
			fs.fill(childPath, sub)
			child = sub
		} else {
			child = &memfs.File{Size: entry.Size()}
		}

		if err := dir.Add(entry.Name(), child); err != nil {
			logging.Debug("skipping entry",
				logging.String("path", childPath),
				logging.Err(err),
			)
		}
	}
}

// Tail returns the last n lines of the backing file at the VFS path.
// Lines are split on '\n' with the terminator removed. Invalid UTF-8 is
// replaced rather than rejected.
func (fs *FS) Tail(path string, n int) ([]string, error) {
	f, err := fs.fs.Open(fs.fullPath(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return lastLines(decode(data), n), nil
}

// fullPath converts a VFS path to a path inside the backing root.
func (fs *FS) fullPath(path string) string {
	cleanPath := vfs.Clean(path)
	return filepath.FromSlash(cleanPath)
}

func decode(data []byte) string {
	return strings.ToValidUTF8(string(data), "�")
}

func lastLines(text string, n int) []string {
	if text == "" || n <= 0 {
		return []string{}
	}

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}
