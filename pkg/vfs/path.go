package vfs

import (
	"strings"
)

// Root is the absolute path of the VFS root directory.
const Root = "/"

// Resolve converts a user supplied path into a normalized absolute path.
// Relative input is interpreted against cwd, which must already be
// absolute. Resolution is purely lexical: it never consults the tree, so it
// cannot fail, and ".." past the root stays at the root.
func Resolve(input, cwd string) string {
	if input == "" || input == "." {
		return cwd
	}

	var segments []string
	if !IsAbs(input) {
		segments = Segments(cwd)
	}

	for _, comp := range strings.Split(input, "/") {
		switch comp {
		case "", ".":
			continue
		case "..":
			// Go up one level, but not past root
			if len(segments) > 0 {
				segments = segments[:len(segments)-1]
			}
		default:
			segments = append(segments, comp)
		}
	}

	return fromSegments(segments)
}

// Clean normalizes p as if it were resolved from the root.
func Clean(p string) string {
	if p == "" {
		return Root
	}
	return Resolve(p, Root)
}

// IsAbs returns true if the path is absolute.
func IsAbs(p string) bool {
	return strings.HasPrefix(p, "/")
}

// Segments returns the non-empty components of p after cleaning.
// The root yields no segments.
func Segments(p string) []string {
	p = cleanAbs(p)
	if p == Root {
		return nil
	}
	return strings.Split(p[1:], "/")
}

// Split splits the path into its parent directory and final component.
// The root splits into ("/", "").
func Split(p string) (dir, base string) {
	p = Clean(p)

	lastSlash := strings.LastIndex(p, "/")
	if lastSlash == 0 {
		return Root, p[1:]
	}

	return p[:lastSlash], p[lastSlash+1:]
}

// Join appends a child name to a parent path.
func Join(parent, name string) string {
	if parent == Root {
		return Root + name
	}
	return parent + "/" + name
}

// cleanAbs avoids re-resolving paths that are already normalized.
func cleanAbs(p string) string {
	if IsAbs(p) && !strings.Contains(p, "//") && !strings.Contains(p, "/.") &&
		(p == Root || !strings.HasSuffix(p, "/")) {
		return p
	}
	return Clean(p)
}

func fromSegments(segments []string) string {
	if len(segments) == 0 {
		return Root
	}
	return Root + strings.Join(segments, "/")
}
