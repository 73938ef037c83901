package vfs

import (
	"reflect"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		input    string
		cwd      string
		expected string
	}{
		{"", "/home/user", "/home/user"},
		{".", "/home/user", "/home/user"},
		{"docs", "/home/user", "/home/user/docs"},
		{"./docs", "/home/user", "/home/user/docs"},
		{"..", "/home/user", "/home"},
		{"../..", "/home/user", "/"},
		{"../../../..", "/home/user", "/"},
		{"..", "/", "/"},
		{"/etc", "/home/user", "/etc"},
		{"/etc/../var", "/home/user", "/var"},
		{"//a///b//", "/", "/a/b"},
		{"a/./b/../c", "/x", "/x/a/c"},
		{"/", "/home", "/"},
		{"missing/../found", "/", "/found"},
		{".hidden", "/a", "/a/.hidden"},
	}

	for _, tt := range tests {
		result := Resolve(tt.input, tt.cwd)
		if result != tt.expected {
			t.Errorf("Resolve(%q, %q) = %q, want %q", tt.input, tt.cwd, result, tt.expected)
		}
	}
}

func TestResolveIdempotent(t *testing.T) {
	cwds := []string{"/", "/a", "/a/b/c"}
	inputs := []string{"", ".", "..", "x/y", "/abs/../p", "../../q", "a//b/./c/.."}

	for _, cwd := range cwds {
		for _, in := range inputs {
			once := Resolve(in, cwd)
			twice := Resolve(once, cwd)
			if once != twice {
				t.Errorf("Resolve not idempotent for (%q, %q): %q then %q", in, cwd, once, twice)
			}
		}
	}
}

func TestResolveNeverAboveRoot(t *testing.T) {
	p := "/a/b"
	for i := 0; i < 5; i++ {
		p = Resolve("..", p)
	}
	if p != "/" {
		t.Errorf("repeated .. resolved to %q, want /", p)
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "/"},
		{"/", "/"},
		{"a", "/a"},
		{"/a/", "/a"},
		{"/a/../..", "/"},
	}

	for _, tt := range tests {
		if result := Clean(tt.input); result != tt.expected {
			t.Errorf("Clean(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestSegments(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"/", nil},
		{"/a", []string{"a"}},
		{"/a/b/c", []string{"a", "b", "c"}},
		{"/a//b/", []string{"a", "b"}},
	}

	for _, tt := range tests {
		result := Segments(tt.input)
		if !reflect.DeepEqual(result, tt.expected) {
			t.Errorf("Segments(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		input string
		dir   string
		base  string
	}{
		{"/", "/", ""},
		{"/a", "/", "a"},
		{"/a/b", "/a", "b"},
		{"/a/b/c/", "/a/b", "c"},
	}

	for _, tt := range tests {
		dir, base := Split(tt.input)
		if dir != tt.dir || base != tt.base {
			t.Errorf("Split(%q) = (%q, %q), want (%q, %q)", tt.input, dir, base, tt.dir, tt.base)
		}
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		parent, name, expected string
	}{
		{"/", "file.txt", "/file.txt"},
		{"/dir", "file.txt", "/dir/file.txt"},
		{"/a/b", "c", "/a/b/c"},
	}

	for _, tt := range tests {
		if result := Join(tt.parent, tt.name); result != tt.expected {
			t.Errorf("Join(%q, %q) = %q, want %q", tt.parent, tt.name, result, tt.expected)
		}
	}
}
