// Package vfs provides the path handling shared by the in-memory VFS mirror
// (memfs) and the disk-backed tree builder (diskfs).
//
// All VFS paths are slash separated and absolute once resolved. Resolution
// is lexical and never touches a tree:
//
//	vfs.Resolve("../b", "/a/x")  // "/a/b"
//	vfs.Resolve("..", "/")       // "/"
//	vfs.Clean("//a/./b/")        // "/a/b"
package vfs
