// Package yapfm manages structured configuration files through a single
// FileManager: format detection by extension, lazy loading, dirty tracking,
// dot-notation key and section access, and a bounded read cache in front of
// the parsed document.
//
// A FileManager is bound to one file path. The parsed document is loaded on
// first access and written back explicitly with Save, SaveIfDirty, or Close.
// File formats are pluggable through the strategy package; the filesystem is
// pluggable through go-billy, so managers work the same against the OS disk
// and in-memory filesystems.
//
// FileManager is not safe for concurrent use. The cache package it builds on
// is safe on its own.
package yapfm
