// Package appendline implements srap's single operation: append one line
// to the login shell's rc file, or to every POSIX shell rc file with
// --all.
package appendline
