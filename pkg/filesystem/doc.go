// Package filesystem provides the types.FS implementations srap writes
// through: the real OS filesystem and an afero-backed one used by tests.
package filesystem
