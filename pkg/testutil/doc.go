// Package testutil provides helpers shared by srap's tests.
//
// Key components:
//   - file helpers (CreateFile, ReadFile, FileExists) for real temp dirs
//   - MemoryFS: an afero-backed types.FS seeded from a map
//   - MockFS: a testify mock of types.FS for failure injection
//   - Reporter: records the notices the append engine emits
//   - Env: a map-backed types.LookupEnv
package testutil
