// Package types defines the core types and interfaces shared by srap's
// packages: the RunConfig built from the command line, the filesystem
// interface the append engine writes through, and the result values a run
// reports back to the CLI.
package types
