package types

import (
	"io/fs"
)

// FS is the filesystem surface the append engine needs. The OS
// implementation and the in-memory one used by tests live in pkg/filesystem.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

// LookupEnv reports the value of an environment variable and whether it was
// set, with the same contract as os.LookupEnv.
type LookupEnv func(key string) (string, bool)
