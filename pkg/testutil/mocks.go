package testutil

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/stretchr/testify/mock"
)

// MockFS is a testify mock of types.FS.
type MockFS struct {
	mock.Mock
}

func (m *MockFS) Stat(name string) (fs.FileInfo, error) {
	args := m.Called(name)
	info, _ := args.Get(0).(fs.FileInfo)
	return info, args.Error(1)
}

func (m *MockFS) ReadFile(name string) ([]byte, error) {
	args := m.Called(name)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *MockFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	args := m.Called(name, data, perm)
	return args.Error(0)
}

// Reporter records the notices the append engine emits, one formatted
// string per call.
type Reporter struct {
	Lines []string
}

func (r *Reporter) NotFound(path string) {
	r.Lines = append(r.Lines, "not found: "+path)
}

func (r *Reporter) Appending(line, path string) {
	r.Lines = append(r.Lines, fmt.Sprintf("appending %q to %s", line, path))
}

func (r *Reporter) Verbosef(format string, args ...interface{}) {
	r.Lines = append(r.Lines, "verbose: "+fmt.Sprintf(format, args...))
}

// Count returns how many recorded lines start with prefix.
func (r *Reporter) Count(prefix string) int {
	n := 0
	for _, l := range r.Lines {
		if strings.HasPrefix(l, prefix) {
			n++
		}
	}
	return n
}
