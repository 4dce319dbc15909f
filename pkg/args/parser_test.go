package args_test

import (
	"testing"

	"github.com/arthur-debert/srap/pkg/args"
	"github.com/arthur-debert/srap/pkg/errors"
	"github.com/arthur-debert/srap/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		tokens     []string
		wantConfig types.RunConfig
		wantLine   []string
		wantHelp   bool
		wantIndex  int
	}{
		{
			name:      "no tokens shows help",
			tokens:    nil,
			wantHelp:  true,
			wantIndex: -1,
		},
		{
			name:      "short help",
			tokens:    []string{"-h"},
			wantHelp:  true,
			wantIndex: -1,
		},
		{
			name:      "help anywhere wins",
			tokens:    []string{"-a", "echo", "--help"},
			wantHelp:  true,
			wantIndex: -1,
		},
		{
			name:       "only flags shows help",
			tokens:     []string{"-a", "-d", "--verbose"},
			wantConfig: types.RunConfig{ApplyToAll: true, DryRun: true, Verbose: true},
			wantHelp:   true,
			wantIndex:  -1,
		},
		{
			name:       "file flag and its argument are removed",
			tokens:     []string{"-f", "myfile.txt", "echo", "hi"},
			wantConfig: types.RunConfig{ExplicitFile: "myfile.txt"},
			wantLine:   []string{"echo", "hi"},
			wantIndex:  1,
		},
		{
			name:       "long forms",
			tokens:     []string{"--all", "--dry-run", "--no-color", "--file", "x.rc", "export", "A=1"},
			wantConfig: types.RunConfig{ApplyToAll: true, DryRun: true, NoColor: true, ExplicitFile: "x.rc"},
			wantLine:   []string{"export", "A=1"},
			wantIndex:  4,
		},
		{
			name:       "flag after line start sets switch and stays in line",
			tokens:     []string{"ls", "-v"},
			wantConfig: types.RunConfig{Verbose: true},
			wantLine:   []string{"ls", "-v"},
			wantIndex:  -1,
		},
		{
			name:       "unknown leading dash tokens are skipped",
			tokens:     []string{"-x", "alias", "ll=ls"},
			wantConfig: types.RunConfig{},
			wantLine:   []string{"alias", "ll=ls"},
			wantIndex:  -1,
		},
		{
			name:       "file flag inside the line is still consumed",
			tokens:     []string{"echo", "-f", "other", "hi"},
			wantConfig: types.RunConfig{ExplicitFile: "other"},
			wantLine:   []string{"echo", "hi"},
			wantIndex:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := args.Parse(tt.tokens)
			require.NoError(t, err)

			assert.Equal(t, tt.wantHelp, p.HelpRequested)
			assert.Equal(t, tt.wantIndex, p.FileArgIndex)
			assert.Equal(t, tt.wantConfig, p.Config)
			assert.Equal(t, tt.wantLine, p.LineTokens())
		})
	}
}

func TestParse_FileWithoutName(t *testing.T) {
	for _, tokens := range [][]string{
		{"echo", "hi", "-f"},
		{"--file"},
	} {
		_, err := args.Parse(tokens)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUsage))
		assert.Equal(t, "You must provide a filename", errors.Describe(err))
	}
}

func TestParse_DoesNotMutateInput(t *testing.T) {
	tokens := []string{"-f", "a.rc", "echo"}
	_, err := args.Parse(tokens)
	require.NoError(t, err)
	assert.Equal(t, []string{"-f", "a.rc", "echo"}, tokens)
}

func TestParsed_CommandLine(t *testing.T) {
	p, err := args.Parse([]string{"-v", "echo", "hello world"})
	require.NoError(t, err)
	assert.Equal(t, `-v echo 'hello world'`, p.CommandLine())
}

func TestFlag_Names(t *testing.T) {
	assert.Equal(t, "dry-run", args.FlagDryRun.Name())
	assert.Equal(t, "d", args.FlagDryRun.Shorthand())
	assert.True(t, args.FlagFile.Matches("--file"))
	assert.False(t, args.FlagFile.Matches("-file"))
}

func TestHasFlag(t *testing.T) {
	tokens := []string{"-f", "--no-color"}
	assert.True(t, args.HasFlag(tokens, args.FlagNoColor))
	assert.True(t, args.HasFlag(tokens, args.FlagFile))
	assert.False(t, args.HasFlag(tokens, args.FlagVerbose))
	assert.False(t, args.HasFlag([]string{"-vd"}, args.FlagVerbose))
}
