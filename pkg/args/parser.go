// Package args turns srap's raw command line into a types.RunConfig and the
// line to append.
//
// Flags are recognized as exact tokens anywhere in the list. The line is
// everything from the first token that does not start with "-" to the end,
// so a flag-looking token after the line has started both sets its switch
// and stays part of the line.
package args

import (
	"strings"

	"github.com/arthur-debert/srap/pkg/errors"
	"github.com/arthur-debert/srap/pkg/logging"
	"github.com/arthur-debert/srap/pkg/types"
	"github.com/kballard/go-shellquote"
)

// Flag is one recognized switch with its short and long spelling.
type Flag struct {
	Short string
	Long  string
	Usage string
	// Value is the placeholder shown in help for flags that take an argument.
	Value string
}

// Matches reports whether token spells this flag.
func (f Flag) Matches(token string) bool {
	return token == f.Short || token == f.Long
}

// Name returns the long name without dashes.
func (f Flag) Name() string {
	return strings.TrimPrefix(f.Long, "--")
}

// Shorthand returns the short name without the dash.
func (f Flag) Shorthand() string {
	return strings.TrimPrefix(f.Short, "-")
}

// The recognized flags, in help order.
var (
	FlagAll     = Flag{Short: "-a", Long: "--all", Usage: "append line to all POSIX-compliant shells"}
	FlagDryRun  = Flag{Short: "-d", Long: "--dry-run", Usage: "do a dry run of the program"}
	FlagFile    = Flag{Short: "-f", Long: "--file", Usage: "specify a file", Value: "filename"}
	FlagHelp    = Flag{Short: "-h", Long: "--help", Usage: "show this help"}
	FlagNoColor = Flag{Short: "-n", Long: "--no-color", Usage: "no colored output"}
	FlagVerbose = Flag{Short: "-v", Long: "--verbose", Usage: "verbose output"}
)

// Flags lists every recognized flag.
var Flags = []Flag{FlagAll, FlagDryRun, FlagFile, FlagHelp, FlagNoColor, FlagVerbose}

// Parsed is the outcome of scanning the command line.
type Parsed struct {
	Config types.RunConfig
	// Tokens is the input with the -f flag and its filename removed.
	Tokens []string
	// FileArgIndex is the position the filename had in the unmodified
	// input, or -1 when -f was not given.
	FileArgIndex int
	// HelpRequested is set when the help text should be shown instead of
	// doing anything: no tokens at all, -h/--help anywhere, or no line.
	HelpRequested bool
}

// Parse scans tokens (program name excluded).
func Parse(tokens []string) (*Parsed, error) {
	logger := logging.GetLogger("args")

	p := &Parsed{FileArgIndex: -1}

	if len(tokens) == 0 || HasFlag(tokens, FlagHelp) {
		p.HelpRequested = true
		return p, nil
	}

	rest := make([]string, len(tokens))
	copy(rest, tokens)

	p.Config.ApplyToAll = HasFlag(rest, FlagAll)
	p.Config.DryRun = HasFlag(rest, FlagDryRun)
	p.Config.Verbose = HasFlag(rest, FlagVerbose)
	p.Config.NoColor = HasFlag(rest, FlagNoColor)

	if i := indexOfFlag(rest, FlagFile); i >= 0 {
		if i+1 >= len(rest) {
			return nil, errors.New(errors.ErrUsage, "You must provide a filename").
				WithDetail("flag", rest[i])
		}
		p.Config.ExplicitFile = rest[i+1]
		p.FileArgIndex = i + 1
		rest = append(rest[:i], rest[i+2:]...)
	}

	p.Tokens = rest
	if p.lineStart() < 0 {
		p.HelpRequested = true
	}

	logger.Debug().
		Bool("all", p.Config.ApplyToAll).
		Bool("dryRun", p.Config.DryRun).
		Bool("verbose", p.Config.Verbose).
		Bool("noColor", p.Config.NoColor).
		Str("file", p.Config.ExplicitFile).
		Str("tokens", shellquote.Join(p.Tokens...)).
		Bool("help", p.HelpRequested).
		Msg("Parsed command line")

	return p, nil
}

// LineTokens returns the tokens forming the line to append.
func (p *Parsed) LineTokens() []string {
	start := p.lineStart()
	if start < 0 {
		return nil
	}
	return p.Tokens[start:]
}

// CommandLine renders Tokens the way a shell user would type them.
func (p *Parsed) CommandLine() string {
	return shellquote.Join(p.Tokens...)
}

func (p *Parsed) lineStart() int {
	for i, tok := range p.Tokens {
		if !strings.HasPrefix(tok, "-") {
			return i
		}
	}
	return -1
}

// HasFlag reports whether f appears anywhere in raw tokens.
func HasFlag(tokens []string, f Flag) bool {
	return indexOfFlag(tokens, f) >= 0
}

func indexOfFlag(tokens []string, f Flag) int {
	for i, tok := range tokens {
		if f.Matches(tok) {
			return i
		}
	}
	return -1
}
