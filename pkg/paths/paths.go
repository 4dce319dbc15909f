package paths

import (
	"strings"

	"github.com/arthur-debert/srap/pkg/errors"
	"github.com/arthur-debert/srap/pkg/logging"
	"github.com/arthur-debert/srap/pkg/types"
)

// Environment variable names
const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"

	// EnvShell holds the user's login shell
	EnvShell = "SHELL"
)

// Resolution is what the resolver decided for one run.
type Resolution struct {
	// Targets are the expanded rc file paths, in processing order.
	Targets []string
	// Shell is the raw $SHELL value, set only when it was consulted.
	Shell string
	// Detected is the table entry matched from Shell.
	Detected *Shell
	// HomeErr is set when $HOME was needed but missing. It is a warning,
	// not a failure: an empty home directory was substituted.
	HomeErr error
}

// Resolver turns a RunConfig into target paths.
type Resolver struct {
	lookupEnv types.LookupEnv
}

// NewResolver creates a resolver reading the environment through lookupEnv
// (os.LookupEnv in production).
func NewResolver(lookupEnv types.LookupEnv) *Resolver {
	return &Resolver{lookupEnv: lookupEnv}
}

// Resolve determines the target rc files.
//
// With ApplyToAll the fixed POSIX candidates plus ExplicitFile are returned,
// all "~"-expanded. Otherwise ExplicitFile is used verbatim when set, else
// the login shell from $SHELL selects an entry from Shells.
func (r *Resolver) Resolve(cfg types.RunConfig) (*Resolution, error) {
	logger := logging.GetLogger("paths")
	res := &Resolution{}

	if cfg.ApplyToAll {
		candidates := AllCandidates()
		if cfg.HasExplicitFile() {
			candidates = append(candidates, cfg.ExplicitFile)
		}
		home := r.home(res)
		for _, c := range candidates {
			res.Targets = append(res.Targets, ExpandHome(c, home))
		}
		logger.Debug().Strs("targets", res.Targets).Msg("Resolved all POSIX shell rc files")
		return res, nil
	}

	if cfg.HasExplicitFile() {
		res.Targets = []string{cfg.ExplicitFile}
		logger.Debug().Str("target", cfg.ExplicitFile).Msg("Using explicit file")
		return res, nil
	}

	shell, ok := r.lookupEnv(EnvShell)
	if !ok {
		return nil, errors.Newf(errors.ErrEnvLookup, "couldn't interpret %s: environment variable not found", EnvShell).
			WithDetail("variable", EnvShell)
	}
	res.Shell = shell

	detected, ok := DetectShell(shell)
	if !ok {
		return nil, errors.Newf(errors.ErrUnsupportedShell, "Unsupported shell!: %s", shell).
			WithDetail("shell", shell)
	}
	res.Detected = &detected

	target := detected.RCPath
	if strings.HasPrefix(target, "~") {
		target = ExpandHome(target, r.home(res))
	}
	res.Targets = []string{target}

	logger.Debug().
		Str("shell", shell).
		Str("detected", detected.Name).
		Str("target", target).
		Msg("Resolved login shell rc file")

	return res, nil
}

// home returns $HOME, recording a warning on res when it is missing.
func (r *Resolver) home(res *Resolution) string {
	home, ok := r.lookupEnv(EnvHome)
	if !ok {
		res.HomeErr = errors.Newf(errors.ErrEnvLookup, "Couldn't find %s env var! environment variable not found", EnvHome).
			WithDetail("variable", EnvHome)
		logger := logging.GetLogger("paths")
		logger.Info().Msg("HOME is not set, continuing with an empty home directory")
		return ""
	}
	return home
}

// ExpandHome replaces a leading "~" with home. With an empty home a leading
// "~/" is dropped entirely, leaving a path relative to the working directory.
// Paths without a leading "~" are returned unchanged.
func ExpandHome(path, home string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	rest := path[1:]
	if rest != "" && !strings.HasPrefix(rest, "/") {
		// ~user forms are not expanded
		return path
	}
	if home == "" {
		return strings.TrimPrefix(rest, "/")
	}
	if rest == "" {
		return home
	}
	return strings.TrimSuffix(home, "/") + rest
}
