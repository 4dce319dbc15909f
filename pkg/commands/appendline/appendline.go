package appendline

import (
	"github.com/arthur-debert/srap/pkg/appender"
	"github.com/arthur-debert/srap/pkg/args"
	"github.com/arthur-debert/srap/pkg/logging"
	"github.com/arthur-debert/srap/pkg/paths"
	"github.com/arthur-debert/srap/pkg/types"
	"github.com/arthur-debert/srap/pkg/ui"
)

// AppendLineOptions holds options for the append-line command
type AppendLineOptions struct {
	// Parsed is the scanned command line. It must carry a line, help
	// requests are handled by the caller.
	Parsed *args.Parsed

	// Config is Parsed.Config merged with the user's settings.
	Config types.RunConfig

	FS        types.FS
	LookupEnv types.LookupEnv
	Printer   *ui.Printer
}

// AppendLine appends the line from the command line to the resolved rc
// file(s) and prints the status lines for the run.
func AppendLine(opts AppendLineOptions) (*types.AppendLineResult, error) {
	logger := logging.GetLogger("commands.appendline")
	cfg := opts.Config
	out := opts.Printer

	if opts.Parsed.FileArgIndex >= 0 {
		out.Verbosef("index: %d; filename: %s, args %s", opts.Parsed.FileArgIndex, cfg.ExplicitFile, opts.Parsed.CommandLine())
	}
	out.Verbosef("%s", opts.Parsed.CommandLine())

	if cfg.DryRun {
		out.DryRun()
	}

	line := args.BuildLine(opts.Parsed.LineTokens())
	out.Verbosef("appending line: `%s`", args.Display(line))

	result := &types.AppendLineResult{
		Line:   args.Display(line),
		DryRun: cfg.DryRun,
	}

	resolution, err := paths.NewResolver(opts.LookupEnv).Resolve(cfg)
	if err != nil {
		return result, err
	}
	if resolution.HomeErr != nil {
		out.HomeWarning(resolution.HomeErr)
	}
	if resolution.Shell != "" {
		out.Verbosef("SHELL: %s", resolution.Shell)
	}

	logger.Info().
		Str("line", result.Line).
		Strs("targets", resolution.Targets).
		Bool("all", cfg.ApplyToAll).
		Bool("dryRun", cfg.DryRun).
		Msg("Appending line")

	targets, err := appender.Append(appender.Options{
		FS:          opts.FS,
		Reporter:    out,
		DryRun:      cfg.DryRun,
		SkipMissing: cfg.ApplyToAll,
	}, resolution.Targets, line)
	result.Targets = targets
	if err != nil {
		logger.Debug().Err(err).Int("processed", len(targets)).Msg("Append failed")
		return result, err
	}

	out.Success()

	logger.Info().
		Int("appended", result.Count(types.TargetAppended)).
		Int("skipped", result.Count(types.TargetSkipped)).
		Int("dryRun", result.Count(types.TargetDryRun)).
		Msg("Append completed")

	return result, nil
}
