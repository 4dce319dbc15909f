// Package appender concatenates a line onto shell rc files.
//
// Targets are processed strictly in order. The first read or write failure
// stops the run; files rewritten before it stay rewritten.
package appender

import (
	stderrors "errors"
	"io/fs"

	"github.com/arthur-debert/srap/pkg/args"
	"github.com/arthur-debert/srap/pkg/errors"
	"github.com/arthur-debert/srap/pkg/logging"
	"github.com/arthur-debert/srap/pkg/types"
)

const defaultPerm fs.FileMode = 0644

// Reporter receives the user-facing notices produced while appending.
// *ui.Printer implements it.
type Reporter interface {
	NotFound(path string)
	Appending(line, path string)
	Verbosef(format string, args ...interface{})
}

// Options configure an Append run.
type Options struct {
	FS       types.FS
	Reporter Reporter
	// DryRun reads and builds the new content but never writes.
	DryRun bool
	// SkipMissing reports and skips targets that are not existing regular
	// files instead of failing. Used by apply-to-all mode.
	SkipMissing bool
}

// Append adds line (already newline-prefixed) to the end of every target.
// It returns the per-target results gathered so far, even on error.
func Append(opts Options, targets []string, line string) ([]types.TargetResult, error) {
	logger := logging.GetLogger("appender")
	done := logging.LogOperationStart(logger, "append")
	defer done()

	results := make([]types.TargetResult, 0, len(targets))

	for _, target := range targets {
		opts.Reporter.Verbosef("Using presumed config file path: %s", target)

		if opts.SkipMissing && !isRegularFile(opts.FS, target) {
			opts.Reporter.NotFound(target)
			logger.Info().Str("path", target).Msg("Config file not found, skipping")
			results = append(results, types.TargetResult{Path: target, Status: types.TargetSkipped})
			continue
		}

		existing, err := opts.FS.ReadFile(target)
		if err != nil {
			code := errors.ErrFileRead
			if stderrors.Is(err, fs.ErrNotExist) {
				code = errors.ErrFileNotFound
			}
			return results, errors.Wrapf(err, code, "couldnt read file: %s", target).
				WithDetail("path", target)
		}

		opts.Reporter.Appending(args.Display(line), target)

		updated := string(existing) + line
		result := types.TargetResult{Path: target, Bytes: len(updated), Status: types.TargetDryRun}

		if !opts.DryRun {
			if err := opts.FS.WriteFile(target, []byte(updated), permOf(opts.FS, target)); err != nil {
				return results, errors.Wrapf(err, errors.ErrFileWrite, "writing file failed! %s", target).
					WithDetail("path", target)
			}
			result.Status = types.TargetAppended
		}

		logger.Info().
			Str("path", target).
			Str("status", string(result.Status)).
			Int("bytes", result.Bytes).
			Msg("Processed config file")

		results = append(results, result)
	}

	return results, nil
}

func isRegularFile(fsys types.FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// permOf keeps the target's permission bits when rewriting it.
func permOf(fsys types.FS, path string) fs.FileMode {
	info, err := fsys.Stat(path)
	if err != nil {
		return defaultPerm
	}
	return info.Mode().Perm()
}
