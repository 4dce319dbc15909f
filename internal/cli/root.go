package cli

import (
	"os"

	"github.com/arthur-debert/srap/internal/version"
	"github.com/arthur-debert/srap/pkg/args"
	"github.com/arthur-debert/srap/pkg/commands/appendline"
	"github.com/arthur-debert/srap/pkg/config"
	"github.com/arthur-debert/srap/pkg/errors"
	"github.com/arthur-debert/srap/pkg/filesystem"
	"github.com/arthur-debert/srap/pkg/logging"
	"github.com/arthur-debert/srap/pkg/paths"
	"github.com/arthur-debert/srap/pkg/types"
	"github.com/arthur-debert/srap/pkg/ui"
	"github.com/arthur-debert/srap/pkg/ui/styles"
	"github.com/spf13/cobra"
)

// verboseLogLevel is the logger verbosity implied by -v (debug).
const verboseLogLevel = 2

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:   MsgRootUse,
		Short: MsgRootShort,
		Long:  MsgRootLong,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, tokens []string) error {
			return run(cmd, tokens, os.LookupEnv)
		},
		// The line to append may contain anything, including tokens that
		// look like flags.
		DisableFlagParsing:    true,
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
		SilenceErrors:         true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
		Annotations: map[string]string{
			annotationShells: supportedShells(),
		},
	}

	addFlags(rootCmd.Flags())
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	return rootCmd
}

func run(cmd *cobra.Command, tokens []string, lookupEnv types.LookupEnv) (err error) {
	noColor := ui.ColorDisabled() || args.HasFlag(tokens, args.FlagNoColor)
	defer func() {
		if err != nil {
			logger := logging.GetLogger("cli")
			logger.Debug().
				Str("code", string(errors.GetErrorCode(err))).
				Interface("details", errors.GetErrorDetails(err)).
				Err(err).
				Msg("Command failed")
			ui.NewPrinter(cmd.OutOrStdout(), noColor, false).Error(err)
		}
	}()

	// Quiet until the settings decide the verbosity.
	logging.SetupConsole(0)

	settings, err := config.Load(config.DefaultConfigDir())
	if err != nil {
		return err
	}
	noColor = noColor || settings.NoColor

	if settings.StylesFile != "" {
		home, _ := os.LookupEnv(paths.EnvHome)
		if err := styles.LoadStyles(paths.ExpandHome(settings.StylesFile, home)); err != nil {
			return errors.Wrap(err, errors.ErrConfigLoad, "failed to load styles_file")
		}
	}

	verbosity, err := settings.Verbosity()
	if err != nil {
		return err
	}
	if (settings.Verbose || args.HasFlag(tokens, args.FlagVerbose)) && verbosity < verboseLogLevel {
		verbosity = verboseLogLevel
	}
	logging.SetupLogger(verbosity)

	logger := logging.GetLogger("cli")
	logger.Debug().
		Str("version", version.Version).
		Str("settings", settings.Source).
		Msg("Command started")
	logger.Trace().Msg(settings.TOML())

	parsed, err := args.Parse(tokens)
	if err != nil {
		return err
	}
	if parsed.HelpRequested {
		return cmd.Help()
	}

	cfg := parsed.Config.Merge(settings.RunDefaults())
	if noColor {
		cfg.NoColor = true
	}

	_, err = appendline.AppendLine(appendline.AppendLineOptions{
		Parsed:    parsed,
		Config:    cfg,
		FS:        filesystem.NewOS(),
		LookupEnv: lookupEnv,
		Printer:   ui.NewPrinter(cmd.OutOrStdout(), cfg.NoColor, cfg.Verbose),
	})
	return err
}
