package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/srap/pkg/errors"
	"github.com/arthur-debert/srap/pkg/logging"
	"github.com/arthur-debert/srap/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"
)

const (
	// EnvPrefix prefixes every settings override in the environment
	EnvPrefix = "SRAP_"

	// EnvConfigDir overrides the XDG config directory for srap
	EnvConfigDir = "SRAP_CONFIG_DIR"

	// AppDirName is the directory name under the XDG config home
	AppDirName = "srap"
)

// Settings are the persisted user defaults.
type Settings struct {
	NoColor  bool   `koanf:"no_color" toml:"no_color"`
	DryRun   bool   `koanf:"dry_run" toml:"dry_run"`
	Verbose  bool   `koanf:"verbose" toml:"verbose"`
	LogLevel string `koanf:"log_level" toml:"log_level"`

	// StylesFile replaces the built-in status line colors. Empty means
	// built-in.
	StylesFile string `koanf:"styles_file" toml:"styles_file"`

	// Source is the user config file that was loaded, if any.
	Source string `koanf:"-" toml:"-"`
}

// RunDefaults returns the switches the settings turn on, ready to be merged
// into the RunConfig parsed from the command line.
func (s *Settings) RunDefaults() types.RunConfig {
	return types.RunConfig{
		NoColor: s.NoColor,
		DryRun:  s.DryRun,
		Verbose: s.Verbose,
	}
}

// Verbosity converts LogLevel into the count logging.SetupLogger expects.
func (s *Settings) Verbosity() (int, error) {
	return logging.VerbosityFromLevel(s.LogLevel)
}

// TOML renders the effective settings.
func (s *Settings) TOML() string {
	out, err := gotoml.Marshal(s)
	if err != nil {
		return fmt.Sprintf("# failed to render settings: %v\n", err)
	}
	return string(out)
}

// DefaultConfigDir returns $SRAP_CONFIG_DIR, or $XDG_CONFIG_HOME/srap.
func DefaultConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// Load reads the settings from the embedded defaults, the user config file
// found in configDir and the environment.
func Load(configDir string) (*Settings, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Load system defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Load user config if it exists
	source := ""
	for _, candidate := range []struct {
		name   string
		parser koanf.Parser
	}{
		{"config.toml", toml.Parser()},
		{"config.yaml", yaml.Parser()},
		{"config.yml", yaml.Parser()},
	} {
		path := filepath.Join(configDir, candidate.name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), candidate.parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		source = path
		break
	}

	// 3. Load env vars
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Unmarshal
	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
			DecodeHook:       stringToBoolHookFunc(),
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	s.Source = source

	if _, err := s.Verbosity(); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid log_level")
	}

	logger.Debug().Str("source", source).Str("configDir", configDir).Msg("Settings loaded")
	return &s, nil
}
