// Package styles defines the visual styling for srap's status lines.
//
// Styles have semantic names (Warning, Action, Path, Success, Error) and are
// loaded from the embedded styles.yaml. Attributes are applied in a fixed
// order, foreground first, so a bold red Warning renders as ESC[31;1m.
package styles

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Foreground string `yaml:"foreground,omitempty"`
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Styles map[string]StyleDef `yaml:"styles"`
}

// StyleRegistry maps semantic names to style definitions
var StyleRegistry map[string]StyleDef

//go:embed styles.yaml
var embeddedStyles []byte

func init() {
	if err := LoadStylesFromData(embeddedStyles); err != nil {
		initDefaultStyles()
	}
}

// initDefaultStyles keeps the program usable if the embedded YAML is broken
func initDefaultStyles() {
	StyleRegistry = map[string]StyleDef{
		"Warning": {Foreground: "1", Bold: true},
		"Action":  {Foreground: "5", Bold: true},
		"Path":    {Foreground: "6"},
		"Success": {Foreground: "2"},
		"Error":   {Foreground: "1", Bold: true},
	}
}

// LoadStyles loads style configuration from a YAML file
func LoadStyles(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read styles file %s: %w", path, err)
	}
	return LoadStylesFromData(data)
}

// LoadStylesFromData loads style configuration from byte data
func LoadStylesFromData(data []byte) error {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse styles data: %w", err)
	}
	if len(config.Styles) == 0 {
		return fmt.Errorf("styles data defines no styles")
	}

	StyleRegistry = make(map[string]StyleDef, len(config.Styles))
	for name, def := range config.Styles {
		StyleRegistry[name] = def
	}
	return nil
}

// GetStyle safely retrieves a style from the registry. Unknown names yield
// an empty style that renders text unchanged.
func GetStyle(name string) StyleDef {
	return StyleRegistry[name]
}

// Apply adds the definition's attributes to s.
func (d StyleDef) Apply(profile termenv.Profile, s termenv.Style) termenv.Style {
	if d.Foreground != "" {
		s = s.Foreground(profile.Color(d.Foreground))
	}
	if d.Bold {
		s = s.Bold()
	}
	if d.Italic {
		s = s.Italic()
	}
	if d.Underline {
		s = s.Underline()
	}
	return s
}

// Render styles text with the named style for the given color profile.
// termenv.Ascii disables styling entirely.
func Render(profile termenv.Profile, name, text string) string {
	return GetStyle(name).Apply(profile, profile.String(text)).String()
}
