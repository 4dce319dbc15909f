package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/template"

	"github.com/arthur-debert/srap/pkg/paths"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// formatBold returns the string formatted as bold using pterm
func formatBold(s string) string {
	// Only apply formatting if output is a terminal
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold": formatBold,
	})
}

// supportedShells renders the help footer listing the shell table.
func supportedShells() string {
	posix, other := paths.SupportedNames()
	posix = sorted(posix)
	other = sorted(other)

	stable := paths.StableNames()
	stableText := joinAnd(sorted(stable))
	if len(stable) == 2 {
		stableText = "both " + stableText
	}

	return fmt.Sprintf(MsgSupportedShells, strings.Join(posix, ", "), joinAnd(other), stableText)
}

func sorted(names []string) []string {
	out := append([]string(nil), names...)
	sort.Strings(out)
	return out
}

// joinAnd joins names as an English list: "a and b", "a, b, and c".
func joinAnd(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	}
	return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
}
