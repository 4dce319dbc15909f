package paths

import (
	"path/filepath"
	"strings"
)

// Shell describes a supported shell and the rc file srap appends to for it.
type Shell struct {
	// Name is matched by substring against the base name of $SHELL.
	Name string
	// RCPath is the rc file, usually relative to "~".
	RCPath string
	// POSIX marks shells included in --all.
	POSIX bool
	// Stable marks shells that are fully supported; the others are best-effort.
	Stable bool
}

// Shells is the lookup table, in match order.
//
// ion's path has no "~" and therefore resolves against the working
// directory, not the home directory.
var Shells = []Shell{
	{Name: "zsh", RCPath: "~/.zshrc", POSIX: true, Stable: true},
	{Name: "bash", RCPath: "~/.bashrc", POSIX: true, Stable: true},
	{Name: "nsh", RCPath: "~/.nshrc", POSIX: true},
	{Name: "ksh", RCPath: "~/.kshrc", POSIX: true},
	{Name: "fish", RCPath: "~/.config/fish/config.fish"},
	{Name: "ion", RCPath: ".config/ion/initrc"},
	{Name: "tcsh", RCPath: "~/.cshrc"},
}

// allOrder is the iteration order for --all.
var allOrder = []string{"bash", "zsh", "nsh", "ksh"}

// DetectShell finds the table entry for a $SHELL value. Matching is done by
// substring against the base name, so "/usr/bin/zsh", "/bin/zsh" and
// "zsh-5.9" all resolve to zsh.
func DetectShell(shellPath string) (Shell, bool) {
	base := filepath.Base(strings.TrimSpace(shellPath))
	if base == "." || base == "/" {
		return Shell{}, false
	}
	for _, sh := range Shells {
		if strings.Contains(base, sh.Name) {
			return sh, true
		}
	}
	return Shell{}, false
}

// LookupShell returns the table entry with the given name.
func LookupShell(name string) (Shell, bool) {
	for _, sh := range Shells {
		if sh.Name == name {
			return sh, true
		}
	}
	return Shell{}, false
}

// AllCandidates returns the unexpanded rc paths used by --all:
// bash, zsh, nsh, ksh.
func AllCandidates() []string {
	out := make([]string, 0, len(allOrder))
	for _, name := range allOrder {
		sh, _ := LookupShell(name)
		out = append(out, sh.RCPath)
	}
	return out
}

// SupportedNames lists shell names split by support level, in table order.
func SupportedNames() (posix, other []string) {
	for _, sh := range Shells {
		if sh.POSIX {
			posix = append(posix, sh.Name)
		} else {
			other = append(other, sh.Name)
		}
	}
	return posix, other
}

// StableNames lists the fully supported shells, in table order.
func StableNames() []string {
	var names []string
	for _, sh := range Shells {
		if sh.Stable {
			names = append(names, sh.Name)
		}
	}
	return names
}
