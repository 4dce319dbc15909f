package types

// RunConfig holds the switches parsed from the command line. It is built
// once per invocation and passed by value afterwards.
type RunConfig struct {
	// ApplyToAll targets every well-known POSIX shell rc file plus
	// ExplicitFile instead of a single resolved file.
	ApplyToAll bool
	// DryRun resolves and reads targets but never writes them.
	DryRun bool
	// ExplicitFile overrides the resolved target. Empty means unset.
	ExplicitFile string
	// NoColor disables ANSI styling in status output.
	NoColor bool
	// Verbose prints diagnostic lines while running.
	Verbose bool
}

// HasExplicitFile reports whether -f/--file was given.
func (c RunConfig) HasExplicitFile() bool {
	return c.ExplicitFile != ""
}

// Merge turns on every output switch (DryRun, NoColor, Verbose) that is on
// in defaults. Switches can only be
// enabled this way, never disabled, so the command line always wins when it
// asks for something.
func (c RunConfig) Merge(defaults RunConfig) RunConfig {
	c.DryRun = c.DryRun || defaults.DryRun
	c.NoColor = c.NoColor || defaults.NoColor
	c.Verbose = c.Verbose || defaults.Verbose
	return c
}
