package cli

import (
	_ "embed"
	"strings"
)

const (
	MsgRootUse   = "srap [options] <line to append>"
	MsgRootShort = "Append a line to your shell's rc file"

	// Supported shells footer
	MsgSupportedShells = "Supports %s as POSIX-compliant, and %s shells\n(stable for %s, everything else experimental)"

	annotationShells = "shells"
)

var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
