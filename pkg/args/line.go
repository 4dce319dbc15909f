package args

import (
	"strings"
)

// BuildLine joins the line tokens with single spaces, prefixes a newline so
// the result can be concatenated straight onto existing file content, and
// applies QuoteAlias.
func BuildLine(tokens []string) string {
	return QuoteAlias("\n" + strings.Join(tokens, " "))
}

// QuoteAlias wraps the value of a simple `alias name=value` line in double
// quotes. It only acts when the line mentions "alias", has no double quote
// yet and has an "=" to anchor on; anything else is returned unchanged.
//
//	alias ll=ls     ->  alias ll="ls"
//	alias ll='ls'   ->  alias ll="'ls'"
func QuoteAlias(line string) string {
	if !strings.Contains(line, "alias") || strings.Contains(line, `"`) {
		return line
	}
	eq := strings.Index(line, "=")
	if eq < 0 {
		return line
	}
	return line[:eq+1] + `"` + line[eq+1:] + `"`
}

// Display returns the line as shown to the user, without its leading newline.
func Display(line string) string {
	return strings.TrimPrefix(line, "\n")
}
