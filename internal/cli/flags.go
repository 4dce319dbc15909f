package cli

import (
	"github.com/arthur-debert/srap/pkg/args"
	"github.com/spf13/pflag"
)

// namedValue is a string flag whose usage shows name instead of "string".
type namedValue struct {
	value string
	name  string
}

func (v *namedValue) String() string     { return v.value }
func (v *namedValue) Set(s string) error { v.value = s; return nil }
func (v *namedValue) Type() string       { return v.name }

// addFlags declares srap's flags so cobra can render them in the help
// text. The command line itself is scanned by pkg/args.
func addFlags(fs *pflag.FlagSet) {
	for _, f := range args.Flags {
		if f.Value != "" {
			fs.VarP(&namedValue{name: f.Value}, f.Name(), f.Shorthand(), f.Usage)
			continue
		}
		fs.BoolP(f.Name(), f.Shorthand(), false, f.Usage)
	}
}
