package ui_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/srap/pkg/errors"
	"github.com/arthur-debert/srap/pkg/ui"
	"github.com/stretchr/testify/assert"
)

const (
	red     = "\x1b[31;1m"
	magenta = "\x1b[35;1m"
	cyan    = "\x1b[36m"
	green   = "\x1b[32m"
	reset   = "\x1b[0m"
)

func TestPrinter_Colored(t *testing.T) {
	tests := []struct {
		name  string
		print func(p *ui.Printer)
		want  string
	}{
		{
			name:  "dry run",
			print: func(p *ui.Printer) { p.DryRun() },
			want:  red + "Doing a dry run..." + reset + "\n",
		},
		{
			name:  "not found",
			print: func(p *ui.Printer) { p.NotFound("/home/u/.zshrc") },
			want:  cyan + "/home/u/.zshrc" + reset + " " + red + "not found" + reset + "\n",
		},
		{
			name:  "appending",
			print: func(p *ui.Printer) { p.Appending(`alias ll="ls"`, "/home/u/.bashrc") },
			want: magenta + "Appending" + reset + ` "alias ll="ls"" ` + magenta + "to" + reset + " " +
				cyan + "/home/u/.bashrc" + reset + "\n",
		},
		{
			name:  "success",
			print: func(p *ui.Printer) { p.Success() },
			want:  green + "Now source the config file and you're all ready to go! :3" + reset + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(ui.NewPrinter(&buf, false, false))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrinter_Plain(t *testing.T) {
	var buf bytes.Buffer
	p := ui.NewPrinter(&buf, true, false)

	p.DryRun()
	p.NotFound(".kshrc")
	p.Appending("export Y=2", "/tmp/rc")
	p.Success()
	p.HomeWarning(errors.New(errors.ErrEnvLookup, "Couldn't find HOME env var! environment variable not found"))

	assert.Equal(t, "Doing a dry run...\n"+
		".kshrc not found\n"+
		"Appending \"export Y=2\" to /tmp/rc\n"+
		"Now source the config file and you're all ready to go! :3\n"+
		"Couldn't find HOME env var! environment variable not found, continuing...\n",
		buf.String())
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestPrinter_Verbosef(t *testing.T) {
	var quiet, loud bytes.Buffer

	ui.NewPrinter(&quiet, true, false).Verbosef("SHELL: %s", "/bin/zsh")
	ui.NewPrinter(&loud, true, true).Verbosef("SHELL: %s", "/bin/zsh")

	assert.Empty(t, quiet.String())
	assert.Equal(t, "SHELL: /bin/zsh\n", loud.String())
}

func TestPrinter_Error(t *testing.T) {
	var buf bytes.Buffer
	ui.NewPrinter(&buf, true, false).Error(errors.New(errors.ErrUsage, "You must provide a filename"))
	assert.Equal(t, "Error: You must provide a filename\n", buf.String())
}

func TestColorDisabled(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.False(t, ui.ColorDisabled())

	t.Setenv("NO_COLOR", "1")
	assert.True(t, ui.ColorDisabled())
}
