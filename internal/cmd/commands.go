package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/docatom/docatom-go/internal/cmd/base"
	"github.com/docatom/docatom-go/internal/cmd/commands/detect"
	"github.com/docatom/docatom-go/internal/cmd/commands/extract"
	"github.com/docatom/docatom-go/internal/cmd/commands/health"
	versioncmd "github.com/docatom/docatom-go/internal/cmd/commands/version"
)

// Commands is the CLI command registry, populated by initCommands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := &base.Command{
		UI:  ui,
		Log: log,
	}

	Commands = map[string]cli.CommandFactory{
		"health": func() (cli.Command, error) {
			return &health.Command{Command: b}, nil
		},
		"detect": func() (cli.Command, error) {
			return &detect.Command{Command: b}, nil
		},
		"extract": func() (cli.Command, error) {
			return &extract.Command{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &versioncmd.Command{Command: b}, nil
		},
	}
}
