package version

import (
	"github.com/docatom/docatom-go/internal/cmd/base"
	"github.com/docatom/docatom-go/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the docatom version"
}

func (c *Command) Help() string {
	return `Usage: docatom version

Prints the client version.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.Version)
	return 0
}
