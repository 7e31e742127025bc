package health

import (
	"context"
	"flag"
	"fmt"

	"github.com/docatom/docatom-go/internal/cmd/base"
)

type Command struct {
	*base.Command

	clientFlags base.ClientFlags
}

func (c *Command) Synopsis() string {
	return "Check connectivity to the DocumentAtom server"
}

func (c *Command) Help() string {
	return `Usage: docatom health [options]

Issues a reachability check against the server's health endpoint. Exits 0
when the server answers with a 2xx status, 1 when it answers with anything
else, and 2 when the server cannot be reached at all.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("health", flag.ContinueOnError))
	c.clientFlags.Register(f)
	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	client, err := c.NewClient(&c.clientFlags)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	healthy, err := client.Connectivity.Validate(context.Background())
	if err != nil {
		c.UI.Error(fmt.Sprintf("cannot reach %s: %v", client.Endpoint(), err))
		return 2
	}
	if !healthy {
		c.UI.Error(fmt.Sprintf("%s is reachable but unhealthy", client.Endpoint()))
		return 1
	}

	c.UI.Output(fmt.Sprintf("%s is healthy", client.Endpoint()))
	return 0
}
