package detect

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/docatom/docatom-go/internal/cmd/base"
	"github.com/docatom/docatom-go/pkg/fileinput"
)

type Command struct {
	*base.Command

	clientFlags base.ClientFlags
	flagJSON    bool
}

func (c *Command) Synopsis() string {
	return "Detect the type of a document"
}

func (c *Command) Help() string {
	return `Usage: docatom detect [options] FILE

Uploads FILE to the server's type detection endpoint and prints the detected
format.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("detect", flag.ContinueOnError))
	c.clientFlags.Register(f)
	f.BoolVar(&c.flagJSON, "json", false, "Print the full result as JSON")
	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if len(f.Args()) != 1 {
		c.UI.Error("exactly one FILE argument is required")
		return 1
	}
	path := f.Args()[0]

	client, err := c.NewClient(&c.clientFlags)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	result, err := client.TypeDetection.Detect(context.Background(), fileinput.Path(path))
	if err != nil {
		c.UI.Error(fmt.Sprintf("detecting %s: %v", path, err))
		return 1
	}

	if c.flagJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			c.UI.Error(err.Error())
			return 1
		}
		c.UI.Output(string(out))
		return 0
	}

	if result.Confidence > 0 {
		c.UI.Output(fmt.Sprintf("%s: %s (confidence %.2f)", path, result.FileType, result.Confidence))
	} else {
		c.UI.Output(fmt.Sprintf("%s: %s", path, result.FileType))
	}
	return 0
}
