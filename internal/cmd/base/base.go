// Package base carries the pieces shared by every CLI command: the UI and
// logger handles, flag set helpers, and construction of a configured API
// client from flags, config file, and environment.
package base

import (
	"bytes"
	"flag"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
)

// Command is embedded by every CLI command.
type Command struct {
	UI  cli.Ui
	Log hclog.Logger
}

// FlagSet wraps flag.FlagSet with help rendering that fits the CLI's usage
// output.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps fs and silences its default error output; commands render
// usage themselves.
func NewFlagSet(fs *flag.FlagSet) *FlagSet {
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)
	return &FlagSet{FlagSet: fs}
}

// Help renders the flag defaults as an options block appended to a command's
// help text.
func (f *FlagSet) Help() string {
	var buf bytes.Buffer
	f.SetOutput(&buf)
	f.PrintDefaults()
	f.SetOutput(io.Discard)
	if buf.Len() == 0 {
		return ""
	}
	return "\n\nOptions:\n\n" + buf.String()
}
