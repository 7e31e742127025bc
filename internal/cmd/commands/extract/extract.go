package extract

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/docatom/docatom-go/internal/cmd/base"
	"github.com/docatom/docatom-go/pkg/docatom"
	"github.com/docatom/docatom-go/pkg/fileinput"
)

type Command struct {
	*base.Command

	clientFlags base.ClientFlags
	flagFormat  string
	flagOCR     bool
	flagJSON    bool

	ocrSet bool
}

func (c *Command) Synopsis() string {
	return "Extract atoms from one or more documents"
}

func (c *Command) Help() string {
	return `Usage: docatom extract -format=FORMAT [options] FILE...

Uploads each FILE to the server's extraction endpoint for FORMAT and prints
the extracted atoms. Supported formats: ` + formatList() + `.

The -ocr flag requests server-side OCR and only affects the pdf, powerpoint,
and rtf formats.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("extract", flag.ContinueOnError))
	c.clientFlags.Register(f)
	f.StringVar(&c.flagFormat, "format", "", "Document format to extract (required)")
	f.BoolVar(&c.flagOCR, "ocr", false, "Request server-side OCR (pdf, powerpoint, rtf only)")
	f.BoolVar(&c.flagJSON, "json", false, "Print full results as JSON")
	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == "ocr" {
			c.ocrSet = true
		}
	})

	if c.flagFormat == "" {
		c.UI.Error("-format is required")
		return 1
	}
	if len(f.Args()) == 0 {
		c.UI.Error("at least one FILE argument is required")
		return 1
	}

	client, err := c.NewClient(&c.clientFlags)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	var opts []docatom.ExtractOption
	if c.ocrSet {
		opts = append(opts, docatom.WithOCR(c.flagOCR))
	}

	var errs *multierror.Error
	for _, path := range f.Args() {
		if err := c.extractOne(client, path, opts); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", path, err))
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}

func (c *Command) extractOne(client *docatom.Client, path string, opts []docatom.ExtractOption) error {
	result, err := client.AtomExtraction.Extract(context.Background(),
		fileinput.Path(path), docatom.Format(c.flagFormat), opts...)
	if err != nil {
		return err
	}

	if c.flagJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		c.UI.Output(string(out))
		return nil
	}

	c.UI.Output(fmt.Sprintf("%s: %d atoms", path, len(result.Atoms)))
	for i, atom := range result.Atoms {
		label := atom.AtomType
		if label == "" {
			label = "?"
		}
		c.UI.Output(fmt.Sprintf("  [%d] %-6s %s", i, label, truncate(atom.Content, 96)))
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func formatList() string {
	out := ""
	for i, format := range docatom.Formats() {
		if i > 0 {
			out += ", "
		}
		out += string(format)
	}
	return out
}
