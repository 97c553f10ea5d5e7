package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/newsprint"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	html, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot read %q: %v\n", c.File, err)
		return err
	}

	record, err := deps.Parser.Parse(deps.Ctx, string(html), c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsprint.ErrorMessage(err))
		return err
	}

	if c.Markdown {
		md, err := deps.Formatter.Format(record.ContentHTML)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", newsprint.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, md)
		return nil
	}

	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))

	return nil
}
