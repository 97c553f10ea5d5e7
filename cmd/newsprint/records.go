package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/newsprint"
)

// Run executes the records command.
func (c *RecordsCmd) Run(deps *Dependencies) error {
	filter := newsprint.RecordFilter{
		Offset: c.Offset,
		Limit:  c.Limit,
	}
	if c.URL != "" {
		filter.URL = &c.URL
	}
	if c.Language != "" {
		filter.Language = &c.Language
	}

	records, total, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsprint.ErrorMessage(err))
		return err
	}

	if total == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'newsprint batch' to create some.")
		return nil
	}

	for _, r := range records {
		if c.Full {
			out, err := json.MarshalIndent(r.Record, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(deps.Stdout, string(out))
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			r.ID, r.ParsedAt.Format("2006-01-02 15:04"), r.Language, r.URL)
	}

	fmt.Fprintf(deps.Stdout, "Showing %d of %d records\n", len(records), total)

	return nil
}
