package main

import (
	"context"
	"io"

	"github.com/fwojciec/newsprint"
	"github.com/fwojciec/newsprint/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Parser    newsprint.Parser
	Formatter newsprint.ContentFormatter
	Records   newsprint.RecordStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Parse   ParseCmd   `cmd:"" help:"Parse a single HTML document"`
	Batch   BatchCmd   `cmd:"" help:"Parse a directory of HTML documents and store the records"`
	Records RecordsCmd `cmd:"" help:"List stored records"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored record"`

	Verbose bool `short:"v" help:"Enable verbose logging to stderr"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	File     string `arg:"" help:"Path to the HTML document"`
	URL      string `short:"u" help:"URL the document was fetched from"`
	Config   string `short:"c" type:"path" help:"Path to a YAML config file"`
	Markdown bool   `short:"m" help:"Print the content block as Markdown instead of the record JSON"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Dir         string `arg:"" help:"Directory of .html files"`
	Config      string `short:"c" type:"path" help:"Path to a YAML config file"`
	Concurrency int    `short:"n" default:"4" help:"Concurrent parser limit"`
}

// RecordsCmd is the "records" subcommand.
type RecordsCmd struct {
	URL      string `help:"Filter by record URL"`
	Language string `help:"Filter by language tag"`
	Limit    int    `default:"20" help:"Maximum number of records to show"`
	Offset   int    `help:"Number of records to skip"`
	Full     bool   `help:"Print full record JSON"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Record ID"`
}
