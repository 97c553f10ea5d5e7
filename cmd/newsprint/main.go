package main

import (
	"context"
	"fmt"
	"io"
	stdslog "log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/fwojciec/newsprint"
	"github.com/fwojciec/newsprint/dateparse"
	"github.com/fwojciec/newsprint/goquery"
	"github.com/fwojciec/newsprint/htmltomarkdown"
	"github.com/fwojciec/newsprint/language"
	logslog "github.com/fwojciec/newsprint/slog"
	"github.com/fwojciec/newsprint/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RecordStore newsprint.RecordStore
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("newsprint"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'newsprint --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set NEWSPRINT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.RecordStore = sqlite.NewRecordService(m.DB)
	deps.DB = m.DB
	deps.Records = m.RecordStore
	deps.Formatter = htmltomarkdown.NewFormatter()

	// Wire the parser from the command's config file, if any
	configPath := ""
	switch cmd {
	case "parse":
		configPath = cli.Parse.Config
	case "batch":
		configPath = cli.Batch.Config
	}
	cfg := newsprint.DefaultConfig()
	if configPath != "" {
		cfg, err = newsprint.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config %q: %w", configPath, err)
		}
	}
	deps.Parser, err = goquery.NewParser(cfg, dateparse.NewParser(), language.NewValidator())
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if cli.Verbose {
		logger := stdslog.New(stdslog.NewTextHandler(stderr, &stdslog.HandlerOptions{
			Level: stdslog.LevelDebug,
		}))
		deps.Parser = logslog.NewLoggingParser(deps.Parser, logger)
		deps.Records = logslog.NewLoggingRecordStore(deps.Records, logger)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("NEWSPRINT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "newsprint.db"
	}
	dir := filepath.Join(home, ".newsprint")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "newsprint.db")
}
