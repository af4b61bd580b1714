package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/flexcms/flexcms"
	"github.com/flexcms/flexcms/fs"
	"github.com/flexcms/flexcms/goquery"
	flexslog "github.com/flexcms/flexcms/slog"
	"github.com/flexcms/flexcms/sqlite"
	"github.com/flexcms/flexcms/trafilatura"
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
	// Cache database path. Set before calling Run().
	DBPath string

	// SQLite database backing the run cache.
	DB *sqlite.DB
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("flexcms"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'flexcms --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The command name comes from the parsed context: global flags may
	// precede it on the command line.
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	logLevel := slog.LevelWarn
	if cli.Verbose {
		logLevel = slog.LevelInfo
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	// The rule table is shared by every extracting command; commands
	// that never extract don't need it to exist.
	rules, err := loadRules(cli.Rules)
	if err != nil && (cmd == "extract" || cmd == "batch") {
		fmt.Fprintln(stderr, "Hint: Set FLEXCMS_RULES or --rules to the region rule config path")
		return err
	}
	deps.Rules = rules

	if cli.Products != "" {
		catalog, err := fs.LoadCatalog(cli.Products)
		if err != nil {
			return err
		}
		deps.Catalog = catalog
	}

	extractor := goquery.NewFlexibleExtractor(deps.Rules, trafilatura.NewExtractor())
	deps.Extractor = flexslog.NewLoggingExtractor(extractor, deps.Logger)

	if cmd == "batch" && !cli.Batch.NoCache {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set FLEXCMS_DB to use a different cache database path")
			return fmt.Errorf("failed to open cache database at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		deps.Cache = sqlite.NewRunCache(m.DB)
	}

	return kongCtx.Run(deps)
}

// loadRules reads the rule table, falling back to an empty table when no
// config path is known.
func loadRules(path string) (*flexcms.RuleTable, error) {
	if path == "" {
		path = os.Getenv("FLEXCMS_RULES")
	}
	if path == "" {
		return flexcms.NewRuleTable(nil), nil
	}
	return fs.LoadRuleTable(path)
}

func defaultDBPath() string {
	if path := os.Getenv("FLEXCMS_DB"); path != "" {
		return path
	}
	return "flexcms-cache.db"
}
