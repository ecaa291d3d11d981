package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docsplit"
	"github.com/fwojciec/docsplit/sqlite"
	dsslog "github.com/fwojciec/docsplit/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database holding the run index. Opened only when an index
	// path is configured.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
		kong.Name("docsplit"),
		kong.Description("Split API documentation into one page per article, grouped by category"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docsplit --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose)

	if cli.IndexDB != "" {
		if err := os.MkdirAll(filepath.Dir(cli.IndexDB), 0755); err != nil {
			return err
		}
		m.DB = sqlite.NewDB(cli.IndexDB)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open index at %q: %w", cli.IndexDB, err)
		}
		defer m.Close()

		deps.Index = dsslog.NewLoggingIndexService(sqlite.NewIndexService(m.DB), deps.Logger)
	}

	return kongCtx.Run(deps)
}

// newLogger returns a text logger on w when verbose, or a logger that
// discards everything.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// requireIndex returns an error when no run index is configured.
func requireIndex(deps *Dependencies) error {
	if deps.Index == nil {
		return docsplit.Errorf(docsplit.EINVALID, "no index configured. Use --index-db or set DOCSPLIT_INDEX")
	}
	return nil
}
