package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/docsplit"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Index  docsplit.IndexService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Log diagnostics to stderr"`
	IndexDB string `name:"index-db" env:"DOCSPLIT_INDEX" help:"Record every output file in a SQLite index at this path"`

	Split    SplitCmd    `cmd:"" help:"Split a local document into one page per table row"`
	Download DownloadCmd `cmd:"" help:"Download every article linked from a document"`
	Index    IndexCmd    `cmd:"" help:"List files recorded in the index"`
}

// SourceFlags are the flags shared by the split and download commands.
type SourceFlags struct {
	Input    string `short:"i" default:"doc/main.html" help:"Source HTML document"`
	Heading  string `default:"h2" help:"Heading tag that starts a category"`
	Markdown bool   `short:"m" help:"Also write a Markdown file next to every page"`
}

// SplitCmd is the "split" subcommand.
type SplitCmd struct {
	SourceFlags `embed:""`
	Output string `short:"o" default:"api_docs" help:"Output directory"`
}

// DownloadCmd is the "download" subcommand.
type DownloadCmd struct {
	SourceFlags `embed:""`
	Output     string        `short:"o" default:"api_docs_zendesk" help:"Output directory"`
	Links      string        `enum:"anchors,table" default:"anchors" help:"Where article links are read from: every anchor, or table rows only (${enum})"`
	BaseURL    string        `name:"base-url" default:"https://midas-support.zendesk.com/api/v2/help_center" help:"Help-center API base URL"`
	Locale     string        `default:"en-us" help:"Help-center locale"`
	ArticleURL string        `name:"article-url" default:"https://support.midasuser.com/hc/en-us/articles" help:"Public article URL prefix"`
	Email      string        `env:"DOCSPLIT_EMAIL" help:"Help-center account email"`
	Password   string        `env:"DOCSPLIT_PASSWORD" help:"Help-center account password"`
	Timeout    time.Duration `short:"t" default:"30s" help:"Timeout per request attempt"`
	Attempts   int           `default:"3" help:"Attempts per article"`
	RetryDelay time.Duration `name:"retry-delay" default:"2s" help:"Wait between attempts"`
	Delay      time.Duration `default:"1s" help:"Pause after every downloaded article"`
	RPS        float64       `name:"rps" default:"0" help:"Maximum requests per second (0 for no limit)"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Category string `short:"c" help:"Only list files of this category"`
	Status   string `short:"s" help:"Only list files with this status: materialized, existing or failed"`
	Limit    int    `short:"n" default:"0" help:"Maximum number of files to list (0 for all)"`
}
