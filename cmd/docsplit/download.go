package main

import (
	"fmt"
	"net/url"
	"time"

	"github.com/fwojciec/docsplit"
	"github.com/fwojciec/docsplit/fs"
	"github.com/fwojciec/docsplit/goquery"
	dochtml "github.com/fwojciec/docsplit/html"
	dshttp "github.com/fwojciec/docsplit/http"
	"github.com/fwojciec/docsplit/htmltemplate"
	"github.com/fwojciec/docsplit/htmltomarkdown"
	dsslog "github.com/fwojciec/docsplit/slog"
	"github.com/fwojciec/docsplit/split"
)

// Run executes the download command.
func (c *DownloadCmd) Run(deps *Dependencies) error {
	if c.Attempts < 1 {
		return docsplit.Errorf(docsplit.EINVALID, "attempts must be at least 1")
	}

	document, err := fs.ReadDocument(c.Input)
	if err != nil {
		return err
	}

	renderer, err := htmltemplate.NewRenderer()
	if err != nil {
		return err
	}

	delays := make([]time.Duration, c.Attempts-1)
	for i := range delays {
		delays[i] = c.RetryDelay
	}

	articles := dshttp.NewArticleService(
		dshttp.Config{
			BaseURL:  c.BaseURL,
			Locale:   c.Locale,
			Email:    c.Email,
			Password: c.Password,
		},
		dshttp.WithTimeout(c.Timeout),
		dshttp.WithRetryDelays(delays),
		dshttp.WithRateLimit(c.RPS),
		dshttp.WithRetryLogger(func(format string, args ...any) {
			fmt.Fprintf(deps.Stdout, "    "+format+"\n", args...)
		}),
	)

	var links docsplit.LinkExtractor = goquery.NewAnchorExtractor()
	if c.Links == "table" {
		links = goquery.NewTableExtractor()
	}

	downloader := &split.Downloader{
		Segmenter:  dochtml.NewSegmenter(dochtml.WithHeadingTag(c.Heading)),
		Links:      links,
		Articles:   dsslog.NewLoggingArticleService(articles, deps.Logger),
		Store:      fs.NewStore(c.Output),
		Renderer:   renderer,
		Index:      deps.Index,
		ArticleURL: c.ArticleURL,
		Delay:      c.Delay,
	}
	if c.Markdown {
		downloader.Converter = htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(origin(c.ArticleURL)))
	}

	result, err := downloader.Run(deps.Ctx, document, progressPrinter(deps.Stdout))
	if result != nil {
		printResult(deps.Stdout, result, c.Output)
	}
	return err
}

// origin returns the scheme and host of rawURL, or an empty string.
func origin(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
