package split

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/docsplit"
)

// DefaultDelay is the pause after every successful article fetch.
const DefaultDelay = time.Second

// Downloader materializes the articles linked from every category of a
// document by fetching them from the help-center service.
type Downloader struct {
	Segmenter docsplit.Segmenter
	Links     docsplit.LinkExtractor
	Articles  docsplit.ArticleService
	Store     docsplit.OutputStore
	Renderer  docsplit.Renderer

	// Converter, when set, adds a Markdown companion for every saved page.
	Converter docsplit.Converter
	// Index, when set, records the outcome of every record.
	Index docsplit.IndexService

	// ArticleURL is the canonical article URL prefix used in summary
	// entries of pages that already existed.
	ArticleURL string
	// Delay is the pause after every successful fetch.
	Delay time.Duration
	// Sleep waits between fetches. Defaults to a context-aware timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Run processes every category of document in order.
func (d *Downloader) Run(ctx context.Context, document string, progress ProgressFunc) (*Result, error) {
	categories, err := segment(d.Segmenter, document, progress)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for i := range categories {
		c := &categories[i]
		if c.Skipped() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if skipInvalid(c, result, progress) {
			continue
		}
		if err := d.downloadCategory(ctx, document, c, result, progress); err != nil {
			return result, err
		}
		result.Categories++
	}
	return result, nil
}

func (d *Downloader) downloadCategory(ctx context.Context, document string, c *docsplit.Category, result *Result, progress ProgressFunc) error {
	links, err := d.Links.ExtractLinks(c.Section(document))
	if err != nil {
		return fmt.Errorf("extract links %s: %w", c.Name, err)
	}

	notify(progress, Event{Type: EventCategoryStarted, Category: c.Name, Total: len(links)})

	manifest := &docsplit.Manifest{Category: c.Name, Source: docsplit.SourceRemote}
	ordinal := 0
	for i, link := range links {
		if err := ctx.Err(); err != nil {
			return err
		}

		event := Event{Category: c.Name, Position: i + 1, Total: len(links), Title: link.Title}

		id, ok := docsplit.ParseArticleID(link.Href)
		if !ok {
			event.Type = EventLinkSkipped
			notify(progress, event)
			result.Skipped++
			continue
		}

		ordinal++
		rec := docsplit.NewRecord(ordinal, link)
		rec.ArticleID = id
		event.ArticleID = id

		entry, err := d.materialize(ctx, c.Name, rec, event, result, progress)
		if err != nil {
			return err
		}
		if entry != nil {
			manifest.Entries = append(manifest.Entries, *entry)
		}
	}

	return writeSummary(ctx, d.Store, manifest, progress)
}

// materialize writes the page for rec, or its error report. It returns the
// summary entry for rec, or nil when the article could not be fetched.
// Errors are returned only for faults that should abort the run.
func (d *Downloader) materialize(ctx context.Context, category string, rec *docsplit.Record, event Event, result *Result, progress ProgressFunc) (*docsplit.ManifestEntry, error) {
	name := rec.Filename()
	event.Filename = name

	exists, err := d.Store.Exists(ctx, category, name)
	if err != nil {
		return nil, fmt.Errorf("check %s: %w", name, err)
	}
	if exists {
		event.Type = EventExisting
		notify(progress, event)
		result.Existing++
		if err := recordIndex(ctx, d.Index, category, rec, name, docsplit.StatusExisting, ""); err != nil {
			return nil, err
		}
		return &docsplit.ManifestEntry{
			Ordinal:   rec.Ordinal,
			Title:     rec.Title,
			ArticleID: rec.ArticleID,
			URL:       strings.TrimRight(d.ArticleURL, "/") + "/" + rec.ArticleID,
		}, nil
	}

	article, err := d.Articles.FindArticleByID(ctx, rec.ArticleID)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, d.fail(ctx, category, rec, err, event, result, progress)
	}

	title := article.Title
	if title == "" {
		title = rec.Title
	}

	page, err := d.Renderer.RenderArticle(&docsplit.ArticlePage{
		Title:    title,
		Category: category,
		Fields:   articleFields(category, rec.ArticleID, article),
		Body:     article.Body,
	})
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	if err := d.Store.WriteFile(ctx, category, name, page); err != nil {
		return nil, fmt.Errorf("write %s: %w", name, err)
	}
	if err := d.writeMarkdown(ctx, category, rec, title, article); err != nil {
		return nil, err
	}
	if err := recordIndex(ctx, d.Index, category, rec, name, docsplit.StatusMaterialized, page); err != nil {
		return nil, err
	}

	event.Type = EventSaved
	notify(progress, event)
	result.Saved++

	if err := d.sleep(ctx); err != nil {
		return nil, err
	}

	return &docsplit.ManifestEntry{
		Ordinal:   rec.Ordinal,
		Title:     rec.Title,
		ArticleID: rec.ArticleID,
		SectionID: article.SectionID,
		URL:       article.HTMLURL,
		UpdatedAt: article.UpdatedAt,
	}, nil
}

// fail writes the error report for rec.
func (d *Downloader) fail(ctx context.Context, category string, rec *docsplit.Record, cause error, event Event, result *Result, progress ProgressFunc) error {
	name := rec.ErrorFilename()
	if err := d.Store.WriteFile(ctx, category, name, docsplit.FormatErrorReport(rec, cause)); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := recordIndex(ctx, d.Index, category, rec, name, docsplit.StatusFailed, ""); err != nil {
		return err
	}

	event.Type = EventFailed
	event.Filename = name
	event.Err = cause
	notify(progress, event)
	result.Failed++
	return nil
}

func (d *Downloader) writeMarkdown(ctx context.Context, category string, rec *docsplit.Record, title string, article *docsplit.Article) error {
	if d.Converter == nil || strings.TrimSpace(article.Body) == "" {
		return nil
	}
	markdown, err := d.Converter.Convert(article.Body)
	if err != nil {
		return fmt.Errorf("convert %s: %w", rec.Filename(), err)
	}
	source := article.HTMLURL
	if source == "" {
		source = rec.Href
	}
	content := docsplit.FormatMarkdown(title, category, source, markdown)
	if err := d.Store.WriteFile(ctx, category, rec.MarkdownFilename(), content); err != nil {
		return fmt.Errorf("write %s: %w", rec.MarkdownFilename(), err)
	}
	return nil
}

func (d *Downloader) sleep(ctx context.Context) error {
	if d.Sleep != nil {
		return d.Sleep(ctx, d.Delay)
	}
	return sleep(ctx, d.Delay)
}

// articleFields lists the metadata shown on a fetched article page.
func articleFields(category, id string, a *docsplit.Article) []docsplit.PageField {
	return []docsplit.PageField{
		{Label: "Category", Value: category},
		{Label: "Article ID", Value: id},
		{Label: "Created", Value: docsplit.OrNA(a.CreatedAt)},
		{Label: "Updated", Value: docsplit.OrNA(a.UpdatedAt)},
		{Label: "Author ID", Value: docsplit.OrNA(a.AuthorID)},
		{Label: "Section ID", Value: docsplit.OrNA(a.SectionID)},
		{Label: "URL", Value: docsplit.OrNA(a.HTMLURL), Href: a.HTMLURL},
	}
}
