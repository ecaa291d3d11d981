package split

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/docsplit"
)

// Embedder materializes every table row of every category as a page that
// embeds the row itself, and writes an aggregate page per category.
// It makes no network requests.
type Embedder struct {
	Segmenter docsplit.Segmenter
	Links     docsplit.LinkExtractor
	Elements  docsplit.ElementExtractor
	Store     docsplit.OutputStore
	Renderer  docsplit.Renderer

	// Converter, when set, adds a Markdown companion for every saved page.
	Converter docsplit.Converter
	// Index, when set, records the outcome of every record.
	Index docsplit.IndexService
}

// Run processes every category of document in order.
func (e *Embedder) Run(ctx context.Context, document string, progress ProgressFunc) (*Result, error) {
	categories, err := segment(e.Segmenter, document, progress)
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
		if err := e.embedCategory(ctx, document, c, result, progress); err != nil {
			return result, err
		}
		result.Categories++
	}
	return result, nil
}

func (e *Embedder) embedCategory(ctx context.Context, document string, c *docsplit.Category, result *Result, progress ProgressFunc) error {
	section := c.Section(document)

	links, err := e.Links.ExtractLinks(section)
	if err != nil {
		return fmt.Errorf("extract links %s: %w", c.Name, err)
	}

	notify(progress, Event{Type: EventCategoryStarted, Category: c.Name, Total: len(links)})

	manifest := &docsplit.Manifest{Category: c.Name, Source: docsplit.SourceLocal}
	for i, link := range links {
		if err := ctx.Err(); err != nil {
			return err
		}

		rec := docsplit.NewRecord(i+1, link)
		rec.ArticleID, _ = docsplit.ParseArticleID(link.Href)

		if err := e.materialize(ctx, c.Name, rec, len(links), result, progress); err != nil {
			return err
		}
		manifest.Entries = append(manifest.Entries, docsplit.ManifestEntry{
			Ordinal:   rec.Ordinal,
			Title:     rec.Title,
			ArticleID: rec.ArticleID,
			Endpoint:  rec.Endpoint,
			URL:       rec.Href,
		})
	}

	if err := writeSummary(ctx, e.Store, manifest, progress); err != nil {
		return err
	}
	return e.writeAggregate(ctx, c.Name, section, len(manifest.Entries))
}

func (e *Embedder) materialize(ctx context.Context, category string, rec *docsplit.Record, total int, result *Result, progress ProgressFunc) error {
	name := rec.Filename()
	event := Event{
		Category:  category,
		Position:  rec.Ordinal,
		Total:     total,
		Title:     rec.Title,
		ArticleID: rec.ArticleID,
		Filename:  name,
	}

	exists, err := e.Store.Exists(ctx, category, name)
	if err != nil {
		return fmt.Errorf("check %s: %w", name, err)
	}
	if exists {
		event.Type = EventExisting
		notify(progress, event)
		result.Existing++
		return recordIndex(ctx, e.Index, category, rec, name, docsplit.StatusExisting, "")
	}

	page, err := e.Renderer.RenderArticle(&docsplit.ArticlePage{
		Title:    rec.Title,
		Category: category,
		Fields: []docsplit.PageField{
			{Label: "Category", Value: category},
			{Label: "Endpoint", Value: rec.Endpoint},
			{Label: "No", Value: rec.Label},
			{Label: "Original URL", Value: rec.Href},
		},
		Body: rec.Fragment,
	})
	if err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	if err := e.Store.WriteFile(ctx, category, name, page); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := e.writeMarkdown(ctx, category, rec); err != nil {
		return err
	}
	if err := recordIndex(ctx, e.Index, category, rec, name, docsplit.StatusMaterialized, page); err != nil {
		return err
	}

	event.Type = EventSaved
	notify(progress, event)
	result.Saved++
	return nil
}

func (e *Embedder) writeMarkdown(ctx context.Context, category string, rec *docsplit.Record) error {
	if e.Converter == nil || strings.TrimSpace(rec.Fragment) == "" {
		return nil
	}
	// A bare row is not valid outside a table.
	markdown, err := e.Converter.Convert("<table>" + rec.Fragment + "</table>")
	if err != nil {
		return fmt.Errorf("convert %s: %w", rec.Filename(), err)
	}
	content := docsplit.FormatMarkdown(rec.Title, category, rec.Href, markdown)
	if err := e.Store.WriteFile(ctx, category, rec.MarkdownFilename(), content); err != nil {
		return fmt.Errorf("write %s: %w", rec.MarkdownFilename(), err)
	}
	return nil
}

// writeAggregate replaces the page holding every element of the category.
func (e *Embedder) writeAggregate(ctx context.Context, category, section string, total int) error {
	elements, err := e.Elements.ExtractElements(section)
	if err != nil {
		return fmt.Errorf("extract elements %s: %w", category, err)
	}
	page, err := e.Renderer.RenderCategory(&docsplit.CategoryPage{
		Category: category,
		Total:    total,
		Elements: elements,
	})
	if err != nil {
		return fmt.Errorf("render aggregate %s: %w", category, err)
	}
	name := docsplit.AggregateFilename(category)
	if err := e.Store.WriteFile(ctx, category, name, page); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
