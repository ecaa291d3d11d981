// Package split orchestrates the docsplit pipelines. A source document is
// segmented into categories, every category's links become numbered
// records, each record is materialized as a standalone page and every
// category gets a summary.
package split

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/fwojciec/docsplit"
)

// EventType identifies a progress event.
type EventType int

const (
	// EventSegmented is emitted once with every category found.
	EventSegmented EventType = iota
	// EventCategoryStarted is emitted before a category's records are
	// processed. Total is the number of candidate links.
	EventCategoryStarted
	// EventLinkSkipped is emitted for a link without an article identifier.
	EventLinkSkipped
	// EventExisting is emitted when a record's page is already present.
	EventExisting
	// EventSaved is emitted after a record's page is written.
	EventSaved
	// EventFailed is emitted after an error report is written.
	EventFailed
	// EventCategoryFinished is emitted after the summary is written.
	// Total is the number of summary entries.
	EventCategoryFinished
	// EventCategorySkipped is emitted for a category whose name cannot
	// name an output directory. Err holds the reason.
	EventCategorySkipped
)

// Event reports progress during a run.
type Event struct {
	Type       EventType
	Categories []docsplit.Category
	Category   string
	// Position is the 1-based link position within the category, and
	// Total the number of links; skipped links keep their position.
	Position  int
	Total     int
	Title     string
	ArticleID string
	Filename  string
	Err       error
}

// ProgressFunc is a callback for reporting progress.
type ProgressFunc func(event Event)

// Result holds the outcome of a run.
type Result struct {
	Categories int
	Saved      int
	Existing   int
	Failed     int
	Skipped    int
	// SkippedCategories counts categories left out for an invalid name.
	SkippedCategories int
}

// notify calls progress when it is set.
func notify(progress ProgressFunc, event Event) {
	if progress != nil {
		progress(event)
	}
}

// segment splits document and reports the categories found.
func segment(seg docsplit.Segmenter, document string, progress ProgressFunc) ([]docsplit.Category, error) {
	categories, err := seg.Segment(document)
	if err != nil {
		return nil, fmt.Errorf("segment: %w", err)
	}
	notify(progress, Event{Type: EventSegmented, Categories: categories})
	return categories, nil
}

// skipInvalid reports whether c cannot be written, emitting the skip event
// when it cannot. The rest of the document is still processed.
func skipInvalid(c *docsplit.Category, result *Result, progress ProgressFunc) bool {
	err := c.Validate()
	if err == nil {
		return false
	}
	notify(progress, Event{Type: EventCategorySkipped, Category: c.Name, Err: err})
	result.SkippedCategories++
	return true
}

// writeSummary replaces the category summary, even when it has no entries.
func writeSummary(ctx context.Context, store docsplit.OutputStore, manifest *docsplit.Manifest, progress ProgressFunc) error {
	if err := store.WriteFile(ctx, manifest.Category, docsplit.SummaryFilename, docsplit.FormatManifest(manifest)); err != nil {
		return fmt.Errorf("write summary %s: %w", manifest.Category, err)
	}
	notify(progress, Event{
		Type:     EventCategoryFinished,
		Category: manifest.Category,
		Total:    len(manifest.Entries),
		Filename: docsplit.SummaryFilename,
	})
	return nil
}

// recordIndex stores an index entry when an index is configured.
func recordIndex(ctx context.Context, index docsplit.IndexService, category string, rec *docsplit.Record, name string, status docsplit.EntryStatus, content string) error {
	if index == nil {
		return nil
	}
	err := index.RecordEntry(ctx, &docsplit.IndexEntry{
		Category:  category,
		Ordinal:   rec.Ordinal,
		Title:     rec.Title,
		ArticleID: rec.ArticleID,
		Href:      rec.Href,
		FilePath:  path.Join(category, name),
		Status:    status,
		Content:   content,
	})
	if err != nil {
		return fmt.Errorf("record index entry %s: %w", name, err)
	}
	return nil
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
