package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/docsplit"
	"github.com/fwojciec/docsplit/split"
)

// progressPrinter writes one line per pipeline event.
func progressPrinter(w io.Writer) split.ProgressFunc {
	return func(e split.Event) {
		switch e.Type {
		case split.EventSegmented:
			fmt.Fprintf(w, "Found %d categories\n", len(e.Categories))
			for _, c := range e.Categories {
				fmt.Fprintf(w, "  - %s (ID: %s)\n", c.Name, c.ID)
			}
		case split.EventCategoryStarted:
			rule := strings.Repeat("=", 60)
			fmt.Fprintf(w, "\n%s\n%s\n%s\n", rule, e.Category, rule)
			fmt.Fprintf(w, "Found %d links\n\n", e.Total)
		case split.EventLinkSkipped:
			fmt.Fprintf(w, "[%d/%d] %s - no article ID, skipped\n", e.Position, e.Total, e.Title)
		case split.EventExisting:
			fmt.Fprintf(w, "[%d/%d] %s - already exists, skipped\n", e.Position, e.Total, e.Title)
		case split.EventSaved:
			fmt.Fprintf(w, "[%d/%d] %s -> %s\n", e.Position, e.Total, e.Title, e.Filename)
		case split.EventFailed:
			fmt.Fprintf(w, "[%d/%d] %s - failed: %v\n", e.Position, e.Total, e.Title, e.Err)
			fmt.Fprintf(w, "    error report: %s\n", e.Filename)
		case split.EventCategorySkipped:
			fmt.Fprintf(w, "\nSkipping category %q: %s\n", e.Category, docsplit.ErrorMessage(e.Err))
		case split.EventCategoryFinished:
			fmt.Fprintf(w, "\nSummary: %s/%s (%d entries)\n", e.Category, e.Filename, e.Total)
		}
	}
}

// printResult writes the closing totals of a run.
func printResult(w io.Writer, r *split.Result, output string) {
	fmt.Fprintf(w, "\nDone: %d categories, %d saved, %d existing, %d failed, %d skipped. Output: %s\n",
		r.Categories, r.Saved, r.Existing, r.Failed, r.Skipped, output)
	if r.SkippedCategories > 0 {
		fmt.Fprintf(w, "%d categories skipped for invalid names\n", r.SkippedCategories)
	}
}
