package main

import (
	"fmt"

	"github.com/fwojciec/docsplit"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	if err := requireIndex(deps); err != nil {
		return err
	}

	filter := docsplit.IndexFilter{Limit: c.Limit}
	if c.Category != "" {
		filter.Category = &c.Category
	}
	if c.Status != "" {
		status := docsplit.EntryStatus(c.Status)
		switch status {
		case docsplit.StatusMaterialized, docsplit.StatusExisting, docsplit.StatusFailed:
		default:
			return docsplit.Errorf(docsplit.EINVALID, "unknown status %q", c.Status)
		}
		filter.Status = &status
	}

	entries, err := deps.Index.FindEntries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsplit.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No files recorded. Run 'docsplit split' or 'docsplit download' with --index-db first.")
		return nil
	}

	for _, e := range entries {
		hash := e.ContentHash
		if hash == "" {
			hash = "-"
		}
		fmt.Fprintf(deps.Stdout, "%-12s  %s  %s  %s\n", e.Status, e.RecordedAt.Format("2006-01-02 15:04:05"), hash, e.FilePath)
	}

	return nil
}
