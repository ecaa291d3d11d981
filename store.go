package docsplit

import (
	"context"
	"strings"
)

// Output file names shared by every category directory.
const (
	SummaryFilename         = "_summary.txt"
	AggregateFilenamePrefix = "_ALL_"
)

// AggregateFilename returns the name of a category's aggregate page.
// Path separators in the category name are replaced with underscores.
func AggregateFilename(category string) string {
	return AggregateFilenamePrefix + separatorReplacer.Replace(category) + ".html"
}

var separatorReplacer = strings.NewReplacer("/", "_", `\`, "_")

// OutputStore persists generated files, one directory per category.
type OutputStore interface {
	// Exists reports whether the named file is already present.
	Exists(ctx context.Context, category, name string) (bool, error)

	// WriteFile creates or replaces the named file, creating the
	// category directory when needed.
	WriteFile(ctx context.Context, category, name, content string) error
}
