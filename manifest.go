package docsplit

import (
	"errors"
	"strconv"
	"strings"
)

// ManifestSource identifies which pipeline produced a manifest.
type ManifestSource string

// ManifestSource constants.
const (
	SourceRemote ManifestSource = "remote"
	SourceLocal  ManifestSource = "local"
)

// ManifestEntry lists one tracked record in a category summary.
type ManifestEntry struct {
	Ordinal   int    `json:"ordinal"`
	Title     string `json:"title"`
	ArticleID string `json:"articleId,omitempty"`
	Endpoint  string `json:"endpoint,omitempty"`
	SectionID string `json:"sectionId,omitempty"`
	URL       string `json:"url"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Manifest summarizes the records of one category that were materialized
// or found already present. Entries are in record ordinal order.
type Manifest struct {
	Category string          `json:"category"`
	Source   ManifestSource  `json:"source"`
	Entries  []ManifestEntry `json:"entries"`
}

// FormatManifest renders a manifest as the plain-text category summary.
func FormatManifest(m *Manifest) string {
	var b strings.Builder
	b.WriteString("Category: ")
	b.WriteString(m.Category)
	b.WriteString("\nTotal APIs: ")
	b.WriteString(strconv.Itoa(len(m.Entries)))
	b.WriteString("\n\nAPI List:\n")

	for _, e := range m.Entries {
		b.WriteString(strconv.Itoa(e.Ordinal))
		b.WriteString(". ")
		b.WriteString(e.Title)
		b.WriteString("\n")
		if m.Source == SourceRemote {
			writeManifestField(&b, "Article ID", e.ArticleID)
			writeManifestField(&b, "Section ID", OrNA(e.SectionID))
			writeManifestField(&b, "URL", OrNA(e.URL))
			writeManifestField(&b, "Updated", OrNA(e.UpdatedAt))
		} else {
			writeManifestField(&b, "Endpoint", e.Endpoint)
			writeManifestField(&b, "URL", e.URL)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func writeManifestField(b *strings.Builder, label, value string) {
	b.WriteString("   ")
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}

// FormatErrorReport renders the report written in place of an article that
// could not be fetched.
func FormatErrorReport(r *Record, err error) string {
	var b strings.Builder
	b.WriteString("Title: ")
	b.WriteString(r.Title)
	b.WriteString("\nArticle ID: ")
	b.WriteString(r.ArticleID)
	b.WriteString("\nError: ")
	b.WriteString(reportMessage(err))
	b.WriteString("\n")
	return b.String()
}

// reportMessage returns the message of an application error, or the full
// text of any other error.
func reportMessage(err error) string {
	var e *Error
	switch {
	case err == nil:
		return "unknown error"
	case errors.As(err, &e):
		return e.Message
	default:
		return err.Error()
	}
}
