package docsplit

import "strings"

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}

// FormatMarkdown formats a Markdown companion file with YAML frontmatter.
func FormatMarkdown(title, category, source, content string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(source)
	b.WriteString("\ntitle: ")
	b.WriteString(title)
	b.WriteString("\ncategory: ")
	b.WriteString(category)
	b.WriteString("\n---\n\n")
	b.WriteString(content)
	return b.String()
}
