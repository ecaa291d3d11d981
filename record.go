package docsplit

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Link is an article reference found in a category section, before it has
// been accepted as a Record.
type Link struct {
	Href  string
	Title string

	// Label and Endpoint are the first two cells of a table row.
	// Both are empty for links found outside tables.
	Label    string
	Endpoint string

	// Fragment is the markup the link was found in.
	Fragment string
}

// Record is a normalized reference to one article within a category.
type Record struct {
	Ordinal   int    `json:"ordinal"`
	Title     string `json:"title"`
	Href      string `json:"href"`
	ArticleID string `json:"articleId,omitempty"`
	Label     string `json:"label,omitempty"`
	Endpoint  string `json:"endpoint,omitempty"`
	Fragment  string `json:"-"`
}

// NewRecord returns the record for an accepted link.
func NewRecord(ordinal int, link Link) *Record {
	return &Record{
		Ordinal:  ordinal,
		Title:    link.Title,
		Href:     link.Href,
		Label:    link.Label,
		Endpoint: link.Endpoint,
		Fragment: link.Fragment,
	}
}

// Filename returns the name of the record's article file.
func (r *Record) Filename() string {
	return r.basename() + ".html"
}

// ErrorFilename returns the name of the report written when the record's
// article could not be fetched.
func (r *Record) ErrorFilename() string {
	return r.basename() + "_ERROR.txt"
}

// MarkdownFilename returns the name of the record's Markdown companion file.
func (r *Record) MarkdownFilename() string {
	return r.basename() + ".md"
}

func (r *Record) basename() string {
	return fmt.Sprintf("%03d_%s", r.Ordinal, SanitizeTitle(r.Title))
}

// articleIDRe matches help-center article paths such as
// https://support.example.com/hc/en-us/articles/360012345678-Title.
var articleIDRe = regexp.MustCompile(`/articles/(\d+)`)

// ParseArticleID returns the numeric article identifier embedded in href.
func ParseArticleID(href string) (string, bool) {
	m := articleIDRe.FindStringSubmatch(href)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// SanitizeTitle converts a title into a string that is safe to use as part
// of a file name. Characters invalid in paths, arrow glyphs, control
// characters and parentheses are removed, and whitespace runs become a
// single underscore. Sanitizing an already sanitized title is a no-op.
func SanitizeTitle(title string) string {
	cleaned := strings.Map(func(r rune) rune {
		if isFilenameReserved(r) || isArrow(r) || r == '(' || r == ')' {
			return -1
		}
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, title)
	return strings.Join(strings.Fields(cleaned), "_")
}

func isFilenameReserved(r rune) bool {
	return strings.ContainsRune(`<>:"/\|?*&`, r)
}

func isArrow(r rune) bool {
	switch {
	case r >= 0x2190 && r <= 0x21FF: // Arrows
		return true
	case r >= 0x27F0 && r <= 0x27FF: // Supplemental Arrows-A
		return true
	case r >= 0x2900 && r <= 0x297F: // Supplemental Arrows-B
		return true
	case r >= 0x2B00 && r <= 0x2BFF: // Miscellaneous Symbols and Arrows
		return true
	}
	return false
}
