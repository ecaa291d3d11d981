package docsplit

// LinkExtractor finds article links in a category section.
type LinkExtractor interface {
	// ExtractLinks returns candidate links in document order.
	// The section starts with the category heading.
	ExtractLinks(section string) ([]Link, error)
}

// ElementExtractor returns the markup of every element that belongs to a
// category section, excluding the heading itself.
type ElementExtractor interface {
	ExtractElements(section string) ([]string, error)
}
