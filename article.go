package docsplit

import "context"

// NotAvailable stands in for article metadata that is missing.
const NotAvailable = "N/A"

// Article is a help-center article as returned by the remote service.
// Fields the service did not supply are empty.
type Article struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	AuthorID  string `json:"authorId"`
	SectionID string `json:"sectionId"`
	HTMLURL   string `json:"htmlUrl"`
}

// ArticleService retrieves articles from the help-center service.
type ArticleService interface {
	// FindArticleByID fetches the article with the given numeric identifier.
	// Implementations retry transient failures internally; an error means
	// the article could not be retrieved.
	FindArticleByID(ctx context.Context, id string) (*Article, error)
}

// OrNA returns s, or NotAvailable when s is empty.
func OrNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
