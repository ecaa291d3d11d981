package docsplit

// PageField is one labelled line in the info box of an article page.
// When Href is set the value is rendered as a link.
type PageField struct {
	Label string
	Value string
	Href  string
}

// ArticlePage is the input to the article page shell.
type ArticlePage struct {
	Title    string
	Category string
	Fields   []PageField
	// Body is trusted markup and is embedded without escaping.
	Body string
}

// CategoryPage is the input to the aggregate page of a category.
type CategoryPage struct {
	Category string
	Total    int
	Elements []string
}

// Renderer wraps extracted content in the fixed page shell.
type Renderer interface {
	RenderArticle(page *ArticlePage) (string, error)
	RenderCategory(page *CategoryPage) (string, error)
}
