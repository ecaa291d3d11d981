// Package htmltemplate renders article and category pages with the
// standard library's html/template and embedded page shells.
package htmltemplate

import (
	"embed"
	"html/template"
	"strings"

	"github.com/fwojciec/docsplit"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// ContentUnavailable is the body of an article page whose source has no
// markup.
const ContentUnavailable = "<p>Content unavailable.</p>"

// Ensure Renderer implements docsplit.Renderer at compile time.
var _ docsplit.Renderer = (*Renderer)(nil)

// Renderer wraps content in the fixed page shells.
// Titles and metadata are escaped; bodies and category elements are
// embedded verbatim.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, docsplit.Errorf(docsplit.EINTERNAL, "failed to parse templates: %v", err)
	}
	return &Renderer{templates: tmpl}, nil
}

type articleData struct {
	Title    string
	Category string
	Fields   []docsplit.PageField
	Body     template.HTML
}

// RenderArticle implements docsplit.Renderer.
func (r *Renderer) RenderArticle(page *docsplit.ArticlePage) (string, error) {
	body := page.Body
	if strings.TrimSpace(body) == "" {
		body = ContentUnavailable
	}
	return r.execute("article.html.tmpl", articleData{
		Title:    page.Title,
		Category: page.Category,
		Fields:   page.Fields,
		Body:     template.HTML(body),
	})
}

type categoryData struct {
	Category string
	Total    int
	Elements []template.HTML
}

// RenderCategory implements docsplit.Renderer.
func (r *Renderer) RenderCategory(page *docsplit.CategoryPage) (string, error) {
	elements := make([]template.HTML, 0, len(page.Elements))
	for _, e := range page.Elements {
		elements = append(elements, template.HTML(e))
	}
	return r.execute("category.html.tmpl", categoryData{
		Category: page.Category,
		Total:    page.Total,
		Elements: elements,
	})
}

func (r *Renderer) execute(name string, data any) (string, error) {
	var b strings.Builder
	if err := r.templates.ExecuteTemplate(&b, name, data); err != nil {
		return "", docsplit.Errorf(docsplit.EINTERNAL, "failed to render %s: %v", name, err)
	}
	return b.String(), nil
}
