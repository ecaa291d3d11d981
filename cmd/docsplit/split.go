package main

import (
	"github.com/fwojciec/docsplit/fs"
	"github.com/fwojciec/docsplit/goquery"
	dochtml "github.com/fwojciec/docsplit/html"
	"github.com/fwojciec/docsplit/htmltemplate"
	"github.com/fwojciec/docsplit/htmltomarkdown"
	"github.com/fwojciec/docsplit/split"
)

// Run executes the split command.
func (c *SplitCmd) Run(deps *Dependencies) error {
	document, err := fs.ReadDocument(c.Input)
	if err != nil {
		return err
	}

	renderer, err := htmltemplate.NewRenderer()
	if err != nil {
		return err
	}

	embedder := &split.Embedder{
		Segmenter: dochtml.NewSegmenter(dochtml.WithHeadingTag(c.Heading)),
		Links:     goquery.NewTableExtractor(),
		Elements:  goquery.NewElementExtractor(c.Heading),
		Store:     fs.NewStore(c.Output),
		Renderer:  renderer,
		Index:     deps.Index,
	}
	if c.Markdown {
		embedder.Converter = htmltomarkdown.NewConverter()
	}

	result, err := embedder.Run(deps.Ctx, document, progressPrinter(deps.Stdout))
	if result != nil {
		printResult(deps.Stdout, result, c.Output)
	}
	return err
}
