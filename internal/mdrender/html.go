// Package mdrender turns model answers into HTML for the web result page.
package mdrender

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// ToHTML renders markdown with GitHub-style tables. The answer comes from a
// remote model, so raw HTML is dropped and links to anything other than
// http(s), mailto, ftp or relative paths are rendered as plain text.
func ToHTML(md string) string {
	if md == "" {
		return ""
	}
	// A parser cannot be reused across documents.
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.NoEmptyLineBeforeBlock)
	doc := p.Parse([]byte(md))

	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.SkipHTML | html.Safelink | html.NofollowLinks | html.NoreferrerLinks | html.HrefTargetBlank,
	})
	return string(markdown.Render(doc, renderer))
}
