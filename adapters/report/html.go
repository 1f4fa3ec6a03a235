// Package report renders profile markdown documents to standalone HTML pages
// for the web report route.
package report

import (
	"bytes"
	"fmt"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// HTMLRenderer converts profile markdown into a full HTML document.
type HTMLRenderer struct {
	title string
}

// NewHTMLRenderer creates a renderer with the given page title.
func NewHTMLRenderer(title string) *HTMLRenderer {
	return &HTMLRenderer{title: title}
}

const pageStyle = `body{font-family:sans-serif;max-width:48rem;margin:2rem auto;padding:0 1rem;line-height:1.5}
h1{border-bottom:2px solid #ddd;padding-bottom:.3rem}
h2{margin-top:2rem;color:#333}`

// Render wraps the converted markdown body in a minimal HTML shell.
func (r *HTMLRenderer) Render(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.HardLineBreak)
	doc := p.Parse([]byte(md))

	opts := html.RendererOptions{Flags: html.CommonFlags}
	body := markdown.Render(doc, html.NewRenderer(opts))

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<!DOCTYPE html>\n<html lang=\"ru\">\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n<style>%s</style>\n</head>\n<body>\n", r.title, pageStyle)
	buf.Write(body)
	buf.WriteString("\n</body>\n</html>\n")
	return buf.Bytes()
}
