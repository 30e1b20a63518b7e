package section

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// md renders free text. Raw HTML in the source is escaped (goldmark's
// default), so the result is safe to mark as template.HTML.
var md = goldmark.New(
	goldmark.WithRendererOptions(html.WithXHTML()),
)

// Markdown renders s as a Markdown fragment. If conversion fails the text is
// escaped and returned as a single paragraph.
func Markdown(s string) template.HTML {
	if s == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(s), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(s) + "</p>")
	}
	return template.HTML(buf.String())
}
