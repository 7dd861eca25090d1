package render

import (
	"io"

	"github.com/vango-dev/velem/pkg/dom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the mounted tree placed inside <body>.
	Body *dom.Node

	// RootID wraps Body in <div id="RootID"> when set.
	RootID string

	// Title is the page title.
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string

	// Scripts contains inline scripts appended to the end of <body>.
	Scripts []string
}

// RenderPage renders a complete HTML document to w.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	ew := &errWriter{w: w}
	ew.WriteString("<!DOCTYPE html>\n")
	ew.WriteString(`<html lang="` + escapeAttr(lang) + `">` + "\n")

	ew.WriteString("<head>\n")
	ew.WriteString(`<meta charset="utf-8">` + "\n")
	if page.Title != "" {
		ew.WriteString("<title>" + escapeText(page.Title) + "</title>\n")
	}
	for _, href := range page.StyleSheets {
		ew.WriteString(`<link rel="stylesheet" href="` + escapeAttr(href) + `">` + "\n")
	}
	ew.WriteString("</head>\n")

	ew.WriteString("<body>\n")
	if page.RootID != "" {
		ew.WriteString(`<div id="` + escapeAttr(page.RootID) + `">`)
	}
	r.renderNode(ew, page.Body, 0, "")
	if page.RootID != "" {
		ew.WriteString("</div>")
	}
	ew.WriteString("\n")
	for _, script := range page.Scripts {
		ew.WriteString("<script>" + escapeRawText(script, "script") + "</script>\n")
	}
	ew.WriteString("</body>\n</html>\n")

	return ew.err
}
