package dom

import "strings"

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

var knownTags = func() map[string]bool {
	m := make(map[string]bool)
	for _, t := range []string{
		"html", "head", "body", "title", "meta", "link", "base", "header",
		"footer", "main", "nav", "section", "article", "aside", "address", "h1",
		"h2", "h3", "h4", "h5", "h6", "hgroup", "div", "p",
		"span", "pre", "blockquote", "ul", "ol", "li", "dl", "dt",
		"dd", "hr", "figure", "figcaption", "a", "strong", "em", "b",
		"i", "u", "s", "small", "mark", "sub", "sup", "code",
		"kbd", "samp", "var", "abbr", "time", "cite", "q", "dfn",
		"ruby", "rt", "rp", "bdi", "bdo", "data", "br", "wbr",
		"form", "input", "textarea", "select", "option", "optgroup", "button", "label",
		"fieldset", "legend", "datalist", "output", "progress", "meter", "table", "thead",
		"tbody", "tfoot", "tr", "th", "td", "caption", "colgroup", "col",
		"img", "picture", "source", "video", "audio", "track", "iframe", "embed",
		"object", "param", "canvas", "svg", "math", "map", "area", "details",
		"summary", "dialog", "menu", "script", "noscript", "template", "slot", "style",
	} {
		m[t] = true
	}
	return m
}()

// IsKnownTag reports whether tag is a standard HTML element or a custom
// element name (contains a dash).
func IsKnownTag(tag string) bool {
	return knownTags[tag] || strings.Contains(tag, "-")
}
