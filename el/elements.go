// This file defines element constructors for common HTML tags.
package el

import "github.com/vango-dev/velem/pkg/vdom"

func Html(args ...any) *vdom.Element {
	return Element("html", args...)
}
func Head(args ...any) *vdom.Element {
	return Element("head", args...)
}
func Body(args ...any) *vdom.Element {
	return Element("body", args...)
}
func Title(args ...any) *vdom.Element {
	return Element("title", args...)
}
func Meta(args ...any) *vdom.Element {
	return Element("meta", args...)
}
func LinkEl(args ...any) *vdom.Element {
	return Element("link", args...)
}
func Header(args ...any) *vdom.Element {
	return Element("header", args...)
}
func Footer(args ...any) *vdom.Element {
	return Element("footer", args...)
}
func Main(args ...any) *vdom.Element {
	return Element("main", args...)
}
func Nav(args ...any) *vdom.Element {
	return Element("nav", args...)
}
func Section(args ...any) *vdom.Element {
	return Element("section", args...)
}
func Article(args ...any) *vdom.Element {
	return Element("article", args...)
}
func Aside(args ...any) *vdom.Element {
	return Element("aside", args...)
}
func H1(args ...any) *vdom.Element {
	return Element("h1", args...)
}
func H2(args ...any) *vdom.Element {
	return Element("h2", args...)
}
func H3(args ...any) *vdom.Element {
	return Element("h3", args...)
}
func H4(args ...any) *vdom.Element {
	return Element("h4", args...)
}
func Div(args ...any) *vdom.Element {
	return Element("div", args...)
}
func P(args ...any) *vdom.Element {
	return Element("p", args...)
}
func Span(args ...any) *vdom.Element {
	return Element("span", args...)
}
func Pre(args ...any) *vdom.Element {
	return Element("pre", args...)
}
func Blockquote(args ...any) *vdom.Element {
	return Element("blockquote", args...)
}
func Ul(args ...any) *vdom.Element {
	return Element("ul", args...)
}
func Ol(args ...any) *vdom.Element {
	return Element("ol", args...)
}
func Li(args ...any) *vdom.Element {
	return Element("li", args...)
}
func Hr(args ...any) *vdom.Element {
	return Element("hr", args...)
}
func Br(args ...any) *vdom.Element {
	return Element("br", args...)
}
func A(args ...any) *vdom.Element {
	return Element("a", args...)
}
func Strong(args ...any) *vdom.Element {
	return Element("strong", args...)
}
func Em(args ...any) *vdom.Element {
	return Element("em", args...)
}
func Code(args ...any) *vdom.Element {
	return Element("code", args...)
}
func Small(args ...any) *vdom.Element {
	return Element("small", args...)
}
func Form(args ...any) *vdom.Element {
	return Element("form", args...)
}
func Input(args ...any) *vdom.Element {
	return Element("input", args...)
}
func Textarea(args ...any) *vdom.Element {
	return Element("textarea", args...)
}
func Select(args ...any) *vdom.Element {
	return Element("select", args...)
}
func Option(args ...any) *vdom.Element {
	return Element("option", args...)
}
func Button(args ...any) *vdom.Element {
	return Element("button", args...)
}
func Label(args ...any) *vdom.Element {
	return Element("label", args...)
}
func Table(args ...any) *vdom.Element {
	return Element("table", args...)
}
func Thead(args ...any) *vdom.Element {
	return Element("thead", args...)
}
func Tbody(args ...any) *vdom.Element {
	return Element("tbody", args...)
}
func Tr(args ...any) *vdom.Element {
	return Element("tr", args...)
}
func Th(args ...any) *vdom.Element {
	return Element("th", args...)
}
func Td(args ...any) *vdom.Element {
	return Element("td", args...)
}
func Img(args ...any) *vdom.Element {
	return Element("img", args...)
}
func Video(args ...any) *vdom.Element {
	return Element("video", args...)
}
func Audio(args ...any) *vdom.Element {
	return Element("audio", args...)
}
func Script(args ...any) *vdom.Element {
	return Element("script", args...)
}
func StyleEl(args ...any) *vdom.Element {
	return Element("style", args...)
}
