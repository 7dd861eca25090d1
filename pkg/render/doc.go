// Package render serializes a dom tree as HTML.
//
// It handles the parts of producing valid HTML5 that a host tree does not
// care about:
//
//   - Text and attribute escaping
//   - Void elements (input, br, img, ...)
//   - Bare boolean attributes (an attribute whose value is empty)
//   - Optional pretty printing
//   - Optional data-on-* markers for elements with listeners
//
// # Basic Usage
//
//	doc := dom.NewDocument()
//	root := doc.CreateRoot()
//	vdom.Mount[*dom.Node](doc, el, root)
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(root)
//
// A root node renders as its children only.
//
// # Full Page Rendering
//
//	err := r.RenderPage(w, render.PageData{Title: "Preview", Body: root})
package render
