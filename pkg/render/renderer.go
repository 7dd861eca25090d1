package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/vango-dev/velem/pkg/dom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables indented output. Inline elements and text stay on
	// their parent's line.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// EventMarkers adds a data-on-<event> attribute for every event an
	// element listens to, so a client script can bind to it.
	EventMarkers bool
}

// Renderer serializes dom trees to HTML. A Renderer holds no per-call state
// and may be reused.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders n to an HTML string.
func (r *Renderer) RenderToString(n *dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams n to w.
func (r *Renderer) RenderToWriter(w io.Writer, n *dom.Node) error {
	ew := &errWriter{w: w}
	r.renderNode(ew, n, 0, "")
	return ew.err
}

// errWriter remembers the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) WriteString(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

// fail records err unless an earlier error is already recorded.
func (e *errWriter) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

// renderNode dispatches on node type. raw is the enclosing script or style
// tag, or "" elsewhere.
func (r *Renderer) renderNode(w *errWriter, n *dom.Node, depth int, raw string) {
	if n == nil {
		return
	}
	switch n.Type {
	case dom.ElementNode:
		r.renderElement(w, n, depth)
	case dom.TextNode:
		if raw != "" {
			w.WriteString(escapeRawText(n.Data, raw))
		} else {
			w.WriteString(escapeText(n.Data))
		}
	case dom.RootNode:
		for _, c := range n.Children {
			r.renderNode(w, c, depth, "")
		}
	default:
		w.fail(fmt.Errorf("render: unknown node type: %d", n.Type))
	}
}

// renderElement renders an element with its attributes and children.
func (r *Renderer) renderElement(w *errWriter, n *dom.Node, depth int) {
	if !dom.ValidTagName(n.Tag) {
		w.fail(&dom.InvalidNameError{Kind: "tag", Name: n.Tag})
		return
	}
	block := r.config.Pretty && !isInlineElement(n.Tag)
	if block && depth > 0 {
		r.writeIndent(w, depth)
	}

	w.WriteString("<")
	w.WriteString(n.Tag)
	r.renderAttributes(w, n)
	w.WriteString(">")

	if dom.IsVoidElement(n.Tag) {
		if block {
			w.WriteString("\n")
		}
		return
	}

	// Only break lines when every child is a block element; mixed content
	// keeps its whitespace exactly.
	blockChildren := block && len(n.Children) > 0
	for _, c := range n.Children {
		if c.Type != dom.ElementNode || isInlineElement(c.Tag) {
			blockChildren = false
			break
		}
	}
	if blockChildren {
		w.WriteString("\n")
	}

	raw := ""
	if rawTextElements[n.Tag] {
		raw = n.Tag
	}
	for _, c := range n.Children {
		if blockChildren {
			r.renderNode(w, c, depth+1, raw)
		} else {
			r.renderInline(w, c, raw)
		}
	}

	if blockChildren {
		r.writeIndent(w, depth)
	}
	w.WriteString("</")
	w.WriteString(n.Tag)
	w.WriteString(">")
	if block {
		w.WriteString("\n")
	}
}

// renderInline renders n without any pretty-printing whitespace.
func (r *Renderer) renderInline(w *errWriter, n *dom.Node, raw string) {
	if !r.config.Pretty || n.Type != dom.ElementNode {
		r.renderNode(w, n, 0, raw)
		return
	}
	compact := *r
	compact.config.Pretty = false
	compact.renderNode(w, n, 0, raw)
}

// renderAttributes renders attributes in insertion order, then event markers.
// A name that would break out of the tag stops rendering with an error.
func (r *Renderer) renderAttributes(w *errWriter, n *dom.Node) {
	for _, a := range n.Attrs {
		if !dom.ValidAttrName(a.Name) {
			w.fail(&dom.InvalidNameError{Kind: "attribute", Name: a.Name})
			return
		}
		w.WriteString(" ")
		w.WriteString(a.Name)
		if a.Value == "" {
			continue
		}
		w.WriteString(`="`)
		w.WriteString(escapeAttr(a.Value))
		w.WriteString(`"`)
	}

	if !r.config.EventMarkers {
		return
	}
	for _, event := range n.Events() {
		if n.HasAttr("data-on-" + event) {
			continue
		}
		if !dom.ValidAttrName(event) {
			w.fail(&dom.InvalidNameError{Kind: "event", Name: event})
			return
		}
		w.WriteString(` data-on-`)
		w.WriteString(strings.ToLower(event))
		w.WriteString(`="true"`)
	}
}

func (r *Renderer) writeIndent(w *errWriter, depth int) {
	w.WriteString(strings.Repeat(r.config.Indent, depth))
}
