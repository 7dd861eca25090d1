package render

import (
	"testing"

	"github.com/vango-dev/velem/pkg/dom"
	"github.com/vango-dev/velem/pkg/vdom"
)

// mount mounts el into a fresh root and returns the root.
func mount(t *testing.T, el *vdom.Element) *dom.Node {
	t.Helper()
	doc := dom.NewDocument()
	root := doc.CreateRoot()
	if _, err := vdom.Mount[*dom.Node](doc, el, root); err != nil {
		t.Fatalf("mount: %v", err)
	}
	return root
}

func renderString(t *testing.T, config RendererConfig, n *dom.Node) string {
	t.Helper()
	html, err := NewRenderer(config).RenderToString(n)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return html
}
