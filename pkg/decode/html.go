package decode

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vango-dev/velem/pkg/vdom"
)

// ErrMultipleRoots is returned for an HTML fragment with more than one
// top-level element.
var ErrMultipleRoots = errors.New("decode: fragment has more than one root element")

// bodyContext parses fragments the way a browser parses body content.
var bodyContext = &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}

// decodeHTML parses an HTML fragment with exactly one root element.
func (d *Decoder) decodeHTML(data []byte) (*vdom.Element, error) {
	nodes, err := html.ParseFragment(bytes.NewReader(data), bodyContext)
	if err != nil {
		return nil, &Error{Err: fmt.Errorf("parse html: %w", err)}
	}

	var root *html.Node
	for _, n := range nodes {
		switch n.Type {
		case html.ElementNode:
			if root != nil {
				return nil, &Error{Err: fmt.Errorf("%w: <%s> after <%s>", ErrMultipleRoots, n.Data, root.Data)}
			}
			root = n
		case html.TextNode:
			if strings.TrimSpace(n.Data) != "" {
				return nil, &Error{Err: fmt.Errorf("%w: text outside the root element", ErrMultipleRoots)}
			}
		}
	}
	if root == nil {
		return nil, &Error{Err: ErrMissingKind}
	}
	return d.htmlElement(root, "")
}

func (d *Decoder) htmlElement(n *html.Node, path string) (*vdom.Element, error) {
	var props vdom.Props
	for _, a := range n.Attr {
		if props == nil {
			props = make(vdom.Props, len(n.Attr))
		}
		if !vdom.IsEventKey(a.Key) {
			props[a.Key] = vdom.String(a.Val)
			continue
		}
		h, ok := d.handlers[a.Val]
		if !ok {
			return nil, &Error{Path: join(path, "props."+a.Key), Err: fmt.Errorf("%w: %q", ErrUnknownHandler, a.Val)}
		}
		props[a.Key] = h
	}

	var children []any
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if strings.TrimSpace(c.Data) == "" {
				continue
			}
			children = append(children, c.Data)
		case html.ElementNode:
			el, err := d.htmlElement(c, fmt.Sprintf("%s[%d]", join(path, "children"), len(children)))
			if err != nil {
				return nil, err
			}
			children = append(children, el)
		}
	}

	el, err := vdom.H(n.Data, props, children...)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	return el, nil
}
