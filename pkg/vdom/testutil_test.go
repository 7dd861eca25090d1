package vdom

import (
	"errors"
	"fmt"
)

// fakeNode is a node of fakeHost's tree.
type fakeNode struct {
	tag       string // "" for text nodes
	text      string
	attrs     map[string]string
	listeners map[string][]Handler
	children  []*fakeNode
	parent    *fakeNode
}

// fakeHost records every primitive call.
type fakeHost struct {
	ops     []string
	created []*fakeNode     // element nodes in creation order
	refuse  map[string]bool // tags CreateNode rejects
}

var errRefused = errors.New("tag refused")

func newFakeHost() *fakeHost {
	return &fakeHost{refuse: map[string]bool{}}
}

func (h *fakeHost) CreateNode(tag string) (*fakeNode, error) {
	h.ops = append(h.ops, "create "+tag)
	if h.refuse[tag] {
		return nil, errRefused
	}
	n := &fakeNode{tag: tag, attrs: map[string]string{}, listeners: map[string][]Handler{}}
	h.created = append(h.created, n)
	return n, nil
}

func (h *fakeHost) CreateText(text string) (*fakeNode, error) {
	h.ops = append(h.ops, fmt.Sprintf("text %q", text))
	return &fakeNode{text: text}, nil
}

func (h *fakeHost) SetAttribute(n *fakeNode, name, value string) error {
	h.ops = append(h.ops, fmt.Sprintf("attr %s=%q", name, value))
	n.attrs[name] = value
	return nil
}

func (h *fakeHost) SetEventListener(n *fakeNode, event string, fn Handler) error {
	h.ops = append(h.ops, "listen "+event)
	n.listeners[event] = append(n.listeners[event], fn)
	return nil
}

func (h *fakeHost) SetTextContent(n *fakeNode, text string) error {
	h.ops = append(h.ops, fmt.Sprintf("content %q", text))
	n.children = []*fakeNode{{text: text, parent: n}}
	return nil
}

func (h *fakeHost) AppendChild(parent, child *fakeNode) error {
	h.ops = append(h.ops, "append "+child.label()+" to "+parent.label())
	child.parent = parent
	parent.children = append(parent.children, child)
	return nil
}

func (n *fakeNode) label() string {
	if n.tag == "" {
		return "#text"
	}
	return n.tag
}

// textContent concatenates the text of n's subtree.
func (n *fakeNode) textContent() string {
	if n.tag == "" {
		return n.text
	}
	s := ""
	for _, c := range n.children {
		s += c.textContent()
	}
	return s
}

func newContainer() *fakeNode {
	return &fakeNode{tag: "#root", attrs: map[string]string{}, listeners: map[string][]Handler{}}
}
