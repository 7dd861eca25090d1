package dom

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vango-dev/velem/pkg/vdom"
)

// Sentinel errors returned by Document primitives.
var (
	// ErrNilNode is returned when a primitive receives a nil node.
	ErrNilNode = errors.New("dom: nil node")

	// ErrNotContainer is returned when appending to a text node.
	ErrNotContainer = errors.New("dom: node cannot have children")

	// ErrAttached is returned when appending a node that already has a parent.
	ErrAttached = errors.New("dom: node already attached")

	// ErrUnknownTag is returned by a strict document for tags it does not know.
	ErrUnknownTag = errors.New("dom: unknown tag")

	// ErrVoidElement is returned when giving children to a void element.
	ErrVoidElement = errors.New("dom: void element cannot have children")
)

// Option configures a Document.
type Option func(*Document)

// WithStrictTags makes CreateNode reject tags that are neither standard
// HTML elements nor custom elements (names containing a dash).
func WithStrictTags() Option {
	return func(d *Document) {
		d.strict = true
	}
}

// WithLogger sets the logger used for debug tracing of primitives.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Document) {
		d.logger = logger
	}
}

// Document creates nodes and implements vdom.Host[*Node].
//
// Like an HTML document in a browser, it folds tag names to lower case:
// CreateNode("DIV") creates a node whose Tag is "div". Tag, attribute and
// event names that could not be serialized as written fail with
// *InvalidNameError.
type Document struct {
	strict bool
	logger *slog.Logger
	nodes  int
}

var _ vdom.Host[*Node] = (*Document)(nil)

// NewDocument creates a new Document.
func NewDocument(opts ...Option) *Document {
	d := &Document{}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	return d
}

// CreateRoot returns an empty container node to mount into.
func (d *Document) CreateRoot() *Node {
	return &Node{Type: RootNode}
}

// NodeCount returns how many nodes this document has created.
func (d *Document) NodeCount() int {
	return d.nodes
}

// CreateNode implements vdom.Host. The tag is lower-cased.
func (d *Document) CreateNode(tag string) (*Node, error) {
	if !ValidTagName(tag) {
		return nil, &InvalidNameError{Kind: "tag", Name: tag}
	}
	tag = strings.ToLower(tag)
	if d.strict && !IsKnownTag(tag) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTag, tag)
	}
	d.nodes++
	d.logger.Debug("dom create", "tag", tag)
	return &Node{Type: ElementNode, Tag: tag}, nil
}

// CreateText implements vdom.Host.
func (d *Document) CreateText(text string) (*Node, error) {
	d.nodes++
	return &Node{Type: TextNode, Data: text}, nil
}

// SetAttribute implements vdom.Host.
func (d *Document) SetAttribute(n *Node, name, value string) error {
	if n == nil {
		return ErrNilNode
	}
	if n.Type != ElementNode {
		return fmt.Errorf("dom: set attribute %q on %s node", name, n.Type)
	}
	if !ValidAttrName(name) {
		return &InvalidNameError{Kind: "attribute", Name: name}
	}
	n.setAttr(name, value)
	return nil
}

// SetEventListener implements vdom.Host.
func (d *Document) SetEventListener(n *Node, event string, h vdom.Handler) error {
	if n == nil {
		return ErrNilNode
	}
	if n.Type != ElementNode {
		return fmt.Errorf("dom: listen for %q on %s node", event, n.Type)
	}
	if !ValidAttrName(event) {
		return &InvalidNameError{Kind: "event", Name: event}
	}
	n.addListener(event, h)
	d.logger.Debug("dom listen", "tag", n.Tag, "event", event)
	return nil
}

// SetTextContent implements vdom.Host. Existing children are detached; an
// empty text leaves the node without children.
func (d *Document) SetTextContent(n *Node, text string) error {
	if n == nil {
		return ErrNilNode
	}
	if n.Type == TextNode {
		n.Data = text
		return nil
	}
	if text != "" && n.Type == ElementNode && IsVoidElement(n.Tag) {
		return fmt.Errorf("%w: %s", ErrVoidElement, n.Tag)
	}
	n.Clear()
	if text == "" {
		return nil
	}
	d.nodes++
	n.appendChild(&Node{Type: TextNode, Data: text})
	return nil
}

// AppendChild implements vdom.Host.
func (d *Document) AppendChild(parent, child *Node) error {
	if parent == nil || child == nil {
		return ErrNilNode
	}
	if parent.Type == TextNode {
		return ErrNotContainer
	}
	if parent.Type == ElementNode && IsVoidElement(parent.Tag) {
		return fmt.Errorf("%w: %s", ErrVoidElement, parent.Tag)
	}
	if child.Parent != nil {
		return ErrAttached
	}
	if child.Type == RootNode {
		return fmt.Errorf("dom: cannot append a root node")
	}
	parent.appendChild(child)
	return nil
}
