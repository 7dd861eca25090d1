package vdom

// Host is the host tree Mount writes into. N is the host's node handle
// type. Implementations need not be safe for concurrent use.
type Host[N any] interface {
	// CreateNode creates a detached element node for tag.
	CreateNode(tag string) (N, error)

	// CreateText creates a detached text node.
	CreateText(text string) (N, error)

	// SetAttribute sets name to value on n. An empty value is a bare attribute.
	SetAttribute(n N, name, value string) error

	// SetEventListener registers h for event on n.
	SetEventListener(n N, event string, h Handler) error

	// SetTextContent replaces the content of n with a single text node.
	SetTextContent(n N, text string) error

	// AppendChild appends child as the last child of parent.
	AppendChild(parent, child N) error
}
