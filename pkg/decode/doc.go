// Package decode reads descriptor documents written in JSON, YAML or as an
// HTML fragment and turns them into vdom elements.
//
// A document is a mapping with the fields kind (alias type), props,
// children and key:
//
//	kind: a
//	props:
//	  href: https://google.com
//	  target: _parent
//	  onClick: greet
//	children: Click me to visit google
//
// children may be a string, a number, another document, or a list of
// those. Lists nested in lists are kept as nested sequences; vdom.Mount
// rejects them. Event props (onClick, oninput, ...) name a handler in the
// Registry passed to the decoder.
//
// HTML fragments need exactly one root element. Whitespace-only text and
// comments are dropped, and on* attributes name registry handlers.
package decode
