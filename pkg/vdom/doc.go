// Package vdom describes UI nodes declaratively and mounts them into a host
// tree.
//
// # Core Types
//
// Element is the immutable descriptor of one node: a Kind (HostTag or
// ComponentRef), Props mapping names to a closed set of Value variants
// (String, Number, Bool, Handler, Absent), and Children (nil, a single
// Child, or a Seq).
//
// # Building Elements
//
//	link, err := vdom.H("a", vdom.Props{
//	    "href":   vdom.String("https://google.com"),
//	    "target": vdom.String("_parent"),
//	}, "Click me to visit google")
//
// A single child is stored as itself; two or more children become a Seq.
// Use Children to always get a slice.
//
// # Mounting
//
// Mount walks an Element tree once, depth first, and creates host nodes
// through the Host interface:
//
//	doc := dom.NewDocument()
//	root := doc.CreateRoot()
//	node, err := vdom.Mount[*dom.Node](doc, link, root)
//
// Properties are applied in sorted key order. nil, Absent and Bool(false)
// leave the attribute unset; Bool(true) sets a bare attribute; event keys
// ("onClick") register listeners instead of attributes.
//
// Mount appends and never clears. There is no diffing: mounting again
// produces a second, independent subtree.
package vdom
