// Package el provides a small DSL for building vdom descriptors.
//
// Element constructors take a mix of attributes and children, in the same
// argument list:
//
//	import . "github.com/vango-dev/velem/el"
//
//	Div(Class("card"),
//	    H1("Title"),
//	    A(Href("https://google.com"), Target("_parent"), "Click me to visit google"),
//	    Button(OnClick(func() { ... }), "Go"),
//	)
//
// Arguments of type Attr and vdom.Props become properties; nil arguments
// are skipped; everything else is passed to vdom.CreateElement as a child.
// Constructors panic on children CreateElement rejects, which makes them
// suitable for literal trees. Use vdom.CreateElement directly to handle
// those errors.
package el
