// Package dom is an in-memory host tree for vdom.Mount.
//
// A Document creates nodes and implements vdom.Host[*Node]. Nodes keep
// attributes in insertion order and hold registered listeners so tests and
// the preview server can fire them with Dispatch.
//
//	doc := dom.NewDocument()
//	root := doc.CreateRoot()
//	_, err := vdom.Mount[*dom.Node](doc, el, root)
//	fmt.Println(root.ChildCount())
//
// Documents and nodes are not safe for concurrent use.
package dom
