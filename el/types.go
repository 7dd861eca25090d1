package el

import (
	"fmt"

	"github.com/vango-dev/velem/pkg/vdom"
)

// Attr is one property set by an element constructor.
type Attr struct {
	Key   string
	Value vdom.Value
}

// Element builds an element for tag from mixed attributes and children.
// Later attributes override earlier ones with the same key.
func Element(tag string, args ...any) *vdom.Element {
	var props vdom.Props
	children := make([]any, 0, len(args))

	set := func(key string, v vdom.Value) {
		if props == nil {
			props = make(vdom.Props)
		}
		props[key] = v
	}

	for _, arg := range args {
		switch a := arg.(type) {
		case nil:
		case Attr:
			set(a.Key, a.Value)
		case []Attr:
			for _, attr := range a {
				set(attr.Key, attr.Value)
			}
		case vdom.Props:
			for k, v := range a {
				set(k, v)
			}
		default:
			children = append(children, arg)
		}
	}

	el, err := vdom.H(tag, props, children...)
	if err != nil {
		panic(fmt.Sprintf("el.%s: %v", tag, err))
	}
	return el
}
