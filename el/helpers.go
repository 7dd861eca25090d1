// This file re-exports vdom helper functions for the el package.
package el

import "github.com/vango-dev/velem/pkg/vdom"

func Text(content string) vdom.String {
	return vdom.String(content)
}

func Textf(format string, args ...any) vdom.String {
	return vdom.Textf(format, args...)
}

// If returns node when condition holds and nil otherwise. Element skips
// nil arguments.
func If(condition bool, node *vdom.Element) any {
	if condition {
		return node
	}
	return nil
}

func Range[T any](items []T, fn func(item T, index int) vdom.Child) vdom.Seq {
	return vdom.Range(items, fn)
}

func Key(el *vdom.Element, key any) *vdom.Element {
	return vdom.Key(el, key)
}
