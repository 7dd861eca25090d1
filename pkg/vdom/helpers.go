package vdom

import "fmt"

// Textf creates a formatted text child.
func Textf(format string, args ...any) String {
	return String(fmt.Sprintf(format, args...))
}

// Range maps a slice to a sequence of children. Nil results are skipped.
func Range[T any](items []T, fn func(item T, index int) Child) Seq {
	result := make(Seq, 0, len(items))
	for i, item := range items {
		if c := fn(item, i); c != nil {
			result = append(result, c)
		}
	}
	return result
}

// Key returns a copy of el carrying key. The key is inert for Mount.
func Key(el *Element, key any) *Element {
	if el == nil {
		return nil
	}
	cp := *el
	cp.Key = fmt.Sprintf("%v", key)
	return &cp
}
