package vdom

import (
	"fmt"
	"sort"
)

// Mount materializes el into container and returns the root node it
// created.
//
// Mount is a single synchronous depth-first pass. It never clears
// container: mounting the same element twice appends two independent
// subtrees. Clearing beforehand is the caller's job.
//
// Children come from el.Children, or from the "children" prop when
// el.Children is nil.
//
// On error, host mutations already made are not rolled back. Nodes are
// appended to their parent once their own subtree is complete, so a failure
// deep in the tree leaves the completed siblings attached to their detached
// ancestors while the root is never appended to container.
func Mount[N any](host Host[N], el *Element, container N) (N, error) {
	var zero N
	node, err := build(host, el, "")
	if err != nil {
		return zero, err
	}
	if err := host.AppendChild(container, node); err != nil {
		return zero, err
	}
	return node, nil
}

// build creates the host node for el with its attributes, listeners and
// children attached, but does not append it anywhere.
func build[N any](host Host[N], el *Element, path string) (N, error) {
	var zero N
	if el == nil {
		return zero, &InvalidChildError{Path: path, Reason: "nil element"}
	}

	var node N
	switch k := el.Kind.(type) {
	case HostTag:
		n, err := host.CreateNode(string(k))
		if err != nil {
			return zero, &UnsupportedKindError{Kind: k, Err: err}
		}
		node = n
	case nil:
		return zero, &InvalidKindError{Reason: "kind is required"}
	default:
		return zero, &UnsupportedKindError{Kind: k}
	}

	if err := applyProps(host, node, el.Props); err != nil {
		return zero, err
	}
	children := el.Children
	if children == nil {
		children = propChildren(el.Props[ChildrenKey])
	}
	if err := mountChildren(host, node, children, path); err != nil {
		return zero, err
	}
	return node, nil
}

// applyProps sets attributes and registers listeners in sorted key order.
func applyProps[N any](host Host[N], node N, props Props) error {
	if len(props) == 0 {
		return nil
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		if k == ChildrenKey {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := props[key]

		if IsEventKey(key) {
			switch v := value.(type) {
			case Handler:
				if v == nil {
					continue
				}
				if err := host.SetEventListener(node, EventName(key), v); err != nil {
					return err
				}
			case nil, absent:
			case Bool:
				if v {
					return &InvalidPropError{Key: key, Reason: "event key needs a handler, got true"}
				}
			default:
				return &InvalidPropError{Key: key, Reason: fmt.Sprintf("event key needs a handler, got %T", value)}
			}
			continue
		}

		if _, ok := value.(Handler); ok {
			return &InvalidPropError{Key: key, Reason: "handler under a non-event key"}
		}
		s, ok := attrString(value)
		if !ok {
			continue
		}
		if err := host.SetAttribute(node, key, s); err != nil {
			return err
		}
	}
	return nil
}

// mountChildren materializes children into node.
func mountChildren[N any](host Host[N], node N, children Child, path string) error {
	switch c := children.(type) {
	case nil:
		return nil
	case String, Number:
		text, _ := textOf(c)
		return host.SetTextContent(node, text)
	case *Element:
		return mountChild(host, node, c, path+"[0]")
	case Seq:
		for i, item := range c {
			itemPath := fmt.Sprintf("%s[%d]", path, i)
			switch v := item.(type) {
			case String, Number:
				text, _ := textOf(v)
				tn, err := host.CreateText(text)
				if err != nil {
					return err
				}
				if err := host.AppendChild(node, tn); err != nil {
					return err
				}
			case *Element:
				if err := mountChild(host, node, v, itemPath); err != nil {
					return err
				}
			case Seq:
				return &InvalidChildError{Path: itemPath, Value: item, Reason: "nested sequence; flatten before mounting"}
			default:
				return &InvalidChildError{Path: itemPath, Value: item, Reason: "not text, number or element"}
			}
		}
		return nil
	default:
		return &InvalidChildError{Path: path, Value: children, Reason: "not text, number or element"}
	}
}

func mountChild[N any](host Host[N], parent N, el *Element, path string) error {
	child, err := build(host, el, path)
	if err != nil {
		return err
	}
	return host.AppendChild(parent, child)
}
