// This file defines event helpers for the el package.
package el

import (
	"strings"

	"github.com/vango-dev/velem/pkg/vdom"
)

// On binds handler to event. handler may be a vdom.Handler, a
// func(vdom.Event) or a func(); nil leaves the event unbound.
func On(event string, handler any) Attr {
	key := "on" + event
	if event != "" {
		key = "on" + strings.ToUpper(event[:1]) + event[1:]
	}
	switch h := handler.(type) {
	case nil:
		return Attr{Key: key, Value: vdom.Absent}
	case vdom.Handler:
		return Attr{Key: key, Value: h}
	default:
		return Attr{Key: key, Value: vdom.ValueOf(h)}
	}
}

func OnClick(handler any) Attr    { return On("click", handler) }
func OnDblClick(handler any) Attr { return On("dblclick", handler) }
func OnInput(handler any) Attr    { return On("input", handler) }
func OnChange(handler any) Attr   { return On("change", handler) }
func OnSubmit(handler any) Attr   { return On("submit", handler) }
func OnFocus(handler any) Attr    { return On("focus", handler) }
func OnBlur(handler any) Attr     { return On("blur", handler) }
func OnKeyDown(handler any) Attr  { return On("keydown", handler) }
func OnKeyUp(handler any) Attr    { return On("keyup", handler) }
