// This file defines attribute helpers for the el package.
package el

import (
	"strings"

	"github.com/vango-dev/velem/pkg/vdom"
)

// Prop sets key to any value vdom.ValueOf accepts.
func Prop(key string, value any) Attr {
	return Attr{Key: key, Value: vdom.ValueOf(value)}
}

func ID(id string) Attr {
	return Attr{Key: "id", Value: vdom.String(id)}
}

// Class joins the non-empty class names with spaces.
func Class(classes ...string) Attr {
	names := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			names = append(names, c)
		}
	}
	return Attr{Key: "class", Value: vdom.String(strings.Join(names, " "))}
}

func StyleAttr(style string) Attr {
	return Attr{Key: "style", Value: vdom.String(style)}
}

// Data sets a data-* attribute.
func Data(key, value string) Attr {
	return Attr{Key: "data-" + key, Value: vdom.String(value)}
}

func Role(role string) Attr {
	return Attr{Key: "role", Value: vdom.String(role)}
}

func AriaLabel(label string) Attr {
	return Attr{Key: "aria-label", Value: vdom.String(label)}
}

func Href(href string) Attr {
	return Attr{Key: "href", Value: vdom.String(href)}
}

func Target(target string) Attr {
	return Attr{Key: "target", Value: vdom.String(target)}
}

func Rel(rel string) Attr {
	return Attr{Key: "rel", Value: vdom.String(rel)}
}

func Src(src string) Attr {
	return Attr{Key: "src", Value: vdom.String(src)}
}

func Alt(alt string) Attr {
	return Attr{Key: "alt", Value: vdom.String(alt)}
}

func Type(t string) Attr {
	return Attr{Key: "type", Value: vdom.String(t)}
}

func Name(name string) Attr {
	return Attr{Key: "name", Value: vdom.String(name)}
}

func Value(value any) Attr {
	return Prop("value", value)
}

func Placeholder(text string) Attr {
	return Attr{Key: "placeholder", Value: vdom.String(text)}
}

func TitleAttr(title string) Attr {
	return Attr{Key: "title", Value: vdom.String(title)}
}

func TabIndex(i int) Attr {
	return Attr{Key: "tabindex", Value: vdom.Number(i)}
}

// Boolean attributes render bare when true and are omitted when false.

func Disabled(on bool) Attr {
	return Attr{Key: "disabled", Value: vdom.Bool(on)}
}

func Checked(on bool) Attr {
	return Attr{Key: "checked", Value: vdom.Bool(on)}
}

func Hidden(on bool) Attr {
	return Attr{Key: "hidden", Value: vdom.Bool(on)}
}

func Required(on bool) Attr {
	return Attr{Key: "required", Value: vdom.Bool(on)}
}

func Readonly(on bool) Attr {
	return Attr{Key: "readonly", Value: vdom.Bool(on)}
}
