package decode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/velem/pkg/vdom"
)

// Format is a document encoding.
type Format string

const (
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHTML Format = "html"
)

// Sentinel errors returned (wrapped in *Error) by the decoder.
var (
	// ErrUnknownHandler is returned for an event prop naming an unregistered handler.
	ErrUnknownHandler = errors.New("decode: unknown handler")

	// ErrMissingKind is returned for a document without kind, type or component.
	ErrMissingKind = errors.New("decode: missing kind")

	// ErrBadChild is returned for a child value that is not text, number, document or list.
	ErrBadChild = errors.New("decode: unsupported child value")
)

// Registry maps handler names used in documents to handlers.
type Registry map[string]vdom.Handler

// Names returns the registered handler names, sorted.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Error locates a decoding failure inside the document.
type Error struct {
	Path string // e.g. "children[1].props.onClick"
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }

// document is the mapping form of one element.
type document struct {
	Kind      string         `mapstructure:"kind"`
	Type      string         `mapstructure:"type"`
	Component string         `mapstructure:"component"`
	Key       string         `mapstructure:"key"`
	Props     map[string]any `mapstructure:"props"`
	Children  any            `mapstructure:"children"`
}

// Decoder converts documents into elements.
type Decoder struct {
	handlers Registry
}

// NewDecoder creates a Decoder resolving event props through handlers.
func NewDecoder(handlers Registry) *Decoder {
	return &Decoder{handlers: handlers}
}

// Decode parses data in the given format. FormatAuto treats input starting
// with '{' as JSON, input starting with '<' as HTML and everything else as
// YAML.
func (d *Decoder) Decode(data []byte, format Format) (*vdom.Element, error) {
	if format == FormatAuto {
		format = sniff(data)
	}

	var raw any
	switch format {
	case FormatHTML:
		return d.decodeHTML(data)
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, &Error{Err: fmt.Errorf("parse json: %w", err)}
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, &Error{Err: fmt.Errorf("parse yaml: %w", err)}
		}
	default:
		return nil, &Error{Err: fmt.Errorf("unknown format %q", format)}
	}

	return d.element(raw, "")
}

// DecodeFile reads and decodes path, picking the format from its extension.
func (d *Decoder) DecodeFile(path string) (*vdom.Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return d.Decode(data, FormatFromPath(path))
}

// FormatFromPath returns the format implied by a file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".html", ".htm":
		return FormatHTML
	default:
		return FormatAuto
	}
}

func sniff(data []byte) Format {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return FormatYAML
	}
	switch trimmed[0] {
	case '{':
		return FormatJSON
	case '<':
		return FormatHTML
	default:
		return FormatYAML
	}
}

// element decodes one mapping into an element.
func (d *Decoder) element(raw any, path string) (*vdom.Element, error) {
	var doc document
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &doc,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	kind, err := docKind(doc)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	props, err := d.props(doc.Props, join(path, "props"))
	if err != nil {
		return nil, err
	}

	children, err := d.children(doc.Children, join(path, "children"))
	if err != nil {
		return nil, err
	}

	el, err := vdom.CreateElement(kind, props, children...)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	if doc.Key != "" {
		el = vdom.Key(el, doc.Key)
	}
	return el, nil
}

func docKind(doc document) (vdom.Kind, error) {
	switch {
	case doc.Component != "":
		return vdom.ComponentRef{Name: doc.Component, Handle: doc.Component}, nil
	case doc.Kind != "":
		return vdom.HostTag(doc.Kind), nil
	case doc.Type != "":
		return vdom.HostTag(doc.Type), nil
	default:
		return nil, ErrMissingKind
	}
}

func (d *Decoder) props(raw map[string]any, path string) (vdom.Props, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	props := make(vdom.Props, len(raw))
	for key, value := range raw {
		keyPath := path + "." + key
		switch {
		case key == vdom.ChildrenKey:
			items, err := d.children(value, keyPath)
			if err != nil {
				return nil, err
			}
			switch len(items) {
			case 0:
			case 1:
				props[key] = vdom.ChildrenProp{Child: items[0].(vdom.Child)}
			default:
				seq := make(vdom.Seq, len(items))
				for i, item := range items {
					seq[i] = item.(vdom.Child)
				}
				props[key] = vdom.ChildrenProp{Child: seq}
			}
		case vdom.IsEventKey(key):
			name, ok := value.(string)
			if !ok {
				props[key] = vdom.ValueOf(value)
				continue
			}
			h, ok := d.handlers[name]
			if !ok {
				return nil, &Error{Path: keyPath, Err: fmt.Errorf("%w: %q", ErrUnknownHandler, name)}
			}
			props[key] = h
		default:
			props[key] = vdom.ValueOf(value)
		}
	}
	return props, nil
}

// children converts a raw children value into factory arguments.
func (d *Decoder) children(raw any, path string) ([]any, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []any:
		out := make([]any, 0, len(v))
		for i, item := range v {
			c, err := d.child(item, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			out = append(out, c)
		}
		return out, nil
	default:
		c, err := d.child(raw, path)
		if err != nil {
			return nil, err
		}
		return []any{c}, nil
	}
}

// child converts one raw child. A list inside a children list becomes a
// Seq so that Mount can reject it.
func (d *Decoder) child(raw any, path string) (vdom.Child, error) {
	switch v := raw.(type) {
	case string:
		return vdom.String(v), nil
	case int, int64, uint64, float64:
		return vdom.ValueOf(v).(vdom.Number), nil
	case map[string]any:
		return d.element(v, path)
	case []any:
		seq := make(vdom.Seq, 0, len(v))
		for i, item := range v {
			c, err := d.child(item, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			seq = append(seq, c)
		}
		return seq, nil
	default:
		return nil, &Error{Path: path, Err: fmt.Errorf("%w: %T", ErrBadChild, raw)}
	}
}

func join(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}
