package dom

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidName is matched by *InvalidNameError.
var ErrInvalidName = errors.New("dom: invalid name")

// InvalidNameError reports a tag, attribute or event name that cannot be
// written into HTML without changing the markup around it.
type InvalidNameError struct {
	Kind string // "tag", "attribute" or "event"
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("dom: invalid %s name %q", e.Kind, e.Name)
}

// Is matches ErrInvalidName.
func (e *InvalidNameError) Is(target error) bool { return target == ErrInvalidName }

// ValidAttrName reports whether name is a usable attribute name: valid
// UTF-8 without whitespace, control characters or any of "'<>/=.
func ValidAttrName(name string) bool {
	if name == "" || !utf8.ValidString(name) {
		return false
	}
	for _, r := range name {
		switch {
		case r <= 0x20, r >= 0x7f && r <= 0x9f:
			return false
		case r == '"', r == '\'', r == '<', r == '>', r == '/', r == '=':
			return false
		}
	}
	return true
}

// ValidTagName reports whether tag is a usable element name: an ASCII
// letter followed by characters ValidAttrName accepts.
func ValidTagName(tag string) bool {
	if tag == "" {
		return false
	}
	c := tag[0]
	if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')) {
		return false
	}
	return ValidAttrName(tag)
}
