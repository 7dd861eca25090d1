package publish

import (
	"context"
	"errors"
	"path"
	"strings"
)

// ErrBadKey is returned for empty, absolute or escaping keys.
var ErrBadKey = errors.New("publish: invalid key")

// ContentTypeHTML is the content type used for rendered pages.
const ContentTypeHTML = "text/html; charset=utf-8"

// Store is the interface for publishing destinations.
type Store interface {
	// Put stores body under key and returns a location (path or URL).
	Put(ctx context.Context, key string, body []byte) (string, error)
}

// CleanKey validates key and returns its canonical form.
func CleanKey(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return "", ErrBadKey
	}
	for _, seg := range strings.Split(key, "/") {
		if seg == ".." {
			return "", ErrBadKey
		}
	}
	clean := path.Clean(key)
	if clean == "." {
		return "", ErrBadKey
	}
	return clean, nil
}

// KeyFor derives the output key for an input document path:
// "pages/about.yaml" -> "about.html".
func KeyFor(input string) string {
	base := path.Base(strings.ReplaceAll(input, "\\", "/"))
	if ext := path.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	if base == "" || base == "." || base == "/" {
		base = "index"
	}
	return base + ".html"
}
