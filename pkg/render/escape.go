package render

import "strings"

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
		"\n", "&#10;",
		"\r", "&#13;",
		"\t", "&#9;",
	)
)

// escapeText escapes character data.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// escapeRawText keeps text inside a raw text element from closing it early:
// every "</tag" (ASCII case-insensitive) becomes "<\/tag".
func escapeRawText(s, tag string) string {
	closing := "</" + tag
	var b strings.Builder
	last := 0
	for i := 0; i+len(closing) <= len(s); i++ {
		if s[i] == '<' && strings.EqualFold(s[i:i+len(closing)], closing) {
			b.WriteString(s[last : i+1])
			b.WriteByte('\\')
			last = i + 1
		}
	}
	if last == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

// escapeAttr escapes a double-quoted attribute value, including whitespace
// that would otherwise be normalized by parsers.
func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
