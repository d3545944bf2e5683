package tags

import "strings"

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"\u00a0", "&nbsp;",
		"<", "&lt;",
		">", "&gt;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"\u00a0", "&nbsp;",
		"\"", "&quot;",
	)
)

// EscapeString escapes s for use as character data, or as a double quoted
// attribute value when attrVal is set.
// https://html.spec.whatwg.org/#escapingString
func EscapeString(s string, attrVal bool) string {
	if attrVal {
		return attrEscaper.Replace(s)
	}
	return textEscaper.Replace(s)
}
