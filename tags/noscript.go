package tags

import "io"

// NoScript is the <noscript> tag. Its contents are shown to people whose
// browsers don't support Javascript, or who have it disabled.
//
// The text is written out verbatim: it is not escaped or validated. Callers
// embedding untrusted content must escape it first.
//
// https://html.spec.whatwg.org/multipage/scripting.html#the-noscript-element
type NoScript struct {
	text string
}

// NewNoScript constructs a <noscript> tag holding text.
func NewNoScript[T ~string | ~[]byte](text T) NoScript {
	return NoScript{text: string(text)}
}

// Text returns the payload the tag was built with.
func (n NoScript) Text() string {
	return n.text
}

func (n NoScript) Kind() Kind { return NoScriptKind }

func (n NoScript) Render(w io.Writer) error {
	return writeStrings(w, "<noscript>", n.text, "</noscript>")
}

func (n NoScript) String() string {
	return renderString(n)
}

func (n NoScript) BodyNode() BodyNode { return n }

func (NoScript) bodyNode() {}
