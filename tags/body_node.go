package tags

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Kind identifies which variant of BodyNode a value is.
type Kind uint16

const (
	TextKind Kind = iota + 1
	BrKind
	HeadingKind
	ParagraphKind
	DivKind
	NoScriptKind
)

func (k Kind) String() string {
	switch k {
	case TextKind:
		return "text"
	case BrKind:
		return "br"
	case HeadingKind:
		return "heading"
	case ParagraphKind:
		return "p"
	case DivKind:
		return "div"
	case NoScriptKind:
		return "noscript"
	default:
		return "unknown"
	}
}

// BodyNode is anything that can appear inside a document body. The set of
// variants is closed: only types in this package implement it.
type BodyNode interface {
	Kind() Kind
	Render(w io.Writer) error
	String() string
	BodyNode() BodyNode

	bodyNode()
}

// writeStrings writes each part to w in order, stopping at the first error.
func writeStrings(w io.Writer, parts ...string) error {
	for _, p := range parts {
		if _, err := io.WriteString(w, p); err != nil {
			return errors.Wrap(err, "writing markup")
		}
	}
	return nil
}

func renderChildren(w io.Writer, children []BodyNode) error {
	for _, child := range children {
		if err := child.Render(w); err != nil {
			return errors.Wrapf(err, "rendering %s child", child.Kind())
		}
	}
	return nil
}

// renderString renders n into memory. Writes to a strings.Builder never fail.
func renderString(n BodyNode) string {
	var b strings.Builder
	_ = n.Render(&b)
	return b.String()
}
