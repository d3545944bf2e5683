package tags

import (
	"io"
	"strings"
)

// Body is the ordered sequence of nodes making up a document body.
type Body struct {
	children []BodyNode
}

func NewBody(children ...BodyNode) *Body {
	return &Body{children: append([]BodyNode(nil), children...)}
}

// Append adds nodes to the end of the body.
func (b *Body) Append(nodes ...BodyNode) *Body {
	b.children = append(b.children, nodes...)
	return b
}

// Children returns a copy of the body's children, in document order.
func (b *Body) Children() []BodyNode {
	return append([]BodyNode(nil), b.children...)
}

func (b *Body) Len() int {
	return len(b.children)
}

func (b *Body) Render(w io.Writer) error {
	return renderElement(w, "body", b.children)
}

func (b *Body) String() string {
	var sb strings.Builder
	_ = b.Render(&sb)
	return sb.String()
}
