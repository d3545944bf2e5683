package tags

import "io"

// P is a paragraph holding an ordered list of children.
type P struct {
	children []BodyNode
}

func NewP(children ...BodyNode) P {
	return P{children: append([]BodyNode(nil), children...)}
}

// Children returns a copy of the paragraph's children.
func (p P) Children() []BodyNode { return append([]BodyNode(nil), p.children...) }

func (p P) Kind() Kind { return ParagraphKind }

func (p P) Render(w io.Writer) error {
	return renderElement(w, "p", p.children)
}

func (p P) String() string     { return renderString(p) }
func (p P) BodyNode() BodyNode { return p }
func (P) bodyNode()            {}

// Div is a generic block container.
type Div struct {
	children []BodyNode
}

func NewDiv(children ...BodyNode) Div {
	return Div{children: append([]BodyNode(nil), children...)}
}

// Children returns a copy of the div's children.
func (d Div) Children() []BodyNode { return append([]BodyNode(nil), d.children...) }

func (d Div) Kind() Kind { return DivKind }

func (d Div) Render(w io.Writer) error {
	return renderElement(w, "div", d.children)
}

func (d Div) String() string     { return renderString(d) }
func (d Div) BodyNode() BodyNode { return d }
func (Div) bodyNode()            {}

func renderElement(w io.Writer, name string, children []BodyNode) error {
	if err := writeStrings(w, "<", name, ">"); err != nil {
		return err
	}
	if err := renderChildren(w, children); err != nil {
		return err
	}
	return writeStrings(w, "</", name, ">")
}
