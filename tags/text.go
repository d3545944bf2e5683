package tags

import "io"

// Text is character data. Unlike NoScript, its contents are escaped when
// rendered.
type Text struct {
	data string
}

func NewText(data string) Text {
	return Text{data: data}
}

func (t Text) Data() string { return t.data }

func (t Text) Kind() Kind { return TextKind }

func (t Text) Render(w io.Writer) error {
	return writeStrings(w, EscapeString(t.data, false))
}

func (t Text) String() string     { return renderString(t) }
func (t Text) BodyNode() BodyNode { return t }
func (Text) bodyNode()            {}
