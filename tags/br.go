package tags

import "io"

// Br is a line break.
type Br struct{}

func (Br) Kind() Kind               { return BrKind }
func (Br) Render(w io.Writer) error { return writeStrings(w, "<br/>") }
func (b Br) String() string         { return renderString(b) }
func (b Br) BodyNode() BodyNode     { return b }
func (Br) bodyNode()                {}
