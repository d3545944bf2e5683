package tags

import (
	"io"
	"strconv"
)

// Heading is one of <h1> through <h6>.
type Heading struct {
	level int
	text  string
}

// NewHeading builds a heading. Levels outside 1..6 are clamped into range.
func NewHeading(level int, text string) Heading {
	switch {
	case level < 1:
		level = 1
	case level > 6:
		level = 6
	}
	return Heading{level: level, text: text}
}

func (h Heading) Level() int   { return h.level }
func (h Heading) Text() string { return h.text }

func (h Heading) Kind() Kind { return HeadingKind }

func (h Heading) Render(w io.Writer) error {
	name := "h" + strconv.Itoa(h.level)
	return writeStrings(w, "<", name, ">", EscapeString(h.text, false), "</", name, ">")
}

func (h Heading) String() string     { return renderString(h) }
func (h Heading) BodyNode() BodyNode { return h }
func (Heading) bodyNode()            {}
