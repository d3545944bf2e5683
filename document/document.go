// Package document assembles body nodes into a complete HTML page.
package document

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/heathj/gotags/tags"
)

const doctype = "<!DOCTYPE html>"

// Document is an HTML page: a title and a body.
type Document struct {
	title string
	body  *tags.Body
}

func New() *Document {
	return &Document{body: tags.NewBody()}
}

// Title sets the page title. An empty title omits the <title> element.
func (d *Document) Title(title string) *Document {
	d.title = title
	return d
}

// Append adds nodes to the end of the body.
func (d *Document) Append(nodes ...tags.BodyNode) *Document {
	d.body.Append(nodes...)
	return d
}

// Body returns the document's body.
func (d *Document) Body() *tags.Body {
	return d.body
}

// countingWriter tracks how many bytes reach the underlying writer.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// WriteTo renders the full page to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	logrus.WithFields(logrus.Fields{
		"title":    d.title,
		"children": d.body.Len(),
	}).Debugf("[DOCUMENT]: rendering %s", kindSummary(d.body.Children()))

	cw := &countingWriter{w: w}
	if _, err := io.WriteString(cw, doctype+"<html><head>"); err != nil {
		return cw.n, errors.Wrap(err, "writing head")
	}
	if d.title != "" {
		if _, err := io.WriteString(cw, "<title>"+tags.EscapeString(d.title, false)+"</title>"); err != nil {
			return cw.n, errors.Wrap(err, "writing title")
		}
	}
	if _, err := io.WriteString(cw, "</head>"); err != nil {
		return cw.n, errors.Wrap(err, "writing head")
	}
	if err := d.body.Render(cw); err != nil {
		return cw.n, errors.Wrap(err, "rendering body")
	}
	if _, err := io.WriteString(cw, "</html>"); err != nil {
		return cw.n, errors.Wrap(err, "writing html close")
	}
	return cw.n, nil
}

func (d *Document) String() string {
	var b strings.Builder
	_, _ = d.WriteTo(&b)
	return b.String()
}

// kindSummary lists the kinds of nodes, e.g. "heading,noscript,p".
func kindSummary(nodes []tags.BodyNode) string {
	kinds := make([]string, 0, len(nodes))
	for _, n := range nodes {
		kinds = append(kinds, n.Kind().String())
	}
	if len(kinds) == 0 {
		return "empty body"
	}
	return strings.Join(kinds, ",")
}
