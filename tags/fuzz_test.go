package tags

import (
	"strings"
	"testing"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// FuzzNoScript drives NoScript through its string payload and checks the
// render contract and the parse-back round trip.
func FuzzNoScript(f *testing.F) {
	f.Add("No Javascript :)")
	f.Add("")
	f.Add("<b>x</b>")
	f.Add("<script>alert('xss')</script>")
	f.Add("&lt;escaped&gt;")
	f.Add("日本語")
	f.Add("</noscript>")
	f.Add("</NoScript >trailing")
	f.Add("tab\tand\nnewline")

	f.Fuzz(func(t *testing.T, text string) {
		n := NewNoScript(text)
		if n.Text() != text {
			t.Fatalf("payload changed: %q became %q", text, n.Text())
		}

		out := n.String()
		if want := "<noscript>" + text + "</noscript>"; out != want {
			t.Fatalf("render mismatch: got %q, want %q", out, want)
		}
		if again := n.String(); again != out {
			t.Fatalf("render not idempotent: %q then %q", out, again)
		}
		if back, ok := n.BodyNode().(NoScript); !ok || back.Text() != text {
			t.Fatalf("conversion lost the payload %q", text)
		}

		// The parser normalizes CR and NUL and cannot round trip invalid
		// UTF-8 or text that closes the element early.
		if !utf8.ValidString(text) ||
			strings.ContainsAny(text, "\r\x00") ||
			strings.Contains(strings.ToLower(text), "</noscript") {
			return
		}

		doc, err := html.Parse(strings.NewReader(out))
		if err != nil {
			t.Fatalf("parse %q: %v", out, err)
		}
		tag := findElement(doc, "noscript")
		if tag == nil {
			t.Fatalf("no noscript element in %q", out)
		}
		if text == "" {
			if tag.FirstChild != nil {
				t.Fatalf("expected no children, got %q", tag.FirstChild.Data)
			}
			return
		}
		if tag.FirstChild == nil || tag.FirstChild.NextSibling != nil || tag.FirstChild.Type != html.TextNode {
			t.Fatalf("expected a single text child for %q", text)
		}
		if tag.FirstChild.Data != text {
			t.Fatalf("round trip mismatch: got %q, want %q", tag.FirstChild.Data, text)
		}
	})
}
