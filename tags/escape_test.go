package tags

import "testing"

type escapeTestcase struct {
	in       string
	attrVal  bool
	expected string
}

var escapeTests = []escapeTestcase{
	{"plain", false, "plain"},
	{"a & b", false, "a &amp; b"},
	{"<script>", false, "&lt;script&gt;"},
	{"\u00a0", false, "&nbsp;"},
	{"\"quoted\"", false, "\"quoted\""},
	{"\"quoted\"", true, "&quot;quoted&quot;"},
	{"<a>", true, "<a>"},
	{"&amp;", true, "&amp;amp;"},
	{"", false, ""},
}

func TestEscapeString(t *testing.T) {
	for _, tt := range escapeTests {
		if got := EscapeString(tt.in, tt.attrVal); got != tt.expected {
			t.Errorf("EscapeString(%q, %v): expected %q, got %q", tt.in, tt.attrVal, tt.expected, got)
		}
	}
}
