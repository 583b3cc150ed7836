package suttadown

import (
	"bytes"
	"strings"
	"testing"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "inline",
			in:   `<p>Hello <b>world</b> and <a href="/x">link</a>.</p>`,
			want: "Hello **world** and [link](https://example.org/x).\n\n\n",
		},
		{
			name: "linked heading",
			in:   `<a href="https://example.org/x"><h1>Sutta Name</h1></a>`,
			want: "# [Sutta Name](https://example.org/x)\n\n\n",
		},
		{
			name: "blockquote",
			in:   `<blockquote><p>one</p><p>two</p></blockquote>`,
			want: "> one\n> \n> \n> two\n\n\n",
		},
		{
			name: "table",
			in:   `<table><tr><th>a</th><th>bb</th></tr><tr><td>ccc</td><td>d</td></tr></table>`,
			want: "|a  |bb|\n|---|--|\n|ccc|d |\n\n\n",
		},
		{
			name: "list",
			in:   `<ul><li>x</li><li>y</li></ul>`,
			want: "* x\n* y\n\n\n",
		},
		{
			name: "linked heading over several lines",
			in:   "<a href=\"https://example.org/x\"><h2>\n  MN 1<br>\n  Root\n</h2></a>",
			want: "## [MN 1 Root](https://example.org/x)\n\n\n",
		},
		{
			name: "script skipped",
			in:   `<script>alert(1)</script><p>ok</p>`,
			want: "ok\n\n\n",
		},
	}
	opt := &Option{BaseURL: "https://example.org/"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Convert(&buf, strings.NewReader(tt.in), opt); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("want:\n%q\ngot:\n%q", tt.want, got)
			}
		})
	}
}

func TestConvertWithoutBaseURL(t *testing.T) {
	var buf bytes.Buffer
	if err := Convert(&buf, strings.NewReader(`<p><a href="/x">x</a><img src="a.png" alt="pic"></p>`), nil); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "[x](/x)![pic](a.png)\n\n\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolve(t *testing.T) {
	opt := &Option{BaseURL: "https://www.dhammatalks.org/suttas/"}
	tests := []struct {
		ref  string
		want string
	}{
		{"MN/MN1.html", "https://www.dhammatalks.org/suttas/MN/MN1.html"},
		{"/random_sutta.php", "https://www.dhammatalks.org/random_sutta.php"},
		{"#note1", "https://www.dhammatalks.org/suttas/#note1"},
		{"https://example.org/x", "https://example.org/x"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := resolve(tt.ref, opt); got != tt.want {
			t.Errorf("resolve(%q) = %q, want %q", tt.ref, got, tt.want)
		}
	}
}
