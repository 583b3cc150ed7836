// Package suttadown converts dhammatalks.org sutta pages to Markdown.
//
// Verse lines keep their indentation as ideographic spaces, verse breaks
// become paragraph breaks inside a blockquote, footnote labels are
// superscripted with ^ and the title heading links back to the page.
package suttadown

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultBaseURL is the site relative links are resolved against.
const DefaultBaseURL = "https://www.dhammatalks.org/"

// Result is a converted sutta.
type Result struct {
	Title    string
	Markdown string
}

// ConvertSutta converts the sutta page src, served from url, to Markdown.
// Relative links are resolved against DefaultBaseURL. It returns a
// *StructureError when the page has no content root or title heading.
func ConvertSutta(src, url string) (Result, error) {
	return ConvertSuttaWithOption(src, url, &Option{BaseURL: DefaultBaseURL})
}

// ConvertSuttaWithOption is ConvertSutta with explicit serializer options.
func ConvertSuttaWithOption(src, url string, opt *Option) (Result, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return Result{}, err
	}
	root, title, err := transform(doc, url)
	if err != nil {
		return Result{}, err
	}
	var buf bytes.Buffer
	if err := Render(&buf, root.Get(0), opt); err != nil {
		return Result{}, err
	}
	return Result{Title: title, Markdown: postProcess(buf.String())}, nil
}
