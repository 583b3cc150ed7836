package suttadown

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const headingJoiner = ": "

// contentRoot picks the sutta container, falling back to the body.
func contentRoot(doc *goquery.Document) (*goquery.Selection, error) {
	if root := doc.Find("div#sutta").First(); root.Length() > 0 {
		return root, nil
	}
	if body := doc.Find("body").First(); body.Length() > 0 {
		return body, nil
	}
	return nil, &StructureError{Element: "content root"}
}

// linkHeading flattens line breaks in the first h1, wraps it in a link to
// url and returns its text.
func linkHeading(root *goquery.Selection, url string) (string, error) {
	h1 := root.Find("h1").First()
	if h1.Length() == 0 {
		return "", &StructureError{Element: "h1"}
	}
	h1.Find("br").Each(func(_ int, br *goquery.Selection) {
		br.ReplaceWithNodes(&html.Node{Type: html.TextNode, Data: headingJoiner})
	})
	title := strings.Join(strings.Fields(h1.Text()), " ")
	if title == "" {
		return "", &StructureError{Element: "h1", Message: "heading has no text"}
	}
	h1.WrapNode(&html.Node{
		Type: html.ElementNode,
		Data: "a",
		Attr: []html.Attribute{{Key: "href", Val: url}},
	})
	return title, nil
}

// transform rewrites doc in place and returns the content root together
// with the page title.
func transform(doc *goquery.Document, url string) (*goquery.Selection, string, error) {
	doc.Find("header, footer").Remove()

	root, err := contentRoot(doc)
	if err != nil {
		return nil, "", err
	}
	title, err := linkHeading(root, url)
	if err != nil {
		return nil, "", err
	}

	root.Find("div.verse").Each(func(_ int, verse *goquery.Selection) {
		formatVerse(verse)
		verse.WrapNode(&html.Node{Type: html.ElementNode, Data: "blockquote"})
	})

	root.Find("span.fn").Each(func(_ int, fn *goquery.Selection) {
		fn.SetText(superscriptMarker + fn.Text())
	})
	return root, title, nil
}
