package suttadown

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Placeholder markers carried from tree rewriting to text post-processing.
// Page text that contains one of them renders unpredictably.
const (
	indentMarker      = "[INDENT]"
	verseBreakMarker  = "[VERSE-ADD]"
	superscriptMarker = "[SUPERSCRIPT]"
)

type indentClass struct {
	class string
	level int
}

// indentClasses is scanned in order; the first class a line carries sets
// its indentation.
var indentClasses = []indentClass{
	{"v1", 1},
	{"v2", 2},
	{"v3", 3},
	{"v4", 4},
	{"v5", 5},
	{"v6", 6},
	{"v7", 7},
	{"v8", 8},
}

func indentLevel(line *goquery.Selection) int {
	for _, ic := range indentClasses {
		if line.HasClass(ic.class) {
			return ic.level
		}
	}
	return 0
}

// prependText puts text in front of the content of every node in sel. A
// leading text node absorbs it, losing its leading whitespace.
func prependText(sel *goquery.Selection, text string) {
	for _, node := range sel.Nodes {
		if first := node.FirstChild; first != nil && first.Type == html.TextNode {
			first.Data = text + strings.TrimLeft(first.Data, " \t\r\n")
			continue
		}
		node.InsertBefore(&html.Node{Type: html.TextNode, Data: text}, node.FirstChild)
	}
}

// formatVerse marks indentation and verse breaks inside a verse container.
func formatVerse(verse *goquery.Selection) {
	verse.Find("p").Each(func(_ int, line *goquery.Selection) {
		if level := indentLevel(line); level > 0 {
			prependText(line, strings.Repeat(indentMarker, level))
		}
	})
	verse.Find("div.verse-add").Each(func(_ int, add *goquery.Selection) {
		first := add.Find("p").First()
		if first.Length() == 0 {
			slog.Debug("verse break without a line", "html", outerHTML(add))
			return
		}
		prependText(first, verseBreakMarker)
	})
}

func outerHTML(sel *goquery.Selection) string {
	s, err := goquery.OuterHtml(sel)
	if err != nil {
		return ""
	}
	return s
}
