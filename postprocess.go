package suttadown

import (
	"regexp"
	"strings"
)

// ideographicSpace survives Markdown rendering where ordinary leading
// spaces are collapsed.
const ideographicSpace = "　"

var (
	emptyQuoteLine = regexp.MustCompile(`(?m)^>[ \t\x{3000}]*\n`)
	blankLines     = regexp.MustCompile(`\n{3,}`)
	notesLine      = regexp.MustCompile(`\n(Notes?)  \n`)

	markerReplacer = strings.NewReplacer(
		indentMarker, ideographicSpace,
		superscriptMarker, "^",
	)
	leftoverMarkers = strings.NewReplacer(
		indentMarker, "",
		verseBreakMarker, "",
		superscriptMarker, "",
	)
)

// postProcess turns serializer output carrying placeholder markers into the
// final Markdown dialect.
func postProcess(md string) string {
	md = markerReplacer.Replace(md)
	md = emptyQuoteLine.ReplaceAllString(md, "")
	md = blankLines.ReplaceAllString(md, "\n\n")
	md = strings.Trim(md, "\n") + "\n"
	md = strings.ReplaceAll(md, "\n", "  \n")
	md = notesLine.ReplaceAllString(md, "\n## $1  \n")
	md = strings.ReplaceAll(md, "> "+verseBreakMarker, ">\n> ")
	return leftoverMarkers.Replace(md)
}
