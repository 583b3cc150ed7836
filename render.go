package suttadown

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"

	"golang.org/x/net/html"
)

// Option controls the generic Markdown serializer.
type Option struct {
	// BaseURL resolves relative href and src attributes. Empty leaves them as is.
	BaseURL string
}

var spaceRun = regexp.MustCompile(`[[:space:]][[:space:]]*`)

func isChildOf(node *html.Node, name string) bool {
	node = node.Parent
	return node != nil && node.Type == html.ElementNode && strings.ToLower(node.Data) == name
}

func attr(node *html.Node, key string) string {
	for _, attr := range node.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func isHeading(node *html.Node) bool {
	if node.Type != html.ElementNode || len(node.Data) != 2 {
		return false
	}
	name := strings.ToLower(node.Data)
	return name[0] == 'h' && name[1] >= '1' && name[1] <= '6'
}

// linkedHeading returns the heading when it is the only non-blank content
// of the link node.
func linkedHeading(node *html.Node) *html.Node {
	var heading *html.Node
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				return nil
			}
		case html.ElementNode:
			if heading != nil || !isHeading(c) {
				return nil
			}
			heading = c
		}
	}
	return heading
}

func resolve(ref string, opt *Option) string {
	if opt == nil || opt.BaseURL == "" || ref == "" {
		return ref
	}
	base, err := url.Parse(opt.BaseURL)
	if err != nil {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(u).String()
}

func br(node *html.Node, w io.Writer) {
	node = node.PrevSibling
	if node == nil {
		return
	}
	switch node.Type {
	case html.TextNode:
		text := strings.Trim(node.Data, " \t")
		if text != "" && !strings.HasSuffix(text, "\n") {
			fmt.Fprint(w, "\n")
		}
	case html.ElementNode:
		switch strings.ToLower(node.Data) {
		case "br", "p", "ul", "ol", "div", "blockquote", "h1", "h2", "h3", "h4", "h5", "h6":
			fmt.Fprint(w, "\n")
		}
	}
}

func table(node *html.Node, w io.Writer, opt *Option) {
	for tr := node.FirstChild; tr != nil; tr = tr.NextSibling {
		if tr.Type == html.ElementNode && strings.ToLower(tr.Data) == "tbody" {
			node = tr
			break
		}
	}
	var header bool
	var rows [][]string
	for tr := node.FirstChild; tr != nil; tr = tr.NextSibling {
		if tr.Type != html.ElementNode || strings.ToLower(tr.Data) != "tr" {
			continue
		}
		var cols []string
		if !header {
			for th := tr.FirstChild; th != nil; th = th.NextSibling {
				if th.Type != html.ElementNode || strings.ToLower(th.Data) != "th" {
					continue
				}
				var buf bytes.Buffer
				walk(th, &buf, 0, opt)
				cols = append(cols, buf.String())
			}
			if len(cols) > 0 {
				rows = append(rows, cols)
				header = true
				continue
			}
		}
		for td := tr.FirstChild; td != nil; td = td.NextSibling {
			if td.Type != html.ElementNode || strings.ToLower(td.Data) != "td" {
				continue
			}
			var buf bytes.Buffer
			walk(td, &buf, 0, opt)
			cols = append(cols, buf.String())
		}
		rows = append(rows, cols)
	}
	maxcol := 0
	for _, cols := range rows {
		if len(cols) > maxcol {
			maxcol = len(cols)
		}
	}
	widths := make([]int, maxcol)
	for _, cols := range rows {
		for i := 0; i < maxcol && i < len(cols); i++ {
			if width := runewidth.StringWidth(cols[i]); widths[i] < width {
				widths[i] = width
			}
		}
	}
	for i, cols := range rows {
		for j := 0; j < maxcol; j++ {
			fmt.Fprint(w, "|")
			if j < len(cols) {
				fmt.Fprint(w, runewidth.FillRight(cols[j], widths[j]))
			} else {
				fmt.Fprint(w, strings.Repeat(" ", widths[j]))
			}
		}
		fmt.Fprint(w, "|\n")
		if i == 0 && header {
			for j := 0; j < maxcol; j++ {
				fmt.Fprint(w, "|")
				fmt.Fprint(w, strings.Repeat("-", widths[j]))
			}
			fmt.Fprint(w, "|\n")
		}
	}
	fmt.Fprint(w, "\n")
}

func pre(node *html.Node, w io.Writer) {
	if node.Type == html.TextNode {
		fmt.Fprint(w, node.Data)
		return
	}
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && strings.ToLower(c.Data) == "code" {
			pre(c, w)
			return
		}
		pre(c, w)
	}
}

func heading(node *html.Node, w io.Writer, nest int, href string, opt *Option) {
	fmt.Fprint(w, strings.Repeat("#", int(node.Data[1]-'0'))+" ")
	var buf bytes.Buffer
	walk(node, &buf, nest, opt)
	text := strings.Join(strings.Fields(buf.String()), " ")
	if href != "" {
		text = "[" + text + "](" + href + ")"
	}
	fmt.Fprint(w, text+"\n\n")
}

func walk(node *html.Node, w io.Writer, nest int, opt *Option) {
	if node.Type == html.TextNode {
		if strings.TrimSpace(node.Data) != "" {
			fmt.Fprint(w, spaceRun.ReplaceAllString(strings.Trim(node.Data, "\t\r\n"), " "))
		}
	}
	n := 0
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			switch strings.ToLower(c.Data) {
			case "a":
				href := resolve(attr(c, "href"), opt)
				if h := linkedHeading(c); h != nil {
					br(c, w)
					heading(h, w, nest, href, opt)
					break
				}
				fmt.Fprint(w, "[")
				walk(c, w, nest, opt)
				fmt.Fprint(w, "]("+href+")")
			case "b", "strong":
				fmt.Fprint(w, "**")
				walk(c, w, nest, opt)
				fmt.Fprint(w, "**")
			case "i", "em":
				fmt.Fprint(w, "_")
				walk(c, w, nest, opt)
				fmt.Fprint(w, "_")
			case "del":
				fmt.Fprint(w, "~~")
				walk(c, w, nest, opt)
				fmt.Fprint(w, "~~")
			case "br":
				fmt.Fprint(w, "\n")
			case "p":
				br(c, w)
				walk(c, w, nest, opt)
				fmt.Fprint(w, "\n\n")
			case "code":
				if !isChildOf(c, "pre") {
					fmt.Fprint(w, "`")
					pre(c, w)
					fmt.Fprint(w, "`")
				}
			case "pre":
				br(c, w)
				fmt.Fprint(w, "```\n")
				var buf bytes.Buffer
				pre(c, &buf)
				fmt.Fprint(w, buf.String())
				if !strings.HasSuffix(buf.String(), "\n") {
					fmt.Fprint(w, "\n")
				}
				fmt.Fprint(w, "```\n\n")
			case "div":
				br(c, w)
				walk(c, w, nest, opt)
				fmt.Fprint(w, "\n")
			case "blockquote":
				br(c, w)
				var buf bytes.Buffer
				walk(c, &buf, nest+1, opt)
				if text := strings.Trim(buf.String(), "\r\n"); text != "" {
					for _, l := range strings.Split(text, "\n") {
						fmt.Fprint(w, "> "+strings.Trim(l, " \t")+"\n")
					}
					fmt.Fprint(w, "\n")
				}
			case "ul", "ol":
				walk(c, w, nest+1, opt)
				fmt.Fprint(w, "\n")
			case "li":
				br(c, w)
				if nest > 1 {
					fmt.Fprint(w, strings.Repeat("  ", nest-1))
				}
				if isChildOf(c, "ul") {
					fmt.Fprint(w, "* ")
				} else if isChildOf(c, "ol") {
					n++
					fmt.Fprintf(w, "%d. ", n)
				}
				walk(c, w, nest, opt)
				fmt.Fprint(w, "\n")
			case "h1", "h2", "h3", "h4", "h5", "h6":
				br(c, w)
				heading(c, w, nest, "", opt)
			case "img":
				fmt.Fprint(w, "!["+attr(c, "alt")+"]("+resolve(attr(c, "src"), opt)+")")
			case "hr":
				br(c, w)
				fmt.Fprint(w, "\n---\n")
			case "table":
				br(c, w)
				table(c, w, opt)
			case "script", "style", "head":
			default:
				walk(c, w, nest, opt)
			}
		default:
			walk(c, w, nest, opt)
		}
	}
}

// Render writes the Markdown form of node and its subtree to w. Lines are
// never wrapped.
func Render(w io.Writer, node *html.Node, opt *Option) error {
	var buf bytes.Buffer
	walk(node, &buf, 0, opt)
	buf.WriteString("\n")
	_, err := buf.WriteTo(w)
	return err
}

// Convert convert HTML to Markdown. Read HTML from r and write to w.
func Convert(w io.Writer, r io.Reader, opt *Option) error {
	doc, err := html.Parse(r)
	if err != nil {
		return err
	}
	return Render(w, doc, opt)
}
