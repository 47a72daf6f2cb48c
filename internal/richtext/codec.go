package richtext

import (
	"fmt"
	stdhtml "html"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Decode renders a document as an HTML fragment: <p> per paragraph and
// <h{level}> per heading, in order. Blank blocks are skipped. A nil or
// empty document yields a single paragraph holding fallbackText.
// Decode never fails.
func Decode(doc *Document, fallbackText string) string {
	if doc.IsEmpty() {
		return "<p>" + stdhtml.EscapeString(fallbackText) + "</p>"
	}

	var sb strings.Builder
	for _, b := range doc.Content {
		text := b.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		switch b.Type {
		case TypeHeading:
			fmt.Fprintf(&sb, "<h%d>%s</h%d>", b.Level(), stdhtml.EscapeString(text), b.Level())
		default:
			sb.WriteString("<p>" + stdhtml.EscapeString(text) + "</p>")
		}
	}
	if sb.Len() == 0 {
		return "<p>" + stdhtml.EscapeString(fallbackText) + "</p>"
	}
	return sb.String()
}

// Encode parses an HTML fragment and rebuilds a document from its top-level
// paragraph and heading elements. Only text content survives; inline marks
// produced by the editing widget (bold, links, ...) are discarded. Other
// top-level nodes are ignored. If nothing usable is found, the raw input is
// kept verbatim as a single paragraph so no edit is ever lost outright.
// Encode never fails.
func Encode(fragment string) *Document {
	nodes, err := parseFragment(fragment)
	if err != nil {
		return NewDocument(Paragraph(fragment))
	}

	var blocks []Block
	for _, n := range nodes {
		if n.Type != html.ElementNode {
			continue
		}
		text := nodeText(n)
		switch n.DataAtom {
		case atom.P:
			blocks = append(blocks, Paragraph(text))
		case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
			blocks = append(blocks, Heading(headingLevel(n.Data), text))
		}
	}

	if len(blocks) == 0 {
		return NewDocument(Paragraph(fragment))
	}
	return NewDocument(blocks...)
}

// PlainText returns the concatenated text content of an HTML fragment with
// all markup removed. Used for emptiness checks before a save.
func PlainText(fragment string) string {
	nodes, err := parseFragment(fragment)
	if err != nil {
		return fragment
	}
	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(nodeText(n))
	}
	return sb.String()
}

func parseFragment(fragment string) ([]*html.Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	return html.ParseFragment(strings.NewReader(fragment), ctx)
}

// nodeText concatenates all descendant text nodes.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// headingLevel derives the level from a tag name like "h3".
func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' {
		return clampLevel(int(tag[1] - '0'))
	}
	return 2
}
