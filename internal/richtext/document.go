// Package richtext implements the structured-document model persisted for
// editable page content, and a two-way conversion between that model and
// HTML fragments suitable for a WYSIWYG widget.
//
// The model is deliberately minimal: an ordered list of paragraph and
// heading blocks, each carrying a single plain-text run. Formatting beyond
// that (bold, italics, lists, links) is not modelled and is discarded on
// encode. That lossy boundary is a documented property of the system, not
// an accident.
package richtext

import "strings"

// Block type tags as stored in the document JSON.
const (
	TypeDoc       = "doc"
	TypeParagraph = "paragraph"
	TypeHeading   = "heading"
	TypeText      = "text"
)

// Document is the persisted block-list representation of rich text.
type Document struct {
	Type    string  `json:"type"`
	Content []Block `json:"content"`
}

// Block is one paragraph or heading. Headings carry their level in Attrs.
type Block struct {
	Type    string        `json:"type"`
	Attrs   *HeadingAttrs `json:"attrs,omitempty"`
	Content []TextNode    `json:"content,omitempty"`
}

// HeadingAttrs holds heading-specific attributes.
type HeadingAttrs struct {
	Level int `json:"level"`
}

// TextNode is a single inline text run.
type TextNode struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewDocument builds a document from the given blocks.
func NewDocument(blocks ...Block) *Document {
	return &Document{Type: TypeDoc, Content: blocks}
}

// Paragraph builds a paragraph block with one text run.
func Paragraph(text string) Block {
	return Block{
		Type:    TypeParagraph,
		Content: []TextNode{{Type: TypeText, Text: text}},
	}
}

// Heading builds a heading block with one text run. Levels outside 1..6
// are clamped.
func Heading(level int, text string) Block {
	return Block{
		Type:    TypeHeading,
		Attrs:   &HeadingAttrs{Level: clampLevel(level)},
		Content: []TextNode{{Type: TypeText, Text: text}},
	}
}

// Text returns the concatenated text runs of the block.
func (b Block) Text() string {
	var sb strings.Builder
	for _, n := range b.Content {
		sb.WriteString(n.Text)
	}
	return sb.String()
}

// Level returns the heading level, defaulting to 2 when attrs are absent.
func (b Block) Level() int {
	if b.Attrs == nil {
		return 2
	}
	return clampLevel(b.Attrs.Level)
}

// IsEmpty reports whether the document holds no non-blank text at all.
func (d *Document) IsEmpty() bool {
	if d == nil {
		return true
	}
	for _, b := range d.Content {
		if strings.TrimSpace(b.Text()) != "" {
			return false
		}
	}
	return true
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 6 {
		return 6
	}
	return level
}
