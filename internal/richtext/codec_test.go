package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeParagraphsAndHeadings(t *testing.T) {
	doc := NewDocument(
		Heading(2, "The Corn Mill"),
		Paragraph("Built on the beck in 1782."),
	)

	got := Decode(doc, "ignored")

	assert.Equal(t, "<h2>The Corn Mill</h2><p>Built on the beck in 1782.</p>", got)
}

func TestDecodeFallbacks(t *testing.T) {
	tests := []struct {
		name string
		doc  *Document
	}{
		{"nil document", nil},
		{"empty content", &Document{Type: TypeDoc}},
		{"whitespace only", NewDocument(Paragraph("   "))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "<p>X</p>", Decode(tt.doc, "X"))
		})
	}
}

func TestDecodeEscapesText(t *testing.T) {
	got := Decode(NewDocument(Paragraph("Thwaite & Muker <gates>")), "")
	assert.Equal(t, "<p>Thwaite &amp; Muker &lt;gates&gt;</p>", got)
}

func TestDecodeClampsHeadingLevel(t *testing.T) {
	assert.Equal(t, "<h6>deep</h6>", Decode(NewDocument(Heading(9, "deep")), ""))
	assert.Equal(t, "<h1>top</h1>", Decode(NewDocument(Heading(0, "top")), ""))
}

func TestEncodeParagraphsAndHeadings(t *testing.T) {
	doc := Encode("<h3>Chapel Row</h3><p>Six cottages, now four.</p>")

	assert.Equal(t, TypeDoc, doc.Type)
	assert.Len(t, doc.Content, 2)
	assert.Equal(t, TypeHeading, doc.Content[0].Type)
	assert.Equal(t, 3, doc.Content[0].Level())
	assert.Equal(t, "Chapel Row", doc.Content[0].Text())
	assert.Equal(t, TypeParagraph, doc.Content[1].Type)
	assert.Equal(t, "Six cottages, now four.", doc.Content[1].Text())
}

func TestEncodeDiscardsInlineMarks(t *testing.T) {
	doc := Encode("<p>The <strong>old</strong> <em>school</em></p>")

	assert.Len(t, doc.Content, 1)
	assert.Equal(t, "The old school", doc.Content[0].Text())
}

func TestEncodeIgnoresUnknownTopLevelNodes(t *testing.T) {
	doc := Encode("<div>skipped</div><p>kept</p><ul><li>also skipped</li></ul>")

	assert.Len(t, doc.Content, 1)
	assert.Equal(t, "kept", doc.Content[0].Text())
}

func TestEncodeRawFallbackWhenNoBlocks(t *testing.T) {
	doc := Encode("just loose text")

	assert.Len(t, doc.Content, 1)
	assert.Equal(t, TypeParagraph, doc.Content[0].Type)
	assert.Equal(t, "just loose text", doc.Content[0].Text())
}

// Plain paragraph/heading documents survive a full decode/encode cycle.
func TestRoundTripPlainBlocks(t *testing.T) {
	doc := NewDocument(
		Heading(1, "Gunnerside"),
		Paragraph("A township in upper Swaledale."),
		Heading(4, "Lead mining"),
		Paragraph("The levels closed by 1900."),
	)

	got := Encode(Decode(doc, ""))

	assert.Equal(t, doc, got)
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "   ", PlainText("<p>   </p>"))
	assert.Equal(t, "ab", PlainText("<p>a</p><p>b</p>"))
	assert.Equal(t, "", PlainText(""))
	assert.Equal(t, "bold", PlainText("<p><b>bold</b></p>"))
}
