package cli

import (
	"context"
	"encoding/json"
	"fmt"
	stdhtml "html"
	"log"

	"github.com/dalesbridge/chronicle/internal/client/content"
	"github.com/dalesbridge/chronicle/internal/client/editor"
	"github.com/dalesbridge/chronicle/internal/richtext"
)

// Open loads the page for a slug and makes it the current page.
func (a *App) Open(ctx context.Context, slug string) {
	a.closeEditor()
	a.loader = content.NewLoader(a.client, fieldsFor(slug))
	a.slug = slug

	switch a.loader.Load(ctx, slug) {
	case content.StateLoaded:
		a.Show(ctx)
	case content.StateNotFound:
		log.Println(content.NotFoundMessage)
		a.loader = nil
		a.slug = ""
	case content.StateErrored:
		log.Printf("Error: %s", a.loader.Err().Error())
		a.loader = nil
		a.slug = ""
	}
}

// Show prints every field of the current page as rendered HTML.
func (a *App) Show(ctx context.Context) {
	if a.loader == nil || a.loader.Page() == nil {
		log.Println("No page open")
		return
	}

	page := a.loader.Page()
	fmt.Fprintf(a.out, "== %s (%s)\n", page.Title, page.Slug)
	for _, field := range a.loader.Fields() {
		fmt.Fprintf(a.out, "-- %s\n%s\n", field.Name, a.fieldHTML(field))
	}
}

// fieldHTML renders one field of the current page, falling back to the
// field's placeholder when the value is absent or unreadable.
func (a *App) fieldHTML(field content.Field) string {
	page := a.loader.Page()

	raw, ok := page.Content[field.Name]
	if !ok {
		return richtext.Decode(nil, field.DefaultText)
	}

	var doc richtext.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		// scalar values (plain strings) are shown as a single paragraph
		var s string
		if json.Unmarshal(raw, &s) == nil {
			return "<p>" + stdhtml.EscapeString(s) + "</p>"
		}
		return richtext.Decode(nil, field.DefaultText)
	}
	return richtext.Decode(&doc, field.DefaultText)
}

// Edit opens a draft for one field of the current page. The draft is saved
// with the "save" command and thrown away with "cancel".
func (a *App) Edit(ctx context.Context, name string) {
	if a.loader == nil || a.loader.Page() == nil {
		log.Println("No page open")
		return
	}

	var field *content.Field
	for i := range a.loader.Fields() {
		if a.loader.Fields()[i].Name == name {
			field = &a.loader.Fields()[i]
			break
		}
	}
	if field == nil {
		log.Printf("Unknown field: %s (try 'fields')", name)
		return
	}

	fieldName := field.Name
	save := func(ctx context.Context, html string) error {
		doc := richtext.Encode(html)
		raw, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		return a.loader.Update(ctx, fieldName, raw)
	}

	ed := editor.New(a.session.IsEditMode, save)
	if err := ed.Begin(a.fieldHTML(*field)); err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}

	text, err := GetSimpleText(a.reader, "New text (blank keeps current)", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		_ = ed.Cancel()
		return
	}
	if text != "" {
		ed.SetBuffer(wrapText(*field, text))
	}

	a.editor = ed
	a.editingField = fieldName
	log.Printf("Editing %s; 'save' to keep, 'cancel' to discard", fieldName)
}

// Save persists the open draft.
func (a *App) Save(ctx context.Context) {
	if a.editor == nil {
		log.Println("Nothing being edited")
		return
	}

	if err := a.editor.Save(ctx); err != nil {
		// the draft survives a failed save
		log.Printf("Save failed: %s", a.editor.SaveError())
		return
	}
	log.Printf("Saved %s", a.editingField)
	a.closeEditor()
}

// CancelEdit discards the open draft.
func (a *App) CancelEdit(ctx context.Context) {
	if a.editor == nil {
		log.Println("Nothing being edited")
		return
	}
	if err := a.editor.Cancel(); err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}
	a.closeEditor()
	log.Println("Edit cancelled")
}

// Fields lists the editable fields of the current page.
func (a *App) ListFields(ctx context.Context) {
	if a.loader == nil {
		log.Println("No page open")
		return
	}
	for _, field := range a.loader.Fields() {
		fmt.Fprintf(a.out, "%s\n", field.Name)
	}
}

func (a *App) closeEditor() {
	if a.editor != nil && a.editor.State() == editor.StateEditing {
		_ = a.editor.Cancel()
	}
	a.editor = nil
	a.editingField = ""
}

func wrapText(field content.Field, text string) string {
	escaped := stdhtml.EscapeString(text)
	if field.HeadingLevel > 0 {
		return fmt.Sprintf("<h%d>%s</h%d>", field.HeadingLevel, escaped, field.HeadingLevel)
	}
	return "<p>" + escaped + "</p>"
}
