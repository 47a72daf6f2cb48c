// Package models defines the server-side records persisted in the content
// store.
package models

import (
	"encoding/json"
	"time"
)

// PageContent maps page-specific field names (heroTitle, intro, ...) to
// their stored values. Each value is independently a richtext document or
// a scalar; no schema is enforced across fields.
type PageContent map[string]json.RawMessage

// Page is one editable page of the site, addressed by its slug.
type Page struct {
	ID              string
	Slug            string
	Title           string
	Content         PageContent
	MetaDescription string
	Published       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
