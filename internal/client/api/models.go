package api

import (
	"encoding/json"
	"time"
)

// Content maps page field names to their stored values. Each value is a
// richtext document or a scalar, kept raw until a caller decodes it.
type Content map[string]json.RawMessage

type Page struct {
	ID              string    `json:"id"`
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Content         Content   `json:"content"`
	MetaDescription string    `json:"meta_description"`
	Published       bool      `json:"published"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type TownshipCard struct {
	Title   string          `json:"title"`
	Icon    string          `json:"icon"`
	Content json.RawMessage `json:"content"`
}

type Township struct {
	ID        string         `json:"id"`
	Slug      string         `json:"slug"`
	Name      string         `json:"name"`
	Summary   string         `json:"summary"`
	Cards     []TownshipCard `json:"cards"`
	Published bool           `json:"published"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

type Contribution struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	Reviewed    bool      `json:"reviewed"`
	SubmittedAt time.Time `json:"submitted_at"`
}
