package models

import (
	"encoding/json"
	"time"
)

// TownshipCard is one content card on a township page. Its body reuses the
// richtext document encoding, stored raw so the store stays schema-free.
type TownshipCard struct {
	Title   string          `json:"title"`
	Icon    CardIcon        `json:"icon"`
	Content json.RawMessage `json:"content"`
}

// Township is one of the historic townships of the parish.
type Township struct {
	ID        string
	Slug      string
	Name      string
	Summary   string
	Cards     []TownshipCard
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
