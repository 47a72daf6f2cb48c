package models

import "time"

// Person is a genealogical record: someone who lived in the parish.
type Person struct {
	ID         string
	Surname    string
	Forenames  string
	BirthYear  int
	DeathYear  int
	Residence  string
	Occupation string
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Building is a notable structure of the parish: farmhouses, barns,
// chapels, mills.
type Building struct {
	ID            string
	Name          string
	BuildingType  string
	GridReference string
	BuiltYear     int
	ListedGrade   string
	Description   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Map is a historic map sheet held in the archive, stored as a blob.
type Map struct {
	ID          string
	Title       string
	Year        int
	Scale       string
	Description string
	StorageKey  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Event is a dated happening shown on the village timeline.
type Event struct {
	ID          string
	Title       string
	Description string
	Date        time.Time
	Location    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Photograph is an archive image with its blob-storage key.
type Photograph struct {
	ID         string
	Title      string
	Caption    string
	Year       int
	StorageKey string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// MediaFile is an uploaded document (scan, PDF, transcript).
type MediaFile struct {
	ID         string
	FileName   string
	MimeType   string
	SizeBytes  int64
	StorageKey string
	CreatedAt  time.Time
}

// Contribution is a visitor-submitted memory or correction awaiting review.
type Contribution struct {
	ID          string
	Name        string
	Email       string
	Subject     string
	Body        string
	Reviewed    bool
	SubmittedAt time.Time
}
