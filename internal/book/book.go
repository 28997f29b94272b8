package book

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when no book has the requested id.
	ErrNotFound = errors.New("book not found")
	// ErrInsertFailed is returned when a new book could not be stored.
	ErrInsertFailed = errors.New("book insert failed")
)

// Book represents a book record and its reading progress.
type Book struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Year       int       `json:"year"`
	Author     string    `json:"author"`
	Summary    string    `json:"summary"`
	Publisher  string    `json:"publisher"`
	PageCount  int       `json:"pageCount"`
	ReadPage   int       `json:"readPage"`
	Finished   bool      `json:"finished"`
	Reading    bool      `json:"reading"`
	InsertedAt Timestamp `json:"insertedAt"`
	UpdatedAt  Timestamp `json:"updatedAt"`
}

// Summary is the projection returned by list queries.
type Summary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
}

// Brief projects b onto its list summary.
func (b Book) Brief() Summary {
	return Summary{ID: b.ID, Name: b.Name, Publisher: b.Publisher}
}

// Input carries the user-supplied fields for create and update.
// Reading is optional on update; nil keeps the stored value.
type Input struct {
	Name      string `json:"name" validate:"required"`
	Year      int    `json:"year"`
	Author    string `json:"author"`
	Summary   string `json:"summary"`
	Publisher string `json:"publisher"`
	PageCount int    `json:"pageCount" validate:"gte=0"`
	ReadPage  int    `json:"readPage" validate:"gte=0,ltefield=PageCount"`
	Reading   *bool  `json:"reading"`
}

// Filter narrows list queries. Zero values impose no constraint.
type Filter struct {
	Name     string
	Reading  *bool
	Finished *bool
}

// Match reports whether b satisfies every filter that is set.
func (f Filter) Match(b Book) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(b.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Reading != nil && b.Reading != *f.Reading {
		return false
	}
	if f.Finished != nil && b.Finished != *f.Finished {
		return false
	}
	return true
}

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp is a UTC instant encoded with millisecond precision.
type Timestamp time.Time

func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// MarshalJSON writes the timestamp as a quoted ISO-8601 string.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).UTC().Format(timestampLayout) + `"`), nil
}

// UnmarshalJSON parses any RFC 3339 timestamp.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return err
	}
	*t = Timestamp(parsed.UTC())
	return nil
}
