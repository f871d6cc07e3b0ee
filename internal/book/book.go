package book

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a single book lookup matches no row.
var ErrNotFound = errors.New("Book not Found")

// ErrNoBooksFound is returned when a search matches no rows.
var ErrNoBooksFound = errors.New("No Books Found")

// ValidationError reports a request body that failed schema validation. It
// is raised before any store access and maps to a 400 response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Book represents a book row.
type Book struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title" validate:"required,max=255"`
	ReleaseDate Date    `json:"release_date"`
	Author      string  `json:"author" validate:"required,max=255"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// Patch carries the fields a client submitted in a create or update body.
// Pointers distinguish "omitted" from "set": on update, nil fields keep
// their stored values.
type Patch struct {
	ID          *int64  `json:"id"`
	Title       *string `json:"title"`
	ReleaseDate *Date   `json:"release_date"`
	Author      *string `json:"author"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// ApplyTo overlays the submitted fields onto an existing record. The id is
// deliberately not applied; callers pin it from the request path.
func (p Patch) ApplyTo(b *Book) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.ReleaseDate != nil {
		b.ReleaseDate = *p.ReleaseDate
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Description != nil {
		b.Description = p.Description
	}
	if p.Image != nil {
		b.Image = p.Image
	}
}

const dateLayout = "2006-01-02"

// Date is a calendar date without a time component, rendered as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate builds a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("invalid date (string expected): %w", err)
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		// Accept full timestamps too; the stored column is a plain date.
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("cannot parse date %q", s)
		}
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte(`null`), nil
	}
	return json.Marshal(d.Time.Format(dateLayout))
}
