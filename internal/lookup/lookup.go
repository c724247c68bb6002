// Package lookup resolves an ISBN into book metadata by asking openBD first and
// Google Books second, merging what each of them knows.
package lookup

import (
	"errors"
)

var (
	// ErrEmptyISBN is returned when the identifier has no digits at all.
	ErrEmptyISBN = errors.New("isbn is empty")
	// ErrNotFound is returned when no provider supplied any usable field.
	ErrNotFound = errors.New("book not found")
)

// Fields are the metadata values a provider can contribute. Empty means unknown.
type Fields struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Publisher string `json:"publisher"`
	CoverURL  string `json:"cover_url"`
}

func (f Fields) empty() bool {
	return f.Title == "" && f.Author == "" && f.Publisher == "" && f.CoverURL == ""
}

// Record is the consolidated result of a lookup.
type Record struct {
	ISBN string `json:"isbn"`
	Fields
}
