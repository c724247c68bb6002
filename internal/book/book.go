// Package book holds the shared book records and each user's library entries
// pointing at them.
package book

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when an entry does not exist or belongs to someone else.
	ErrNotFound          = errors.New("book not found")
	ErrAlreadyInLibrary  = errors.New("book is already in your library")
	ErrInvalidShelf      = errors.New("shelf does not belong to the user")
	ErrInvalidISBN       = errors.New("isbn must contain digits")
	ErrInvalidCursor     = errors.New("invalid cursor")
	errBookAlreadyExists = errors.New("book row already exists")
)

// Book is shared by every user that adds the same ISBN.
type Book struct {
	ID        string `json:"id" db:"id"`
	ISBN      string `json:"isbn" db:"isbn"`
	Title     string `json:"title" db:"title"`
	Author    string `json:"author" db:"author"`
	Publisher string `json:"publisher" db:"publisher"`
	CoverURL  string `json:"cover_url" db:"cover_url"`
}

// UserBook is one entry of a user's library.
type UserBook struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"-" db:"user_id"`
	Book      Book      `json:"book" db:"book"`
	ShelfID   *string   `json:"shelf_id" db:"shelf_id"`
	Memo      string    `json:"memo" db:"memo"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Query lists one user's entries, newest first.
type Query struct {
	UserID string
	Q      string // case-insensitive title substring
	Limit  int
	After  *CursorData
}

type AddInput struct {
	ISBN      string
	Title     string
	Author    string
	Publisher string
	CoverURL  string
	Memo      string
	ShelfID   *string
}

type EditInput struct {
	ShelfID *string
	Memo    string
}
