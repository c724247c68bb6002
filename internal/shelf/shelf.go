// Package shelf manages the named shelves a user sorts their books into.
package shelf

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("shelf not found")
	ErrAlreadyExists = errors.New("shelf already exists")
)

type Shelf struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"-" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
