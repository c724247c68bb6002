package book

import (
	"context"

	"bookshelf/internal/shelf"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository defines the contract for book and library entry storage. Entry methods
// are scoped by user id; a foreign entry reads as ErrNotFound.
type Repository interface {
	GetBookByISBN(ctx context.Context, isbn string) (Book, error)
	CreateBook(ctx context.Context, b *Book) error
	UpdateBook(ctx context.Context, b Book) error

	CreateUserBook(ctx context.Context, ub *UserBook) error
	ListUserBooks(ctx context.Context, q Query) ([]UserBook, error)
	GetUserBook(ctx context.Context, userID, id string) (UserBook, error)
	UpdateUserBook(ctx context.Context, userID, id string, in EditInput) error
	DeleteUserBook(ctx context.Context, userID, id string) error
}

// ShelfFinder resolves a shelf only when it belongs to the user.
type ShelfFinder interface {
	GetOwned(ctx context.Context, userID, id string) (shelf.Shelf, error)
}
