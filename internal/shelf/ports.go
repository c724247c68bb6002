package shelf

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=shelf

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Shelf, error)
	Create(ctx context.Context, s *Shelf) error
	GetForUser(ctx context.Context, userID, id string) (Shelf, error)
}
