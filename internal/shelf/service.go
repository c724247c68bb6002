package shelf

import (
	"context"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, userID string) ([]Shelf, error) {
	shelves, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if shelves == nil {
		shelves = []Shelf{}
	}
	return shelves, nil
}

func (s *Service) Create(ctx context.Context, userID, name string) (Shelf, error) {
	sh := &Shelf{UserID: userID, Name: strings.TrimSpace(name)}
	if err := s.repo.Create(ctx, sh); err != nil {
		return Shelf{}, err
	}
	return *sh, nil
}

// GetOwned returns the shelf only when it belongs to userID; anything else is
// ErrNotFound.
func (s *Service) GetOwned(ctx context.Context, userID, id string) (Shelf, error) {
	return s.repo.GetForUser(ctx, userID, id)
}
