package book

import (
	"context"
	"errors"
	"strings"

	"bookshelf/internal/lookup"
	"bookshelf/internal/shelf"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type Service struct {
	repo    Repository
	shelves ShelfFinder
}

func NewService(repo Repository, shelves ShelfFinder) *Service {
	return &Service{repo: repo, shelves: shelves}
}

// List returns one page of the user's library and the cursor of the next page, or
// "" on the last page.
func (s *Service) List(ctx context.Context, q Query) ([]UserBook, string, error) {
	if q.Limit <= 0 || q.Limit > MaxLimit {
		q.Limit = DefaultLimit
	}
	q.Q = strings.TrimSpace(q.Q)

	want := q.Limit
	q.Limit++
	entries, err := s.repo.ListUserBooks(ctx, q)
	if err != nil {
		return nil, "", err
	}

	var next string
	if len(entries) > want {
		entries = entries[:want]
		last := entries[want-1]
		next = EncodeCursor(CursorData{AfterID: last.ID, CreatedAt: last.CreatedAt})
	}
	if entries == nil {
		entries = []UserBook{}
	}
	return entries, next, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (UserBook, error) {
	return s.repo.GetUserBook(ctx, userID, id)
}

// Add puts a book into the user's library. The shared book row is found by ISBN or
// created; submitted non-empty values refresh the stored ones. A shelf the user does
// not own is dropped rather than rejected.
func (s *Service) Add(ctx context.Context, userID string, in AddInput) (UserBook, error) {
	in = trimAdd(in)
	in.ISBN = lookup.NormalizeISBN(in.ISBN)
	if in.ISBN == "" {
		return UserBook{}, ErrInvalidISBN
	}

	shelfID, err := s.ownedShelf(ctx, userID, in.ShelfID)
	if errors.Is(err, ErrInvalidShelf) {
		shelfID = nil
	} else if err != nil {
		return UserBook{}, err
	}

	b, err := s.upsertBook(ctx, Book{
		ISBN:      in.ISBN,
		Title:     in.Title,
		Author:    in.Author,
		Publisher: in.Publisher,
		CoverURL:  in.CoverURL,
	})
	if err != nil {
		return UserBook{}, err
	}

	ub := &UserBook{
		UserID:  userID,
		Book:    b,
		ShelfID: shelfID,
		Memo:    in.Memo,
	}
	if err := s.repo.CreateUserBook(ctx, ub); err != nil {
		return UserBook{}, err
	}
	return *ub, nil
}

// Edit moves the entry to another shelf (nil clears it) and replaces the memo.
func (s *Service) Edit(ctx context.Context, userID, id string, in EditInput) (UserBook, error) {
	in.Memo = strings.TrimSpace(in.Memo)

	shelfID, err := s.ownedShelf(ctx, userID, in.ShelfID)
	if err != nil {
		return UserBook{}, err
	}
	in.ShelfID = shelfID

	if err := s.repo.UpdateUserBook(ctx, userID, id, in); err != nil {
		return UserBook{}, err
	}
	return s.repo.GetUserBook(ctx, userID, id)
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.DeleteUserBook(ctx, userID, id)
}

// ownedShelf returns nil for an absent or blank id and ErrInvalidShelf for a shelf
// that is missing or foreign.
func (s *Service) ownedShelf(ctx context.Context, userID string, id *string) (*string, error) {
	if id == nil || strings.TrimSpace(*id) == "" {
		return nil, nil
	}
	sh, err := s.shelves.GetOwned(ctx, userID, strings.TrimSpace(*id))
	if err != nil {
		if errors.Is(err, shelf.ErrNotFound) {
			return nil, ErrInvalidShelf
		}
		return nil, err
	}
	return &sh.ID, nil
}

func (s *Service) upsertBook(ctx context.Context, in Book) (Book, error) {
	existing, err := s.repo.GetBookByISBN(ctx, in.ISBN)
	if errors.Is(err, ErrNotFound) {
		created := in
		err = s.repo.CreateBook(ctx, &created)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, errBookAlreadyExists) {
			return Book{}, err
		}
		// lost a race with another insert of the same isbn
		existing, err = s.repo.GetBookByISBN(ctx, in.ISBN)
	}
	if err != nil {
		return Book{}, err
	}

	if merged, changed := refresh(existing, in); changed {
		if err := s.repo.UpdateBook(ctx, merged); err != nil {
			return Book{}, err
		}
		return merged, nil
	}
	return existing, nil
}

// refresh copies every non-empty field of in that differs from stored.
func refresh(stored, in Book) (Book, bool) {
	changed := false
	set := func(dst *string, v string) {
		if v != "" && v != *dst {
			*dst = v
			changed = true
		}
	}
	set(&stored.Title, in.Title)
	set(&stored.Author, in.Author)
	set(&stored.Publisher, in.Publisher)
	set(&stored.CoverURL, in.CoverURL)
	return stored, changed
}

func trimAdd(in AddInput) AddInput {
	in.ISBN = strings.TrimSpace(in.ISBN)
	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
	in.Publisher = strings.TrimSpace(in.Publisher)
	in.CoverURL = strings.TrimSpace(in.CoverURL)
	in.Memo = strings.TrimSpace(in.Memo)
	return in
}
