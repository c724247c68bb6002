package main

import (
	"context"
	"errors"
	"time"

	"bookshelf/internal/book"
	"bookshelf/internal/lookup"
)

type resolver interface {
	Resolve(ctx context.Context, raw string) (lookup.Record, error)
}

type library interface {
	Add(ctx context.Context, userID string, in book.AddInput) (book.UserBook, error)
}

type seedResult struct {
	ISBN   string
	Title  string
	Status string
}

func seedBooks(ctx context.Context, r resolver, lib library, userID string, shelfID *string, isbns []string, delay time.Duration) []seedResult {
	results := make([]seedResult, 0, len(isbns))
	for i, raw := range isbns {
		if i > 0 && delay > 0 {
			select {
			case <-ctx.Done():
				return results
			case <-time.After(delay):
			}
		}
		results = append(results, seedOne(ctx, r, lib, userID, shelfID, raw))
	}
	return results
}

func seedOne(ctx context.Context, r resolver, lib library, userID string, shelfID *string, raw string) seedResult {
	rec, err := r.Resolve(ctx, raw)
	if err != nil {
		return seedResult{ISBN: raw, Status: err.Error()}
	}
	if rec.Title == "" {
		return seedResult{ISBN: rec.ISBN, Status: "skipped: no title"}
	}

	_, err = lib.Add(ctx, userID, book.AddInput{
		ISBN:      rec.ISBN,
		Title:     rec.Title,
		Author:    rec.Author,
		Publisher: rec.Publisher,
		CoverURL:  rec.CoverURL,
		ShelfID:   shelfID,
	})
	switch {
	case err == nil:
		return seedResult{ISBN: rec.ISBN, Title: rec.Title, Status: "added"}
	case errors.Is(err, book.ErrAlreadyInLibrary):
		return seedResult{ISBN: rec.ISBN, Title: rec.Title, Status: "already present"}
	default:
		return seedResult{ISBN: rec.ISBN, Title: rec.Title, Status: "error: " + err.Error()}
	}
}
