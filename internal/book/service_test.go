package book

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/shelf"
)

func newTestService(t *testing.T) (*Service, *MockRepository, *MockShelfFinder) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := NewMockRepository(ctrl)
	shelves := NewMockShelfFinder(ctrl)
	return NewService(repo, shelves), repo, shelves
}

func strPtr(s string) *string { return &s }

func TestService_Add_CreatesBook(t *testing.T) {
	svc, repo, shelves := newTestService(t)
	ctx := context.Background()

	shelves.EXPECT().GetOwned(gomock.Any(), "u-1", "s-1").Return(shelf.Shelf{ID: "s-1", UserID: "u-1"}, nil)
	repo.EXPECT().GetBookByISBN(gomock.Any(), "9784065199812").Return(Book{}, ErrNotFound)
	repo.EXPECT().CreateBook(gomock.Any(), &Book{
		ISBN:   "9784065199812",
		Title:  "Title",
		Author: "Author",
	}).DoAndReturn(func(_ context.Context, b *Book) error {
		b.ID = "b-1"
		return nil
	})
	repo.EXPECT().CreateUserBook(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ub *UserBook) error {
		assert.Equal(t, "b-1", ub.Book.ID)
		require.NotNil(t, ub.ShelfID)
		assert.Equal(t, "s-1", *ub.ShelfID)
		assert.Equal(t, "memo", ub.Memo)
		ub.ID = "e-1"
		return nil
	})

	ub, err := svc.Add(ctx, "u-1", AddInput{
		ISBN:    " 978-4-06-519981-2 ",
		Title:   " Title ",
		Author:  "Author",
		Memo:    " memo ",
		ShelfID: strPtr("s-1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "e-1", ub.ID)
	assert.Equal(t, "9784065199812", ub.Book.ISBN)
}

func TestService_Add_RefreshesExistingBookWithoutClobbering(t *testing.T) {
	svc, repo, _ := newTestService(t)

	stored := Book{ID: "b-1", ISBN: "123", Title: "Old", Author: "Kept", Publisher: "Pub", CoverURL: "https://c/1.jpg"}
	repo.EXPECT().GetBookByISBN(gomock.Any(), "123").Return(stored, nil)
	repo.EXPECT().UpdateBook(gomock.Any(), Book{
		ID: "b-1", ISBN: "123", Title: "New", Author: "Kept", Publisher: "Pub", CoverURL: "https://c/1.jpg",
	}).Return(nil)
	repo.EXPECT().CreateUserBook(gomock.Any(), gomock.Any()).Return(nil)

	ub, err := svc.Add(context.Background(), "u-1", AddInput{ISBN: "123", Title: "New"})
	require.NoError(t, err)
	assert.Equal(t, "New", ub.Book.Title)
	assert.Equal(t, "Kept", ub.Book.Author)
}

func TestService_Add_UnchangedBookIsNotUpdated(t *testing.T) {
	svc, repo, _ := newTestService(t)

	stored := Book{ID: "b-1", ISBN: "123", Title: "Same"}
	repo.EXPECT().GetBookByISBN(gomock.Any(), "123").Return(stored, nil)
	repo.EXPECT().CreateUserBook(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Add(context.Background(), "u-1", AddInput{ISBN: "123", Title: "Same"})
	require.NoError(t, err)
}

func TestService_Add_ForeignShelfIgnored(t *testing.T) {
	svc, repo, shelves := newTestService(t)

	shelves.EXPECT().GetOwned(gomock.Any(), "u-1", "s-9").Return(shelf.Shelf{}, shelf.ErrNotFound)
	repo.EXPECT().GetBookByISBN(gomock.Any(), "123").Return(Book{ID: "b-1", ISBN: "123", Title: "T"}, nil)
	repo.EXPECT().CreateUserBook(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ub *UserBook) error {
		assert.Nil(t, ub.ShelfID)
		return nil
	})

	_, err := svc.Add(context.Background(), "u-1", AddInput{ISBN: "123", Title: "T", ShelfID: strPtr("s-9")})
	require.NoError(t, err)
}

func TestService_Add_LostInsertRace(t *testing.T) {
	svc, repo, _ := newTestService(t)

	gomock.InOrder(
		repo.EXPECT().GetBookByISBN(gomock.Any(), "123").Return(Book{}, ErrNotFound),
		repo.EXPECT().CreateBook(gomock.Any(), gomock.Any()).Return(errBookAlreadyExists),
		repo.EXPECT().GetBookByISBN(gomock.Any(), "123").Return(Book{ID: "b-7", ISBN: "123", Title: "T"}, nil),
	)
	repo.EXPECT().CreateUserBook(gomock.Any(), gomock.Any()).Return(nil)

	ub, err := svc.Add(context.Background(), "u-1", AddInput{ISBN: "123", Title: "T"})
	require.NoError(t, err)
	assert.Equal(t, "b-7", ub.Book.ID)
}

func TestService_Add_Errors(t *testing.T) {
	t.Run("isbn without digits", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		_, err := svc.Add(context.Background(), "u-1", AddInput{ISBN: "abc", Title: "T"})
		assert.ErrorIs(t, err, ErrInvalidISBN)
	})

	t.Run("duplicate entry", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.EXPECT().GetBookByISBN(gomock.Any(), "123").Return(Book{ID: "b-1", ISBN: "123", Title: "T"}, nil)
		repo.EXPECT().CreateUserBook(gomock.Any(), gomock.Any()).Return(ErrAlreadyInLibrary)

		_, err := svc.Add(context.Background(), "u-1", AddInput{ISBN: "123", Title: "T"})
		assert.ErrorIs(t, err, ErrAlreadyInLibrary)
	})
}

func TestService_Edit(t *testing.T) {
	t.Run("foreign shelf rejected", func(t *testing.T) {
		svc, _, shelves := newTestService(t)
		shelves.EXPECT().GetOwned(gomock.Any(), "u-1", "s-9").Return(shelf.Shelf{}, shelf.ErrNotFound)

		_, err := svc.Edit(context.Background(), "u-1", "e-1", EditInput{ShelfID: strPtr("s-9")})
		assert.ErrorIs(t, err, ErrInvalidShelf)
	})

	t.Run("clears shelf and trims memo", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.EXPECT().UpdateUserBook(gomock.Any(), "u-1", "e-1", EditInput{Memo: "note"}).Return(nil)
		repo.EXPECT().GetUserBook(gomock.Any(), "u-1", "e-1").Return(UserBook{ID: "e-1", Memo: "note"}, nil)

		ub, err := svc.Edit(context.Background(), "u-1", "e-1", EditInput{ShelfID: strPtr(""), Memo: "  note "})
		require.NoError(t, err)
		assert.Equal(t, "note", ub.Memo)
	})

	t.Run("missing entry", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.EXPECT().UpdateUserBook(gomock.Any(), "u-1", "e-2", gomock.Any()).Return(ErrNotFound)

		_, err := svc.Edit(context.Background(), "u-1", "e-2", EditInput{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_List(t *testing.T) {
	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("next cursor when more rows exist", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.EXPECT().ListUserBooks(gomock.Any(), Query{UserID: "u-1", Q: "go", Limit: 3}).Return([]UserBook{
			{ID: "e-3", CreatedAt: created.Add(2 * time.Hour)},
			{ID: "e-2", CreatedAt: created.Add(time.Hour)},
			{ID: "e-1", CreatedAt: created},
		}, nil)

		entries, next, err := svc.List(context.Background(), Query{UserID: "u-1", Q: " go ", Limit: 2})
		require.NoError(t, err)
		assert.Len(t, entries, 2)

		cur, err := DecodeCursor(next)
		require.NoError(t, err)
		assert.Equal(t, "e-2", cur.AfterID)
		assert.True(t, created.Add(time.Hour).Equal(cur.CreatedAt))
	})

	t.Run("last page", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.EXPECT().ListUserBooks(gomock.Any(), Query{UserID: "u-1", Limit: DefaultLimit + 1}).Return(nil, nil)

		entries, next, err := svc.List(context.Background(), Query{UserID: "u-1", Limit: 1000})
		require.NoError(t, err)
		assert.Empty(t, next)
		assert.NotNil(t, entries)
	})
}

func TestRefresh(t *testing.T) {
	stored := Book{Title: "A", Author: "B"}

	got, changed := refresh(stored, Book{Title: "", Author: "B"})
	assert.False(t, changed)
	assert.Equal(t, stored, got)

	got, changed = refresh(stored, Book{Publisher: "P"})
	assert.True(t, changed)
	assert.Equal(t, Book{Title: "A", Author: "B", Publisher: "P"}, got)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\% \_real\\`, escapeLike(`100% _real\`))
}
