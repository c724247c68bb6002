package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/auth"
	"bookshelf/internal/book"
	"bookshelf/internal/httpx"
	"bookshelf/internal/lookup"
	"bookshelf/internal/platform/crypto"
	"bookshelf/internal/platform/googlebooks"
	"bookshelf/internal/platform/openbd"
	"bookshelf/internal/shelf"
	"bookshelf/internal/user"
)

const testSecret = "routing-secret"

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type testServer struct {
	handler http.Handler
	users   *user.MockRepository
	shelves *shelf.MockRepository
	books   *book.MockRepository
}

func newTestServer(t *testing.T, db pinger, providers http.Handler) testServer {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	upstream := httptest.NewServer(providers)
	t.Cleanup(upstream.Close)

	userRepo := user.NewMockRepository(ctrl)
	shelfRepo := shelf.NewMockRepository(ctrl)
	bookRepo := book.NewMockRepository(ctrl)

	userService := user.NewService(userRepo)
	shelfService := shelf.NewService(shelfRepo)

	rl := httpx.NewRateLimitMiddleware(100, 100)
	t.Cleanup(rl.Stop)

	resolver := lookup.NewResolver(
		openbd.NewClient(upstream.URL, "test", time.Second),
		googlebooks.NewClient(upstream.URL, "test", time.Second),
		nil,
	)

	h := newRouter(routerDeps{
		cfg:         config{JWTSecret: testSecret, MaxBodyBytes: 1 << 20},
		db:          db,
		rateLimiter: rl,
		auth:        auth.NewHTTPHandler(auth.NewService(testSecret, time.Hour, userService)),
		users:       user.NewHTTPHandler(userService),
		shelf:       shelf.NewHTTPHandler(shelfService),
		books:       book.NewHTTPHandler(book.NewService(bookRepo, shelfService)),
		lookup:      lookup.NewHTTPHandler(resolver),
	})
	return testServer{handler: h, users: userRepo, shelves: shelfRepo, books: bookRepo}
}

func bearer(t *testing.T, userID string) string {
	t.Helper()
	tok, err := crypto.GenerateToken(testSecret, userID, time.Hour)
	require.NoError(t, err)
	return "Bearer " + tok
}

func (s testServer) do(method, target, authz string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(method, target, nil)
	if authz != "" {
		r.Header.Set("Authorization", authz)
	}
	s.handler.ServeHTTP(w, r)
	return w
}

func TestRouting_Probes(t *testing.T) {
	s := newTestServer(t, fakePinger{}, http.NotFoundHandler())
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/readyz", "").Code)

	down := newTestServer(t, fakePinger{err: errors.New("down")}, http.NotFoundHandler())
	assert.Equal(t, http.StatusServiceUnavailable, down.do(http.MethodGet, "/readyz", "").Code)
}

func TestRouting_Middleware(t *testing.T) {
	s := newTestServer(t, fakePinger{}, http.NotFoundHandler())

	w := s.do(http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotEmpty(t, w.Header().Get(httpx.RequestIDHeader))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	assert.Equal(t, http.StatusMethodNotAllowed, s.do(http.MethodPut, "/shelves", bearer(t, "u-1")).Code)
}

func TestRouting_ProtectedRoutesNeedToken(t *testing.T) {
	s := newTestServer(t, fakePinger{}, http.NotFoundHandler())

	for _, target := range []string{"/me", "/shelves", "/books", "/books/e-1", "/isbn-lookup?isbn=123"} {
		assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, target, "").Code, target)
	}
}

func TestRouting_BookRoutes(t *testing.T) {
	s := newTestServer(t, fakePinger{}, http.NotFoundHandler())
	authz := bearer(t, "u-1")

	s.books.EXPECT().ListUserBooks(gomock.Any(), gomock.Any()).Return(nil, nil)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/books", authz).Code)

	s.books.EXPECT().GetUserBook(gomock.Any(), "u-1", "e-1").Return(book.UserBook{ID: "e-1"}, nil)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/books/e-1", authz).Code)

	s.books.EXPECT().DeleteUserBook(gomock.Any(), "u-1", "e-1").Return(nil)
	assert.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, "/books/e-1", authz).Code)

	s.users.EXPECT().GetByID(gomock.Any(), "u-1").Return(user.User{ID: "u-1", Username: "alice"}, nil)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/me", authz).Code)

	s.shelves.EXPECT().ListByUser(gomock.Any(), "u-1").Return(nil, nil)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/shelves", authz).Code)
}

func TestRouting_ISBNLookupEndToEnd(t *testing.T) {
	providers := http.NewServeMux()
	providers.HandleFunc("/v1/get", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `[{"summary":{"title":"T","author":"A","publisher":"P","cover":""}}]`)
	})
	providers.HandleFunc("/volumes", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "isbn:9784065199812", r.URL.Query().Get("q"))
		_, _ = fmt.Fprint(w, `{"items":[{"volumeInfo":{"imageLinks":{"thumbnail":"http://books.google.com/x.jpg"}}}]}`)
	})
	s := newTestServer(t, fakePinger{}, providers)

	w := s.do(http.MethodGet, "/isbn-lookup?isbn=978-4-06-519981-2", bearer(t, "u-1"))
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, map[string]any{
		"ok":        true,
		"isbn":      "9784065199812",
		"title":     "T",
		"author":    "A",
		"publisher": "P",
		"cover_url": "https://books.google.com/x.jpg",
	}, got)
}
