package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"bookshelf/internal/auth"
	"bookshelf/internal/book"
	"bookshelf/internal/httpx"
	"bookshelf/internal/lookup"
	"bookshelf/internal/shelf"
	"bookshelf/internal/user"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type routerDeps struct {
	cfg         config
	db          pinger
	rateLimiter *httpx.RateLimitMiddleware

	auth   *auth.HTTPHandler
	users  *user.HTTPHandler
	shelf  *shelf.HTTPHandler
	books  *book.HTTPHandler
	lookup *lookup.HTTPHandler
}

func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware(d.cfg.EnableHSTS),
		httpx.CORSMiddleware(d.cfg.CORSAllowedOrigins),
		httpx.RequestSizeLimitMiddleware(d.cfg.MaxBodyBytes),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Resource not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := d.db.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	r.Post("/users/register", d.auth.Register)
	r.Post("/users/login", d.auth.Login)

	r.Group(func(r chi.Router) {
		r.Use(httpx.AuthMiddleware(d.cfg.JWTSecret))

		r.Get("/me", d.users.GetCurrentUser)

		r.With(d.rateLimiter.Middleware).Get("/isbn-lookup", d.lookup.Lookup)

		r.Get("/shelves", d.shelf.List)
		r.Post("/shelves", d.shelf.Create)

		r.Route("/books", func(r chi.Router) {
			r.Get("/", d.books.List)
			r.Post("/", d.books.Add)
			r.Get("/{id}", d.books.Get)
			r.Patch("/{id}", d.books.Edit)
			r.Delete("/{id}", d.books.Delete)
		})
	})

	return r
}
