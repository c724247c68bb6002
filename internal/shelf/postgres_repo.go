package shelf

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type PostgresRepo struct {
	db      *pgxpool.Pool
	g       goqu.DialectWrapper
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, g: goqu.Dialect("postgres"), timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

var shelfColumns = []any{"id", "user_id", "name", "created_at"}

func (r *PostgresRepo) ListByUser(ctx context.Context, userID string) ([]Shelf, error) {
	sql, params, err := r.g.From("shelves").
		Prepared(true).
		Select(shelfColumns...).
		Where(goqu.C("user_id").Eq(userID)).
		Order(goqu.C("name").Asc()).
		ToSQL()
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var shelves []Shelf
	if err := pgxscan.Select(timeoutCtx, r.db, &shelves, sql, params...); err != nil {
		return nil, fmt.Errorf("select shelves: %w", err)
	}
	return shelves, nil
}

func (r *PostgresRepo) Create(ctx context.Context, s *Shelf) error {
	sql, params, err := r.g.Insert("shelves").
		Prepared(true).
		Rows(goqu.Record{"user_id": s.UserID, "name": s.Name}).
		Returning("id", "created_at").
		ToSQL()
	if err != nil {
		return err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	err = r.db.QueryRow(timeoutCtx, sql, params...).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrAlreadyExists
		}
		return fmt.Errorf("insert shelf: %w", err)
	}
	return nil
}

func (r *PostgresRepo) GetForUser(ctx context.Context, userID, id string) (Shelf, error) {
	sql, params, err := r.g.From("shelves").
		Prepared(true).
		Select(shelfColumns...).
		Where(goqu.C("id").Eq(id), goqu.C("user_id").Eq(userID)).
		ToSQL()
	if err != nil {
		return Shelf{}, err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var s Shelf
	if err := pgxscan.Get(timeoutCtx, r.db, &s, sql, params...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Shelf{}, ErrNotFound
		}
		var pgErr *pgconn.PgError
		// malformed uuid
		if errors.As(err, &pgErr) && pgErr.Code == "22P02" {
			return Shelf{}, ErrNotFound
		}
		return Shelf{}, fmt.Errorf("select shelf: %w", err)
	}
	return s, nil
}
