package book

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	uniqueViolation      = "23505"
	invalidTextRepresent = "22P02" // e.g. a path id that is not a uuid
)

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

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

var bookColumns = []any{"id", "isbn", "title", "author", "publisher", "cover_url"}

func (r *PostgresRepo) GetBookByISBN(ctx context.Context, isbn string) (Book, error) {
	sql, params, err := r.g.From("books").
		Prepared(true).
		Select(bookColumns...).
		Where(goqu.C("isbn").Eq(isbn)).
		ToSQL()
	if err != nil {
		return Book{}, err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var b Book
	if err := pgxscan.Get(timeoutCtx, r.db, &b, sql, params...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, fmt.Errorf("select book: %w", err)
	}
	return b, nil
}

// CreateBook inserts b and fills its id. It reports errBookAlreadyExists when a row
// with the same isbn is already there.
func (r *PostgresRepo) CreateBook(ctx context.Context, b *Book) error {
	sql, params, err := r.g.Insert("books").
		Prepared(true).
		Rows(goqu.Record{
			"isbn":      b.ISBN,
			"title":     b.Title,
			"author":    b.Author,
			"publisher": b.Publisher,
			"cover_url": b.CoverURL,
		}).
		OnConflict(goqu.DoNothing()).
		Returning("id").
		ToSQL()
	if err != nil {
		return err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.db.QueryRow(timeoutCtx, sql, params...).Scan(&b.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errBookAlreadyExists
		}
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

func (r *PostgresRepo) UpdateBook(ctx context.Context, b Book) error {
	sql, params, err := r.g.Update("books").
		Prepared(true).
		Set(goqu.Record{
			"title":      b.Title,
			"author":     b.Author,
			"publisher":  b.Publisher,
			"cover_url":  b.CoverURL,
			"updated_at": goqu.L("now()"),
		}).
		Where(goqu.C("id").Eq(b.ID)).
		ToSQL()
	if err != nil {
		return err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	if _, err := r.db.Exec(timeoutCtx, sql, params...); err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	return nil
}

func (r *PostgresRepo) CreateUserBook(ctx context.Context, ub *UserBook) error {
	sql, params, err := r.g.Insert("user_books").
		Prepared(true).
		Rows(goqu.Record{
			"user_id":  ub.UserID,
			"book_id":  ub.Book.ID,
			"shelf_id": nullable(ub.ShelfID),
			"memo":     ub.Memo,
		}).
		Returning("id", "created_at").
		ToSQL()
	if err != nil {
		return err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.db.QueryRow(timeoutCtx, sql, params...).Scan(&ub.ID, &ub.CreatedAt); err != nil {
		if pgCode(err) == uniqueViolation {
			return ErrAlreadyInLibrary
		}
		return fmt.Errorf("insert user book: %w", err)
	}
	return nil
}

// entries selects user_books joined with books; book columns are aliased
// "book.<col>" so scany fills the nested Book.
func (r *PostgresRepo) entries() *goqu.SelectDataset {
	return r.g.From(goqu.T("user_books").As("ub")).
		Prepared(true).
		Join(goqu.T("books").As("b"), goqu.On(goqu.I("b.id").Eq(goqu.I("ub.book_id")))).
		Select(
			goqu.I("ub.id"),
			goqu.I("ub.user_id"),
			goqu.I("ub.shelf_id"),
			goqu.I("ub.memo"),
			goqu.I("ub.created_at"),
			goqu.I("b.id").As(goqu.C("book.id")),
			goqu.I("b.isbn").As(goqu.C("book.isbn")),
			goqu.I("b.title").As(goqu.C("book.title")),
			goqu.I("b.author").As(goqu.C("book.author")),
			goqu.I("b.publisher").As(goqu.C("book.publisher")),
			goqu.I("b.cover_url").As(goqu.C("book.cover_url")),
		)
}

func (r *PostgresRepo) ListUserBooks(ctx context.Context, q Query) ([]UserBook, error) {
	where := []exp.Expression{goqu.I("ub.user_id").Eq(q.UserID)}
	if q.Q != "" {
		where = append(where, goqu.I("b.title").ILike("%"+escapeLike(q.Q)+"%"))
	}
	if q.After != nil {
		where = append(where, goqu.Or(
			goqu.I("ub.created_at").Lt(q.After.CreatedAt),
			goqu.And(
				goqu.I("ub.created_at").Eq(q.After.CreatedAt),
				goqu.I("ub.id").Lt(q.After.AfterID),
			),
		))
	}

	sql, params, err := r.entries().
		Where(where...).
		Order(goqu.I("ub.created_at").Desc(), goqu.I("ub.id").Desc()).
		Limit(uint(q.Limit)).
		ToSQL()
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rows []UserBook
	if err := pgxscan.Select(timeoutCtx, r.db, &rows, sql, params...); err != nil {
		if pgCode(err) == invalidTextRepresent {
			return nil, ErrInvalidCursor
		}
		return nil, fmt.Errorf("select user books: %w", err)
	}
	return rows, nil
}

func (r *PostgresRepo) GetUserBook(ctx context.Context, userID, id string) (UserBook, error) {
	sql, params, err := r.entries().
		Where(goqu.I("ub.id").Eq(id), goqu.I("ub.user_id").Eq(userID)).
		ToSQL()
	if err != nil {
		return UserBook{}, err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var ub UserBook
	if err := pgxscan.Get(timeoutCtx, r.db, &ub, sql, params...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || pgCode(err) == invalidTextRepresent {
			return UserBook{}, ErrNotFound
		}
		return UserBook{}, fmt.Errorf("select user book: %w", err)
	}
	return ub, nil
}

func (r *PostgresRepo) UpdateUserBook(ctx context.Context, userID, id string, in EditInput) error {
	sql, params, err := r.g.Update("user_books").
		Prepared(true).
		Set(goqu.Record{
			"shelf_id":   nullable(in.ShelfID),
			"memo":       in.Memo,
			"updated_at": goqu.L("now()"),
		}).
		Where(goqu.C("id").Eq(id), goqu.C("user_id").Eq(userID)).
		ToSQL()
	if err != nil {
		return err
	}
	return r.execOne(ctx, sql, params, "update user book")
}

func (r *PostgresRepo) DeleteUserBook(ctx context.Context, userID, id string) error {
	sql, params, err := r.g.Delete("user_books").
		Prepared(true).
		Where(goqu.C("id").Eq(id), goqu.C("user_id").Eq(userID)).
		ToSQL()
	if err != nil {
		return err
	}
	return r.execOne(ctx, sql, params, "delete user book")
}

// execOne runs a statement that must touch exactly the caller's row.
func (r *PostgresRepo) execOne(ctx context.Context, sql string, params []any, op string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(timeoutCtx, sql, params...)
	if err != nil {
		if pgCode(err) == invalidTextRepresent {
			return ErrNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
