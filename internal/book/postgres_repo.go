package book

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepo is the pgx-backed Repository. The pool it wraps is bounded
// at wiring time; exhaustion surfaces as an ordinary query error.
type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Insert(ctx context.Context, b Book) (int64, error) {
	const sql = `
		INSERT INTO books (title, release_date, author, description, image)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var id int64
	err := r.db.QueryRow(timeoutCtx, sql,
		b.Title, b.ReleaseDate.Time, b.Author, b.Description, b.Image,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Book, error) {
	const sql = `
		SELECT id, title, release_date, author, description, image
		FROM books
		WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var b Book
	err := r.db.QueryRow(timeoutCtx, sql, id).Scan(
		&b.ID, &b.Title, &b.ReleaseDate.Time, &b.Author, &b.Description, &b.Image,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) Count(ctx context.Context, conds []Condition) (int, error) {
	sql, args := BuildCountQuery(conds)

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int
	if err := r.db.QueryRow(timeoutCtx, sql, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *PostgresRepo) Search(ctx context.Context, conds []Condition, sortBy SortField, dir Direction, limit, offset int) ([]Book, error) {
	sql, args := BuildSearchQuery(conds, sortBy, dir, limit, offset)

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.ReleaseDate.Time, &b.Author, &b.Description, &b.Image,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Update(ctx context.Context, b Book) error {
	const sql = `
		UPDATE books
		SET title = $1, release_date = $2, author = $3, description = $4, image = $5
		WHERE id = $6`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := r.db.Exec(timeoutCtx, sql,
		b.Title, b.ReleaseDate.Time, b.Author, b.Description, b.Image, b.ID,
	)
	return err
}
