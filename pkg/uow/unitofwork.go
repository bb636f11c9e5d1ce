package uow

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"virtualbiblio-backend/internal/domains/author"
	"virtualbiblio-backend/internal/domains/author/model"
	"virtualbiblio-backend/pkg/database"
)

type operation func(ctx context.Context, tx pgx.Tx) error

// UnitOfWork batches staged repository writes and commits them together.
// A unit of work is short-lived: one per request-scoped operation.
type UnitOfWork struct {
	pool    *pgxpool.Pool
	pending []operation
	authors *Repository[model.Author]
}

var authorMapping = Mapping[model.Author]{
	Table:   "authors",
	Columns: []string{"first_name", "last_name", "gender", "birth_year", "nationality", "language", "is_alive"},
	Values: func(a *model.Author) []any {
		return []any{a.FirstName, a.LastName, a.Gender, a.BirthYear, a.Nationality, a.Language, a.IsAlive}
	},
	ID:    func(a *model.Author) int64 { return a.ID },
	SetID: func(a *model.Author, id int64) { a.ID = id },
	Scan: func(row Scanner) (*model.Author, error) {
		var a model.Author
		err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Gender, &a.BirthYear, &a.Nationality, &a.Language, &a.IsAlive)
		if err != nil {
			return nil, err
		}
		return &a, nil
	},
}

func New(pool *pgxpool.Pool) *UnitOfWork {
	u := &UnitOfWork{pool: pool}
	u.authors = newRepository(u, authorMapping)
	return u
}

// Authors exposes the author repository collection.
func (u *UnitOfWork) Authors() author.Repository {
	return u.authors
}

func (u *UnitOfWork) stage(op operation) {
	u.pending = append(u.pending, op)
}

// Complete flushes all staged changes as a single commit. A failed operation
// rolls back everything staged before it.
func (u *UnitOfWork) Complete(ctx context.Context) error {
	if len(u.pending) == 0 {
		return nil
	}

	err := database.WithTransaction(ctx, u.pool, func(tx pgx.Tx) error {
		for _, op := range u.pending {
			if err := op(ctx, tx); err != nil {
				return err
			}
		}
		return nil
	})

	u.pending = nil
	return err
}
