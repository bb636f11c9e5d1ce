package uow

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// Scanner is satisfied by both pgx.Row and pgx.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// Mapping describes how T maps onto its table. Columns excludes the id
// column; Values must return the insert/update values in Columns order, and
// Scan must read id followed by Columns in the same order.
type Mapping[T any] struct {
	Table   string
	Columns []string
	Values  func(*T) []any
	ID      func(*T) int64
	SetID   func(*T, int64)
	Scan    func(row Scanner) (*T, error)
}

// Repository provides get-by-id, get-all, predicate-find, add, update and
// remove for one entity type. Reads hit the pool directly; writes are staged
// on the owning unit of work and flushed by Complete.
type Repository[T any] struct {
	u  *UnitOfWork
	m  Mapping[T]
	sb sq.StatementBuilderType
}

func newRepository[T any](u *UnitOfWork, m Mapping[T]) *Repository[T] {
	return &Repository[T]{
		u:  u,
		m:  m,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *Repository[T]) selectColumns() []string {
	return append([]string{"id"}, r.m.Columns...)
}

// GetByID returns (nil, nil) when the row does not exist.
func (r *Repository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	query, args, err := r.sb.
		Select(r.selectColumns()...).
		From(r.m.Table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	entity, err := r.m.Scan(r.u.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s by id: %w", r.m.Table, err)
	}
	return entity, nil
}

// GetAll loads the entire table.
func (r *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	query, args, err := r.sb.
		Select(r.selectColumns()...).
		From(r.m.Table).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.u.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get all %s: %w", r.m.Table, err)
	}
	defer rows.Close()

	var entities []T
	for rows.Next() {
		entity, err := r.m.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.m.Table, err)
		}
		entities = append(entities, *entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows %s: %w", r.m.Table, err)
	}

	return entities, nil
}

// Find loads the table and keeps the rows matching pred.
func (r *Repository[T]) Find(ctx context.Context, pred func(*T) bool) ([]T, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]T, 0, len(all))
	for i := range all {
		if pred(&all[i]) {
			matched = append(matched, all[i])
		}
	}
	return matched, nil
}

// Add stages an insert. The generated id is backfilled into the entity when
// the unit of work completes.
func (r *Repository[T]) Add(entity *T) {
	r.u.stage(func(ctx context.Context, tx pgx.Tx) error {
		query, args, err := r.sb.
			Insert(r.m.Table).
			Columns(r.m.Columns...).
			Values(r.m.Values(entity)...).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("build insert: %w", err)
		}

		var id int64
		if err := tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
			return fmt.Errorf("insert %s: %w", r.m.Table, err)
		}
		r.m.SetID(entity, id)
		return nil
	})
}

// Update stages a whole-row update keyed by id.
func (r *Repository[T]) Update(entity *T) {
	r.u.stage(func(ctx context.Context, tx pgx.Tx) error {
		values := r.m.Values(entity)
		set := make(map[string]interface{}, len(r.m.Columns))
		for i, col := range r.m.Columns {
			set[col] = values[i]
		}

		query, args, err := r.sb.
			Update(r.m.Table).
			SetMap(set).
			Where(sq.Eq{"id": r.m.ID(entity)}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build update: %w", err)
		}

		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("update %s: %w", r.m.Table, err)
		}
		return nil
	})
}

// Remove stages a physical delete keyed by id.
func (r *Repository[T]) Remove(entity *T) {
	r.u.stage(func(ctx context.Context, tx pgx.Tx) error {
		query, args, err := r.sb.
			Delete(r.m.Table).
			Where(sq.Eq{"id": r.m.ID(entity)}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build delete: %w", err)
		}

		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("delete %s: %w", r.m.Table, err)
		}
		return nil
	})
}
