package author

import (
	"context"

	"virtualbiblio-backend/internal/domains/author/model"
)

// Repository is the generic data-access contract the author service works
// against. Add/Update/Remove stage changes; nothing touches the database
// until the owning unit of work completes. GetByID reports absence as
// (nil, nil) — raising not-found is the caller's job.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*model.Author, error)
	GetAll(ctx context.Context) ([]model.Author, error)
	Find(ctx context.Context, pred func(*model.Author) bool) ([]model.Author, error)
	Add(a *model.Author)
	Update(a *model.Author)
	Remove(a *model.Author)
}

// UnitOfWork exposes the author repository and a single commit boundary.
// Complete flushes all staged changes in one transaction; there is no
// optimistic-concurrency check, so concurrent writers last-write-win.
type UnitOfWork interface {
	Authors() Repository
	Complete(ctx context.Context) error
}
