package repository

import (
	"context"

	"virtualbiblio-backend/internal/domains/blog/model"
)

// Repository is the blog data-access contract. Public reads see only active,
// published entries; the raw accessor backs the admin update path.
type Repository interface {
	List(ctx context.Context, filter *model.BlogFilter) ([]model.Blog, int, error)
	GetPublishedByID(ctx context.Context, id int64) (*model.Blog, error)
	GetRawByID(ctx context.Context, id int64) (*model.Blog, error)
	IncrementViewCount(ctx context.Context, id int64) error
	Create(ctx context.Context, b *model.Blog) error
	Update(ctx context.Context, b *model.Blog) error
	SoftDelete(ctx context.Context, id int64) error
	Categories(ctx context.Context) ([]string, error)
}
