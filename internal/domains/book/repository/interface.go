package repository

import (
	"context"

	"virtualbiblio-backend/internal/domains/book/model"
)

// Repository is the book data-access contract. Reads see only active rows;
// SKU uniqueness checks span active and inactive rows.
type Repository interface {
	List(ctx context.Context, filter *model.BookFilter) ([]model.BookResponse, int, error)
	GetByID(ctx context.Context, id int64) (*model.BookResponse, error)
	GetBySKU(ctx context.Context, sku string) (*model.BookResponse, error)
	GetRawByID(ctx context.Context, id int64) (*model.Book, error)
	SKUExists(ctx context.Context, sku string) (bool, error)
	AuthorExists(ctx context.Context, authorID int64) (bool, error)
	Create(ctx context.Context, b *model.Book) error
	Update(ctx context.Context, b *model.Book) error
	SoftDelete(ctx context.Context, id int64) error
	DistinctValues(ctx context.Context, column string) ([]string, error)
	BulkCreate(ctx context.Context, items []model.BulkCreateBookRequest) (*model.BulkCreateResponse, error)
}
