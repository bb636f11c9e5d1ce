package author

import (
	"context"

	"virtualbiblio-backend/internal/domains/author/model"
)

// Service is the author business logic surface.
type Service interface {
	Add(ctx context.Context, req model.AuthorRequest) (*model.Author, error)
	GetByID(ctx context.Context, id int64) (*model.Author, error)
	Update(ctx context.Context, id int64, req model.AuthorRequest) (*model.Author, error)
	Deactivate(ctx context.Context, id int64) error
	Search(ctx context.Context, filter model.SearchFilter) ([]model.Author, error)
}
