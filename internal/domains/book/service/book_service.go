package service

import (
	"context"
	"time"

	"virtualbiblio-backend/internal/domains/book/model"
	"virtualbiblio-backend/internal/domains/book/repository"
)

// Service exposes catalog operations over books.
type Service interface {
	List(ctx context.Context, filter *model.BookFilter) ([]model.BookResponse, int, error)
	GetByID(ctx context.Context, id int64) (*model.BookResponse, error)
	GetBySKU(ctx context.Context, sku string) (*model.BookResponse, error)
	Create(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error)
	Update(ctx context.Context, id int64, req *model.UpdateBookRequest) (*model.Book, error)
	Delete(ctx context.Context, id int64) error
	Categories(ctx context.Context) ([]string, error)
	Formats(ctx context.Context) ([]string, error)
	Languages(ctx context.Context) ([]string, error)
	BulkCreate(ctx context.Context, req *model.BulkCreateRequest) (*model.BulkCreateResponse, error)
}

type bookService struct {
	repo repository.Repository
}

func NewBookService(repo repository.Repository) Service {
	return &bookService{repo: repo}
}

func (s *bookService) List(ctx context.Context, filter *model.BookFilter) ([]model.BookResponse, int, error) {
	filter.Normalize()
	return s.repo.List(ctx, filter)
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*model.BookResponse, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) GetBySKU(ctx context.Context, sku string) (*model.BookResponse, error) {
	return s.repo.GetBySKU(ctx, sku)
}

// Create rejects duplicate SKUs and dangling author references before
// inserting.
func (s *bookService) Create(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error) {
	taken, err := s.repo.SKUExists(ctx, req.SKU)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, model.ErrDuplicateSKU
	}

	exists, err := s.repo.AuthorExists(ctx, req.AuthorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrAuthorDoesNotExist
	}

	b := req.ToEntity()
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Update applies only the supplied fields. A changed SKU re-runs the
// uniqueness check; a changed author id is verified to exist.
func (s *bookService) Update(ctx context.Context, id int64, req *model.UpdateBookRequest) (*model.Book, error) {
	b, err := s.repo.GetRawByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.SKU != "" && req.SKU != b.SKU {
		taken, err := s.repo.SKUExists(ctx, req.SKU)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, model.ErrDuplicateSKU
		}
	}

	if req.AuthorID != nil && *req.AuthorID != b.AuthorID {
		exists, err := s.repo.AuthorExists(ctx, *req.AuthorID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, model.ErrAuthorDoesNotExist
		}
	}

	req.ApplyToEntity(b)
	now := time.Now().UTC()
	b.UpdatedAt = &now

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *bookService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.DistinctValues(ctx, "category")
}

func (s *bookService) Formats(ctx context.Context) ([]string, error) {
	return s.repo.DistinctValues(ctx, "format")
}

func (s *bookService) Languages(ctx context.Context) ([]string, error) {
	return s.repo.DistinctValues(ctx, "language")
}

func (s *bookService) BulkCreate(ctx context.Context, req *model.BulkCreateRequest) (*model.BulkCreateResponse, error) {
	return s.repo.BulkCreate(ctx, req.Books)
}
