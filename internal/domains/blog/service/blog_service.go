package service

import (
	"context"
	"time"

	"virtualbiblio-backend/internal/domains/blog/model"
	"virtualbiblio-backend/internal/domains/blog/repository"
	"virtualbiblio-backend/pkg/logger"
)

// Service exposes the public blog plus its admin write operations.
type Service interface {
	List(ctx context.Context, filter *model.BlogFilter) ([]model.Blog, int, error)
	GetByID(ctx context.Context, id int64) (*model.Blog, error)
	Create(ctx context.Context, req *model.CreateBlogRequest) (*model.Blog, error)
	Update(ctx context.Context, id int64, req *model.UpdateBlogRequest) (*model.Blog, error)
	Delete(ctx context.Context, id int64) error
	Categories(ctx context.Context) ([]string, error)
}

type blogService struct {
	repo repository.Repository
}

func NewBlogService(repo repository.Repository) Service {
	return &blogService{repo: repo}
}

func (s *blogService) List(ctx context.Context, filter *model.BlogFilter) ([]model.Blog, int, error) {
	filter.Normalize()
	return s.repo.List(ctx, filter)
}

// GetByID returns a published entry and bumps its view counter. The bump is
// best effort: a failed counter update never fails the read.
func (s *blogService) GetByID(ctx context.Context, id int64) (*model.Blog, error) {
	b, err := s.repo.GetPublishedByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.IncrementViewCount(ctx, id); err != nil {
		logger.Warn("blog view count update failed", err)
	} else {
		b.ViewCount++
	}
	return b, nil
}

func (s *blogService) Create(ctx context.Context, req *model.CreateBlogRequest) (*model.Blog, error) {
	b := req.ToEntity()
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *blogService) Update(ctx context.Context, id int64, req *model.UpdateBlogRequest) (*model.Blog, error) {
	b, err := s.repo.GetRawByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyToEntity(b)
	now := time.Now().UTC()
	b.UpdatedAt = &now

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *blogService) Delete(ctx context.Context, id int64) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *blogService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}
