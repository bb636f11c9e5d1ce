package service

import (
	"context"
	"time"

	"virtualbiblio-backend/internal/domains/donation/model"
	"virtualbiblio-backend/internal/domains/donation/repository"
)

// Service exposes donation intake, status management and aggregate stats.
type Service interface {
	List(ctx context.Context, filter *model.DonationFilter) ([]model.DonationResponse, int, error)
	GetByID(ctx context.Context, id int64) (*model.DonationResponse, error)
	Create(ctx context.Context, req *model.CreateDonationRequest) (*model.DonationResponse, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*model.DonationResponse, error)
	Stats(ctx context.Context) (*model.DonationStats, error)
}

type donationService struct {
	repo repository.Repository
}

func NewDonationService(repo repository.Repository) Service {
	return &donationService{repo: repo}
}

func (s *donationService) List(ctx context.Context, filter *model.DonationFilter) ([]model.DonationResponse, int, error) {
	filter.Normalize()
	return s.repo.List(ctx, filter)
}

func (s *donationService) GetByID(ctx context.Context, id int64) (*model.DonationResponse, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := d.ToResponse()
	return &resp, nil
}

// Create registers a pending donation. An earmarked book must exist and be
// active.
func (s *donationService) Create(ctx context.Context, req *model.CreateDonationRequest) (*model.DonationResponse, error) {
	if req.BookID != nil {
		exists, err := s.repo.BookExists(ctx, *req.BookID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, model.ErrBookDoesNotExist
		}
	}

	d := req.ToEntity()
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	resp := d.ToResponse()
	return &resp, nil
}

// UpdateStatus moves the donation to the given status. The first transition
// to Completada stamps CompletedAt; later transitions never rewrite it.
func (s *donationService) UpdateStatus(ctx context.Context, id int64, status string) (*model.DonationResponse, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	d.Status = status
	if status == model.StatusCompleted && d.CompletedAt == nil {
		now := time.Now().UTC()
		d.CompletedAt = &now
	}

	if err := s.repo.UpdateStatus(ctx, d); err != nil {
		return nil, err
	}
	resp := d.ToResponse()
	return &resp, nil
}

func (s *donationService) Stats(ctx context.Context) (*model.DonationStats, error) {
	return s.repo.Stats(ctx)
}
