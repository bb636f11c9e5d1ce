package repository

import (
	"context"

	"virtualbiblio-backend/internal/domains/donation/model"
)

// Repository is the donation data-access contract.
type Repository interface {
	List(ctx context.Context, filter *model.DonationFilter) ([]model.DonationResponse, int, error)
	GetByID(ctx context.Context, id int64) (*model.Donation, error)
	BookExists(ctx context.Context, bookID int64) (bool, error)
	Create(ctx context.Context, d *model.Donation) error
	UpdateStatus(ctx context.Context, d *model.Donation) error
	Stats(ctx context.Context) (*model.DonationStats, error)
}
