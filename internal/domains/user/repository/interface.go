package repository

import (
	"context"

	"virtualbiblio-backend/internal/domains/user/model"
)

// Repository is the user data-access contract. Email lookups span active and
// inactive accounts so deactivated emails cannot be re-registered.
type Repository interface {
	List(ctx context.Context, filter *model.UserFilter) ([]model.User, int, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetActiveByEmail(ctx context.Context, email string) (*model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u *model.User) error
	Update(ctx context.Context, u *model.User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdateRole(ctx context.Context, id int64, role string) error
	Deactivate(ctx context.Context, id int64) error
}
