package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"virtualbiblio-backend/internal/domains/admin/model"
)

// Repository aggregates the dashboard numbers across the catalog, accounts
// and donations.
type Repository interface {
	DashboardStats(ctx context.Context) (*model.DashboardStats, error)
}

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	stats := &model.DashboardStats{TotalDonations: decimal.Zero}

	err := r.pool.QueryRow(ctx, `
		SELECT (SELECT COUNT(*) FROM books WHERE is_active = true),
		       (SELECT COUNT(*) FROM authors),
		       (SELECT COUNT(*) FROM users WHERE is_active = true),
		       (SELECT COUNT(*) FROM blogs WHERE is_active = true),
		       (SELECT COALESCE(SUM(amount), 0) FROM donations
		         WHERE status = 'Completada' AND is_active = true),
		       (SELECT COUNT(*) FROM users
		         WHERE is_active = true
		           AND created_at >= date_trunc('month', now()))
	`).Scan(
		&stats.TotalBooks, &stats.TotalAuthors, &stats.TotalUsers,
		&stats.TotalBlogs, &stats.TotalDonations, &stats.NewUsersThisMonth,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard totals: %w", err)
	}

	if stats.TopBooks, err = r.topBooks(ctx); err != nil {
		return nil, err
	}
	if stats.DonationsByBook, err = r.donationsByBook(ctx); err != nil {
		return nil, err
	}
	if stats.UsersByRole, err = r.usersByRole(ctx); err != nil {
		return nil, err
	}
	if stats.BooksByCategory, err = r.booksByCategory(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}

// Both rankings cap at five entries.
const (
	topBooksQuery = `
		SELECT b.id, b.title, a.first_name || ' ' || a.last_name, b.rating, b.review_count
		FROM books b
		JOIN authors a ON a.id = b.author_id
		WHERE b.is_active = true
		ORDER BY b.rating DESC, b.review_count DESC
		LIMIT 5
	`

	donationsByBookQuery = `
		SELECT b.id, b.title, COALESCE(SUM(d.amount), 0), COUNT(d.id)
		FROM donations d
		JOIN books b ON b.id = d.book_id
		WHERE d.status = 'Completada' AND d.is_active = true
		GROUP BY b.id, b.title
		ORDER BY SUM(d.amount) DESC
		LIMIT 5
	`
)

func (r *postgresRepository) topBooks(ctx context.Context) ([]model.TopBook, error) {
	rows, err := r.pool.Query(ctx, topBooksQuery)
	if err != nil {
		return nil, fmt.Errorf("top books: %w", err)
	}
	defer rows.Close()

	var out []model.TopBook
	for rows.Next() {
		var tb model.TopBook
		if err := rows.Scan(&tb.ID, &tb.Title, &tb.Author, &tb.Rating, &tb.ReviewCount); err != nil {
			return nil, fmt.Errorf("scan top book: %w", err)
		}
		out = append(out, tb)
	}
	return out, rows.Err()
}

func (r *postgresRepository) donationsByBook(ctx context.Context) ([]model.BookDonationTotal, error) {
	rows, err := r.pool.Query(ctx, donationsByBookQuery)
	if err != nil {
		return nil, fmt.Errorf("donations by book: %w", err)
	}
	defer rows.Close()

	var out []model.BookDonationTotal
	for rows.Next() {
		var bd model.BookDonationTotal
		if err := rows.Scan(&bd.BookID, &bd.Title, &bd.Amount, &bd.Count); err != nil {
			return nil, fmt.Errorf("scan donation total: %w", err)
		}
		out = append(out, bd)
	}
	return out, rows.Err()
}

func (r *postgresRepository) usersByRole(ctx context.Context) ([]model.RoleCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT role, COUNT(*)
		FROM users
		WHERE is_active = true
		GROUP BY role
		ORDER BY COUNT(*) DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("users by role: %w", err)
	}
	defer rows.Close()

	var out []model.RoleCount
	for rows.Next() {
		var rc model.RoleCount
		if err := rows.Scan(&rc.Role, &rc.Count); err != nil {
			return nil, fmt.Errorf("scan role count: %w", err)
		}
		out = append(out, rc)
	}
	return out, rows.Err()
}

func (r *postgresRepository) booksByCategory(ctx context.Context) ([]model.CategoryCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT category, COUNT(*)
		FROM books
		WHERE is_active = true
		GROUP BY category
		ORDER BY COUNT(*) DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("books by category: %w", err)
	}
	defer rows.Close()

	var out []model.CategoryCount
	for rows.Next() {
		var cc model.CategoryCount
		if err := rows.Scan(&cc.Category, &cc.Count); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		out = append(out, cc)
	}
	return out, rows.Err()
}
