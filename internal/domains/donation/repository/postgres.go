package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"virtualbiblio-backend/internal/domains/donation/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepository) listQuery(filter *model.DonationFilter) sq.SelectBuilder {
	qb := r.sb.
		Select(
			"d.id", "d.donor_name", "d.amount", "d.currency",
			"d.payment_method", "d.comment", "d.is_anonymous", "d.book_id",
			"b.title", "d.status", "d.completed_at", "d.created_at",
		).
		From("donations d").
		LeftJoin("books b ON b.id = d.book_id").
		Where(sq.Eq{"d.is_active": true})

	if filter.Status != "" {
		qb = qb.Where(sq.Eq{"d.status": filter.Status})
	}
	if filter.BookID != nil {
		qb = qb.Where(sq.Eq{"d.book_id": *filter.BookID})
	}
	return qb
}

// List returns one page of donations, newest first, with the anonymity rule
// already applied to the donor name.
func (r *postgresRepository) List(ctx context.Context, filter *model.DonationFilter) ([]model.DonationResponse, int, error) {
	countQuery, countArgs, err := r.listQuery(filter).
		RemoveColumns().Column("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count donations: %w", err)
	}

	query, args, err := r.listQuery(filter).
		OrderBy("d.created_at DESC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(filter.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list donations: %w", err)
	}
	defer rows.Close()

	donations := make([]model.DonationResponse, 0, filter.PageSize)
	for rows.Next() {
		var d model.DonationResponse
		if err := rows.Scan(
			&d.ID, &d.DonorName, &d.Amount, &d.Currency, &d.PaymentMethod,
			&d.Comment, &d.IsAnonymous, &d.BookID, &d.BookTitle, &d.Status,
			&d.CompletedAt, &d.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan donation: %w", err)
		}
		if d.IsAnonymous {
			d.DonorName = model.AnonymousName
		}
		donations = append(donations, d)
	}
	return donations, total, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Donation, error) {
	query := `
		SELECT id, donor_name, donor_email, amount, currency, payment_method,
		       comment, is_anonymous, book_id, status, completed_at,
		       is_active, created_at
		FROM donations
		WHERE id = $1 AND is_active = true
	`

	var d model.Donation
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.DonorName, &d.DonorEmail, &d.Amount, &d.Currency,
		&d.PaymentMethod, &d.Comment, &d.IsAnonymous, &d.BookID, &d.Status,
		&d.CompletedAt, &d.IsActive, &d.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrDonationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get donation: %w", err)
	}
	return &d, nil
}

func (r *postgresRepository) BookExists(ctx context.Context, bookID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM books WHERE id = $1 AND is_active = true)`,
		bookID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check book: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Create(ctx context.Context, d *model.Donation) error {
	query := `
		INSERT INTO donations (donor_name, donor_email, amount, currency,
		                       payment_method, comment, is_anonymous, book_id,
		                       status, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		d.DonorName, d.DonorEmail, d.Amount, d.Currency, d.PaymentMethod,
		d.Comment, d.IsAnonymous, d.BookID, d.Status, d.IsActive, d.CreatedAt,
	).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("insert donation: %w", err)
	}
	return nil
}

func (r *postgresRepository) UpdateStatus(ctx context.Context, d *model.Donation) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE donations SET status = $1, completed_at = $2 WHERE id = $3`,
		d.Status, d.CompletedAt, d.ID,
	)
	if err != nil {
		return fmt.Errorf("update donation status: %w", err)
	}
	return nil
}

// Stats aggregates the donation totals plus the completed amounts of the
// last twelve months, oldest bucket first. Empty months appear with a zero
// amount.
func (r *postgresRepository) Stats(ctx context.Context) (*model.DonationStats, error) {
	stats := &model.DonationStats{TotalAmount: decimal.Zero}

	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount) FILTER (WHERE status = 'Completada'), 0),
		       COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'Completada'),
		       COUNT(*) FILTER (WHERE status = 'Pendiente'),
		       COUNT(*) FILTER (WHERE status = 'Cancelada')
		FROM donations
		WHERE is_active = true
	`).Scan(
		&stats.TotalAmount, &stats.TotalCount, &stats.CompletedCount,
		&stats.PendingCount, &stats.CancelledCount,
	)
	if err != nil {
		return nil, fmt.Errorf("donation totals: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT to_char(m.month, 'YYYY-MM'),
		       COALESCE(SUM(d.amount), 0),
		       COUNT(d.id)
		FROM generate_series(
		         date_trunc('month', now()) - interval '11 months',
		         date_trunc('month', now()),
		         interval '1 month'
		     ) AS m(month)
		LEFT JOIN donations d
		       ON date_trunc('month', d.created_at) = m.month
		      AND d.status = 'Completada'
		      AND d.is_active = true
		GROUP BY m.month
		ORDER BY m.month
	`)
	if err != nil {
		return nil, fmt.Errorf("donation series: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var mt model.MonthlyTotal
		if err := rows.Scan(&mt.Month, &mt.Amount, &mt.Count); err != nil {
			return nil, fmt.Errorf("scan month: %w", err)
		}
		stats.Monthly = append(stats.Monthly, mt)
	}
	return stats, rows.Err()
}
