package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"virtualbiblio-backend/internal/domains/blog/model"
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

var blogColumns = []string{
	"id", "title", "content", "summary", "author", "category", "image_url",
	"is_published", "published_at", "view_count", "like_count", "is_active",
	"created_at", "updated_at",
}

func scanBlog(row pgx.Row) (*model.Blog, error) {
	var b model.Blog
	err := row.Scan(
		&b.ID, &b.Title, &b.Content, &b.Summary, &b.Author, &b.Category,
		&b.ImageURL, &b.IsPublished, &b.PublishedAt, &b.ViewCount,
		&b.LikeCount, &b.IsActive, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *postgresRepository) listQuery(filter *model.BlogFilter) sq.SelectBuilder {
	qb := r.sb.
		Select(blogColumns...).
		From("blogs").
		Where(sq.Eq{"is_active": true, "is_published": true})

	if filter.Category != "" {
		qb = qb.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		qb = qb.Where(sq.Or{
			sq.ILike{"title": like},
			sq.ILike{"summary": like},
		})
	}
	return qb
}

// List returns one page of published entries, newest first by publication
// date with creation date as the fallback ordering key.
func (r *postgresRepository) List(ctx context.Context, filter *model.BlogFilter) ([]model.Blog, int, error) {
	countQuery, countArgs, err := r.listQuery(filter).
		RemoveColumns().Column("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count blogs: %w", err)
	}

	query, args, err := r.listQuery(filter).
		OrderBy("COALESCE(published_at, created_at) DESC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(filter.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list blogs: %w", err)
	}
	defer rows.Close()

	blogs := make([]model.Blog, 0, filter.PageSize)
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan blog: %w", err)
		}
		blogs = append(blogs, *b)
	}
	return blogs, total, rows.Err()
}

func (r *postgresRepository) getByID(ctx context.Context, id int64, publishedOnly bool) (*model.Blog, error) {
	qb := r.sb.
		Select(blogColumns...).
		From("blogs").
		Where(sq.Eq{"id": id, "is_active": true})
	if publishedOnly {
		qb = qb.Where(sq.Eq{"is_published": true})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	b, err := scanBlog(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBlogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get blog: %w", err)
	}
	return b, nil
}

func (r *postgresRepository) GetPublishedByID(ctx context.Context, id int64) (*model.Blog, error) {
	return r.getByID(ctx, id, true)
}

func (r *postgresRepository) GetRawByID(ctx context.Context, id int64) (*model.Blog, error) {
	return r.getByID(ctx, id, false)
}

func (r *postgresRepository) IncrementViewCount(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `UPDATE blogs SET view_count = view_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment view count: %w", err)
	}
	return nil
}

func (r *postgresRepository) Create(ctx context.Context, b *model.Blog) error {
	query := `
		INSERT INTO blogs (title, content, summary, author, category, image_url,
		                   is_published, published_at, view_count, like_count,
		                   is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, 0, true, $9)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		b.Title, b.Content, b.Summary, b.Author, b.Category, b.ImageURL,
		b.IsPublished, b.PublishedAt, b.CreatedAt,
	).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("insert blog: %w", err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, b *model.Blog) error {
	query := `
		UPDATE blogs
		SET title = $1, content = $2, summary = $3, author = $4, category = $5,
		    image_url = $6, is_published = $7, published_at = $8, updated_at = $9
		WHERE id = $10
	`

	_, err := r.pool.Exec(ctx, query,
		b.Title, b.Content, b.Summary, b.Author, b.Category, b.ImageURL,
		b.IsPublished, b.PublishedAt, b.UpdatedAt, b.ID,
	)
	if err != nil {
		return fmt.Errorf("update blog: %w", err)
	}
	return nil
}

func (r *postgresRepository) SoftDelete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE blogs SET is_active = false, updated_at = $1 WHERE id = $2 AND is_active = true`,
		time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("soft delete blog: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBlogNotFound
	}
	return nil
}

// Categories lists the distinct categories across published entries.
func (r *postgresRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT category FROM blogs WHERE is_active = true AND is_published = true ORDER BY category`,
	)
	if err != nil {
		return nil, fmt.Errorf("blog categories: %w", err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
