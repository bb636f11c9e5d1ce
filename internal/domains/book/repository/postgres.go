package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"virtualbiblio-backend/internal/domains/book/model"
	"virtualbiblio-backend/pkg/cache"
	"virtualbiblio-backend/pkg/database"
	"virtualbiblio-backend/pkg/logger"
)

// postgresRepository implements Repository with raw SQL on pgxpool plus a
// read-through Redis cache for detail lookups.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
	sb    sq.StatementBuilderType
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
		sb:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

const (
	bookCacheKeyPrefix = "book:"
	bookCacheTTL       = 15 * time.Minute
)

// Columns whitelisted for DistinctValues. Anything else is rejected before
// it can reach the SQL text.
var distinctColumns = map[string]bool{
	"category": true,
	"format":   true,
	"language": true,
}

var bookColumns = []string{
	"b.id", "b.sku", "b.title", "b.publisher", "b.category", "b.quantity",
	"b.format", "b.edition", "b.language", "b.pages", "b.chapters",
	"b.description", "b.dimensions", "b.weight", "b.cover_image_url",
	"b.book_file_url", "b.audio_file_url", "b.rating", "b.review_count",
	"b.created_at",
}

func scanBookResponse(row pgx.Row, withCategories bool) (*model.BookResponse, error) {
	var b model.BookResponse
	var categoryIDs []int64

	dest := []any{
		&b.ID, &b.SKU, &b.Title, &b.Publisher, &b.Category, &b.Quantity,
		&b.Format, &b.Edition, &b.Language, &b.Pages, &b.Chapters,
		&b.Description, &b.Dimensions, &b.Weight, &b.CoverImageURL,
		&b.BookFileURL, &b.AudioFileURL, &b.Rating, &b.ReviewCount,
		&b.CreatedAt, &b.Author,
	}
	if withCategories {
		dest = append(dest, &categoryIDs)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	b.CategoryIDs = categoryIDs
	return &b, nil
}

func (r *postgresRepository) listQuery(filter *model.BookFilter) sq.SelectBuilder {
	qb := r.sb.
		Select(append(append([]string{}, bookColumns...), "a.first_name || ' ' || a.last_name AS author")...).
		From("books b").
		Join("authors a ON a.id = b.author_id").
		Where(sq.Eq{"b.is_active": true})

	if filter.Category != "" {
		qb = qb.Where(sq.Eq{"b.category": filter.Category})
	}
	if filter.Format != "" {
		qb = qb.Where(sq.Eq{"b.format": filter.Format})
	}
	if filter.Language != "" {
		qb = qb.Where(sq.Eq{"b.language": filter.Language})
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		qb = qb.Where(sq.Or{
			sq.ILike{"b.title": like},
			sq.ILike{"a.first_name || ' ' || a.last_name": like},
		})
	}
	return qb
}

// List returns one page of books plus the filter-wide total.
func (r *postgresRepository) List(ctx context.Context, filter *model.BookFilter) ([]model.BookResponse, int, error) {
	countQuery, countArgs, err := r.listQuery(filter).
		RemoveColumns().Column("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}

	query, args, err := r.listQuery(filter).
		OrderBy("b.created_at DESC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(filter.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	books := make([]model.BookResponse, 0, filter.PageSize)
	for rows.Next() {
		b, err := scanBookResponse(rows, false)
		if err != nil {
			return nil, 0, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows: %w", err)
	}

	return books, total, nil
}

const bookDetailQuery = `
	SELECT b.id, b.sku, b.title, b.publisher, b.category, b.quantity,
	       b.format, b.edition, b.language, b.pages, b.chapters,
	       b.description, b.dimensions, b.weight, b.cover_image_url,
	       b.book_file_url, b.audio_file_url, b.rating, b.review_count,
	       b.created_at,
	       a.first_name || ' ' || a.last_name AS author,
	       COALESCE(array_agg(bc.category_id) FILTER (WHERE bc.category_id IS NOT NULL), '{}')
	FROM books b
	JOIN authors a ON a.id = b.author_id
	LEFT JOIN book_categories bc ON bc.book_id = b.id
	WHERE %s AND b.is_active = true
	GROUP BY b.id, a.first_name, a.last_name
`

// GetByID returns an active book with its author display name and linked
// category ids. Soft-deleted books are invisible here as well.
func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.BookResponse, error) {
	cacheKey := fmt.Sprintf("%s%d", bookCacheKeyPrefix, id)

	var cached model.BookResponse
	if hit, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	} else if err != nil {
		logger.Warn("book cache read failed", err)
	}

	query := fmt.Sprintf(bookDetailQuery, "b.id = $1")
	b, err := scanBookResponse(r.pool.QueryRow(ctx, query, id), true)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get book by id: %w", err)
	}

	if err := r.cache.Set(ctx, cacheKey, b, bookCacheTTL); err != nil {
		logger.Warn("book cache write failed", err)
	}
	return b, nil
}

func (r *postgresRepository) GetBySKU(ctx context.Context, sku string) (*model.BookResponse, error) {
	query := fmt.Sprintf(bookDetailQuery, "b.sku = $1")
	b, err := scanBookResponse(r.pool.QueryRow(ctx, query, sku), true)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get book by sku: %w", err)
	}
	return b, nil
}

// GetRawByID loads the storage-shaped row for the update path.
func (r *postgresRepository) GetRawByID(ctx context.Context, id int64) (*model.Book, error) {
	query := `
		SELECT id, sku, title, author_id, publisher, category, quantity,
		       format, edition, language, pages, chapters, description,
		       dimensions, weight, cover_image_url, book_file_url,
		       audio_file_url, rating, review_count, is_active,
		       created_at, updated_at
		FROM books
		WHERE id = $1 AND is_active = true
	`

	var b model.Book
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.SKU, &b.Title, &b.AuthorID, &b.Publisher, &b.Category,
		&b.Quantity, &b.Format, &b.Edition, &b.Language, &b.Pages,
		&b.Chapters, &b.Description, &b.Dimensions, &b.Weight,
		&b.CoverImageURL, &b.BookFileURL, &b.AudioFileURL, &b.Rating,
		&b.ReviewCount, &b.IsActive, &b.CreatedAt, &b.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	return &b, nil
}

// SKUExists checks the SKU against every row, active or not.
func (r *postgresRepository) SKUExists(ctx context.Context, sku string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM books WHERE sku = $1)`, sku).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check sku: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) AuthorExists(ctx context.Context, authorID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`, authorID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check author: %w", err)
	}
	return exists, nil
}

const insertBookQuery = `
	INSERT INTO books (sku, title, author_id, publisher, category, quantity,
	                   format, edition, language, pages, chapters, description,
	                   dimensions, weight, cover_image_url, book_file_url,
	                   audio_file_url, rating, review_count, is_active, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
	        $15, $16, $17, $18, $19, $20, $21)
	RETURNING id
`

func insertBookArgs(b *model.Book) []any {
	return []any{
		b.SKU, b.Title, b.AuthorID, b.Publisher, b.Category, b.Quantity,
		b.Format, b.Edition, b.Language, b.Pages, b.Chapters, b.Description,
		b.Dimensions, b.Weight, b.CoverImageURL, b.BookFileURL,
		b.AudioFileURL, b.Rating, b.ReviewCount, b.IsActive, b.CreatedAt,
	}
}

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) error {
	if err := r.pool.QueryRow(ctx, insertBookQuery, insertBookArgs(b)...).Scan(&b.ID); err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, b *model.Book) error {
	query := `
		UPDATE books
		SET sku = $1, title = $2, author_id = $3, publisher = $4,
		    category = $5, quantity = $6, format = $7, edition = $8,
		    language = $9, pages = $10, chapters = $11, description = $12,
		    dimensions = $13, weight = $14, cover_image_url = $15,
		    book_file_url = $16, audio_file_url = $17, updated_at = $18
		WHERE id = $19
	`

	_, err := r.pool.Exec(ctx, query,
		b.SKU, b.Title, b.AuthorID, b.Publisher, b.Category, b.Quantity,
		b.Format, b.Edition, b.Language, b.Pages, b.Chapters, b.Description,
		b.Dimensions, b.Weight, b.CoverImageURL, b.BookFileURL,
		b.AudioFileURL, b.UpdatedAt, b.ID,
	)
	if err != nil {
		return fmt.Errorf("update book: %w", err)
	}

	r.invalidate(ctx, b.ID)
	return nil
}

func (r *postgresRepository) SoftDelete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE books SET is_active = false, updated_at = $1 WHERE id = $2 AND is_active = true`,
		time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("soft delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}

	r.invalidate(ctx, id)
	return nil
}

// DistinctValues lists the distinct values of a whitelisted column across
// active books, feeding the categories/formats/languages endpoints.
func (r *postgresRepository) DistinctValues(ctx context.Context, column string) ([]string, error) {
	if !distinctColumns[column] {
		return nil, fmt.Errorf("column %q is not filterable", column)
	}

	quoted := pq.QuoteIdentifier(column)
	query := fmt.Sprintf(
		`SELECT DISTINCT %s FROM books WHERE is_active = true ORDER BY %s`,
		quoted, quoted,
	)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("distinct %s: %w", column, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan %s: %w", column, err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// BulkCreate imports a batch in one transaction. Authors referenced by name
// are matched exactly or created on the fly; duplicate SKUs are collected as
// per-item errors without aborting the batch. Everything that succeeded
// commits together at the end.
func (r *postgresRepository) BulkCreate(ctx context.Context, items []model.BulkCreateBookRequest) (*model.BulkCreateResponse, error) {
	resp, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.BulkCreateResponse, error) {
		resp := &model.BulkCreateResponse{Errors: []string{}}
		for _, item := range items {
			authorID, err := r.resolveAuthor(ctx, tx, item.Author)
			if err != nil {
				resp.Errors = append(resp.Errors, fmt.Sprintf("Error al crear libro %s: %v", item.SKU, err))
				continue
			}

			var skuTaken bool
			if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM books WHERE sku = $1)`, item.SKU).Scan(&skuTaken); err != nil {
				return nil, fmt.Errorf("check sku %s: %w", item.SKU, err)
			}
			if skuTaken {
				resp.Errors = append(resp.Errors, fmt.Sprintf("SKU %s ya existe", item.SKU))
				continue
			}

			b := &model.Book{
				SKU:           item.SKU,
				Title:         item.Title,
				AuthorID:      authorID,
				Publisher:     item.Publisher,
				Category:      item.Category,
				Quantity:      item.Quantity,
				Format:        item.Format,
				Edition:       item.Edition,
				Language:      item.Language,
				Pages:         item.Pages,
				Chapters:      item.Chapters,
				Description:   item.Description,
				Dimensions:    item.Dimensions,
				Weight:        item.Weight,
				CoverImageURL: item.CoverImageURL,
				Rating:        item.Rating,
				ReviewCount:   item.ReviewCount,
				IsActive:      true,
				CreatedAt:     time.Now().UTC(),
			}

			if err := tx.QueryRow(ctx, insertBookQuery, insertBookArgs(b)...).Scan(&b.ID); err != nil {
				return nil, fmt.Errorf("insert book %s: %w", item.SKU, err)
			}
			resp.SuccessCount++
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	resp.ErrorCount = len(resp.Errors)
	resp.Message = fmt.Sprintf("Se crearon %d libros exitosamente. %d errores.", resp.SuccessCount, resp.ErrorCount)
	return resp, nil
}

// resolveAuthor matches the free-text name against first_name or the full
// display name; when nothing matches it creates a placeholder author by
// splitting the name on the first space.
func (r *postgresRepository) resolveAuthor(ctx context.Context, tx pgx.Tx, name string) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx,
		`SELECT id FROM authors WHERE first_name = $1 OR first_name || ' ' || last_name = $1 LIMIT 1`,
		name,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("find author: %w", err)
	}

	firstName, lastName := model.SplitAuthorName(name)
	err = tx.QueryRow(ctx,
		`INSERT INTO authors (first_name, last_name, gender, birth_year, nationality, language, is_alive)
		 VALUES ($1, $2, 'No especificado', NULL, 'No especificada', 'Español', true)
		 RETURNING id`,
		firstName, lastName,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create author: %w", err)
	}
	return id, nil
}

func (r *postgresRepository) invalidate(ctx context.Context, id int64) {
	if err := r.cache.Delete(ctx, fmt.Sprintf("%s%d", bookCacheKeyPrefix, id)); err != nil {
		logger.Warn("book cache invalidation failed", err)
	}
}
