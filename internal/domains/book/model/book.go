package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// Book is a catalog entry. Books are soft-deleted via IsActive and never
// physically removed; the SKU is unique across active and inactive rows.
type Book struct {
	ID            int64           `json:"id" db:"id"`
	SKU           string          `json:"sku" db:"sku"`
	Title         string          `json:"title" db:"title"`
	AuthorID      int64           `json:"authorId" db:"author_id"`
	Publisher     string          `json:"publisher" db:"publisher"`
	Category      string          `json:"category" db:"category"`
	Quantity      int             `json:"quantity" db:"quantity"`
	Format        string          `json:"format" db:"format"`
	Edition       string          `json:"edition" db:"edition"`
	Language      string          `json:"language" db:"language"`
	Pages         *int            `json:"pages" db:"pages"`
	Chapters      *int            `json:"chapters" db:"chapters"`
	Description   string          `json:"description" db:"description"`
	Dimensions    *string         `json:"dimensions" db:"dimensions"`
	Weight        *string         `json:"weight" db:"weight"`
	CoverImageURL *string         `json:"coverImageUrl" db:"cover_image_url"`
	BookFileURL   *string         `json:"bookFileUrl" db:"book_file_url"`
	AudioFileURL  *string         `json:"audioFileUrl" db:"audio_file_url"`
	Rating        decimal.Decimal `json:"rating" db:"rating"`
	ReviewCount   int             `json:"reviewCount" db:"review_count"`
	IsActive      bool            `json:"isActive" db:"is_active"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt     *time.Time      `json:"updatedAt" db:"updated_at"`
}

// BookResponse is the outward-facing book shape: the author appears as a
// display name joined from the authors table, and the detail view carries the
// linked category ids.
type BookResponse struct {
	ID            int64           `json:"id"`
	SKU           string          `json:"sku"`
	Title         string          `json:"title"`
	Author        string          `json:"author"`
	Publisher     string          `json:"publisher"`
	Category      string          `json:"category"`
	Quantity      int             `json:"quantity"`
	Format        string          `json:"format"`
	Edition       string          `json:"edition"`
	Language      string          `json:"language"`
	Pages         *int            `json:"pages"`
	Chapters      *int            `json:"chapters"`
	Description   string          `json:"description"`
	Dimensions    *string         `json:"dimensions"`
	Weight        *string         `json:"weight"`
	CoverImageURL *string         `json:"coverImageUrl"`
	BookFileURL   *string         `json:"bookFileUrl"`
	AudioFileURL  *string         `json:"audioFileUrl"`
	Rating        decimal.Decimal `json:"rating"`
	ReviewCount   int             `json:"reviewCount"`
	CategoryIDs   []int64         `json:"categoryIds,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// CreateBookRequest - POST /api/books
type CreateBookRequest struct {
	SKU           string  `json:"sku"`
	Title         string  `json:"title"`
	AuthorID      int64   `json:"authorId"`
	Publisher     string  `json:"publisher"`
	Category      string  `json:"category"`
	Quantity      int     `json:"quantity"`
	Format        string  `json:"format"`
	Edition       string  `json:"edition"`
	Language      string  `json:"language"`
	Pages         *int    `json:"pages"`
	Chapters      *int    `json:"chapters"`
	Description   string  `json:"description"`
	Dimensions    *string `json:"dimensions"`
	Weight        *string `json:"weight"`
	CoverImageURL *string `json:"coverImageUrl"`
	BookFileURL   *string `json:"bookFileUrl"`
	AudioFileURL  *string `json:"audioFileUrl"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SKU,
			validation.Required.Error("El SKU es obligatorio"),
			validation.Length(3, 20),
		),
		validation.Field(&r.Title,
			validation.Required.Error("El título es obligatorio"),
			validation.Length(2, 200),
		),
		validation.Field(&r.AuthorID,
			validation.Required.Error("El autor es obligatorio"),
		),
		validation.Field(&r.Publisher,
			validation.Required.Error("La editorial es obligatoria"),
			validation.Length(2, 100),
		),
		validation.Field(&r.Category,
			validation.Required.Error("La categoría es obligatoria"),
			validation.Length(1, 50),
		),
		validation.Field(&r.Quantity,
			validation.Min(0).Error("La cantidad debe ser mayor o igual a 0"),
		),
		validation.Field(&r.Format,
			validation.Required.Error("El formato es obligatorio"),
			validation.Length(1, 20),
		),
		validation.Field(&r.Edition,
			validation.Required.Error("La edición es obligatoria"),
			validation.Length(1, 20),
		),
		validation.Field(&r.Language,
			validation.Required.Error("El idioma es obligatorio"),
			validation.Length(1, 20),
		),
		validation.Field(&r.Pages, validation.Min(1).Error("El número de páginas debe ser mayor a 0")),
		validation.Field(&r.Chapters, validation.Min(1).Error("El número de capítulos debe ser mayor a 0")),
		validation.Field(&r.Description,
			validation.Required.Error("La descripción es obligatoria"),
			validation.Length(10, 1000),
		),
	)
}

// ToEntity converts the request to a Book entity.
func (r CreateBookRequest) ToEntity() *Book {
	return &Book{
		SKU:           r.SKU,
		Title:         r.Title,
		AuthorID:      r.AuthorID,
		Publisher:     r.Publisher,
		Category:      r.Category,
		Quantity:      r.Quantity,
		Format:        r.Format,
		Edition:       r.Edition,
		Language:      r.Language,
		Pages:         r.Pages,
		Chapters:      r.Chapters,
		Description:   r.Description,
		Dimensions:    r.Dimensions,
		Weight:        r.Weight,
		CoverImageURL: r.CoverImageURL,
		BookFileURL:   r.BookFileURL,
		AudioFileURL:  r.AudioFileURL,
		Rating:        decimal.Zero,
		IsActive:      true,
		CreatedAt:     time.Now().UTC(),
	}
}

// UpdateBookRequest - PUT /api/books/:id. Every field is optional: strings
// are applied when non-empty, numerics when present. An empty string cannot
// clear a stored value.
type UpdateBookRequest struct {
	SKU           string  `json:"sku"`
	Title         string  `json:"title"`
	AuthorID      *int64  `json:"authorId"`
	Publisher     string  `json:"publisher"`
	Category      string  `json:"category"`
	Quantity      *int    `json:"quantity"`
	Format        string  `json:"format"`
	Edition       string  `json:"edition"`
	Language      string  `json:"language"`
	Pages         *int    `json:"pages"`
	Chapters      *int    `json:"chapters"`
	Description   string  `json:"description"`
	Dimensions    *string `json:"dimensions"`
	Weight        *string `json:"weight"`
	CoverImageURL *string `json:"coverImageUrl"`
	BookFileURL   *string `json:"bookFileUrl"`
	AudioFileURL  *string `json:"audioFileUrl"`
}

// ApplyToEntity overwrites only the supplied fields.
func (r UpdateBookRequest) ApplyToEntity(b *Book) {
	if r.SKU != "" {
		b.SKU = r.SKU
	}
	if r.AuthorID != nil {
		b.AuthorID = *r.AuthorID
	}
	if r.Title != "" {
		b.Title = r.Title
	}
	if r.Publisher != "" {
		b.Publisher = r.Publisher
	}
	if r.Category != "" {
		b.Category = r.Category
	}
	if r.Quantity != nil {
		b.Quantity = *r.Quantity
	}
	if r.Format != "" {
		b.Format = r.Format
	}
	if r.Edition != "" {
		b.Edition = r.Edition
	}
	if r.Language != "" {
		b.Language = r.Language
	}
	if r.Pages != nil {
		b.Pages = r.Pages
	}
	if r.Chapters != nil {
		b.Chapters = r.Chapters
	}
	if r.Description != "" {
		b.Description = r.Description
	}
	if r.Dimensions != nil {
		b.Dimensions = r.Dimensions
	}
	if r.Weight != nil {
		b.Weight = r.Weight
	}
	if r.CoverImageURL != nil {
		b.CoverImageURL = r.CoverImageURL
	}
	if r.BookFileURL != nil {
		b.BookFileURL = r.BookFileURL
	}
	if r.AudioFileURL != nil {
		b.AudioFileURL = r.AudioFileURL
	}
}

// BookFilter carries listing filters and the paging window.
type BookFilter struct {
	Category string `form:"category"`
	Format   string `form:"format"`
	Language string `form:"language"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
}

const DefaultPageSize = 12

// Normalize clamps the paging window to sane values.
func (f *BookFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > 100 {
		f.PageSize = 100
	}
}

func (f *BookFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}
