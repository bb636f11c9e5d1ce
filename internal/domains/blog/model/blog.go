package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Blog is a published article. Visibility requires both IsActive and
// IsPublished; PublishedAt is stamped the first time the entry goes public
// and never rewritten afterwards.
type Blog struct {
	ID          int64      `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Content     string     `json:"content" db:"content"`
	Summary     string     `json:"summary" db:"summary"`
	Author      string     `json:"author" db:"author"`
	Category    string     `json:"category" db:"category"`
	ImageURL    *string    `json:"imageUrl" db:"image_url"`
	IsPublished bool       `json:"isPublished" db:"is_published"`
	PublishedAt *time.Time `json:"publishedAt" db:"published_at"`
	ViewCount   int        `json:"viewCount" db:"view_count"`
	LikeCount   int        `json:"likeCount" db:"like_count"`
	IsActive    bool       `json:"isActive" db:"is_active"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   *time.Time `json:"updatedAt" db:"updated_at"`
}

// CreateBlogRequest - POST /api/blog
type CreateBlogRequest struct {
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	Summary     string  `json:"summary"`
	Author      string  `json:"author"`
	Category    string  `json:"category"`
	ImageURL    *string `json:"imageUrl"`
	IsPublished bool    `json:"isPublished"`
}

func (r CreateBlogRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("El título es obligatorio"),
			validation.Length(3, 200),
		),
		validation.Field(&r.Content,
			validation.Required.Error("El contenido es obligatorio"),
			validation.Length(10, 0),
		),
		validation.Field(&r.Summary,
			validation.Required.Error("El resumen es obligatorio"),
			validation.Length(10, 500),
		),
		validation.Field(&r.Author,
			validation.Required.Error("El autor es obligatorio"),
			validation.Length(2, 100),
		),
		validation.Field(&r.Category,
			validation.Required.Error("La categoría es obligatoria"),
			validation.Length(1, 50),
		),
	)
}

// ToEntity converts the request to a Blog entity. Publishing at creation
// time stamps PublishedAt immediately.
func (r CreateBlogRequest) ToEntity() *Blog {
	now := time.Now().UTC()
	b := &Blog{
		Title:       r.Title,
		Content:     r.Content,
		Summary:     r.Summary,
		Author:      r.Author,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
		IsPublished: r.IsPublished,
		IsActive:    true,
		CreatedAt:   now,
	}
	if r.IsPublished {
		b.PublishedAt = &now
	}
	return b
}

// UpdateBlogRequest - PUT /api/blog/:id. Strings apply when non-empty,
// pointers when present.
type UpdateBlogRequest struct {
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	Summary     string  `json:"summary"`
	Author      string  `json:"author"`
	Category    string  `json:"category"`
	ImageURL    *string `json:"imageUrl"`
	IsPublished *bool   `json:"isPublished"`
}

// ApplyToEntity overwrites only the supplied fields. Flipping IsPublished to
// true stamps PublishedAt once; unpublishing keeps the original stamp so a
// later re-publish does not rewrite history.
func (r UpdateBlogRequest) ApplyToEntity(b *Blog) {
	if r.Title != "" {
		b.Title = r.Title
	}
	if r.Content != "" {
		b.Content = r.Content
	}
	if r.Summary != "" {
		b.Summary = r.Summary
	}
	if r.Author != "" {
		b.Author = r.Author
	}
	if r.Category != "" {
		b.Category = r.Category
	}
	if r.ImageURL != nil {
		b.ImageURL = r.ImageURL
	}
	if r.IsPublished != nil {
		b.IsPublished = *r.IsPublished
		if *r.IsPublished && b.PublishedAt == nil {
			now := time.Now().UTC()
			b.PublishedAt = &now
		}
	}
}

// BlogFilter carries listing filters and the paging window.
type BlogFilter struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
}

const DefaultPageSize = 10

func (f *BlogFilter) Normalize() {
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

func (f *BlogFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}
