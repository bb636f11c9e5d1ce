package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// BulkCreateBookRequest is one item of POST /api/books/bulk. The author
// arrives as a free-text display name and is resolved (or created) during
// the import.
type BulkCreateBookRequest struct {
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
	Rating        decimal.Decimal `json:"rating"`
	ReviewCount   int             `json:"reviewCount"`
}

// BulkCreateRequest wraps the item list.
type BulkCreateRequest struct {
	Books []BulkCreateBookRequest `json:"books"`
}

// BulkCreateResponse reports the partial-success outcome: failed items are
// collected as messages, the rest are committed together.
type BulkCreateResponse struct {
	SuccessCount int      `json:"successCount"`
	ErrorCount   int      `json:"errorCount"`
	Errors       []string `json:"errors"`
	Message      string   `json:"message"`
}

// SplitAuthorName splits a free-text author name on the first space: the
// first token is the first name, the remainder the last name (possibly
// empty). This is a best-effort heuristic for imports without author ids,
// not a name parser.
func SplitAuthorName(name string) (firstName, lastName string) {
	parts := strings.SplitN(strings.TrimSpace(name), " ", 2)
	firstName = parts[0]
	if len(parts) > 1 {
		lastName = parts[1]
	}
	return firstName, lastName
}
