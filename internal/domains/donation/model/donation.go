package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// Donation statuses. The flow is Pendiente -> Completada or Cancelada;
// CompletedAt is stamped the first time the donation completes.
const (
	StatusPending   = "Pendiente"
	StatusCompleted = "Completada"
	StatusCancelled = "Cancelada"
)

const (
	DefaultCurrency = "COP"
	AnonymousName   = "Anónimo"
)

// Donation is a monetary contribution, optionally earmarked for a book.
// Donations are never physically removed; IsActive hides a record from
// every read path.
type Donation struct {
	ID            int64           `json:"id" db:"id"`
	DonorName     string          `json:"donorName" db:"donor_name"`
	DonorEmail    string          `json:"donorEmail" db:"donor_email"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Currency      string          `json:"currency" db:"currency"`
	PaymentMethod string          `json:"paymentMethod" db:"payment_method"`
	Comment       *string         `json:"comment" db:"comment"`
	IsAnonymous   bool            `json:"isAnonymous" db:"is_anonymous"`
	BookID        *int64          `json:"bookId" db:"book_id"`
	Status        string          `json:"status" db:"status"`
	CompletedAt   *time.Time      `json:"completedAt" db:"completed_at"`
	IsActive      bool            `json:"isActive" db:"is_active"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
}

// DisplayName hides the donor behind "Anónimo" when requested.
func (d *Donation) DisplayName() string {
	if d.IsAnonymous {
		return AnonymousName
	}
	return d.DonorName
}

// DonationResponse is the outward shape: the donor name already passed
// through the anonymity rule.
type DonationResponse struct {
	ID            int64           `json:"id"`
	DonorName     string          `json:"donorName"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"paymentMethod"`
	Comment       *string         `json:"comment"`
	IsAnonymous   bool            `json:"isAnonymous"`
	BookID        *int64          `json:"bookId"`
	BookTitle     *string         `json:"bookTitle,omitempty"`
	Status        string          `json:"status"`
	CompletedAt   *time.Time      `json:"completedAt"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func (d *Donation) ToResponse() DonationResponse {
	return DonationResponse{
		ID:            d.ID,
		DonorName:     d.DisplayName(),
		Amount:        d.Amount,
		Currency:      d.Currency,
		PaymentMethod: d.PaymentMethod,
		Comment:       d.Comment,
		IsAnonymous:   d.IsAnonymous,
		BookID:        d.BookID,
		Status:        d.Status,
		CompletedAt:   d.CompletedAt,
		CreatedAt:     d.CreatedAt,
	}
}

// CreateDonationRequest - POST /api/donation
type CreateDonationRequest struct {
	DonorName     string          `json:"donorName"`
	DonorEmail    string          `json:"donorEmail"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"paymentMethod"`
	Comment       *string         `json:"comment"`
	IsAnonymous   bool            `json:"isAnonymous"`
	BookID        *int64          `json:"bookId"`
}

func (r CreateDonationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DonorName,
			validation.Required.Error("El nombre del donante es obligatorio"),
			validation.Length(2, 100),
		),
		validation.Field(&r.DonorEmail,
			validation.Required.Error("El email del donante es obligatorio"),
		),
		validation.Field(&r.Amount,
			validation.By(amountInRange),
		),
		validation.Field(&r.PaymentMethod, validation.Length(2, 50)),
	)
}

func amountInRange(value interface{}) error {
	amount, _ := value.(decimal.Decimal)
	min := decimal.NewFromInt(1)
	max := decimal.NewFromInt(1_000_000)
	if amount.LessThan(min) || amount.GreaterThan(max) {
		return validation.NewError("amount_range", "El monto debe estar entre 1 y 1.000.000")
	}
	return nil
}

// ToEntity converts the request to a pending donation. An empty currency
// defaults to COP.
func (r CreateDonationRequest) ToEntity() *Donation {
	currency := r.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Donation{
		DonorName:     r.DonorName,
		DonorEmail:    r.DonorEmail,
		Amount:        r.Amount,
		Currency:      currency,
		PaymentMethod: r.PaymentMethod,
		Comment:       r.Comment,
		IsAnonymous:   r.IsAnonymous,
		BookID:        r.BookID,
		Status:        StatusPending,
		IsActive:      true,
		CreatedAt:     time.Now().UTC(),
	}
}

// UpdateStatusRequest - PUT /api/donation/:id/status
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.Required.Error("El estado es obligatorio"),
			validation.In(StatusPending, StatusCompleted, StatusCancelled).
				Error("Estado inválido"),
		),
	)
}

// DonationFilter carries listing filters and the paging window.
type DonationFilter struct {
	Status   string `form:"status"`
	BookID   *int64 `form:"bookId"`
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
}

const DefaultPageSize = 20

func (f *DonationFilter) Normalize() {
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

func (f *DonationFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// MonthlyTotal is one bucket of the 12-month donation series.
type MonthlyTotal struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

// DonationStats aggregates completed donations plus the recent monthly
// series.
type DonationStats struct {
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	TotalCount     int             `json:"totalCount"`
	CompletedCount int             `json:"completedCount"`
	PendingCount   int             `json:"pendingCount"`
	CancelledCount int             `json:"cancelledCount"`
	Monthly        []MonthlyTotal  `json:"monthly"`
}
