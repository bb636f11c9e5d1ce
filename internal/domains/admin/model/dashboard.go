package model

import "github.com/shopspring/decimal"

// TopBook is one row of the highest-rated ranking: ordered by rating, review
// count as the tiebreaker, capped at five.
type TopBook struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	Rating      decimal.Decimal `json:"rating"`
	ReviewCount int             `json:"reviewCount"`
}

// BookDonationTotal aggregates completed donations earmarked for one book.
type BookDonationTotal struct {
	BookID int64           `json:"bookId"`
	Title  string          `json:"title"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

// RoleCount buckets active users by role.
type RoleCount struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

// CategoryCount buckets active books by category.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// DashboardStats is the admin landing-page aggregate.
type DashboardStats struct {
	TotalBooks        int                 `json:"totalBooks"`
	TotalAuthors      int                 `json:"totalAuthors"`
	TotalUsers        int                 `json:"totalUsers"`
	TotalBlogs        int                 `json:"totalBlogs"`
	TotalDonations    decimal.Decimal     `json:"totalDonations"`
	NewUsersThisMonth int                 `json:"newUsersThisMonth"`
	TopBooks          []TopBook           `json:"topBooks"`
	DonationsByBook   []BookDonationTotal `json:"donationsByBook"`
	UsersByRole       []RoleCount         `json:"usersByRole"`
	BooksByCategory   []CategoryCount     `json:"booksByCategory"`
}
