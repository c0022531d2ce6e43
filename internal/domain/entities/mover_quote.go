package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// MoverQuote is a mover's priced answer to a quote request.
//
// Storage notes:
//   - Several movers may quote the same request; the quote references the
//     request by id and is not owned by it.
//   - SQL backends carry a unique (mover_id, quote_request_id) index and the
//     DynamoDB table is keyed by that pair.

type MoverQuote struct {
	ID             string          `json:"id"`
	MoverID        string          `json:"mover_id"`
	QuoteRequestID string          `json:"quote_request_id"`
	Price          decimal.Decimal `json:"price"`
	Comment        string          `json:"comment"`
	CreatedAt      time.Time       `json:"created_at"`
}

// TargetedQuoteRequest marks that a mover was invited to quote on a request.
type TargetedQuoteRequest struct {
	ID             string    `json:"id"`
	QuoteRequestID string    `json:"quote_request_id"`
	MoverID        string    `json:"mover_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// TargetedQuoteRejection is a mover's decline of a targeted request. At most
// one exists per targeted request.
type TargetedQuoteRejection struct {
	ID                     string    `json:"id"`
	TargetedQuoteRequestID string    `json:"targeted_quote_request_id"`
	RejectionReason        string    `json:"rejection_reason"`
	CreatedAt              time.Time `json:"created_at"`
}

// QuoteMatch pairs a request with the chosen mover quote. Read-only here.
type QuoteMatch struct {
	ID           string    `json:"id"`
	MoverQuoteID string    `json:"mover_quote_id"`
	CreatedAt    time.Time `json:"created_at"`
}

type MoverProfile struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	ExperienceYears       int     `json:"experience_years"`
	ProfileImage          string  `json:"profile_image"`
	Introduction          string  `json:"introduction"`
	TotalConfirmedCount   int     `json:"total_confirmed_count"`
	TotalCustomerFavorite int     `json:"total_customer_favorite"`
	TotalReviews          int     `json:"total_reviews"`
	AverageRating         float64 `json:"average_rating"`
}

type CustomerProfile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
