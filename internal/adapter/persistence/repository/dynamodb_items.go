package repository

import (
	"fmt"

	"movequote/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type addressItem struct {
	ID          string `dynamodbav:"id"`
	Type        string `dynamodbav:"type"`
	Region      string `dynamodbav:"region"`
	SubRegion   string `dynamodbav:"sub_region"`
	Street      string `dynamodbav:"street"`
	FullAddress string `dynamodbav:"full_address"`
}

type quoteRequestItem struct {
	ID             string        `dynamodbav:"id"`
	CustomerID     string        `dynamodbav:"customer_id"`
	MoveType       string        `dynamodbav:"move_type"`
	MoveDate       int64         `dynamodbav:"move_date"`
	CreatedAt      int64         `dynamodbav:"created_at"`
	Addresses      []addressItem `dynamodbav:"addresses"`
	HistoryVersion int64         `dynamodbav:"history_version"`
}

type statusHistoryItem struct {
	QuoteRequestID string `dynamodbav:"quote_request_id"`
	SK             string `dynamodbav:"sk"`
	ID             string `dynamodbav:"id"`
	Status         string `dynamodbav:"status"`
	CreatedAt      int64  `dynamodbav:"created_at"`
}

type moverQuoteItem struct {
	QuoteRequestID string `dynamodbav:"quote_request_id"`
	MoverID        string `dynamodbav:"mover_id"`
	ID             string `dynamodbav:"id"`
	Price          string `dynamodbav:"price"`
	Comment        string `dynamodbav:"comment"`
	CreatedAt      int64  `dynamodbav:"created_at"`
}

type targetedQuoteRequestItem struct {
	QuoteRequestID string `dynamodbav:"quote_request_id"`
	MoverID        string `dynamodbav:"mover_id"`
	ID             string `dynamodbav:"id"`
	CreatedAt      int64  `dynamodbav:"created_at"`
}

type targetedQuoteRejectionItem struct {
	TargetedQuoteRequestID string `dynamodbav:"targeted_quote_request_id"`
	ID                     string `dynamodbav:"id"`
	RejectionReason        string `dynamodbav:"rejection_reason"`
	CreatedAt              int64  `dynamodbav:"created_at"`
}

type quoteMatchItem struct {
	MoverQuoteID string `dynamodbav:"mover_quote_id"`
	ID           string `dynamodbav:"id"`
	CreatedAt    int64  `dynamodbav:"created_at"`
}

type moverItem struct {
	ID                    string  `dynamodbav:"id"`
	Name                  string  `dynamodbav:"name"`
	ExperienceYears       int     `dynamodbav:"experience_years"`
	ProfileImage          string  `dynamodbav:"profile_image"`
	Introduction          string  `dynamodbav:"introduction"`
	TotalConfirmedCount   int     `dynamodbav:"total_confirmed_count"`
	TotalCustomerFavorite int     `dynamodbav:"total_customer_favorite"`
	TotalReviews          int     `dynamodbav:"total_reviews"`
	AverageRating         float64 `dynamodbav:"average_rating"`
}

type customerItem struct {
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"name"`
}

// historySortKey orders entries by creation time within a request; the id
// suffix keeps keys unique for entries stamped in the same millisecond.
func historySortKey(e entities.StatusHistoryEntry) string {
	return fmt.Sprintf("%013d#%s", toMillis(e.CreatedAt), e.ID)
}

func toQuoteRequestItem(q entities.QuoteRequest, version int64) quoteRequestItem {
	it := quoteRequestItem{
		ID:             q.ID,
		CustomerID:     q.CustomerID,
		MoveType:       string(q.MoveType),
		MoveDate:       toMillis(q.MoveDate),
		CreatedAt:      toMillis(q.CreatedAt),
		HistoryVersion: version,
	}
	for _, a := range q.Addresses {
		it.Addresses = append(it.Addresses, addressItem{
			ID:          a.ID,
			Type:        string(a.Type),
			Region:      a.Region,
			SubRegion:   a.SubRegion,
			Street:      a.Street,
			FullAddress: a.FullAddress,
		})
	}
	return it
}

func fromQuoteRequestItem(it quoteRequestItem) entities.QuoteRequest {
	q := entities.QuoteRequest{
		ID:         it.ID,
		CustomerID: it.CustomerID,
		MoveType:   entities.MoveType(it.MoveType),
		MoveDate:   fromMillis(it.MoveDate),
		CreatedAt:  fromMillis(it.CreatedAt),
	}
	for _, a := range it.Addresses {
		q.Addresses = append(q.Addresses, entities.Address{
			ID:             a.ID,
			QuoteRequestID: it.ID,
			Type:           entities.AddressType(a.Type),
			Region:         a.Region,
			SubRegion:      a.SubRegion,
			Street:         a.Street,
			FullAddress:    a.FullAddress,
		})
	}
	return q
}

func toStatusHistoryItem(e entities.StatusHistoryEntry) statusHistoryItem {
	return statusHistoryItem{
		QuoteRequestID: e.QuoteRequestID,
		SK:             historySortKey(e),
		ID:             e.ID,
		Status:         string(e.Status),
		CreatedAt:      toMillis(e.CreatedAt),
	}
}

func fromStatusHistoryItem(it statusHistoryItem) entities.StatusHistoryEntry {
	return entities.StatusHistoryEntry{
		ID:             it.ID,
		QuoteRequestID: it.QuoteRequestID,
		Status:         entities.QuoteStatus(it.Status),
		CreatedAt:      fromMillis(it.CreatedAt),
	}
}

func toMoverQuoteItem(q entities.MoverQuote) moverQuoteItem {
	return moverQuoteItem{
		QuoteRequestID: q.QuoteRequestID,
		MoverID:        q.MoverID,
		ID:             q.ID,
		Price:          q.Price.StringFixed(2),
		Comment:        q.Comment,
		CreatedAt:      toMillis(q.CreatedAt),
	}
}

func fromMoverQuoteItem(it moverQuoteItem) (entities.MoverQuote, error) {
	price, err := decimal.NewFromString(it.Price)
	if err != nil {
		return entities.MoverQuote{}, fmt.Errorf("mover quote %s: invalid price %q: %w", it.ID, it.Price, err)
	}
	return entities.MoverQuote{
		ID:             it.ID,
		MoverID:        it.MoverID,
		QuoteRequestID: it.QuoteRequestID,
		Price:          price,
		Comment:        it.Comment,
		CreatedAt:      fromMillis(it.CreatedAt),
	}, nil
}

func fromTargetedQuoteRequestItem(it targetedQuoteRequestItem) entities.TargetedQuoteRequest {
	return entities.TargetedQuoteRequest{
		ID:             it.ID,
		QuoteRequestID: it.QuoteRequestID,
		MoverID:        it.MoverID,
		CreatedAt:      fromMillis(it.CreatedAt),
	}
}

func fromMoverItem(it moverItem) entities.MoverProfile {
	return entities.MoverProfile{
		ID:                    it.ID,
		Name:                  it.Name,
		ExperienceYears:       it.ExperienceYears,
		ProfileImage:          it.ProfileImage,
		Introduction:          it.Introduction,
		TotalConfirmedCount:   it.TotalConfirmedCount,
		TotalCustomerFavorite: it.TotalCustomerFavorite,
		TotalReviews:          it.TotalReviews,
		AverageRating:         it.AverageRating,
	}
}
