package request

import (
	"errors"
	"movequote/internal/domain/entities"
	"movequote/internal/usecase"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 4
)

var (
	ErrInvalidMoveDate = errors.New("move_date must be YYYY-MM-DD or RFC 3339")
	ErrInvalidPaging   = errors.New("page and page_size must be integers")
)

// SubmitQuoteRequest accepts price either as a JSON number or a decimal
// string.
type SubmitQuoteRequest struct {
	QuoteRequestID string          `json:"quote_request_id" binding:"required"`
	Price          decimal.Decimal `json:"price"`
	Comment        string          `json:"comment"`
}

type RejectQuoteRequest struct {
	RejectionReason string `json:"rejection_reason" binding:"required"`
}

type TargetMoverRequest struct {
	MoverID string `json:"mover_id" binding:"required"`
}

type AddressRequest struct {
	Region      string `json:"region" binding:"required"`
	SubRegion   string `json:"sub_region"`
	Street      string `json:"street"`
	FullAddress string `json:"full_address" binding:"required"`
}

func (a AddressRequest) toEntity() entities.Address {
	return entities.Address{
		Region:      strings.TrimSpace(a.Region),
		SubRegion:   strings.TrimSpace(a.SubRegion),
		Street:      strings.TrimSpace(a.Street),
		FullAddress: strings.TrimSpace(a.FullAddress),
	}
}

// MoveRequest is the customer's payload for a new quote request.
type MoveRequest struct {
	MoveType  string         `json:"move_type" binding:"required"`
	MoveDate  string         `json:"move_date" binding:"required"`
	Departure AddressRequest `json:"departure" binding:"required"`
	Arrival   AddressRequest `json:"arrival" binding:"required"`
}

func (r MoveRequest) ToInput(customerID string) (usecase.CreateQuoteRequestInput, error) {
	moveDate, err := parseMoveDate(r.MoveDate)
	if err != nil {
		return usecase.CreateQuoteRequestInput{}, err
	}
	return usecase.CreateQuoteRequestInput{
		CustomerID: customerID,
		MoveType:   entities.MoveType(strings.ToUpper(strings.TrimSpace(r.MoveType))),
		MoveDate:   moveDate,
		Departure:  r.Departure.toEntity(),
		Arrival:    r.Arrival.toEntity(),
	}, nil
}

func parseMoveDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidMoveDate
}

// ParsePaging applies the list defaults to absent parameters. Present
// values are passed through so the use case can reject out-of-range ones.
func ParsePaging(pageRaw, pageSizeRaw string) (page, pageSize int, err error) {
	page, err = intOrDefault(pageRaw, DefaultPage)
	if err != nil {
		return 0, 0, err
	}
	pageSize, err = intOrDefault(pageSizeRaw, DefaultPageSize)
	if err != nil {
		return 0, 0, err
	}
	return page, pageSize, nil
}

func intOrDefault(raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrInvalidPaging
	}
	return v, nil
}
