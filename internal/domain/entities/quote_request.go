package entities

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidMoveType      = errors.New("invalid move type")
	ErrInvalidAddressSet    = errors.New("quote request needs exactly one DEPARTURE and one ARRIVAL address")
	ErrInvalidAddressFields = errors.New("address requires region and full address")
)

type MoveType string

const (
	MoveTypeSmall  MoveType = "SMALL_MOVE"
	MoveTypeHome   MoveType = "HOME_MOVE"
	MoveTypeOffice MoveType = "OFFICE_MOVE"
)

func (m MoveType) Valid() bool {
	switch m {
	case MoveTypeSmall, MoveTypeHome, MoveTypeOffice:
		return true
	}
	return false
}

type AddressType string

const (
	AddressTypeDeparture AddressType = "DEPARTURE"
	AddressTypeArrival   AddressType = "ARRIVAL"
)

type Address struct {
	ID             string      `json:"id"`
	QuoteRequestID string      `json:"quote_request_id"`
	Type           AddressType `json:"type"`
	Region         string      `json:"region"`
	SubRegion      string      `json:"sub_region"`
	Street         string      `json:"street"`
	FullAddress    string      `json:"full_address"`
}

// QuoteRequest is a customer's request for a move.
//
// Domain notes:
//   - Immutable once created; its state only evolves through StatusHistories.
//   - Owns its addresses and status history.
//   - StatusHistories is only populated when loaded with history.

type QuoteRequest struct {
	ID              string               `json:"id"`
	CustomerID      string               `json:"customer_id"`
	MoveType        MoveType             `json:"move_type"`
	MoveDate        time.Time            `json:"move_date"`
	CreatedAt       time.Time            `json:"created_at"`
	Addresses       []Address            `json:"addresses"`
	StatusHistories []StatusHistoryEntry `json:"status_histories,omitempty"`
}

func (q QuoteRequest) address(t AddressType) (Address, bool) {
	for _, a := range q.Addresses {
		if a.Type == t {
			return a, true
		}
	}
	return Address{}, false
}

func (q QuoteRequest) Departure() (Address, bool) { return q.address(AddressTypeDeparture) }

func (q QuoteRequest) Arrival() (Address, bool) { return q.address(AddressTypeArrival) }

// CurrentStatus is the status of the most recent history entry.
func (q QuoteRequest) CurrentStatus() (QuoteStatus, bool) {
	return CurrentStatus(q.StatusHistories)
}

// ValidateForCreate checks the invariants a new request must satisfy.
func (q QuoteRequest) ValidateForCreate() error {
	if !q.MoveType.Valid() {
		return ErrInvalidMoveType
	}
	var departures, arrivals int
	for _, a := range q.Addresses {
		switch a.Type {
		case AddressTypeDeparture:
			departures++
		case AddressTypeArrival:
			arrivals++
		default:
			return ErrInvalidAddressSet
		}
		if strings.TrimSpace(a.Region) == "" || strings.TrimSpace(a.FullAddress) == "" {
			return ErrInvalidAddressFields
		}
	}
	if departures != 1 || arrivals != 1 || len(q.Addresses) != 2 {
		return ErrInvalidAddressSet
	}
	return nil
}
