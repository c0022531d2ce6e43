package entities

// MoverQuoteView is the consistent snapshot returned by a status transition.
//
// QuoteRequest always carries addresses and the full status history as read
// inside the transition's transaction. Quote and Match are nil when the
// mover never quoted on the request (possible after a rejection); Mover is
// nil when the mover has no profile row.
type MoverQuoteView struct {
	Quote        *MoverQuote   `json:"quote"`
	QuoteRequest QuoteRequest  `json:"quote_request"`
	Mover        *MoverProfile `json:"mover"`
	Match        *QuoteMatch   `json:"match"`
}

// QuoteView is the read-side shape of a mover quote.
//
// Visibility is asymmetric: the customer view carries Mover (public
// profile), the mover view carries Customer (name only). Request is loaded
// without status history.
type QuoteView struct {
	Quote    MoverQuote       `json:"quote"`
	Request  QuoteRequest     `json:"request"`
	MatchID  string           `json:"match_id,omitempty"`
	Mover    *MoverProfile    `json:"mover,omitempty"`
	Customer *CustomerProfile `json:"customer,omitempty"`
}
