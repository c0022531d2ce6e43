package response

import (
	"movequote/internal/domain/entities"
	"time"
)

type AddressResponse struct {
	Type        string `json:"type"`
	Region      string `json:"region"`
	SubRegion   string `json:"sub_region"`
	Street      string `json:"street"`
	FullAddress string `json:"full_address"`
}

type StatusHistoryResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type QuoteRequestResponse struct {
	ID              string                  `json:"id"`
	CustomerID      string                  `json:"customer_id"`
	MoveType        string                  `json:"move_type"`
	MoveDate        time.Time               `json:"move_date"`
	CreatedAt       time.Time               `json:"created_at"`
	Status          string                  `json:"status,omitempty"`
	Departure       *AddressResponse        `json:"departure"`
	Arrival         *AddressResponse        `json:"arrival"`
	StatusHistories []StatusHistoryResponse `json:"status_histories,omitempty"`
}

// QuoteResponse renders the price with two decimals as a string so clients
// never see a float.
type QuoteResponse struct {
	ID             string    `json:"id"`
	MoverID        string    `json:"mover_id"`
	QuoteRequestID string    `json:"quote_request_id"`
	Price          string    `json:"price"`
	Comment        string    `json:"comment"`
	CreatedAt      time.Time `json:"created_at"`
}

type MoverQuoteViewResponse struct {
	QuoteRequest QuoteRequestResponse   `json:"quote_request"`
	Quote        *QuoteResponse         `json:"quote"`
	Mover        *entities.MoverProfile `json:"mover"`
	MatchID      string                 `json:"match_id,omitempty"`
}

type QuoteViewResponse struct {
	QuoteResponse
	QuoteRequest QuoteRequestResponse      `json:"quote_request"`
	MatchID      string                    `json:"match_id,omitempty"`
	IsConfirmed  bool                      `json:"is_confirmed"`
	Mover        *entities.MoverProfile    `json:"mover,omitempty"`
	Customer     *entities.CustomerProfile `json:"customer,omitempty"`
}

type TargetedQuoteRequestResponse struct {
	ID             string    `json:"id"`
	QuoteRequestID string    `json:"quote_request_id"`
	MoverID        string    `json:"mover_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type LatestQuoteRequestResponse struct {
	IsRequested  bool                  `json:"is_requested"`
	QuoteRequest *QuoteRequestResponse `json:"quote_request,omitempty"`
}

func fromAddress(a entities.Address, ok bool) *AddressResponse {
	if !ok {
		return nil
	}
	return &AddressResponse{
		Type:        string(a.Type),
		Region:      a.Region,
		SubRegion:   a.SubRegion,
		Street:      a.Street,
		FullAddress: a.FullAddress,
	}
}

func FromQuoteRequest(q entities.QuoteRequest) QuoteRequestResponse {
	res := QuoteRequestResponse{
		ID:         q.ID,
		CustomerID: q.CustomerID,
		MoveType:   string(q.MoveType),
		MoveDate:   q.MoveDate,
		CreatedAt:  q.CreatedAt,
		Departure:  fromAddress(q.Departure()),
		Arrival:    fromAddress(q.Arrival()),
	}
	if status, ok := q.CurrentStatus(); ok {
		res.Status = string(status)
	}
	for _, e := range q.StatusHistories {
		res.StatusHistories = append(res.StatusHistories, StatusHistoryResponse{
			ID:        e.ID,
			Status:    string(e.Status),
			CreatedAt: e.CreatedAt,
		})
	}
	return res
}

func FromMoverQuote(q entities.MoverQuote) QuoteResponse {
	return QuoteResponse{
		ID:             q.ID,
		MoverID:        q.MoverID,
		QuoteRequestID: q.QuoteRequestID,
		Price:          q.Price.StringFixed(2),
		Comment:        q.Comment,
		CreatedAt:      q.CreatedAt,
	}
}

func FromMoverQuoteView(v entities.MoverQuoteView) MoverQuoteViewResponse {
	res := MoverQuoteViewResponse{
		QuoteRequest: FromQuoteRequest(v.QuoteRequest),
		Mover:        v.Mover,
	}
	if v.Quote != nil {
		q := FromMoverQuote(*v.Quote)
		res.Quote = &q
	}
	if v.Match != nil {
		res.MatchID = v.Match.ID
	}
	return res
}

func FromQuoteView(v entities.QuoteView) QuoteViewResponse {
	return QuoteViewResponse{
		QuoteResponse: FromMoverQuote(v.Quote),
		QuoteRequest:  FromQuoteRequest(v.Request),
		MatchID:       v.MatchID,
		IsConfirmed:   v.MatchID != "",
		Mover:         v.Mover,
		Customer:      v.Customer,
	}
}

func FromQuoteViewPage(p entities.PagedResult[entities.QuoteView]) entities.PagedResult[QuoteViewResponse] {
	list := make([]QuoteViewResponse, 0, len(p.List))
	for _, v := range p.List {
		list = append(list, FromQuoteView(v))
	}
	return entities.PagedResult[QuoteViewResponse]{
		List:       list,
		TotalCount: p.TotalCount,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}
}

func FromQuoteRequestPage(p entities.PagedResult[entities.QuoteRequest]) entities.PagedResult[QuoteRequestResponse] {
	list := make([]QuoteRequestResponse, 0, len(p.List))
	for _, q := range p.List {
		list = append(list, FromQuoteRequest(q))
	}
	return entities.PagedResult[QuoteRequestResponse]{
		List:       list,
		TotalCount: p.TotalCount,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}
}

func FromTargetedQuoteRequest(t entities.TargetedQuoteRequest) TargetedQuoteRequestResponse {
	return TargetedQuoteRequestResponse{
		ID:             t.ID,
		QuoteRequestID: t.QuoteRequestID,
		MoverID:        t.MoverID,
		CreatedAt:      t.CreatedAt,
	}
}

func FromLatestQuoteRequest(q entities.QuoteRequest) LatestQuoteRequestResponse {
	if q.ID == "" {
		return LatestQuoteRequestResponse{}
	}
	res := FromQuoteRequest(q)
	return LatestQuoteRequestResponse{IsRequested: true, QuoteRequest: &res}
}
