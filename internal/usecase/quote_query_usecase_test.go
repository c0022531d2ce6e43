package usecase

import (
	"context"
	"errors"
	"testing"

	"movequote/internal/domain/entities"
	mock_interfaces "movequote/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQuoteQueryUseCase_GetQuote(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewQuoteQueryUseCase(nil, 0)
		if _, err := uc.GetQuoteForCustomer(context.Background(), " "); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("customer view not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_interfaces.NewMockIQuoteStore(ctrl)
		uc := NewQuoteQueryUseCase(store, 0)

		store.EXPECT().GetQuoteForCustomer(gomock.Any(), "q-1").Return(entities.QuoteView{}, nil)

		if _, err := uc.GetQuoteForCustomer(context.Background(), "q-1"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("mover view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_interfaces.NewMockIQuoteStore(ctrl)
		uc := NewQuoteQueryUseCase(store, 0)

		want := entities.QuoteView{
			Quote:    entities.MoverQuote{ID: "q-1", MoverID: "mover-1"},
			Customer: &entities.CustomerProfile{ID: "c-1", Name: "Lee"},
		}
		store.EXPECT().GetQuoteForMover(gomock.Any(), "q-1").Return(want, nil)

		got, err := uc.GetQuoteForMover(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Customer == nil || got.Customer.Name != "Lee" || got.Mover != nil {
			t.Fatalf("unexpected view: %+v", got)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_interfaces.NewMockIQuoteStore(ctrl)
		uc := NewQuoteQueryUseCase(store, 0)

		store.EXPECT().GetQuoteForCustomer(gomock.Any(), "q-1").Return(entities.QuoteView{}, errors.New("timeout"))

		if _, err := uc.GetQuoteForCustomer(context.Background(), "q-1"); !errors.Is(err, ErrStore) {
			t.Fatalf("expected ErrStore, got %v", err)
		}
	})
}

func TestQuoteQueryUseCase_ListQuotesForMover(t *testing.T) {
	t.Run("invalid page", func(t *testing.T) {
		uc := NewQuoteQueryUseCase(nil, 10)
		if _, err := uc.ListQuotesForMover(context.Background(), 0, 4, "mover-1"); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
		if _, err := uc.ListQuotesForMover(context.Background(), 1, 11, "mover-1"); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for page size above max, got %v", err)
		}
		if _, err := uc.ListQuotesForMover(context.Background(), 1, 4, ""); !errors.Is(err, ErrInvalidMoverID) {
			t.Fatalf("expected ErrInvalidMoverID, got %v", err)
		}
	})

	t.Run("paged result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_interfaces.NewMockIQuoteStore(ctrl)
		uc := NewQuoteQueryUseCase(store, 10)

		list := []entities.QuoteView{{Quote: entities.MoverQuote{ID: "q-5"}}, {Quote: entities.MoverQuote{ID: "q-6"}}, {Quote: entities.MoverQuote{ID: "q-7"}}}
		store.EXPECT().ListQuotesForMover(gomock.Any(), "mover-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, p entities.PageRequest) ([]entities.QuoteView, int, error) {
				if p.Page() != 2 || p.PageSize() != 4 || p.Offset() != 4 {
					t.Fatalf("unexpected page request: page=%d size=%d", p.Page(), p.PageSize())
				}
				return list, 7, nil
			})

		res, err := uc.ListQuotesForMover(context.Background(), 2, 4, "mover-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.TotalCount != 7 || res.TotalPages != 2 || res.Page != 2 || res.PageSize != 4 || len(res.List) != 3 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_interfaces.NewMockIQuoteStore(ctrl)
		uc := NewQuoteQueryUseCase(store, 10)

		store.EXPECT().ListQuotesForMover(gomock.Any(), "mover-1", gomock.Any()).Return(nil, 0, nil)

		res, err := uc.ListQuotesForMover(context.Background(), 1, 4, "mover-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.List == nil || len(res.List) != 0 || res.TotalPages != 0 {
			t.Fatalf("expected empty non-nil list, got %+v", res)
		}
	})
}

func TestQuoteQueryUseCase_ListOpenQuoteRequests(t *testing.T) {
	t.Run("invalid page", func(t *testing.T) {
		uc := NewQuoteQueryUseCase(nil, 10)
		if _, err := uc.ListOpenQuoteRequests(context.Background(), 1, 0); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("paged result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_interfaces.NewMockIQuoteStore(ctrl)
		uc := NewQuoteQueryUseCase(store, 10)

		store.EXPECT().ListOpenQuoteRequests(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.PageRequest) ([]entities.QuoteRequest, int, error) {
				if p.Page() != 1 || p.PageSize() != 4 {
					t.Fatalf("unexpected page request: page=%d size=%d", p.Page(), p.PageSize())
				}
				return []entities.QuoteRequest{requestedQuoteRequest("qr-1", testNow)}, 5, nil
			})

		res, err := uc.ListOpenQuoteRequests(context.Background(), 1, 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.TotalCount != 5 || res.TotalPages != 2 || len(res.List) != 1 || res.List[0].ID != "qr-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_interfaces.NewMockIQuoteStore(ctrl)
		uc := NewQuoteQueryUseCase(store, 10)

		store.EXPECT().ListOpenQuoteRequests(gomock.Any(), gomock.Any()).Return(nil, 0, errors.New("connection reset"))
		if _, err := uc.ListOpenQuoteRequests(context.Background(), 1, 4); !errors.Is(err, ErrStore) {
			t.Fatalf("expected ErrStore, got %v", err)
		}
	})
}
