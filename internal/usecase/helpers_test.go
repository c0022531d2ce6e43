package usecase

import (
	"context"
	"fmt"
	"time"

	"movequote/internal/usecase/interfaces"
	mock_interfaces "movequote/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// seqIDs returns an id generator yielding prefix-1, prefix-2, ...
func seqIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// expectTx makes the next WithinTx call run fn against tx and return its
// error, the way a real store would after commit or rollback.
func expectTx(store *mock_interfaces.MockIQuoteStore, tx *mock_interfaces.MockIQuoteTx) *gomock.Call {
	return store.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, interfaces.IQuoteTx) error) error {
			return fn(ctx, tx)
		},
	)
}
