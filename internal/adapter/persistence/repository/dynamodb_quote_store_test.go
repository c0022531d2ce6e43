package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"movequote/internal/adapter/persistence/repository/mocks"
	"movequote/internal/domain/entities"
	"movequote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var dynamoKeyAttrs = map[string][]string{
	defaultQuoteRequestsTableName:           {"id"},
	defaultMoverQuotesTableName:             {"quote_request_id", "mover_id"},
	defaultTargetedQuoteRequestsTableName:   {"quote_request_id", "mover_id"},
	defaultTargetedQuoteRejectionsTableName: {"targeted_quote_request_id"},
	defaultQuoteMatchesTableName:            {"mover_quote_id"},
	defaultMoversTableName:                  {"id"},
	defaultCustomersTableName:               {"id"},
}

// dynamoFixture serves GetItem calls from in-memory tables.
type dynamoFixture struct {
	t      *testing.T
	tables map[string]map[string]map[string]types.AttributeValue
}

func newDynamoFixture(t *testing.T) *dynamoFixture {
	return &dynamoFixture{t: t, tables: map[string]map[string]map[string]types.AttributeValue{}}
}

func canonicalKey(key map[string]types.AttributeValue) string {
	names := make([]string, 0, len(key))
	for n := range key {
		names = append(names, n)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n + "=" + key[n].(*types.AttributeValueMemberS).Value
	}
	return strings.Join(parts, "&")
}

func (f *dynamoFixture) put(table string, item any) map[string]types.AttributeValue {
	f.t.Helper()
	av, err := attributevalue.MarshalMap(item)
	require.NoError(f.t, err)
	key := map[string]types.AttributeValue{}
	for _, attr := range dynamoKeyAttrs[table] {
		key[attr] = av[attr]
	}
	if f.tables[table] == nil {
		f.tables[table] = map[string]map[string]types.AttributeValue{}
	}
	f.tables[table][canonicalKey(key)] = av
	return av
}

func (f *dynamoFixture) getItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if !aws.ToBool(in.ConsistentRead) {
		f.t.Errorf("GetItem on %s without ConsistentRead", aws.ToString(in.TableName))
	}
	item := f.tables[aws.ToString(in.TableName)][canonicalKey(in.Key)]
	return &dynamodb.GetItemOutput{Item: item}, nil
}

func historyQuery(items ...map[string]types.AttributeValue) func(context.Context, *dynamodb.QueryInput, ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return func(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
		if aws.ToString(in.TableName) != defaultQuoteStatusHistoriesTableName {
			return nil, fmt.Errorf("unexpected query on %s", aws.ToString(in.TableName))
		}
		return &dynamodb.QueryOutput{Items: items}, nil
	}
}

func marshalItem(t *testing.T, item any) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(item)
	require.NoError(t, err)
	return av
}

func seedDynamoRequest(t *testing.T, f *dynamoFixture, id string, version int64, moveDate time.Time) (entities.QuoteRequest, map[string]types.AttributeValue) {
	req := entities.QuoteRequest{
		ID: id, CustomerID: "customer-1", MoveType: entities.MoveTypeSmall, MoveDate: moveDate, CreatedAt: baseTime,
		Addresses: []entities.Address{
			{ID: id + "-dep", Type: entities.AddressTypeDeparture, Region: "Daegu", FullAddress: "1 Dongseong-ro"},
			{ID: id + "-arr", Type: entities.AddressTypeArrival, Region: "Daejeon", FullAddress: "2 Daehak-ro"},
		},
	}
	f.put(defaultQuoteRequestsTableName, toQuoteRequestItem(req, version))
	history := marshalItem(t, toStatusHistoryItem(entities.StatusHistoryEntry{
		ID: id + "-h1", QuoteRequestID: id, Status: entities.QuoteStatusQuoteRequested, CreatedAt: baseTime,
	}))
	return req, history
}

func transactKinds(items []types.TransactWriteItem) map[string]int {
	kinds := map[string]int{}
	for _, it := range items {
		switch {
		case it.Put != nil:
			kinds["put:"+aws.ToString(it.Put.TableName)]++
		case it.Update != nil:
			kinds["update:"+aws.ToString(it.Update.TableName)]++
		case it.ConditionCheck != nil:
			kinds["check:"+aws.ToString(it.ConditionCheck.TableName)]++
		}
	}
	return kinds
}

func TestDynamoDBQuoteStore_CommitGuardsRequestVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	ddb := mocks.NewMockDynamoDBAPI(ctrl)
	f := newDynamoFixture(t)
	s := NewDynamoDBQuoteStore(ddb, DynamoDBTableNames{})

	_, history := seedDynamoRequest(t, f, "qr-1", 1, baseTime.Add(24*time.Hour))
	ddb.EXPECT().GetItem(gomock.Any(), gomock.Any()).DoAndReturn(f.getItem).AnyTimes()
	ddb.EXPECT().Query(gomock.Any(), gomock.Any()).DoAndReturn(historyQuery(history)).AnyTimes()

	var committed *dynamodb.TransactWriteItemsInput
	ddb.EXPECT().TransactWriteItems(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
			committed = in
			return &dynamodb.TransactWriteItemsOutput{}, nil
		})

	err := s.WithinTx(context.Background(), func(ctx context.Context, tx interfaces.IQuoteTx) error {
		req, err := tx.GetQuoteRequestForUpdate(ctx, "qr-1")
		require.NoError(t, err)
		require.Len(t, req.StatusHistories, 1)
		require.Len(t, req.Addresses, 2)

		require.NoError(t, tx.AppendStatusHistory(ctx, entities.StatusHistoryEntry{
			ID: "h-2", QuoteRequestID: "qr-1", Status: entities.QuoteStatusMoverSubmitted, CreatedAt: baseTime.Add(time.Minute),
		}))
		require.NoError(t, tx.CreateMoverQuote(ctx, entities.MoverQuote{
			ID: "q-1", MoverID: "mover-1", QuoteRequestID: "qr-1", Price: decimal.NewFromInt(80000), CreatedAt: baseTime,
		}))

		// reads observe pending writes
		req, err = tx.GetQuoteRequest(ctx, "qr-1")
		require.NoError(t, err)
		status, _ := req.CurrentStatus()
		assert.Equal(t, entities.QuoteStatusMoverSubmitted, status)

		q, err := tx.FindMoverQuote(ctx, "qr-1", "mover-1")
		require.NoError(t, err)
		assert.Equal(t, "q-1", q.ID)
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, committed)

	assert.Equal(t, map[string]int{
		"update:" + defaultQuoteRequestsTableName:     1,
		"put:" + defaultQuoteStatusHistoriesTableName: 1,
		"put:" + defaultMoverQuotesTableName:           1,
	}, transactKinds(committed.TransactItems))

	for _, it := range committed.TransactItems {
		if it.Update == nil {
			continue
		}
		assert.Equal(t, "#v = :read", aws.ToString(it.Update.ConditionExpression))
		assert.Equal(t, "1", it.Update.ExpressionAttributeValues[":read"].(*types.AttributeValueMemberN).Value)
		assert.Equal(t, "2", it.Update.ExpressionAttributeValues[":next"].(*types.AttributeValueMemberN).Value)
	}
}

func TestDynamoDBQuoteStore_CommitErrors(t *testing.T) {
	run := func(t *testing.T, commitErr error) error {
		ctrl := gomock.NewController(t)
		ddb := mocks.NewMockDynamoDBAPI(ctrl)
		f := newDynamoFixture(t)
		s := NewDynamoDBQuoteStore(ddb, DynamoDBTableNames{})

		_, history := seedDynamoRequest(t, f, "qr-1", 3, baseTime)
		ddb.EXPECT().GetItem(gomock.Any(), gomock.Any()).DoAndReturn(f.getItem).AnyTimes()
		ddb.EXPECT().Query(gomock.Any(), gomock.Any()).DoAndReturn(historyQuery(history)).AnyTimes()
		ddb.EXPECT().TransactWriteItems(gomock.Any(), gomock.Any()).Return(nil, commitErr)

		return s.WithinTx(context.Background(), func(ctx context.Context, tx interfaces.IQuoteTx) error {
			if _, err := tx.GetQuoteRequestForUpdate(ctx, "qr-1"); err != nil {
				return err
			}
			if err := tx.AppendStatusHistory(ctx, entities.StatusHistoryEntry{
				ID: "h-2", QuoteRequestID: "qr-1", Status: entities.QuoteStatusMoverSubmitted, CreatedAt: baseTime.Add(time.Second),
			}); err != nil {
				return err
			}
			return tx.CreateMoverQuote(ctx, entities.MoverQuote{
				ID: "q-1", MoverID: "mover-1", QuoteRequestID: "qr-1", Price: decimal.NewFromInt(1), CreatedAt: baseTime,
			})
		})
	}

	t.Run("version guard failed", func(t *testing.T) {
		err := run(t, &types.TransactionCanceledException{
			Message: aws.String("Transaction cancelled"),
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("ConditionalCheckFailed")},
				{Code: aws.String("None")},
				{Code: aws.String("None")},
			},
		})
		require.ErrorIs(t, err, interfaces.ErrTxConflict)
	})

	t.Run("contended items", func(t *testing.T) {
		err := run(t, &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("None")},
				{Code: aws.String("TransactionConflict")},
				{Code: aws.String("None")},
			},
		})
		require.ErrorIs(t, err, interfaces.ErrTxConflict)
	})

	t.Run("duplicate create", func(t *testing.T) {
		err := run(t, &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("None")},
				{Code: aws.String("None")},
				{Code: aws.String("ConditionalCheckFailed")},
			},
		})
		require.ErrorIs(t, err, interfaces.ErrDuplicate)
	})

	t.Run("service failure", func(t *testing.T) {
		boom := errors.New("throttled")
		err := run(t, boom)
		require.ErrorIs(t, err, boom)
		require.NotErrorIs(t, err, interfaces.ErrTxConflict)
	})
}

func TestDynamoDBQuoteStore_FailedFnWritesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	ddb := mocks.NewMockDynamoDBAPI(ctrl)
	f := newDynamoFixture(t)
	s := NewDynamoDBQuoteStore(ddb, DynamoDBTableNames{})

	_, history := seedDynamoRequest(t, f, "qr-1", 1, baseTime)
	ddb.EXPECT().GetItem(gomock.Any(), gomock.Any()).DoAndReturn(f.getItem).AnyTimes()
	ddb.EXPECT().Query(gomock.Any(), gomock.Any()).DoAndReturn(historyQuery(history)).AnyTimes()

	boom := errors.New("not targeted")
	err := s.WithinTx(context.Background(), func(ctx context.Context, tx interfaces.IQuoteTx) error {
		_, err := tx.GetQuoteRequestForUpdate(ctx, "qr-1")
		require.NoError(t, err)
		require.NoError(t, tx.AppendStatusHistory(ctx, entities.StatusHistoryEntry{
			ID: "h-2", QuoteRequestID: "qr-1", Status: entities.QuoteStatusTargetedQuoteRejected, CreatedAt: baseTime.Add(time.Second),
		}))
		return boom
	})
	require.ErrorIs(t, err, boom)
}

func TestDynamoDBQuoteStore_CreateQuoteRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	ddb := mocks.NewMockDynamoDBAPI(ctrl)
	s := NewDynamoDBQuoteStore(ddb, DynamoDBTableNames{})

	var committed *dynamodb.TransactWriteItemsInput
	ddb.EXPECT().TransactWriteItems(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
			committed = in
			return &dynamodb.TransactWriteItemsOutput{}, nil
		})

	req := entities.QuoteRequest{ID: "qr-new", CustomerID: "customer-1", MoveType: entities.MoveTypeHome, MoveDate: baseTime, CreatedAt: baseTime}
	err := s.WithinTx(context.Background(), func(ctx context.Context, tx interfaces.IQuoteTx) error {
		require.NoError(t, tx.CreateQuoteRequest(ctx, req))
		require.NoError(t, tx.AppendStatusHistory(ctx, entities.StatusHistoryEntry{
			ID: "h-1", QuoteRequestID: "qr-new", Status: entities.QuoteStatusQuoteRequested, CreatedAt: baseTime,
		}))

		got, err := tx.GetQuoteRequest(ctx, "qr-new")
		require.NoError(t, err)
		require.Len(t, got.StatusHistories, 1)
		return nil
	})
	require.NoError(t, err)

	require.NotNil(t, committed)
	assert.Equal(t, map[string]int{
		"put:" + defaultQuoteRequestsTableName:        1,
		"put:" + defaultQuoteStatusHistoriesTableName: 1,
	}, transactKinds(committed.TransactItems))

	for _, it := range committed.TransactItems {
		if it.Put == nil || aws.ToString(it.Put.TableName) != defaultQuoteRequestsTableName {
			continue
		}
		var stored quoteRequestItem
		require.NoError(t, attributevalue.UnmarshalMap(it.Put.Item, &stored))
		assert.Equal(t, int64(1), stored.HistoryVersion)
		assert.Equal(t, "attribute_not_exists(#pk)", aws.ToString(it.Put.ConditionExpression))
	}
}

func TestDynamoDBQuoteStore_AppendRequiresLockedRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	ddb := mocks.NewMockDynamoDBAPI(ctrl)
	s := NewDynamoDBQuoteStore(ddb, DynamoDBTableNames{})

	err := s.WithinTx(context.Background(), func(ctx context.Context, tx interfaces.IQuoteTx) error {
		return tx.AppendStatusHistory(ctx, entities.StatusHistoryEntry{
			ID: "h-2", QuoteRequestID: "qr-1", Status: entities.QuoteStatusMoverSubmitted, CreatedAt: baseTime,
		})
	})
	require.Error(t, err)
}

func TestDynamoDBQuoteStore_ListQuotesForMover(t *testing.T) {
	ctrl := gomock.NewController(t)
	ddb := mocks.NewMockDynamoDBAPI(ctrl)
	f := newDynamoFixture(t)
	s := NewDynamoDBQuoteStore(ddb, DynamoDBTableNames{})

	var quotes []map[string]types.AttributeValue
	for i := 1; i <= 5; i++ {
		reqID := fmt.Sprintf("qr-%d", i)
		seedDynamoRequest(t, f, reqID, 1, baseTime.Add(time.Duration(i)*time.Hour))
		quotes = append(quotes, f.put(defaultMoverQuotesTableName, toMoverQuoteItem(entities.MoverQuote{
			ID: fmt.Sprintf("q-%d", i), MoverID: "mover-1", QuoteRequestID: reqID, Price: decimal.NewFromInt(int64(i * 1000)), CreatedAt: baseTime,
		})))
	}
	f.put(defaultTargetedQuoteRequestsTableName, targetedQuoteRequestItem{QuoteRequestID: "qr-5", MoverID: "mover-1", ID: "tq-5"})
	f.put(defaultTargetedQuoteRejectionsTableName, targetedQuoteRejectionItem{TargetedQuoteRequestID: "tq-5", ID: "rej-5", RejectionReason: "no"})
	f.put(defaultTargetedQuoteRequestsTableName, targetedQuoteRequestItem{QuoteRequestID: "qr-4", MoverID: "mover-1", ID: "tq-4"})
	f.put(defaultQuoteMatchesTableName, quoteMatchItem{MoverQuoteID: "q-3", ID: "match-3"})
	f.put(defaultCustomersTableName, customerItem{ID: "customer-1", Name: "Yoon"})

	ddb.EXPECT().GetItem(gomock.Any(), gomock.Any()).DoAndReturn(f.getItem).AnyTimes()
	ddb.EXPECT().Query(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
			if aws.ToString(in.IndexName) != moverIDIndex {
				return nil, fmt.Errorf("unexpected index %q", aws.ToString(in.IndexName))
			}
			// two pages to exercise LastEvaluatedKey handling
			if in.ExclusiveStartKey == nil {
				return &dynamodb.QueryOutput{Items: quotes[:2], LastEvaluatedKey: quotes[1]}, nil
			}
			return &dynamodb.QueryOutput{Items: quotes[2:]}, nil
		}).Times(2)

	page, err := entities.NewPageRequest(1, 2, 50)
	require.NoError(t, err)
	list, total, err := s.ListQuotesForMover(context.Background(), "mover-1", page)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	require.Len(t, list, 2)
	assert.Equal(t, "q-4", list[0].Quote.ID)
	assert.Equal(t, "q-3", list[1].Quote.ID)
	assert.Equal(t, "match-3", list[1].MatchID)
	require.NotNil(t, list[0].Customer)
	assert.Equal(t, "Yoon", list[0].Customer.Name)
	assert.True(t, list[0].Quote.Price.Equal(decimal.NewFromInt(4000)))
}

func TestDynamoDBQuoteStore_GetQuoteViews(t *testing.T) {
	ctrl := gomock.NewController(t)
	ddb := mocks.NewMockDynamoDBAPI(ctrl)
	f := newDynamoFixture(t)
	s := NewDynamoDBQuoteStore(ddb, DynamoDBTableNames{})

	seedDynamoRequest(t, f, "qr-1", 1, baseTime)
	quote := f.put(defaultMoverQuotesTableName, toMoverQuoteItem(entities.MoverQuote{
		ID: "q-1", MoverID: "mover-1", QuoteRequestID: "qr-1", Price: decimal.NewFromInt(5000), CreatedAt: baseTime,
	}))
	f.put(defaultMoversTableName, moverItem{ID: "mover-1", Name: "Oh Express", ExperienceYears: 3})

	ddb.EXPECT().GetItem(gomock.Any(), gomock.Any()).DoAndReturn(f.getItem).AnyTimes()
	ddb.EXPECT().Query(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
			if aws.ToString(in.IndexName) != quoteIDIndex {
				return nil, fmt.Errorf("unexpected index %q", aws.ToString(in.IndexName))
			}
			if in.ExpressionAttributeValues[":id"].(*types.AttributeValueMemberS).Value != "q-1" {
				return &dynamodb.QueryOutput{}, nil
			}
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{quote}}, nil
		}).AnyTimes()

	view, err := s.GetQuoteForCustomer(context.Background(), "q-1")
	require.NoError(t, err)
	require.NotNil(t, view.Mover)
	assert.Equal(t, "Oh Express", view.Mover.Name)
	assert.Nil(t, view.Customer)
	assert.Len(t, view.Request.Addresses, 2)

	view, err = s.GetQuoteForMover(context.Background(), "q-1")
	require.NoError(t, err)
	assert.Nil(t, view.Mover)
	assert.Nil(t, view.Customer, "no customer row stored")

	missing, err := s.GetQuoteForCustomer(context.Background(), "q-404")
	require.NoError(t, err)
	assert.Empty(t, missing.Quote.ID)
}

func TestDynamoDBQuoteStore_ListOpenQuoteRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	ddb := mocks.NewMockDynamoDBAPI(ctrl)
	s := NewDynamoDBQuoteStore(ddb, DynamoDBTableNames{})
	f := newDynamoFixture(t)

	histories := map[string][]map[string]types.AttributeValue{}
	var requests []map[string]types.AttributeValue
	for i := 1; i <= 4; i++ {
		id := fmt.Sprintf("qr-%d", i)
		req, history := seedDynamoRequest(t, f, id, 1, baseTime.Add(time.Duration(i)*24*time.Hour))
		histories[id] = []map[string]types.AttributeValue{history}
		requests = append(requests, marshalItem(t, toQuoteRequestItem(req, 1)))
	}
	// qr-4 has the latest move date but was already quoted
	histories["qr-4"] = append(histories["qr-4"], marshalItem(t, toStatusHistoryItem(entities.StatusHistoryEntry{
		ID: "qr-4-h2", QuoteRequestID: "qr-4", Status: entities.QuoteStatusMoverSubmitted, CreatedAt: baseTime.Add(time.Minute),
	})))

	ddb.EXPECT().Scan(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
			if aws.ToString(in.TableName) != defaultQuoteRequestsTableName {
				return nil, fmt.Errorf("unexpected scan on %s", aws.ToString(in.TableName))
			}
			if in.ExclusiveStartKey == nil {
				return &dynamodb.ScanOutput{Items: requests[:2], LastEvaluatedKey: map[string]types.AttributeValue{"id": requests[1]["id"]}}, nil
			}
			return &dynamodb.ScanOutput{Items: requests[2:]}, nil
		}).Times(2)
	ddb.EXPECT().Query(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
			id := in.ExpressionAttributeValues[":qr"].(*types.AttributeValueMemberS).Value
			return &dynamodb.QueryOutput{Items: histories[id]}, nil
		}).Times(4)

	page, err := entities.NewPageRequest(1, 2, 50)
	require.NoError(t, err)
	list, total, err := s.ListOpenQuoteRequests(context.Background(), page)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, list, 2)
	assert.Equal(t, "qr-3", list[0].ID)
	assert.Equal(t, "qr-2", list[1].ID)
	assert.Len(t, list[0].Addresses, 2)
	require.Len(t, list[0].StatusHistories, 1)
	assert.Equal(t, entities.QuoteStatusQuoteRequested, list[0].StatusHistories[0].Status)
}

func TestNewDynamoDBQuoteStore_TableNames(t *testing.T) {
	s := NewDynamoDBQuoteStore(nil, DynamoDBTableNames{MoverQuotes: "staging_mover_quotes", Movers: " "})

	assert.Equal(t, "staging_mover_quotes", s.tables.moverQuotes)
	assert.Equal(t, defaultMoversTableName, s.tables.movers)
	assert.Equal(t, defaultQuoteRequestsTableName, s.tables.quoteRequests)
}
