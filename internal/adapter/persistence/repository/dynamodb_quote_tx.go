package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"movequote/internal/domain/entities"
	"movequote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDB allows at most 100 actions in one TransactWriteItems call.
const maxTransactItems = 100

type writeKind int

const (
	// writeGuard fails when another transaction appended to the request.
	writeGuard writeKind = iota
	// writeCreate fails when the item already exists.
	writeCreate
)

// dynamoQuoteTx buffers writes until commit and overlays them on reads so
// the transaction observes its own writes.
type dynamoQuoteTx struct {
	s *DynamoDBQuoteStore

	// history_version observed per request read for update
	guards map[string]int64
	// requests created in this transaction, in creation order
	created     map[string]entities.QuoteRequest
	createOrder []string
	// status entries appended per request, in append order
	appended map[string][]entities.StatusHistoryEntry

	moverQuotes map[string]entities.MoverQuote
	targeted    map[string]entities.TargetedQuoteRequest
	rejections  []entities.TargetedQuoteRejection
}

var _ interfaces.IQuoteTx = (*dynamoQuoteTx)(nil)

func newDynamoQuoteTx(s *DynamoDBQuoteStore) *dynamoQuoteTx {
	return &dynamoQuoteTx{
		s:           s,
		guards:      map[string]int64{},
		created:     map[string]entities.QuoteRequest{},
		appended:    map[string][]entities.StatusHistoryEntry{},
		moverQuotes: map[string]entities.MoverQuote{},
		targeted:    map[string]entities.TargetedQuoteRequest{},
	}
}

func pairKey(quoteRequestID, moverID string) string {
	return quoteRequestID + "|" + moverID
}

func (t *dynamoQuoteTx) getQuoteRequest(ctx context.Context, id string, guard bool) (entities.QuoteRequest, error) {
	if q, ok := t.created[id]; ok {
		q.StatusHistories = append([]entities.StatusHistoryEntry(nil), t.appended[id]...)
		return q, nil
	}

	req, version, err := t.s.loadQuoteRequest(ctx, id)
	if err != nil || req.ID == "" {
		return entities.QuoteRequest{}, err
	}
	if guard {
		if _, seen := t.guards[id]; !seen {
			t.guards[id] = version
		}
	}
	req.StatusHistories = append(req.StatusHistories, t.appended[id]...)
	return req, nil
}

func (t *dynamoQuoteTx) GetQuoteRequestForUpdate(ctx context.Context, id string) (entities.QuoteRequest, error) {
	return t.getQuoteRequest(ctx, id, true)
}

func (t *dynamoQuoteTx) GetQuoteRequest(ctx context.Context, id string) (entities.QuoteRequest, error) {
	return t.getQuoteRequest(ctx, id, false)
}

func (t *dynamoQuoteTx) AppendStatusHistory(_ context.Context, e entities.StatusHistoryEntry) error {
	if _, isNew := t.created[e.QuoteRequestID]; !isNew {
		if _, guarded := t.guards[e.QuoteRequestID]; !guarded {
			return fmt.Errorf("append status history: quote request %s was not read for update", e.QuoteRequestID)
		}
	}
	t.appended[e.QuoteRequestID] = append(t.appended[e.QuoteRequestID], e)
	return nil
}

func (t *dynamoQuoteTx) CreateQuoteRequest(_ context.Context, q entities.QuoteRequest) error {
	if _, exists := t.created[q.ID]; exists {
		return fmt.Errorf("create quote request %s: %w", q.ID, interfaces.ErrDuplicate)
	}
	q.StatusHistories = nil
	t.created[q.ID] = q
	t.createOrder = append(t.createOrder, q.ID)
	return nil
}

func (t *dynamoQuoteTx) CreateMoverQuote(_ context.Context, q entities.MoverQuote) error {
	k := pairKey(q.QuoteRequestID, q.MoverID)
	if _, exists := t.moverQuotes[k]; exists {
		return fmt.Errorf("create mover quote: %w", interfaces.ErrDuplicate)
	}
	t.moverQuotes[k] = q
	return nil
}

func (t *dynamoQuoteTx) FindMoverQuote(ctx context.Context, quoteRequestID, moverID string) (entities.MoverQuote, error) {
	if q, ok := t.moverQuotes[pairKey(quoteRequestID, moverID)]; ok {
		return q, nil
	}
	return t.s.findMoverQuote(ctx, quoteRequestID, moverID)
}

func (t *dynamoQuoteTx) CreateTargetedQuoteRequest(_ context.Context, tq entities.TargetedQuoteRequest) error {
	k := pairKey(tq.QuoteRequestID, tq.MoverID)
	if _, exists := t.targeted[k]; exists {
		return fmt.Errorf("create targeted quote request: %w", interfaces.ErrDuplicate)
	}
	t.targeted[k] = tq
	return nil
}

func (t *dynamoQuoteTx) FindTargetedQuoteRequest(ctx context.Context, quoteRequestID, moverID string) (entities.TargetedQuoteRequest, error) {
	if tq, ok := t.targeted[pairKey(quoteRequestID, moverID)]; ok {
		return tq, nil
	}
	return t.s.findTargetedQuoteRequest(ctx, quoteRequestID, moverID)
}

func (t *dynamoQuoteTx) CreateTargetedQuoteRejection(_ context.Context, r entities.TargetedQuoteRejection) error {
	for _, existing := range t.rejections {
		if existing.TargetedQuoteRequestID == r.TargetedQuoteRequestID {
			return fmt.Errorf("create targeted quote rejection: %w", interfaces.ErrDuplicate)
		}
	}
	t.rejections = append(t.rejections, r)
	return nil
}

func (t *dynamoQuoteTx) GetMoverProfile(ctx context.Context, moverID string) (entities.MoverProfile, error) {
	return t.s.getMoverProfile(ctx, moverID)
}

func (t *dynamoQuoteTx) FindQuoteMatch(ctx context.Context, moverQuoteID string) (entities.QuoteMatch, error) {
	return t.s.findQuoteMatch(ctx, moverQuoteID)
}

type pendingWrite struct {
	kind writeKind
	item types.TransactWriteItem
}

func putIfAbsent(table string, item any, keyAttr string) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:                aws.String(table),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#pk)"),
			ExpressionAttributeNames: map[string]string{"#pk": keyAttr},
		},
	}, nil
}

func versionValue(v int64) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(v, 10)}
}

// build turns the buffered writes into transaction items. Each guarded
// request contributes exactly one action on its item: an Update bumping
// history_version when entries were appended, a ConditionCheck otherwise.
func (t *dynamoQuoteTx) build() ([]pendingWrite, error) {
	tb := t.s.tables
	var writes []pendingWrite

	for _, id := range t.createOrder {
		q := t.created[id]
		item, err := putIfAbsent(tb.quoteRequests, toQuoteRequestItem(q, int64(len(t.appended[id]))), "id")
		if err != nil {
			return nil, err
		}
		writes = append(writes, pendingWrite{kind: writeCreate, item: item})
	}

	for id, read := range t.guards {
		key := strKey("id", id)
		cond := aws.String("#v = :read")
		names := map[string]string{"#v": "history_version"}
		if n := len(t.appended[id]); n > 0 {
			writes = append(writes, pendingWrite{kind: writeGuard, item: types.TransactWriteItem{
				Update: &types.Update{
					TableName:                aws.String(tb.quoteRequests),
					Key:                      key,
					UpdateExpression:         aws.String("SET #v = :next"),
					ConditionExpression:      cond,
					ExpressionAttributeNames: names,
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":read": versionValue(read),
						":next": versionValue(read + int64(n)),
					},
				},
			}})
			continue
		}
		writes = append(writes, pendingWrite{kind: writeGuard, item: types.TransactWriteItem{
			ConditionCheck: &types.ConditionCheck{
				TableName:                 aws.String(tb.quoteRequests),
				Key:                       key,
				ConditionExpression:       cond,
				ExpressionAttributeNames:  names,
				ExpressionAttributeValues: map[string]types.AttributeValue{":read": versionValue(read)},
			},
		}})
	}

	for _, entries := range t.appended {
		for _, e := range entries {
			item, err := putIfAbsent(tb.statusHistories, toStatusHistoryItem(e), "quote_request_id")
			if err != nil {
				return nil, err
			}
			writes = append(writes, pendingWrite{kind: writeCreate, item: item})
		}
	}
	for _, q := range t.moverQuotes {
		item, err := putIfAbsent(tb.moverQuotes, toMoverQuoteItem(q), "quote_request_id")
		if err != nil {
			return nil, err
		}
		writes = append(writes, pendingWrite{kind: writeCreate, item: item})
	}
	for _, tq := range t.targeted {
		item, err := putIfAbsent(tb.targetedQuoteRequests, targetedQuoteRequestItem{
			QuoteRequestID: tq.QuoteRequestID,
			MoverID:        tq.MoverID,
			ID:             tq.ID,
			CreatedAt:      toMillis(tq.CreatedAt),
		}, "quote_request_id")
		if err != nil {
			return nil, err
		}
		writes = append(writes, pendingWrite{kind: writeCreate, item: item})
	}
	for _, r := range t.rejections {
		item, err := putIfAbsent(tb.targetedQuoteRejections, targetedQuoteRejectionItem{
			TargetedQuoteRequestID: r.TargetedQuoteRequestID,
			ID:                     r.ID,
			RejectionReason:        r.RejectionReason,
			CreatedAt:              toMillis(r.CreatedAt),
		}, "targeted_quote_request_id")
		if err != nil {
			return nil, err
		}
		writes = append(writes, pendingWrite{kind: writeCreate, item: item})
	}
	return writes, nil
}

func (t *dynamoQuoteTx) commit(ctx context.Context) error {
	writes, err := t.build()
	if err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	if len(writes) == 0 {
		return nil
	}
	if len(writes) > maxTransactItems {
		return fmt.Errorf("commit tx: %d actions exceed the DynamoDB transaction limit", len(writes))
	}

	items := make([]types.TransactWriteItem, len(writes))
	for i, w := range writes {
		items[i] = w.item
	}
	_, err = t.s.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		return classifyTransactError(writes, err)
	}
	return nil
}

// classifyTransactError maps a cancelled transaction to ErrTxConflict when
// a request guard failed or the items were contended, and to ErrDuplicate
// when only a create condition failed.
func classifyTransactError(writes []pendingWrite, err error) error {
	var canceled *types.TransactionCanceledException
	if errors.As(err, &canceled) {
		duplicate := false
		for i, reason := range canceled.CancellationReasons {
			code := aws.ToString(reason.Code)
			if code == "" || code == "None" || i >= len(writes) {
				continue
			}
			if writes[i].kind == writeCreate && code == "ConditionalCheckFailed" {
				duplicate = true
				continue
			}
			return fmt.Errorf("commit tx: %w: %w", interfaces.ErrTxConflict, err)
		}
		if duplicate {
			return fmt.Errorf("commit tx: %w: %w", interfaces.ErrDuplicate, err)
		}
		return fmt.Errorf("commit tx: %w: %w", interfaces.ErrTxConflict, err)
	}
	var inProgress *types.TransactionInProgressException
	var conflict *types.TransactionConflictException
	if errors.As(err, &inProgress) || errors.As(err, &conflict) {
		return fmt.Errorf("commit tx: %w: %w", interfaces.ErrTxConflict, err)
	}
	return fmt.Errorf("commit tx: %w", err)
}
