package repository

import (
	"context"
	"fmt"
	"sort"

	"movequote/internal/domain/entities"
	"movequote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuoteRequestsTableName           = "quote_requests"
	defaultQuoteStatusHistoriesTableName    = "quote_status_histories"
	defaultMoverQuotesTableName             = "mover_quotes"
	defaultTargetedQuoteRequestsTableName   = "targeted_quote_requests"
	defaultTargetedQuoteRejectionsTableName = "targeted_quote_rejections"
	defaultQuoteMatchesTableName            = "quote_matches"
	defaultMoversTableName                  = "movers"
	defaultCustomersTableName               = "customers"

	customerIDIndex = "customer_id-index"
	moverIDIndex    = "mover_id-index"
	quoteIDIndex    = "id-index"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the store.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoDBAPI = (*dynamodb.Client)(nil)

type dynamoTables struct {
	quoteRequests           string
	statusHistories         string
	moverQuotes             string
	targetedQuoteRequests   string
	targetedQuoteRejections string
	quoteMatches            string
	movers                  string
	customers               string
}

// DynamoDBQuoteStore persists the quote domain in DynamoDB.
//
// Table requirements:
//   - quote_requests: PK id; GSI customer_id-index (customer_id, created_at)
//   - quote_status_histories: PK quote_request_id, SK sk ("<millis>#<id>")
//   - mover_quotes: PK quote_request_id, SK mover_id; GSIs mover_id-index and id-index
//   - targeted_quote_requests: PK quote_request_id, SK mover_id
//   - targeted_quote_rejections: PK targeted_quote_request_id
//   - quote_matches: PK mover_quote_id
//   - movers, customers: PK id
//
// Transactions buffer their writes and commit them with one
// TransactWriteItems call. Every request read for update is re-validated
// at commit through its history_version attribute, which each status
// append increments.

type DynamoDBQuoteStore struct {
	ddb    DynamoDBAPI
	tables dynamoTables
}

var _ interfaces.IQuoteStore = (*DynamoDBQuoteStore)(nil)

// DynamoDBTableNames overrides table names. Empty fields keep the defaults.
type DynamoDBTableNames struct {
	QuoteRequests           string
	StatusHistories         string
	MoverQuotes             string
	TargetedQuoteRequests   string
	TargetedQuoteRejections string
	QuoteMatches            string
	Movers                  string
	Customers               string
}

func NewDynamoDBQuoteStore(ddb DynamoDBAPI, names DynamoDBTableNames) *DynamoDBQuoteStore {
	return &DynamoDBQuoteStore{
		ddb: ddb,
		tables: dynamoTables{
			quoteRequests:           orDefault(names.QuoteRequests, defaultQuoteRequestsTableName),
			statusHistories:         orDefault(names.StatusHistories, defaultQuoteStatusHistoriesTableName),
			moverQuotes:             orDefault(names.MoverQuotes, defaultMoverQuotesTableName),
			targetedQuoteRequests:   orDefault(names.TargetedQuoteRequests, defaultTargetedQuoteRequestsTableName),
			targetedQuoteRejections: orDefault(names.TargetedQuoteRejections, defaultTargetedQuoteRejectionsTableName),
			quoteMatches:            orDefault(names.QuoteMatches, defaultQuoteMatchesTableName),
			movers:                  orDefault(names.Movers, defaultMoversTableName),
			customers:               orDefault(names.Customers, defaultCustomersTableName),
		},
	}
}

func (s *DynamoDBQuoteStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx interfaces.IQuoteTx) error) error {
	tx := newDynamoQuoteTx(s)
	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.commit(ctx)
}

func strKey(kv ...string) map[string]types.AttributeValue {
	key := make(map[string]types.AttributeValue, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key[kv[i]] = &types.AttributeValueMemberS{Value: kv[i+1]}
	}
	return key
}

// getItem reads one item with a consistent read. It reports false when the
// item does not exist.
func (s *DynamoDBQuoteStore) getItem(ctx context.Context, table string, key map[string]types.AttributeValue, out any) (bool, error) {
	res, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, fmt.Errorf("get %s: %w", table, err)
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return false, fmt.Errorf("unmarshal %s: %w", table, err)
	}
	return true, nil
}

// queryAll follows LastEvaluatedKey until the query is exhausted.
func (s *DynamoDBQuoteStore) queryAll(ctx context.Context, in *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for {
		out, err := s.ddb.Query(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("query %s: %w", aws.ToString(in.TableName), err)
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// scanAll follows LastEvaluatedKey until the scan is exhausted.
func (s *DynamoDBQuoteStore) scanAll(ctx context.Context, in *dynamodb.ScanInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for {
		out, err := s.ddb.Scan(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", aws.ToString(in.TableName), err)
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// loadQuoteRequest returns the request, its history (oldest first) and the
// history version read, or a zero request when it does not exist.
func (s *DynamoDBQuoteStore) loadQuoteRequest(ctx context.Context, id string) (entities.QuoteRequest, int64, error) {
	var it quoteRequestItem
	found, err := s.getItem(ctx, s.tables.quoteRequests, strKey("id", id), &it)
	if err != nil || !found {
		return entities.QuoteRequest{}, 0, err
	}
	req := fromQuoteRequestItem(it)
	if req.StatusHistories, err = s.loadHistory(ctx, id); err != nil {
		return entities.QuoteRequest{}, 0, err
	}
	return req, it.HistoryVersion, nil
}

// loadHistory returns the request's status history, oldest first.
func (s *DynamoDBQuoteStore) loadHistory(ctx context.Context, quoteRequestID string) ([]entities.StatusHistoryEntry, error) {
	items, err := s.queryAll(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(s.tables.statusHistories),
		KeyConditionExpression:    aws.String("#qr = :qr"),
		ExpressionAttributeNames:  map[string]string{"#qr": "quote_request_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":qr": &types.AttributeValueMemberS{Value: quoteRequestID}},
		ConsistentRead:            aws.Bool(true),
		ScanIndexForward:          aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	history := make([]entities.StatusHistoryEntry, 0, len(items))
	for _, item := range items {
		var h statusHistoryItem
		if err := attributevalue.UnmarshalMap(item, &h); err != nil {
			return nil, fmt.Errorf("unmarshal status history: %w", err)
		}
		history = append(history, fromStatusHistoryItem(h))
	}
	return history, nil
}

func (s *DynamoDBQuoteStore) findMoverQuote(ctx context.Context, quoteRequestID, moverID string) (entities.MoverQuote, error) {
	var it moverQuoteItem
	found, err := s.getItem(ctx, s.tables.moverQuotes, strKey("quote_request_id", quoteRequestID, "mover_id", moverID), &it)
	if err != nil || !found {
		return entities.MoverQuote{}, err
	}
	return fromMoverQuoteItem(it)
}

func (s *DynamoDBQuoteStore) findTargetedQuoteRequest(ctx context.Context, quoteRequestID, moverID string) (entities.TargetedQuoteRequest, error) {
	var it targetedQuoteRequestItem
	found, err := s.getItem(ctx, s.tables.targetedQuoteRequests, strKey("quote_request_id", quoteRequestID, "mover_id", moverID), &it)
	if err != nil || !found {
		return entities.TargetedQuoteRequest{}, err
	}
	return fromTargetedQuoteRequestItem(it), nil
}

func (s *DynamoDBQuoteStore) hasRejection(ctx context.Context, targetedQuoteRequestID string) (bool, error) {
	var it targetedQuoteRejectionItem
	return s.getItem(ctx, s.tables.targetedQuoteRejections, strKey("targeted_quote_request_id", targetedQuoteRequestID), &it)
}

func (s *DynamoDBQuoteStore) getMoverProfile(ctx context.Context, moverID string) (entities.MoverProfile, error) {
	var it moverItem
	found, err := s.getItem(ctx, s.tables.movers, strKey("id", moverID), &it)
	if err != nil || !found {
		return entities.MoverProfile{}, err
	}
	return fromMoverItem(it), nil
}

func (s *DynamoDBQuoteStore) getCustomerProfile(ctx context.Context, customerID string) (entities.CustomerProfile, error) {
	var it customerItem
	found, err := s.getItem(ctx, s.tables.customers, strKey("id", customerID), &it)
	if err != nil || !found {
		return entities.CustomerProfile{}, err
	}
	return entities.CustomerProfile{ID: it.ID, Name: it.Name}, nil
}

func (s *DynamoDBQuoteStore) findQuoteMatch(ctx context.Context, moverQuoteID string) (entities.QuoteMatch, error) {
	var it quoteMatchItem
	found, err := s.getItem(ctx, s.tables.quoteMatches, strKey("mover_quote_id", moverQuoteID), &it)
	if err != nil || !found {
		return entities.QuoteMatch{}, err
	}
	return entities.QuoteMatch{ID: it.ID, MoverQuoteID: it.MoverQuoteID, CreatedAt: fromMillis(it.CreatedAt)}, nil
}

// quoteByID resolves a mover quote through the id-index GSI.
func (s *DynamoDBQuoteStore) quoteByID(ctx context.Context, quoteID string) (entities.MoverQuote, error) {
	out, err := s.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(s.tables.moverQuotes),
		IndexName:                 aws.String(quoteIDIndex),
		KeyConditionExpression:    aws.String("#id = :id"),
		ExpressionAttributeNames:  map[string]string{"#id": "id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":id": &types.AttributeValueMemberS{Value: quoteID}},
		Limit:                     aws.Int32(1),
	})
	if err != nil {
		return entities.MoverQuote{}, fmt.Errorf("query %s: %w", s.tables.moverQuotes, err)
	}
	if len(out.Items) == 0 {
		return entities.MoverQuote{}, nil
	}
	var it moverQuoteItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.MoverQuote{}, fmt.Errorf("unmarshal mover quote: %w", err)
	}
	return fromMoverQuoteItem(it)
}

// quoteView loads the quote's request (without history) and match.
func (s *DynamoDBQuoteStore) quoteView(ctx context.Context, quote entities.MoverQuote) (entities.QuoteView, error) {
	var it quoteRequestItem
	found, err := s.getItem(ctx, s.tables.quoteRequests, strKey("id", quote.QuoteRequestID), &it)
	if err != nil {
		return entities.QuoteView{}, err
	}
	if !found {
		return entities.QuoteView{}, fmt.Errorf("mover quote %s references missing quote request %s", quote.ID, quote.QuoteRequestID)
	}
	match, err := s.findQuoteMatch(ctx, quote.ID)
	if err != nil {
		return entities.QuoteView{}, err
	}
	return entities.QuoteView{Quote: quote, Request: fromQuoteRequestItem(it), MatchID: match.ID}, nil
}

func (s *DynamoDBQuoteStore) GetQuoteForCustomer(ctx context.Context, quoteID string) (entities.QuoteView, error) {
	quote, err := s.quoteByID(ctx, quoteID)
	if err != nil || quote.ID == "" {
		return entities.QuoteView{}, err
	}
	view, err := s.quoteView(ctx, quote)
	if err != nil {
		return entities.QuoteView{}, err
	}
	mover, err := s.getMoverProfile(ctx, quote.MoverID)
	if err != nil {
		return entities.QuoteView{}, err
	}
	if mover.ID != "" {
		view.Mover = &mover
	}
	return view, nil
}

func (s *DynamoDBQuoteStore) GetQuoteForMover(ctx context.Context, quoteID string) (entities.QuoteView, error) {
	quote, err := s.quoteByID(ctx, quoteID)
	if err != nil || quote.ID == "" {
		return entities.QuoteView{}, err
	}
	view, err := s.quoteView(ctx, quote)
	if err != nil {
		return entities.QuoteView{}, err
	}
	customer, err := s.getCustomerProfile(ctx, view.Request.CustomerID)
	if err != nil {
		return entities.QuoteView{}, err
	}
	if customer.ID != "" {
		view.Customer = &customer
	}
	return view, nil
}

// ListQuotesForMover filters, sorts and pages in memory: the eligibility
// rule spans three tables, which DynamoDB cannot join.
func (s *DynamoDBQuoteStore) ListQuotesForMover(ctx context.Context, moverID string, page entities.PageRequest) ([]entities.QuoteView, int, error) {
	items, err := s.queryAll(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(s.tables.moverQuotes),
		IndexName:                 aws.String(moverIDIndex),
		KeyConditionExpression:    aws.String("#mover = :mover"),
		ExpressionAttributeNames:  map[string]string{"#mover": "mover_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":mover": &types.AttributeValueMemberS{Value: moverID}},
	})
	if err != nil {
		return nil, 0, err
	}

	eligible := make([]entities.QuoteView, 0, len(items))
	for _, item := range items {
		var it moverQuoteItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, 0, fmt.Errorf("unmarshal mover quote: %w", err)
		}
		quote, err := fromMoverQuoteItem(it)
		if err != nil {
			return nil, 0, err
		}

		targeted, err := s.findTargetedQuoteRequest(ctx, quote.QuoteRequestID, moverID)
		if err != nil {
			return nil, 0, err
		}
		if targeted.ID != "" {
			rejected, err := s.hasRejection(ctx, targeted.ID)
			if err != nil {
				return nil, 0, err
			}
			if rejected {
				continue
			}
		}

		view, err := s.quoteView(ctx, quote)
		if err != nil {
			return nil, 0, err
		}
		eligible = append(eligible, view)
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		a, b := eligible[i], eligible[j]
		if !a.Request.MoveDate.Equal(b.Request.MoveDate) {
			return a.Request.MoveDate.After(b.Request.MoveDate)
		}
		return a.Quote.ID < b.Quote.ID
	})

	total := len(eligible)
	start := page.Offset()
	if start >= total {
		return []entities.QuoteView{}, total, nil
	}
	end := min(start+page.PageSize(), total)
	list := eligible[start:end]

	customers := make(map[string]*entities.CustomerProfile)
	for i := range list {
		id := list[i].Request.CustomerID
		c, ok := customers[id]
		if !ok {
			profile, err := s.getCustomerProfile(ctx, id)
			if err != nil {
				return nil, 0, err
			}
			if profile.ID != "" {
				c = &profile
			}
			customers[id] = c
		}
		list[i].Customer = c
	}
	return list, total, nil
}

func (s *DynamoDBQuoteStore) GetLatestQuoteRequestForCustomer(ctx context.Context, customerID string) (entities.QuoteRequest, error) {
	out, err := s.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(s.tables.quoteRequests),
		IndexName:                 aws.String(customerIDIndex),
		KeyConditionExpression:    aws.String("#customer = :customer"),
		ExpressionAttributeNames:  map[string]string{"#customer": "customer_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":customer": &types.AttributeValueMemberS{Value: customerID}},
		ScanIndexForward:          aws.Bool(false),
		Limit:                     aws.Int32(1),
	})
	if err != nil {
		return entities.QuoteRequest{}, fmt.Errorf("query %s: %w", s.tables.quoteRequests, err)
	}
	if len(out.Items) == 0 {
		return entities.QuoteRequest{}, nil
	}
	var it quoteRequestItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.QuoteRequest{}, fmt.Errorf("unmarshal quote request: %w", err)
	}
	req, _, err := s.loadQuoteRequest(ctx, it.ID)
	return req, err
}

// ListOpenQuoteRequests scans quote_requests and derives each request's
// status from its history, then sorts and pages in memory.
func (s *DynamoDBQuoteStore) ListOpenQuoteRequests(ctx context.Context, page entities.PageRequest) ([]entities.QuoteRequest, int, error) {
	items, err := s.scanAll(ctx, &dynamodb.ScanInput{
		TableName:      aws.String(s.tables.quoteRequests),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, 0, err
	}

	open := make([]entities.QuoteRequest, 0, len(items))
	for _, item := range items {
		var it quoteRequestItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, 0, fmt.Errorf("unmarshal quote request: %w", err)
		}
		req := fromQuoteRequestItem(it)
		if req.StatusHistories, err = s.loadHistory(ctx, req.ID); err != nil {
			return nil, 0, err
		}
		if status, ok := req.CurrentStatus(); ok && status == entities.QuoteStatusQuoteRequested {
			open = append(open, req)
		}
	}

	sort.SliceStable(open, func(i, j int) bool {
		if !open[i].MoveDate.Equal(open[j].MoveDate) {
			return open[i].MoveDate.After(open[j].MoveDate)
		}
		return open[i].ID < open[j].ID
	})

	total := len(open)
	start := page.Offset()
	if start >= total {
		return []entities.QuoteRequest{}, total, nil
	}
	return open[start:min(start+page.PageSize(), total)], total, nil
}
