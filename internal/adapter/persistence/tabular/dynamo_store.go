package tabular

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"servicios_ili/internal/usecase/interfaces"
	"servicios_ili/pkg"
)

const (
	defaultLedgerTableName = "ledger_rows"
	defaultStoreTimeout    = 10 * time.Second
	retryBackoff           = 250 * time.Millisecond

	// counterRow holds the per-sheet append counter; data rows start at 1.
	counterRow = 0
)

// rowItem is one sheet row as stored in DynamoDB.
//
// Table requirements:
//   - PK: sheet (string)
//   - SK: row (number)
//
// Reads Query by sheet in sort-key order, which makes store order equal
// insertion order. The item at row 0 is the append counter, never a data
// row.
type rowItem struct {
	Sheet string   `dynamodbav:"sheet"`
	Row   int64    `dynamodbav:"row"`
	Cells []string `dynamodbav:"cells"`
}

// DynamoStore implements the tabular store port on a single DynamoDB table.
//
// Appends allocate row indexes through an atomic ADD on the per-sheet
// counter item, so two concurrent appends interleave but neither overwrites
// the other. Multi-row appends go through TransactWriteItems, keeping the
// single append call atomic.
type DynamoStore struct {
	ddb       *dynamodb.Client
	tableName string
	timeout   time.Duration
}

var _ interfaces.ITabularStore = (*DynamoStore)(nil)

func NewDynamoStore(ddb *dynamodb.Client) *DynamoStore {
	timeout := defaultStoreTimeout
	if v := os.Getenv("STORE_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}
	return &DynamoStore{
		ddb:       ddb,
		tableName: getenvDefault("LEDGER_TABLE", defaultLedgerTableName),
		timeout:   timeout,
	}
}

func (s *DynamoStore) ReadRange(ctx context.Context, sheet, rng string) ([][]string, error) {
	spec, err := ParseA1Range(rng)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var rows [][]string
	var startKey map[string]types.AttributeValue
	for {
		out, err := s.query(ctx, sheet, startKey)
		if err != nil {
			return nil, err
		}

		var items []rowItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, asStoreUnavailable(err)
		}
		for _, it := range items {
			cells := it.Cells
			if len(cells) > spec.Width() {
				cells = cells[:spec.Width()]
			}
			rows = append(rows, cells)
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return rows, nil
}

func (s *DynamoStore) query(ctx context.Context, sheet string, startKey map[string]types.AttributeValue) (*dynamodb.QueryOutput, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		KeyConditionExpression: aws.String("#sheet = :sheet AND #row >= :first"),
		ExpressionAttributeNames: map[string]string{
			"#sheet": "sheet",
			"#row":   "row",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sheet": &types.AttributeValueMemberS{Value: sheet},
			":first": &types.AttributeValueMemberN{Value: strconv.Itoa(counterRow + 1)},
		},
		ExclusiveStartKey: startKey,
		ConsistentRead:    aws.Bool(true),
	}

	out, err := s.ddb.Query(ctx, input)
	if err != nil && isTransient(ctx, err) {
		time.Sleep(retryBackoff)
		out, err = s.ddb.Query(ctx, input)
	}
	if err != nil {
		return nil, asStoreUnavailable(err)
	}
	return out, nil
}

func (s *DynamoStore) AppendRows(ctx context.Context, sheet, rng string, rows [][]string) error {
	spec, err := ParseA1Range(rng)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if len(row) > spec.Width() {
			return fmt.Errorf("%w: row has %d cells, range %q holds %d", pkg.ErrBadRange, len(row), rng, spec.Width())
		}
	}
	if len(rows) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	first, err := s.allocateRows(ctx, sheet, int64(len(rows)))
	if err != nil {
		return err
	}

	if len(rows) == 1 {
		return s.putRow(ctx, rowItem{Sheet: sheet, Row: first, Cells: rows[0]})
	}

	writes := make([]types.TransactWriteItem, 0, len(rows))
	for i, row := range rows {
		av, err := attributevalue.MarshalMap(rowItem{Sheet: sheet, Row: first + int64(i), Cells: row})
		if err != nil {
			return asStoreUnavailable(err)
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{TableName: aws.String(s.tableName), Item: av},
		})
	}

	_, err = s.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes})
	if err != nil && isTransient(ctx, err) {
		time.Sleep(retryBackoff)
		_, err = s.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes})
	}
	return asStoreUnavailable(err)
}

// allocateRows reserves n consecutive row indexes via an atomic counter
// bump and returns the first one. Failed writes after allocation leave
// gaps, which readers tolerate.
func (s *DynamoStore) allocateRows(ctx context.Context, sheet string, n int64) (int64, error) {
	out, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"sheet": &types.AttributeValueMemberS{Value: sheet},
			"row":   &types.AttributeValueMemberN{Value: strconv.Itoa(counterRow)},
		},
		UpdateExpression: aws.String("ADD last_row :n"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":n": &types.AttributeValueMemberN{Value: strconv.FormatInt(n, 10)},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, asStoreUnavailable(err)
	}

	attr, ok := out.Attributes["last_row"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, asStoreUnavailable(fmt.Errorf("counter item for sheet %q missing last_row", sheet))
	}
	last, err := strconv.ParseInt(attr.Value, 10, 64)
	if err != nil {
		return 0, asStoreUnavailable(err)
	}
	return last - n + 1, nil
}

func (s *DynamoStore) putRow(ctx context.Context, it rowItem) error {
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return asStoreUnavailable(err)
	}
	input := &dynamodb.PutItemInput{TableName: aws.String(s.tableName), Item: av}

	_, err = s.ddb.PutItem(ctx, input)
	if err != nil && isTransient(ctx, err) {
		time.Sleep(retryBackoff)
		_, err = s.ddb.PutItem(ctx, input)
	}
	return asStoreUnavailable(err)
}

// isTransient reports whether a single bounded retry is worth attempting.
// Cancelled contexts are not retried.
func isTransient(ctx context.Context, err error) bool {
	if err == nil || ctx.Err() != nil {
		return false
	}
	var cfe *types.ConditionalCheckFailedException
	return !errors.As(err, &cfe)
}

func asStoreUnavailable(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %v", pkg.ErrStoreUnavailable, err)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
