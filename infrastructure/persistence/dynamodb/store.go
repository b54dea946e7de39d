package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"letstayinn-backend/infrastructure/persistence/schema"
)

// Store executes single-table operations against one DynamoDB table.
type Store struct {
	client Client
	table  string
	logger *zap.Logger
}

// NewStore creates a store bound to a table.
func NewStore(client Client, table string, logger *zap.Logger) *Store {
	return &Store{
		client: client,
		table:  table,
		logger: logger.Named("store"),
	}
}

// Key builds the composite primary key of an item.
func Key(pk, sk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		schema.AttrPK: &types.AttributeValueMemberS{Value: pk},
		schema.AttrSK: &types.AttributeValueMemberS{Value: sk},
	}
}

// Get reads an item with eventual consistency and unmarshals it into out.
// Returns ErrNotFound when the item does not exist.
func (s *Store) Get(ctx context.Context, pk, sk string, out any) error {
	return s.get(ctx, pk, sk, false, out)
}

// GetConsistent reads an item with strong consistency.
func (s *Store) GetConsistent(ctx context.Context, pk, sk string, out any) error {
	return s.get(ctx, pk, sk, true, out)
}

func (s *Store) get(ctx context.Context, pk, sk string, consistent bool, out any) error {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.table),
		Key:            Key(pk, sk),
		ConsistentRead: aws.Bool(consistent),
	})
	if err != nil {
		return mapError(err)
	}
	if result.Item == nil {
		return fmt.Errorf("%w: %s/%s", ErrNotFound, pk, sk)
	}
	if err := attributevalue.UnmarshalMap(result.Item, out); err != nil {
		return fmt.Errorf("unmarshaling item %s/%s: %w", pk, sk, err)
	}
	return nil
}

// Put writes an item unconditionally, replacing any existing one.
func (s *Store) Put(ctx context.Context, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("marshaling item: %w", err)
	}
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      av,
	})
	return mapError(err)
}

// PutIf writes an item guarded by a condition expression. Condition failure
// maps to ErrPreconditionFailed.
func (s *Store) PutIf(ctx context.Context, item any, condition string, names map[string]string, values map[string]types.AttributeValue) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("marshaling item: %w", err)
	}
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(s.table),
		Item:                      av,
		ConditionExpression:       aws.String(condition),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	return mapError(err)
}

// Delete removes an item. Deleting a missing item is not an error.
func (s *Store) Delete(ctx context.Context, pk, sk string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.table),
		Key:       Key(pk, sk),
	})
	return mapError(err)
}

// DeleteIf removes an item guarded by a condition expression. Condition
// failure maps to ErrPreconditionFailed.
func (s *Store) DeleteIf(ctx context.Context, pk, sk, condition string, names map[string]string, values map[string]types.AttributeValue) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                 aws.String(s.table),
		Key:                       Key(pk, sk),
		ConditionExpression:       aws.String(condition),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	return mapError(err)
}

// Update applies an update expression to an item, optionally guarded by a
// condition. Condition failure maps to ErrPreconditionFailed.
func (s *Store) Update(ctx context.Context, pk, sk string, update expression.UpdateBuilder, cond *expression.ConditionBuilder) error {
	builder := expression.NewBuilder().WithUpdate(update)
	if cond != nil {
		builder = builder.WithCondition(*cond)
	}
	expr, err := builder.Build()
	if err != nil {
		return fmt.Errorf("building update expression: %w", err)
	}

	_, err = s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.table),
		Key:                       Key(pk, sk),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	return mapError(err)
}

// QueryPrefix returns every item in a partition whose sort key starts with
// prefix, following pagination. An empty prefix selects the whole partition;
// a non-nil filter is applied server-side after the key condition.
func (s *Store) QueryPrefix(ctx context.Context, pk, prefix string, filter *expression.ConditionBuilder) ([]map[string]types.AttributeValue, error) {
	keyCond := expression.Key(schema.AttrPK).Equal(expression.Value(pk))
	if prefix != "" {
		keyCond = keyCond.And(expression.Key(schema.AttrSK).BeginsWith(prefix))
	}
	builder := expression.NewBuilder().WithKeyCondition(keyCond)
	if filter != nil {
		builder = builder.WithFilter(*filter)
	}
	expr, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("building query expression: %w", err)
	}

	var items []map[string]types.AttributeValue
	var lastKey map[string]types.AttributeValue
	for {
		result, err := s.client.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(s.table),
			KeyConditionExpression:    expr.KeyCondition(),
			FilterExpression:          expr.Filter(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         lastKey,
		})
		if err != nil {
			return nil, mapError(err)
		}
		items = append(items, result.Items...)
		if result.LastEvaluatedKey == nil {
			return items, nil
		}
		lastKey = result.LastEvaluatedKey
	}
}

// ScanFilter scans the whole table and returns items matching the filter,
// following pagination. Reads the full table; reserve for maintenance paths.
func (s *Store) ScanFilter(ctx context.Context, filter expression.ConditionBuilder) ([]map[string]types.AttributeValue, error) {
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, fmt.Errorf("building scan expression: %w", err)
	}

	var items []map[string]types.AttributeValue
	var lastKey map[string]types.AttributeValue
	for {
		result, err := s.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(s.table),
			FilterExpression:          expr.Filter(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         lastKey,
		})
		if err != nil {
			return nil, mapError(err)
		}
		items = append(items, result.Items...)
		if result.LastEvaluatedKey == nil {
			return items, nil
		}
		lastKey = result.LastEvaluatedKey
	}
}

// TransactWrite executes legs as a single all-or-nothing transaction.
// Cancellation surfaces as *TransactionCanceledError carrying the per-leg
// cancellation codes in submission order.
func (s *Store) TransactWrite(ctx context.Context, legs ...types.TransactWriteItem) error {
	_, err := s.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: legs,
	})
	if err != nil {
		err = mapError(err)
		s.logger.Debug("transaction failed", zap.Int("legs", len(legs)), zap.Error(err))
		return err
	}
	return nil
}

// PutLeg builds an unconditional put leg for TransactWrite.
func (s *Store) PutLeg(item any) (types.TransactWriteItem, error) {
	return s.PutLegIf(item, "", nil, nil)
}

// PutLegIf builds a put leg guarded by a condition expression. names and
// values may be nil when the expression references neither.
func (s *Store) PutLegIf(item any, condition string, names map[string]string, values map[string]types.AttributeValue) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return types.TransactWriteItem{}, fmt.Errorf("marshaling item: %w", err)
	}
	put := &types.Put{
		TableName: aws.String(s.table),
		Item:      av,
	}
	if condition != "" {
		put.ConditionExpression = aws.String(condition)
		put.ExpressionAttributeNames = names
		put.ExpressionAttributeValues = values
	}
	return types.TransactWriteItem{Put: put}, nil
}

// UpdateLeg builds an update leg for TransactWrite. condition may be empty
// for an unguarded update.
func (s *Store) UpdateLeg(pk, sk, updateExpr, condition string, names map[string]string, values map[string]types.AttributeValue) types.TransactWriteItem {
	update := &types.Update{
		TableName:                 aws.String(s.table),
		Key:                       Key(pk, sk),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}
	if condition != "" {
		update.ConditionExpression = aws.String(condition)
	}
	return types.TransactWriteItem{Update: update}
}

// DeleteLeg builds an unconditional delete leg for TransactWrite.
func (s *Store) DeleteLeg(pk, sk string) types.TransactWriteItem {
	return s.DeleteLegIf(pk, sk, "", nil, nil)
}

// DeleteLegIf builds a delete leg guarded by a condition expression.
func (s *Store) DeleteLegIf(pk, sk, condition string, names map[string]string, values map[string]types.AttributeValue) types.TransactWriteItem {
	del := &types.Delete{
		TableName: aws.String(s.table),
		Key:       Key(pk, sk),
	}
	if condition != "" {
		del.ConditionExpression = aws.String(condition)
		del.ExpressionAttributeNames = names
		del.ExpressionAttributeValues = values
	}
	return types.TransactWriteItem{Delete: del}
}
