package repository

import (
	"context"
	"errors"

	"odonto_docs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDBAPI is the subset of *dynamodb.Client used by the repositories.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

var _ DynamoDBAPI = (*dynamodb.Client)(nil)

// errConditionFailed signals a failed ConditionExpression on put.
var errConditionFailed = errors.New("condition check failed")

// dynamoTable wraps one table whose items are keyed by "id". Entities are stored
// with their json field names so the wire and storage shapes match.
type dynamoTable struct {
	ddb  DynamoDBAPI
	name string
}

// filter is a hand-written FilterExpression with its placeholders.
type filter struct {
	expr   string
	names  map[string]string
	values map[string]types.AttributeValue
}

func (f *filter) and(cond string, names map[string]string, values map[string]types.AttributeValue) {
	if f.expr == "" {
		f.expr = cond
	} else {
		f.expr = f.expr + " AND " + cond
	}
	f.names = mergeNames(f.names, names)
	if f.values == nil {
		f.values = map[string]types.AttributeValue{}
	}
	for k, v := range values {
		f.values[k] = v
	}
}

func marshalItem(v any) (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMapWithOptions(v, func(o *attributevalue.EncoderOptions) {
		o.TagKey = "json"
	})
}

func unmarshalItem(item map[string]types.AttributeValue, out any) error {
	return attributevalue.UnmarshalMapWithOptions(item, out, func(o *attributevalue.DecoderOptions) {
		o.TagKey = "json"
	})
}

func decodeAll[T any](items []map[string]types.AttributeValue) ([]T, error) {
	out := make([]T, 0, len(items))
	for _, raw := range items {
		var v T
		if err := unmarshalItem(raw, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

// put writes the item. cond, when set, must hold or errConditionFailed is returned.
func (t dynamoTable) put(ctx context.Context, item map[string]types.AttributeValue, cond *filter) error {
	in := &dynamodb.PutItemInput{
		TableName: aws.String(t.name),
		Item:      item,
	}
	if cond != nil && cond.expr != "" {
		in.ConditionExpression = aws.String(cond.expr)
		in.ExpressionAttributeNames = cond.names
		if len(cond.values) > 0 {
			in.ExpressionAttributeValues = cond.values
		}
	}

	_, err := t.ddb.PutItem(ctx, in)
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return errConditionFailed
		}
		return err
	}
	return nil
}

// create fails with errConditionFailed when the id is already taken.
func (t dynamoTable) create(ctx context.Context, item map[string]types.AttributeValue) error {
	return t.put(ctx, item, &filter{
		expr:  "attribute_not_exists(#id)",
		names: map[string]string{"#id": "id"},
	})
}

// replace fails with errConditionFailed when the id does not exist.
func (t dynamoTable) replace(ctx context.Context, item map[string]types.AttributeValue) error {
	return t.put(ctx, item, &filter{
		expr:  "attribute_exists(#id)",
		names: map[string]string{"#id": "id"},
	})
}

// replaceVersioned writes item only when the stored version equals expected.
func (t dynamoTable) replaceVersioned(ctx context.Context, item map[string]types.AttributeValue, expected int64) error {
	return t.put(ctx, item, &filter{
		expr:  "attribute_exists(#id) AND #version = :expected",
		names: map[string]string{"#id": "id", "#version": "version"},
		values: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: formatInt(expected)},
		},
	})
}

// staleOrMissing resolves a failed versioned write: a zero result and nil error
// when the id is gone, interfaces.ErrVersionConflict when the stored copy moved on.
func (t dynamoTable) staleOrMissing(ctx context.Context, id string) error {
	res, err := t.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:            aws.String(t.name),
		Key:                  idKey(id),
		ConsistentRead:       aws.Bool(true),
		ProjectionExpression: aws.String("#id"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return err
	}
	if len(res.Item) == 0 {
		return nil
	}
	return interfaces.ErrVersionConflict
}

// get returns false when the item does not exist.
func (t dynamoTable) get(ctx context.Context, id string, out any) (bool, error) {
	res, err := t.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(t.name),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	return true, unmarshalItem(res.Item, out)
}

func (t dynamoTable) delete(ctx context.Context, id string) error {
	_, err := t.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(t.name),
		Key:       idKey(id),
	})
	return err
}

// scan reads every page of the table applying f.
func (t dynamoTable) scan(ctx context.Context, f filter) ([]map[string]types.AttributeValue, error) {
	var (
		items []map[string]types.AttributeValue
		start map[string]types.AttributeValue
	)
	for {
		in := &dynamodb.ScanInput{
			TableName:         aws.String(t.name),
			ExclusiveStartKey: start,
		}
		if f.expr != "" {
			in.FilterExpression = aws.String(f.expr)
			in.ExpressionAttributeNames = f.names
			in.ExpressionAttributeValues = f.values
		}
		out, err := t.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		start = out.LastEvaluatedKey
	}
}

// queryIndex reads every page of a single-key GSI lookup applying f.
func (t dynamoTable) queryIndex(ctx context.Context, index, attr, value string, f filter) ([]map[string]types.AttributeValue, error) {
	key := filter{}
	key.and("#k = :k", map[string]string{"#k": attr}, map[string]types.AttributeValue{
		":k": &types.AttributeValueMemberS{Value: value},
	})

	var (
		items []map[string]types.AttributeValue
		start map[string]types.AttributeValue
	)
	for {
		in := &dynamodb.QueryInput{
			TableName:                 aws.String(t.name),
			IndexName:                 aws.String(index),
			KeyConditionExpression:    aws.String(key.expr),
			ExpressionAttributeNames:  mergeNames(key.names, f.names),
			ExpressionAttributeValues: key.values,
			ExclusiveStartKey:         start,
		}
		if f.expr != "" {
			in.FilterExpression = aws.String(f.expr)
			for k, v := range f.values {
				in.ExpressionAttributeValues[k] = v
			}
		}
		out, err := t.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		start = out.LastEvaluatedKey
	}
}
