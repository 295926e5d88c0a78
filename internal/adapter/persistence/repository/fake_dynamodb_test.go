package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamoDB is an in-memory table understanding the expression shapes the
// repositories build: attribute_(not_)exists(#id) and "#a = :b" terms joined by AND.
type fakeDynamoDB struct {
	mu    sync.Mutex
	items map[string]map[string]types.AttributeValue
	order []string
}

func newFakeDynamoDB() *fakeDynamoDB {
	return &fakeDynamoDB{items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamoDB) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := in.Item["id"].(*types.AttributeValueMemberS).Value
	existing, exists := f.items[id]
	if in.ConditionExpression != nil && !evalCondition(*in.ConditionExpression, existing, exists, in.ExpressionAttributeNames, in.ExpressionAttributeValues) {
		return nil, &types.ConditionalCheckFailedException{Message: strPtr("conditional check failed")}
	}
	if !exists {
		f.order = append(f.order, id)
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamoDB) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := in.Key["id"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[id]}, nil
}

func (f *fakeDynamoDB) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := in.Key["id"].(*types.AttributeValueMemberS).Value
	delete(f.items, id)
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamoDB) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := &dynamodb.ScanOutput{}
	for _, id := range f.order {
		item, ok := f.items[id]
		if !ok {
			continue
		}
		if in.FilterExpression != nil && !evalCondition(*in.FilterExpression, item, true, in.ExpressionAttributeNames, in.ExpressionAttributeValues) {
			continue
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}

func (f *fakeDynamoDB) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := &dynamodb.QueryOutput{}
	for _, id := range f.order {
		item, ok := f.items[id]
		if !ok {
			continue
		}
		if !evalCondition(*in.KeyConditionExpression, item, true, in.ExpressionAttributeNames, in.ExpressionAttributeValues) {
			continue
		}
		if in.FilterExpression != nil && !evalCondition(*in.FilterExpression, item, true, in.ExpressionAttributeNames, in.ExpressionAttributeValues) {
			continue
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}

func evalCondition(expr string, item map[string]types.AttributeValue, exists bool, names map[string]string, values map[string]types.AttributeValue) bool {
	for _, term := range strings.Split(expr, " AND ") {
		term = strings.TrimSpace(term)
		switch {
		case strings.HasPrefix(term, "attribute_not_exists("):
			if exists {
				return false
			}
		case strings.HasPrefix(term, "attribute_exists("):
			if !exists {
				return false
			}
		default:
			parts := strings.SplitN(term, " = ", 2)
			if len(parts) != 2 || !exists {
				return false
			}
			if !sameValue(item[names[parts[0]]], values[parts[1]]) {
				return false
			}
		}
	}
	return true
}

func sameValue(a, b types.AttributeValue) bool {
	switch av := a.(type) {
	case *types.AttributeValueMemberS:
		bv, ok := b.(*types.AttributeValueMemberS)
		return ok && av.Value == bv.Value
	case *types.AttributeValueMemberN:
		bv, ok := b.(*types.AttributeValueMemberN)
		return ok && av.Value == bv.Value
	case *types.AttributeValueMemberBOOL:
		bv, ok := b.(*types.AttributeValueMemberBOOL)
		return ok && av.Value == bv.Value
	}
	return false
}

func strPtr(s string) *string { return &s }
