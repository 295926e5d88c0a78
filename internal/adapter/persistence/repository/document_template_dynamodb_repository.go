package repository

import (
	"context"
	"sort"

	"odonto_docs/internal/domain/entities"
	"odonto_docs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DocumentTemplateDynamoRepository persists generic document templates.
//
// Table requirements:
//   - PK: id (string)
type DocumentTemplateDynamoRepository struct {
	table dynamoTable
}

var _ interfaces.IDocumentTemplateRepository = (*DocumentTemplateDynamoRepository)(nil)

func NewDocumentTemplateDynamoRepository(ddb DynamoDBAPI, tableName string) *DocumentTemplateDynamoRepository {
	return &DocumentTemplateDynamoRepository{table: dynamoTable{ddb: ddb, name: tableName}}
}

func (r *DocumentTemplateDynamoRepository) Create(ctx context.Context, t entities.DocumentTemplate) (entities.DocumentTemplate, error) {
	av, err := marshalItem(t)
	if err != nil {
		return entities.DocumentTemplate{}, err
	}
	if err := r.table.create(ctx, av); err != nil {
		return entities.DocumentTemplate{}, err
	}
	return t, nil
}

func (r *DocumentTemplateDynamoRepository) GetByID(ctx context.Context, id string) (entities.DocumentTemplate, error) {
	var t entities.DocumentTemplate
	if _, err := r.table.get(ctx, id, &t); err != nil {
		return entities.DocumentTemplate{}, err
	}
	return t, nil
}

func (r *DocumentTemplateDynamoRepository) List(ctx context.Context, category entities.DocumentCategory) ([]entities.DocumentTemplate, error) {
	var f filter
	if category != "" {
		f.and("#category = :category", map[string]string{"#category": "category"}, map[string]types.AttributeValue{
			":category": &types.AttributeValueMemberS{Value: string(category)},
		})
	}
	raw, err := r.table.scan(ctx, f)
	if err != nil {
		return nil, err
	}
	out, err := decodeAll[entities.DocumentTemplate](raw)
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Update returns a zero-value template when the id does not exist.
func (r *DocumentTemplateDynamoRepository) Update(ctx context.Context, t entities.DocumentTemplate) (entities.DocumentTemplate, error) {
	av, err := marshalItem(t)
	if err != nil {
		return entities.DocumentTemplate{}, err
	}
	if err := r.table.replace(ctx, av); err != nil {
		if err == errConditionFailed {
			return entities.DocumentTemplate{}, nil
		}
		return entities.DocumentTemplate{}, err
	}
	return t, nil
}

func (r *DocumentTemplateDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}
