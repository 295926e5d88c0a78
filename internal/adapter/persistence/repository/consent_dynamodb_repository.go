package repository

import (
	"context"
	"sort"

	"odonto_docs/internal/domain/entities"
	"odonto_docs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ConsentTemplateDynamoRepository persists consent templates.
//
// Table requirements:
//   - PK: id (string)
type ConsentTemplateDynamoRepository struct {
	table dynamoTable
}

var _ interfaces.IConsentTemplateRepository = (*ConsentTemplateDynamoRepository)(nil)

func NewConsentTemplateDynamoRepository(ddb DynamoDBAPI, tableName string) *ConsentTemplateDynamoRepository {
	return &ConsentTemplateDynamoRepository{table: dynamoTable{ddb: ddb, name: tableName}}
}

func (r *ConsentTemplateDynamoRepository) Create(ctx context.Context, t entities.ConsentTemplate) (entities.ConsentTemplate, error) {
	av, err := marshalItem(t)
	if err != nil {
		return entities.ConsentTemplate{}, err
	}
	if err := r.table.create(ctx, av); err != nil {
		return entities.ConsentTemplate{}, err
	}
	return t, nil
}

func (r *ConsentTemplateDynamoRepository) GetByID(ctx context.Context, id string) (entities.ConsentTemplate, error) {
	var t entities.ConsentTemplate
	if _, err := r.table.get(ctx, id, &t); err != nil {
		return entities.ConsentTemplate{}, err
	}
	return t, nil
}

func (r *ConsentTemplateDynamoRepository) List(ctx context.Context, activeOnly bool) ([]entities.ConsentTemplate, error) {
	var f filter
	if activeOnly {
		f.and("#active = :active", map[string]string{"#active": "active"}, map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberBOOL{Value: true},
		})
	}
	raw, err := r.table.scan(ctx, f)
	if err != nil {
		return nil, err
	}
	out, err := decodeAll[entities.ConsentTemplate](raw)
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ConsentDocumentDynamoRepository persists generated consent documents.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: patient_id-index (PK: patient_id)
type ConsentDocumentDynamoRepository struct {
	table dynamoTable
}

var _ interfaces.IConsentRepository = (*ConsentDocumentDynamoRepository)(nil)

func NewConsentDocumentDynamoRepository(ddb DynamoDBAPI, tableName string) *ConsentDocumentDynamoRepository {
	return &ConsentDocumentDynamoRepository{table: dynamoTable{ddb: ddb, name: tableName}}
}

func consentItem(d entities.ConsentDocument) (map[string]types.AttributeValue, error) {
	av, err := marshalItem(d)
	if err != nil {
		return nil, err
	}
	av["patient_id"] = &types.AttributeValueMemberS{Value: d.Patient.ID}
	return av, nil
}

func (r *ConsentDocumentDynamoRepository) Create(ctx context.Context, d entities.ConsentDocument) (entities.ConsentDocument, error) {
	d.Version = 1
	av, err := consentItem(d)
	if err != nil {
		return entities.ConsentDocument{}, err
	}
	if err := r.table.create(ctx, av); err != nil {
		return entities.ConsentDocument{}, err
	}
	return d, nil
}

func (r *ConsentDocumentDynamoRepository) GetByID(ctx context.Context, id string) (entities.ConsentDocument, error) {
	var d entities.ConsentDocument
	if _, err := r.table.get(ctx, id, &d); err != nil {
		return entities.ConsentDocument{}, err
	}
	return d, nil
}

func (r *ConsentDocumentDynamoRepository) ListByPatientID(ctx context.Context, patientID string) ([]entities.ConsentDocument, error) {
	raw, err := r.table.queryIndex(ctx, patientIDIndex, "patient_id", patientID, filter{})
	if err != nil {
		return nil, err
	}
	out, err := decodeAll[entities.ConsentDocument](raw)
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Update writes d when the stored version equals d.Version. It returns a
// zero-value document when the id does not exist and ErrVersionConflict when the
// stored copy is newer.
func (r *ConsentDocumentDynamoRepository) Update(ctx context.Context, d entities.ConsentDocument) (entities.ConsentDocument, error) {
	expected := d.Version
	d.Version = expected + 1
	av, err := consentItem(d)
	if err != nil {
		return entities.ConsentDocument{}, err
	}
	if err := r.table.replaceVersioned(ctx, av, expected); err != nil {
		if err == errConditionFailed {
			return entities.ConsentDocument{}, r.table.staleOrMissing(ctx, d.ID)
		}
		return entities.ConsentDocument{}, err
	}
	return d, nil
}
