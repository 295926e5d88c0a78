package repository

import (
	"context"
	"time"

	"odonto_docs/internal/domain/entities"
	"odonto_docs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// LabInvoiceDynamoRepository persists lab invoices.
//
// Table requirements:
//   - PK: id (string)
type LabInvoiceDynamoRepository struct {
	table dynamoTable
}

var _ interfaces.ILabInvoiceRepository = (*LabInvoiceDynamoRepository)(nil)

func NewLabInvoiceDynamoRepository(ddb DynamoDBAPI, tableName string) *LabInvoiceDynamoRepository {
	return &LabInvoiceDynamoRepository{table: dynamoTable{ddb: ddb, name: tableName}}
}

func labInvoiceItem(inv entities.LabInvoice) (map[string]types.AttributeValue, error) {
	av, err := marshalItem(inv)
	if err != nil {
		return nil, err
	}
	av["lab_id"] = &types.AttributeValueMemberS{Value: inv.Lab.ID}
	return av, nil
}

func (r *LabInvoiceDynamoRepository) Create(ctx context.Context, inv entities.LabInvoice) (entities.LabInvoice, error) {
	inv.Version = 1
	av, err := labInvoiceItem(inv)
	if err != nil {
		return entities.LabInvoice{}, err
	}
	if err := r.table.create(ctx, av); err != nil {
		return entities.LabInvoice{}, err
	}
	return inv, nil
}

func (r *LabInvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.LabInvoice, error) {
	var inv entities.LabInvoice
	if _, err := r.table.get(ctx, id, &inv); err != nil {
		return entities.LabInvoice{}, err
	}
	return inv, nil
}

func (r *LabInvoiceDynamoRepository) List(ctx context.Context, f interfaces.LabInvoiceFilter) ([]entities.LabInvoice, int, error) {
	var cond filter
	if f.LabID != "" {
		cond.and("#lab_id = :lab_id", map[string]string{"#lab_id": "lab_id"}, map[string]types.AttributeValue{
			":lab_id": &types.AttributeValueMemberS{Value: f.LabID},
		})
	}
	if f.Status != "" {
		cond.and("#status = :status", map[string]string{"#status": "status"}, map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(f.Status)},
		})
	}
	raw, err := r.table.scan(ctx, cond)
	if err != nil {
		return nil, 0, err
	}
	invoices, err := decodeAll[entities.LabInvoice](raw)
	if err != nil {
		return nil, 0, err
	}
	page, total := paginate(invoices, func(inv entities.LabInvoice) time.Time { return inv.IssuedAt }, f.Page, f.Limit)
	return page, total, nil
}

// Update writes inv when the stored version equals inv.Version. It returns a
// zero-value invoice when the id does not exist and ErrVersionConflict when the
// stored copy is newer.
func (r *LabInvoiceDynamoRepository) Update(ctx context.Context, inv entities.LabInvoice) (entities.LabInvoice, error) {
	expected := inv.Version
	inv.Version = expected + 1
	av, err := labInvoiceItem(inv)
	if err != nil {
		return entities.LabInvoice{}, err
	}
	if err := r.table.replaceVersioned(ctx, av, expected); err != nil {
		if err == errConditionFailed {
			return entities.LabInvoice{}, r.table.staleOrMissing(ctx, inv.ID)
		}
		return entities.LabInvoice{}, err
	}
	return inv, nil
}

func (r *LabInvoiceDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}
