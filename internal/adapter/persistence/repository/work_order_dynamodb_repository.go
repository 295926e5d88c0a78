package repository

import (
	"context"
	"time"

	"odonto_docs/internal/domain/entities"
	"odonto_docs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const patientIDIndex = "patient_id-index"

// workOrderRecord is satisfied by *LabOrder, *Prosthesis and *FabricationOrder
// through their embedded entities.WorkOrder.
type workOrderRecord[E any] interface {
	*E
	RecordID() string
	RecordVersion() int64
	SetRecordVersion(v int64)
	CreatedTime() time.Time
	IndexKeys() map[string]string
}

// WorkOrderDynamoRepository persists one work order kind in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: patient_id-index (PK: patient_id)
//
// The whole aggregate (history, attachments, thread) lives in a single item, and
// writes are guarded by the version attribute.
type WorkOrderDynamoRepository[E any, P workOrderRecord[E]] struct {
	table dynamoTable
}

func NewWorkOrderDynamoRepository[E any, P workOrderRecord[E]](ddb DynamoDBAPI, tableName string) *WorkOrderDynamoRepository[E, P] {
	return &WorkOrderDynamoRepository[E, P]{table: dynamoTable{ddb: ddb, name: tableName}}
}

func NewLabOrderDynamoRepository(ddb DynamoDBAPI, tableName string) interfaces.ILabOrderRepository {
	return NewWorkOrderDynamoRepository[entities.LabOrder](ddb, tableName)
}

func NewProsthesisDynamoRepository(ddb DynamoDBAPI, tableName string) interfaces.IProsthesisRepository {
	return NewWorkOrderDynamoRepository[entities.Prosthesis](ddb, tableName)
}

func NewFabricationOrderDynamoRepository(ddb DynamoDBAPI, tableName string) interfaces.IFabricationOrderRepository {
	return NewWorkOrderDynamoRepository[entities.FabricationOrder](ddb, tableName)
}

func (r *WorkOrderDynamoRepository[E, P]) toItem(order P) (map[string]types.AttributeValue, error) {
	av, err := marshalItem(order)
	if err != nil {
		return nil, err
	}
	for k, v := range order.IndexKeys() {
		if v != "" {
			av[k] = &types.AttributeValueMemberS{Value: v}
		}
	}
	return av, nil
}

func (r *WorkOrderDynamoRepository[E, P]) Create(ctx context.Context, order P) (P, error) {
	order.SetRecordVersion(1)
	av, err := r.toItem(order)
	if err != nil {
		return nil, err
	}
	if err := r.table.create(ctx, av); err != nil {
		if err == errConditionFailed {
			return nil, interfaces.ErrVersionConflict
		}
		return nil, err
	}
	return order, nil
}

func (r *WorkOrderDynamoRepository[E, P]) GetByID(ctx context.Context, id string) (P, error) {
	var e E
	found, err := r.table.get(ctx, id, &e)
	if err != nil || !found {
		return nil, err
	}
	return P(&e), nil
}

func (r *WorkOrderDynamoRepository[E, P]) Update(ctx context.Context, order P) (P, error) {
	expected := order.RecordVersion()
	order.SetRecordVersion(expected + 1)

	av, err := r.toItem(order)
	if err != nil {
		order.SetRecordVersion(expected)
		return nil, err
	}
	if err := r.table.replaceVersioned(ctx, av, expected); err != nil {
		order.SetRecordVersion(expected)
		if err == errConditionFailed {
			return nil, interfaces.ErrVersionConflict
		}
		return nil, err
	}
	return order, nil
}

func (r *WorkOrderDynamoRepository[E, P]) List(ctx context.Context, f entities.WorkOrderFilter) ([]P, int, error) {
	var cond filter
	if f.LabID != "" {
		cond.and("#lab_id = :lab_id", map[string]string{"#lab_id": "lab_id"}, map[string]types.AttributeValue{
			":lab_id": &types.AttributeValueMemberS{Value: f.LabID},
		})
	}
	if f.Status != "" {
		cond.and("#current_state = :status", map[string]string{"#current_state": "current_state"}, map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: f.Status},
		})
	}

	var (
		raw []map[string]types.AttributeValue
		err error
	)
	if f.PatientID != "" {
		raw, err = r.table.queryIndex(ctx, patientIDIndex, "patient_id", f.PatientID, cond)
	} else {
		raw, err = r.table.scan(ctx, cond)
	}
	if err != nil {
		return nil, 0, err
	}

	decoded, err := decodeAll[E](raw)
	if err != nil {
		return nil, 0, err
	}
	orders := make([]P, 0, len(decoded))
	for i := range decoded {
		orders = append(orders, P(&decoded[i]))
	}

	page, total := paginate(orders, func(o P) time.Time { return o.CreatedTime() }, f.Page, f.Limit)
	return page, total, nil
}

func (r *WorkOrderDynamoRepository[E, P]) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}
