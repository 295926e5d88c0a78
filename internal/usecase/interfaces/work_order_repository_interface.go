package interfaces

import (
	"context"
	"errors"

	"odonto_docs/internal/domain/entities"
)

// ErrVersionConflict is returned when an update was computed from a stale copy.
var ErrVersionConflict = errors.New("version conflict")

// IWorkOrderRepository abstracts DynamoDB persistence for a work order kind.
//
// GetByID returns a nil order (and nil error) when the id does not exist.
// Update only succeeds when the stored version equals order.RecordVersion(); the
// stored copy then carries the next version.

type IWorkOrderRepository[P any] interface {
	Create(ctx context.Context, order P) (P, error)
	GetByID(ctx context.Context, id string) (P, error)
	Update(ctx context.Context, order P) (P, error)
	List(ctx context.Context, filter entities.WorkOrderFilter) ([]P, int, error)
	Delete(ctx context.Context, id string) error
}

type (
	ILabOrderRepository         = IWorkOrderRepository[*entities.LabOrder]
	IProsthesisRepository       = IWorkOrderRepository[*entities.Prosthesis]
	IFabricationOrderRepository = IWorkOrderRepository[*entities.FabricationOrder]
)
