package usecase

import (
	"context"
	"errors"
	"testing"

	"odonto_docs/internal/domain/entities"
	mock_interfaces "odonto_docs/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func storedLabOrder(status entities.LabOrderStatus) *entities.LabOrder {
	o := &entities.LabOrder{WorkType: "corona", Priority: entities.LabOrderPriorityNormal}
	o.ID = "lo-1"
	o.Subject.Patient = entities.Reference{ID: "pac-1"}
	o.CurrentState = status
	o.History = []entities.StateTransitionRecord[entities.LabOrderStatus]{{State: status, OccurredAt: fixedNow, ActorID: "u-0"}}
	return o
}

func echoLabOrder(_ context.Context, o *entities.LabOrder) (*entities.LabOrder, error) {
	return o, nil
}

func TestLabOrderUseCase_Create(t *testing.T) {
	base := LabOrderCommand{
		Subject:  entities.SubjectRefs{Patient: entities.Reference{ID: "pac-1"}},
		WorkType: "corona",
	}

	t.Run("missing work type", func(t *testing.T) {
		uc := NewLabOrderUseCase(nil, testDeps(nil, nil))
		cmd := base
		cmd.WorkType = " "
		_, err := uc.Create(context.Background(), "u-1", cmd)
		if !errors.Is(err, ErrInvalidOrderPayload) {
			t.Fatalf("expected ErrInvalidOrderPayload, got %v", err)
		}
	})

	t.Run("unknown priority", func(t *testing.T) {
		uc := NewLabOrderUseCase(nil, testDeps(nil, nil))
		cmd := base
		cmd.Priority = "alta"
		_, err := uc.Create(context.Background(), "u-1", cmd)
		if !errors.Is(err, ErrInvalidOrderPayload) {
			t.Fatalf("expected ErrInvalidOrderPayload, got %v", err)
		}
	})

	t.Run("unknown initial status", func(t *testing.T) {
		uc := NewLabOrderUseCase(nil, testDeps(nil, nil))
		cmd := base
		cmd.InitialStatus = "Archivada"
		_, err := uc.Create(context.Background(), "u-1", cmd)
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("defaults to Borrador and normal priority", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository[*entities.LabOrder](ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoLabOrder)

		uc := NewLabOrderUseCase(repo, testDeps(nil, nil))
		o, err := uc.Create(context.Background(), "u-1", base)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.CurrentState != entities.LabOrderStatusBorrador || o.Priority != entities.LabOrderPriorityNormal {
			t.Fatalf("unexpected order: %+v", o)
		}
	})

	t.Run("explicit initial status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository[*entities.LabOrder](ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoLabOrder)

		uc := NewLabOrderUseCase(repo, testDeps(nil, nil))
		cmd := base
		cmd.InitialStatus = "enviada"
		o, err := uc.Create(context.Background(), "u-1", cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.CurrentState != entities.LabOrderStatusEnviada {
			t.Fatalf("unexpected status: %s", o.CurrentState)
		}
	})
}

func TestLabOrderUseCase_ChangeStatus_Permissive(t *testing.T) {
	cases := []struct {
		name string
		from entities.LabOrderStatus
		to   entities.LabOrderStatus
	}{
		{"backwards", entities.LabOrderStatusCompletada, entities.LabOrderStatusBorrador},
		{"skip ahead", entities.LabOrderStatusBorrador, entities.LabOrderStatusCompletada},
		{"self", entities.LabOrderStatusEnProceso, entities.LabOrderStatusEnProceso},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIWorkOrderRepository[*entities.LabOrder](ctrl)
			repo.EXPECT().GetByID(gomock.Any(), "lo-1").Return(storedLabOrder(tc.from), nil)
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoLabOrder)

			uc := NewLabOrderUseCase(repo, testDeps(nil, nil))
			o, err := uc.ChangeStatus(context.Background(), "lo-1", string(tc.to), "u-1", "")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if o.CurrentState != tc.to || len(o.History) != 2 {
				t.Fatalf("unexpected state=%s history=%d", o.CurrentState, len(o.History))
			}
			if last, _ := o.LastTransition(); last.State != tc.to {
				t.Fatalf("history tail %s != current %s", last.State, tc.to)
			}
		})
	}
}

func TestLabOrderUseCase_ChangeStatus_LeavingCompletionClearsStamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIWorkOrderRepository[*entities.LabOrder](ctrl)

	stored := storedLabOrder(entities.LabOrderStatusCompletada)
	done := fixedNow
	stored.ActualCompletionAt = &done
	repo.EXPECT().GetByID(gomock.Any(), "lo-1").Return(stored, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoLabOrder)

	uc := NewLabOrderUseCase(repo, testDeps(nil, nil))
	o, err := uc.ChangeStatus(context.Background(), "lo-1", string(entities.LabOrderStatusEnProceso), "u-1", "reabierta")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.ActualCompletionAt != nil {
		t.Fatalf("expected completion stamp cleared, got %v", o.ActualCompletionAt)
	}
}

func TestLabOrderUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository[*entities.LabOrder](ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "lo-9").Return(nil, nil)

		uc := NewLabOrderUseCase(repo, testDeps(nil, nil))
		if err := uc.Delete(context.Background(), "lo-9", "u-1"); !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository[*entities.LabOrder](ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "lo-1").Return(storedLabOrder(entities.LabOrderStatusBorrador), nil)
		repo.EXPECT().Delete(gomock.Any(), "lo-1").Return(nil)

		uc := NewLabOrderUseCase(repo, testDeps(nil, nil))
		if err := uc.Delete(context.Background(), "lo-1", "u-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing actor", func(t *testing.T) {
		uc := NewLabOrderUseCase(nil, testDeps(nil, nil))
		if err := uc.Delete(context.Background(), "lo-1", ""); !errors.Is(err, ErrMissingActor) {
			t.Fatalf("expected ErrMissingActor, got %v", err)
		}
	})
}

func TestLabOrderUseCase_List_InvalidStatusFilter(t *testing.T) {
	uc := NewLabOrderUseCase(nil, testDeps(nil, nil))
	_, _, err := uc.List(context.Background(), entities.WorkOrderFilter{Status: "Perdida"})
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}
