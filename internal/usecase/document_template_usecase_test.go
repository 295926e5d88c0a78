package usecase

import (
	"context"
	"errors"
	"testing"

	"odonto_docs/internal/domain/entities"
	mock_interfaces "odonto_docs/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDocumentTemplateUseCase_Create(t *testing.T) {
	t.Run("invalid category", func(t *testing.T) {
		uc := NewDocumentTemplateUseCase(nil, testDeps(nil, nil))
		_, err := uc.Create(context.Background(), "u-1", DocumentTemplateCommand{Name: "Receta", Category: "factura", Content: "x"})
		if !errors.Is(err, ErrInvalidTemplatePayload) {
			t.Fatalf("expected ErrInvalidTemplatePayload, got %v", err)
		}
	})

	t.Run("unknown placeholder", func(t *testing.T) {
		uc := NewDocumentTemplateUseCase(nil, testDeps(nil, nil))
		_, err := uc.Create(context.Background(), "u-1", DocumentTemplateCommand{
			Name:     "Receta",
			Category: entities.DocumentCategoryReceta,
			Content:  "{{paciente.nombre}} {{medico.firma}}",
		})
		var unknown *UnknownPlaceholdersError
		if !errors.As(err, &unknown) || len(unknown.Keys) != 1 || unknown.Keys[0] != "medico.firma" {
			t.Fatalf("expected unknown medico.firma, got %v", err)
		}
	})

	t.Run("extracts placeholders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentTemplateRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tpl entities.DocumentTemplate) (entities.DocumentTemplate, error) {
			return tpl, nil
		})

		uc := NewDocumentTemplateUseCase(repo, testDeps(nil, nil))
		tpl, err := uc.Create(context.Background(), "u-1", DocumentTemplateCommand{
			Name:     "Informe",
			Category: entities.DocumentCategoryInforme,
			Content:  "{{paciente.nombre}} atendido por {{profesional.nombre}}; {{paciente.nombre}}",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tpl.Placeholders) != 2 || !tpl.Active || tpl.CreatedBy != "u-1" {
			t.Fatalf("unexpected template: %+v", tpl)
		}
	})
}

func TestDocumentTemplateUseCase_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIDocumentTemplateRepository(ctrl)
	repo.EXPECT().GetByID(gomock.Any(), "dt-1").Return(entities.DocumentTemplate{ID: "dt-1", Active: true, CreatedBy: "u-0"}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tpl entities.DocumentTemplate) (entities.DocumentTemplate, error) {
		return tpl, nil
	})

	inactive := false
	uc := NewDocumentTemplateUseCase(repo, testDeps(nil, nil))
	tpl, err := uc.Update(context.Background(), "dt-1", "u-1", DocumentTemplateCommand{
		Name:     "Presupuesto",
		Category: entities.DocumentCategoryPresupuesto,
		Content:  "Total para {{paciente.nombre}}",
		Active:   &inactive,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tpl.Active || tpl.CreatedBy != "u-0" || tpl.Name != "Presupuesto" {
		t.Fatalf("unexpected template: %+v", tpl)
	}
}

func TestDocumentTemplateUseCase_GetAndList(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentTemplateRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "dt-9").Return(entities.DocumentTemplate{}, nil)

		uc := NewDocumentTemplateUseCase(repo, testDeps(nil, nil))
		if _, err := uc.GetByID(context.Background(), "dt-9"); !errors.Is(err, ErrDocumentTemplateNotFound) {
			t.Fatalf("expected ErrDocumentTemplateNotFound, got %v", err)
		}
	})

	t.Run("category filter is normalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentTemplateRepository(ctrl)
		repo.EXPECT().List(gomock.Any(), entities.DocumentCategoryReceta).Return([]entities.DocumentTemplate{{ID: "dt-1"}}, nil)

		uc := NewDocumentTemplateUseCase(repo, testDeps(nil, nil))
		out, err := uc.List(context.Background(), " Receta ")
		if err != nil || len(out) != 1 {
			t.Fatalf("unexpected result: %v %v", out, err)
		}
	})

	t.Run("placeholders catalogue", func(t *testing.T) {
		uc := NewDocumentTemplateUseCase(nil, testDeps(nil, nil))
		if len(uc.Placeholders()) == 0 {
			t.Fatalf("expected non-empty catalogue")
		}
	})
}
