package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"odonto_docs/internal/domain/entities"
	"odonto_docs/internal/usecase/interfaces"
	mock_interfaces "odonto_docs/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func activeTemplate() entities.ConsentTemplate {
	return entities.ConsentTemplate{
		ID:      "tpl-1",
		Name:    "Extracción",
		Body:    "Yo, {{paciente.nombre}}, autorizo a {{profesional.nombre}} el {{fecha.hoy}}. Piezas: {{tratamiento.piezas}}",
		Version: 2,
		Active:  true,
	}
}

func TestConsentUseCase_Generate(t *testing.T) {
	cmd := GenerateConsentCommand{
		TemplateID:   "tpl-1",
		Patient:      entities.Reference{ID: "pac-1", Name: "Ana Pérez"},
		Professional: entities.Reference{ID: "pro-1", Name: "Dr. Ruiz"},
		Values:       map[string]string{"tratamiento.piezas": "36"},
	}

	t.Run("missing actor", func(t *testing.T) {
		uc := NewConsentUseCase(nil, nil, testDeps(nil, nil))
		if _, err := uc.Generate(context.Background(), "", cmd); !errors.Is(err, ErrMissingActor) {
			t.Fatalf("expected ErrMissingActor, got %v", err)
		}
	})

	t.Run("template not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		templates := mock_interfaces.NewMockIConsentTemplateRepository(ctrl)
		templates.EXPECT().GetByID(gomock.Any(), "tpl-1").Return(entities.ConsentTemplate{}, nil)

		uc := NewConsentUseCase(templates, nil, testDeps(nil, nil))
		if _, err := uc.Generate(context.Background(), "u-1", cmd); !errors.Is(err, ErrConsentTemplateNotFound) {
			t.Fatalf("expected ErrConsentTemplateNotFound, got %v", err)
		}
	})

	t.Run("inactive template", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		templates := mock_interfaces.NewMockIConsentTemplateRepository(ctrl)
		tpl := activeTemplate()
		tpl.Active = false
		templates.EXPECT().GetByID(gomock.Any(), "tpl-1").Return(tpl, nil)

		uc := NewConsentUseCase(templates, nil, testDeps(nil, nil))
		if _, err := uc.Generate(context.Background(), "u-1", cmd); !errors.Is(err, ErrTemplateInactive) {
			t.Fatalf("expected ErrTemplateInactive, got %v", err)
		}
	})

	t.Run("missing placeholder value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		templates := mock_interfaces.NewMockIConsentTemplateRepository(ctrl)
		templates.EXPECT().GetByID(gomock.Any(), "tpl-1").Return(activeTemplate(), nil)

		uc := NewConsentUseCase(templates, nil, testDeps(nil, nil))
		c := cmd
		c.Values = nil
		_, err := uc.Generate(context.Background(), "u-1", c)
		var missing *MissingPlaceholdersError
		if !errors.As(err, &missing) || len(missing.Keys) != 1 || missing.Keys[0] != "tratamiento.piezas" {
			t.Fatalf("expected missing tratamiento.piezas, got %v", err)
		}
		if !errors.Is(err, ErrInvalidConsentPayload) {
			t.Fatalf("expected ErrInvalidConsentPayload, got %v", err)
		}
	})

	t.Run("renders and stores pending document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		templates := mock_interfaces.NewMockIConsentTemplateRepository(ctrl)
		consents := mock_interfaces.NewMockIConsentRepository(ctrl)
		templates.EXPECT().GetByID(gomock.Any(), "tpl-1").Return(activeTemplate(), nil)
		consents.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d entities.ConsentDocument) (entities.ConsentDocument, error) {
			return d, nil
		})

		uc := NewConsentUseCase(templates, consents, testDeps(nil, nil))
		d, err := uc.Generate(context.Background(), "u-1", cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "Yo, Ana Pérez, autorizo a Dr. Ruiz el 04/05/2026. Piezas: 36"
		if d.Content != want {
			t.Fatalf("unexpected content:\n got %q\nwant %q", d.Content, want)
		}
		if d.Status != entities.ConsentStatusPendiente || d.TemplateVersion != 2 || d.CreatedBy != "u-1" {
			t.Fatalf("unexpected document: %+v", d)
		}
	})
}

func pendingConsent() entities.ConsentDocument {
	return entities.ConsentDocument{ID: "c-1", Status: entities.ConsentStatusPendiente, Patient: entities.Reference{ID: "pac-1"}}
}

func TestConsentUseCase_Sign(t *testing.T) {
	sign := SignConsentCommand{SignerName: "Ana Pérez", Image: []byte{0x89, 'P', 'N', 'G'}}

	t.Run("invalid signature", func(t *testing.T) {
		uc := NewConsentUseCase(nil, nil, testDeps(nil, nil))
		if _, err := uc.Sign(context.Background(), "c-1", "u-1", SignConsentCommand{SignerName: "Ana"}); !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("already signed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		consents := mock_interfaces.NewMockIConsentRepository(ctrl)
		storage := mock_interfaces.NewMockIFileStorage(ctrl)
		d := pendingConsent()
		d.Status = entities.ConsentStatusFirmado
		consents.EXPECT().GetByID(gomock.Any(), "c-1").Return(d, nil)

		uc := NewConsentUseCase(nil, consents, testDeps(storage, nil))
		if _, err := uc.Sign(context.Background(), "c-1", "u-1", sign); !errors.Is(err, ErrConsentAlreadySigned) {
			t.Fatalf("expected ErrConsentAlreadySigned, got %v", err)
		}
	})

	t.Run("stores signature and marks signed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		consents := mock_interfaces.NewMockIConsentRepository(ctrl)
		storage := mock_interfaces.NewMockIFileStorage(ctrl)
		consents.EXPECT().GetByID(gomock.Any(), "c-1").Return(pendingConsent(), nil)
		storage.EXPECT().Upload(gomock.Any(), gomock.Any(), "image/png", int64(4), gomock.Any()).
			DoAndReturn(func(_ context.Context, key, _ string, _ int64, _ io.Reader) (string, error) {
				if !strings.HasPrefix(key, "consentimientos/c-1/firma-") {
					t.Fatalf("unexpected key: %s", key)
				}
				return "https://bucket/" + key, nil
			})
		consents.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d entities.ConsentDocument) (entities.ConsentDocument, error) {
			return d, nil
		})

		uc := NewConsentUseCase(nil, consents, testDeps(storage, nil))
		d, err := uc.Sign(context.Background(), "c-1", "u-1", sign)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Status != entities.ConsentStatusFirmado || d.Signature == nil {
			t.Fatalf("unexpected document: %+v", d)
		}
		if d.Signature.SignerID != "u-1" || !d.Signature.SignedAt.Equal(fixedNow) {
			t.Fatalf("unexpected signature: %+v", d.Signature)
		}
	})

	failedWrites := map[string]struct {
		update  func(context.Context, entities.ConsentDocument) (entities.ConsentDocument, error)
		wantErr error
	}{
		"concurrent signer wins": {
			update: func(context.Context, entities.ConsentDocument) (entities.ConsentDocument, error) {
				return entities.ConsentDocument{}, interfaces.ErrVersionConflict
			},
			wantErr: ErrConcurrentUpdate,
		},
		"document deleted meanwhile": {
			update: func(context.Context, entities.ConsentDocument) (entities.ConsentDocument, error) {
				return entities.ConsentDocument{}, nil
			},
			wantErr: ErrConsentNotFound,
		},
	}
	for name, tc := range failedWrites {
		t.Run(name+" discards uploaded image", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			consents := mock_interfaces.NewMockIConsentRepository(ctrl)
			storage := mock_interfaces.NewMockIFileStorage(ctrl)
			var uploaded string
			consents.EXPECT().GetByID(gomock.Any(), "c-1").Return(pendingConsent(), nil)
			storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, key, _ string, _ int64, _ io.Reader) (string, error) {
					uploaded = key
					return "https://bucket/" + key, nil
				})
			consents.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(tc.update)
			storage.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, key string) error {
				if key != uploaded {
					t.Fatalf("deleted %s, uploaded %s", key, uploaded)
				}
				return errors.New("s3 unavailable")
			})

			uc := NewConsentUseCase(nil, consents, testDeps(storage, nil))
			if _, err := uc.Sign(context.Background(), "c-1", "u-1", sign); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestConsentUseCase_Revoke(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	consents := mock_interfaces.NewMockIConsentRepository(ctrl)
	consents.EXPECT().GetByID(gomock.Any(), "c-1").Return(pendingConsent(), nil)
	consents.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d entities.ConsentDocument) (entities.ConsentDocument, error) {
		return d, nil
	})

	uc := NewConsentUseCase(nil, consents, testDeps(nil, nil))
	d, err := uc.Revoke(context.Background(), "c-1", "u-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Status != entities.ConsentStatusRevocado || d.RevokedAt == nil {
		t.Fatalf("unexpected document: %+v", d)
	}
}

func TestConsentUseCase_CreateTemplate_UnknownPlaceholder(t *testing.T) {
	uc := NewConsentUseCase(nil, nil, testDeps(nil, nil))
	_, err := uc.CreateTemplate(context.Background(), "u-1", ConsentTemplateCommand{Name: "X", Body: "Hola {{paciente.apodo}}"})
	var unknown *UnknownPlaceholdersError
	if !errors.As(err, &unknown) || unknown.Keys[0] != "paciente.apodo" {
		t.Fatalf("expected unknown placeholder error, got %v", err)
	}
}
