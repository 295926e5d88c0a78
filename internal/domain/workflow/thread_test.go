package workflow

import (
	"testing"
	"time"

	"odonto_docs/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostMessage_PreservesArrivalOrder(t *testing.T) {
	p := &entities.Prosthesis{}
	now := time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)

	_, err := PostMessage(p, "m1", "¿Color A2 confirmado?", entities.SenderKindClinica, "dr-1", now)
	require.NoError(t, err)
	_, err = PostMessage(p, "m2", "Confirmado, entrega el viernes", entities.SenderKindLaboratorio, "lab-7", now)
	require.NoError(t, err)

	require.Len(t, p.NotasComunicacion, 2)
	assert.Equal(t, entities.SenderKindClinica, p.NotasComunicacion[0].SenderKind)
	assert.Equal(t, entities.SenderKindLaboratorio, p.NotasComunicacion[1].SenderKind)
	assert.Equal(t, "m1", p.NotasComunicacion[0].ID)
}

func TestPostMessage_Validation(t *testing.T) {
	p := &entities.Prosthesis{}
	now := time.Now()

	_, err := PostMessage(p, "m1", "   ", entities.SenderKindClinica, "dr-1", now)
	assert.ErrorIs(t, err, ErrEmptyMessage)
	_, err = PostMessage(p, "m1", "hola", "paciente", "dr-1", now)
	assert.ErrorIs(t, err, ErrInvalidSenderKind)
	_, err = PostMessage(p, "m1", "hola", entities.SenderKindClinica, "", now)
	assert.ErrorIs(t, err, ErrMissingActor)
	assert.Empty(t, p.NotasComunicacion)
}
