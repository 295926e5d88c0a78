package documents

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAndUnknown(t *testing.T) {
	body := "Yo, {{paciente.nombre}}, autorizo a {{ profesional.nombre }} ... {{paciente.nombre}} {{otro.campo}}"

	assert.Equal(t, []string{"otro.campo", "paciente.nombre", "profesional.nombre"}, Extract(body))
	assert.Equal(t, []string{"otro.campo"}, Unknown(body))
}

func TestRender(t *testing.T) {
	body := "Paciente: {{paciente.nombre}}. Fecha: {{fecha.hoy}}. Piezas: {{tratamiento.piezas}}"

	out, missing := Render(body, map[string]string{
		"paciente.nombre": "Ana Pérez",
		"fecha.hoy":       "14/10/2026",
	})
	assert.Equal(t, "Paciente: Ana Pérez. Fecha: 14/10/2026. Piezas: {{tratamiento.piezas}}", out)
	assert.Equal(t, []string{"tratamiento.piezas"}, missing)
}

func TestCatalogueIsCopy(t *testing.T) {
	c := Catalogue()
	c[0].Key = "x"
	assert.True(t, IsKnown("paciente.nombre"))
	assert.NotEqual(t, "x", Catalogue()[0].Key)
}
