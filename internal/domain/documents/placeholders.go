// Package documents renders clinical document templates.
//
// Templates reference variables as {{group.name}}, e.g. {{paciente.nombre}}.
package documents

import (
	"regexp"
	"sort"
	"strings"

	"odonto_docs/internal/domain/entities"
)

var placeholderPattern = regexp.MustCompile(`\{\{\s*([a-z_]+(?:\.[a-z_]+)+)\s*\}\}`)

var catalogue = []entities.Placeholder{
	{Key: "paciente.nombre", Description: "Nombre completo del paciente", Group: "paciente"},
	{Key: "paciente.documento", Description: "Documento de identidad del paciente", Group: "paciente"},
	{Key: "paciente.fecha_nacimiento", Description: "Fecha de nacimiento del paciente", Group: "paciente"},
	{Key: "paciente.telefono", Description: "Teléfono de contacto del paciente", Group: "paciente"},
	{Key: "profesional.nombre", Description: "Nombre del profesional tratante", Group: "profesional"},
	{Key: "profesional.matricula", Description: "Matrícula profesional", Group: "profesional"},
	{Key: "clinica.nombre", Description: "Nombre de la clínica", Group: "clinica"},
	{Key: "clinica.direccion", Description: "Dirección de la clínica", Group: "clinica"},
	{Key: "tratamiento.descripcion", Description: "Descripción del tratamiento", Group: "tratamiento"},
	{Key: "tratamiento.piezas", Description: "Piezas dentales involucradas", Group: "tratamiento"},
	{Key: "fecha.hoy", Description: "Fecha de emisión del documento", Group: "fecha"},
}

var known = func() map[string]struct{} {
	m := make(map[string]struct{}, len(catalogue))
	for _, p := range catalogue {
		m[p.Key] = struct{}{}
	}
	return m
}()

// Catalogue lists every placeholder templates may use.
func Catalogue() []entities.Placeholder {
	return append([]entities.Placeholder(nil), catalogue...)
}

func IsKnown(key string) bool {
	_, ok := known[key]
	return ok
}

// Extract returns the distinct placeholder keys used in body, sorted.
func Extract(body string) []string {
	seen := map[string]struct{}{}
	for _, m := range placeholderPattern.FindAllStringSubmatch(body, -1) {
		seen[m[1]] = struct{}{}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Unknown returns the keys in body that are not in the catalogue.
func Unknown(body string) []string {
	var out []string
	for _, k := range Extract(body) {
		if !IsKnown(k) {
			out = append(out, k)
		}
	}
	return out
}

// Render substitutes every placeholder with its value. Keys without a value are
// left in place and returned as missing.
func Render(body string, values map[string]string) (string, []string) {
	missing := map[string]struct{}{}
	out := placeholderPattern.ReplaceAllStringFunc(body, func(m string) string {
		key := placeholderPattern.FindStringSubmatch(m)[1]
		if v, ok := values[key]; ok && strings.TrimSpace(v) != "" {
			return v
		}
		missing[key] = struct{}{}
		return m
	})

	keys := make([]string, 0, len(missing))
	for k := range missing {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return out, keys
}
