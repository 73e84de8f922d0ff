// Package textutil normaliza texto con tildes para comparaciones insensibles
// a acentos y mayúsculas. El vocabulario de subestados del pipeline
// ("EN VALIDACIÓN", "FALLECIÓ", "NÚMERO EQUIVOCADO") y las cabeceras de los
// CSV importados ("teléfono") llegan con o sin diacríticos según la fuente.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold quita diacríticos, colapsa espacios y pasa a mayúsculas.
// "en  validación" -> "EN VALIDACION".
func Fold(s string) string {
	out, _, err := transform.String(stripper, s)
	if err != nil {
		out = s
	}
	return strings.ToUpper(strings.Join(strings.Fields(out), " "))
}

// FoldLower es Fold en minúsculas, útil para cabeceras CSV y claves de campos.
func FoldLower(s string) string {
	return strings.ToLower(Fold(s))
}

// Equal compara dos cadenas tras Fold.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}
