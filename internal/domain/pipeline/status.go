// Package pipeline contiene las reglas puras del ciclo de vida de un lead:
// estados y subestados, la tabla de transiciones y las compuertas entre
// etapas (legal -> comercial -> cita -> closer -> tasación -> asignación).
package pipeline

import "github.com/dominickcapital/crm-api/pkg/textutil"

// Estados de primer nivel de un lead.
const (
	StatusNuevo              = "nuevo"
	StatusContactado         = "contactado"
	StatusContactoNoEfectivo = "contacto_no_efectivo"
	StatusNoContactado       = "no_contactado"
	StatusCalificado         = "calificado"
	StatusGanado             = "ganado"
	StatusPerdido            = "perdido"
)

// Subestado que habilita la revisión legal.
const SubstatusEnValidacion = "EN VALIDACIÓN"

// AllStatuses en orden de presentación.
var AllStatuses = []string{
	StatusNuevo,
	StatusContactado,
	StatusContactoNoEfectivo,
	StatusNoContactado,
	StatusCalificado,
	StatusGanado,
	StatusPerdido,
}

// substatusVocab: vocabulario cerrado de subestados por estado. Los estados
// que no aparecen no admiten subestado.
var substatusVocab = map[string][]string{
	StatusContactado: {
		"INTERESADO",
		"GESTION WHATSAPP",
		"INVERSIONISTA",
		"AGENDADO POTENCIAL",
		"CITA",
		"SEGUIMIENTO",
		SubstatusEnValidacion,
	},
	StatusContactoNoEfectivo: {
		"NO CALIFICA (0)",
		"PRÉSTAMOS MENOS DE 15 MIL",
		"CONSIGUIÓ PRÉSTAMO",
		"NO INTERESADO",
		"LLAMADA MUDA",
		"GESTIONADO POR OTRO AGENTE",
		"CONTACTO CON TERCEROS",
		"FALLECIÓ",
		"NÚMERO EQUIVOCADO",
		"NIEGA HABER DEJADO DATOS",
		"ABANDONA LLAMADA",
		"CORTA LA LLAMADA",
		"VOLVER A LLAMAR",
	},
	StatusNoContactado: {
		"TELÉFONO NO EXISTE",
		"NÚMERO SUSPENDIDO / FUERA DE SERVICIO",
		"NO CONTESTA",
		"APAGADO",
	},
}

// transitions: tabla explícita de transiciones de estado. Deliberadamente
// permisiva (cualquier estado es alcanzable desde cualquier otro): los
// operadores corrigen estados libremente desde el panel. Endurecerla es un
// cambio de datos, no de código.
var transitions = func() map[string]map[string]bool {
	t := make(map[string]map[string]bool, len(AllStatuses))
	for _, from := range AllStatuses {
		row := make(map[string]bool, len(AllStatuses))
		for _, to := range AllStatuses {
			row[to] = true
		}
		t[from] = row
	}
	return t
}()

// IsStatus indica si s es un estado conocido.
func IsStatus(s string) bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition consulta la tabla de transiciones. Un estado actual vacío
// permite cualquier estado inicial.
func CanTransition(current, to string) bool {
	if current == "" {
		return IsStatus(to)
	}
	row, ok := transitions[current]
	if !ok {
		return false
	}
	return row[to]
}

// HasSubstatuses indica si el estado admite subestado.
func HasSubstatuses(status string) bool {
	_, ok := substatusVocab[status]
	return ok
}

// Substatuses devuelve el vocabulario del estado (nil si no admite subestado).
func Substatuses(status string) []string {
	return substatusVocab[status]
}

// CanonicalSubstatus valida un subestado contra el vocabulario del estado,
// ignorando tildes y mayúsculas, y devuelve la forma canónica.
// ("en validacion", contactado) -> ("EN VALIDACIÓN", true).
func CanonicalSubstatus(status, substatus string) (string, bool) {
	folded := textutil.Fold(substatus)
	for _, v := range substatusVocab[status] {
		if textutil.Fold(v) == folded {
			return v, true
		}
	}
	return "", false
}
