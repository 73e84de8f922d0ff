package lead

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/dominickcapital/crm-api/internal/application/dto"
	"github.com/dominickcapital/crm-api/internal/domain"
	"github.com/dominickcapital/crm-api/internal/domain/entity"
	"github.com/dominickcapital/crm-api/pkg/textutil"
)

// Cabeceras reconocidas del CSV de importación. La comparación ignora
// tildes y mayúsculas, de modo que "Teléfono" y "telefono" mapean a la
// misma columna.
var csvHeaderAliases = map[string]string{
	"NOMBRE":           "name",
	"NAME":             "name",
	"EMAIL":            "email",
	"CORREO":           "email",
	"TELEFONO":         "phone",
	"PHONE":            "phone",
	"CELULAR":          "phone",
	"EMPRESA":          "company",
	"COMPANY":          "company",
	"NOTAS":            "notes",
	"NOTES":            "notes",
	"DNI":              "documentNumber",
	"DOCUMENTO":        "documentNumber",
	"NUMERO DOCUMENTO": "documentNumber",
	"TIPO DOCUMENTO":   "documentType",
	"DIRECCION":        "address",
	"DEPARTAMENTO":     "departamento",
	"PROVINCIA":        "provincia",
	"DISTRITO":         "distrito",
	"TIPO":             "leadType",
	"TIPO LEAD":        "leadType",
	"FUENTE":           "source",
	"SOURCE":           "source",
}

// ImportCSV parsea un CSV con cabecera, construye un lote de leads y lo
// registra mediante AddBulkLeads, con lo que el lote hereda la distribución
// round-robin por tipo. Columnas no reconocidas se ignoran.
func (uc *UseCase) ImportCSV(actor *entity.Session, r io.Reader) ([]*entity.Lead, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: no se pudo leer la cabecera del CSV", domain.ErrValidation)
	}
	fields := make([]string, len(header))
	known := false
	for i, h := range header {
		if field, ok := csvHeaderAliases[textutil.Fold(h)]; ok {
			fields[i] = field
			known = true
		}
	}
	if !known {
		return nil, fmt.Errorf("%w: el CSV no tiene columnas reconocidas", domain.ErrValidation)
	}

	var batch dto.BulkLeadsRequest
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: fila malformada en el CSV", domain.ErrValidation)
		}
		var item dto.CreateLeadRequest
		for i, value := range record {
			if i >= len(fields) {
				break
			}
			value = strings.TrimSpace(value)
			switch fields[i] {
			case "name":
				item.Name = value
			case "email":
				item.Email = value
			case "phone":
				item.Phone = value
			case "company":
				item.Company = value
			case "notes":
				item.Notes = value
			case "documentNumber":
				item.DocumentNumber = value
			case "documentType":
				item.DocumentType = value
			case "address":
				item.Address = value
			case "departamento":
				item.Departamento = value
			case "provincia":
				item.Provincia = value
			case "distrito":
				item.Distrito = value
			case "leadType":
				item.LeadType = normalizeLeadType(value)
			case "source":
				item.Source = value
			}
		}
		if item.Name == "" {
			continue // filas sin nombre se descartan en silencio
		}
		batch.Leads = append(batch.Leads, item)
	}
	if len(batch.Leads) == 0 {
		return nil, fmt.Errorf("%w: el CSV no contiene leads válidos", domain.ErrValidation)
	}
	return uc.AddBulkLeads(actor, batch)
}

// normalizeLeadType acepta el tipo escrito con o sin tilde.
func normalizeLeadType(value string) string {
	switch textutil.Fold(value) {
	case "INVERSION":
		return entity.LeadTypeInversion
	case "PRESTAMO", "":
		return entity.LeadTypePrestamo
	default:
		return entity.LeadTypePrestamo
	}
}
