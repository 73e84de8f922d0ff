// Package pdf implementa la generación de la Constancia de Asignación:
// el documento que resume el emparejamiento préstamo-inversionista y los
// términos de la hipoteca.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Dominick Capital  │  N° Asignación + Fecha         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PRESTATARIO: Nombre + DNI                                   │
//	│  INVERSIONISTA: Nombre + DNI                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TÉRMINOS: Hipoteca | Al prestatario | Comisión | Tasa      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Asignado por + Leyenda                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/dominickcapital/crm-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa assignment.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// AssignmentPDF genera la constancia y devuelve sus bytes.
func (g *MarotoPDFGenerator) AssignmentPDF(a *entity.Assignment) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Constancia de Asignación", true).
		WithAuthor("Dominick Capital", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(a))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partyRow("PRESTATARIO", a.BorrowerName, a.BorrowerDNI))
	m.AddRows(partyRow("INVERSIONISTA", a.InvestorName, a.InvestorDNI))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range termsRows(a) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(a))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar constancia: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: razón social (izq) y N° de asignación + fecha (der).
func headerRow(a *entity.Assignment) core.Row {
	fecha := a.CreatedAt.Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New("Dominick Capital", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Originación de préstamos con garantía hipotecaria", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("CONSTANCIA DE ASIGNACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(shortID(a.ID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// partyRow: bloque de identificación de una de las partes.
func partyRow(role, name, dni string) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New(role, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("DNI: "+nonEmpty(dni, "—"), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

// termsRows: términos financieros de la operación, una fila por concepto.
func termsRows(a *entity.Assignment) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("TÉRMINOS DE LA OPERACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	term := func(label, value string) core.Row {
		return row.New(6).Add(
			col.New(6).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 1,
			})),
			col.New(6).Add(text.New(value, props.Text{
				Size: 9, Align: align.Left, Left: 2, Top: 1,
			})),
		)
	}
	rows = append(rows,
		term("Monto de la hipoteca:", "S/ "+formatMoney(a.MortgageAmount.StringFixed(2))),
		term("Entregado al prestatario:", "S/ "+formatMoney(a.AmountToBorrower.StringFixed(2))),
		term("Comisión Dominick:", "S/ "+formatMoney(a.AmountToDominick.StringFixed(2))),
		term("Monto de tasación:", "S/ "+formatMoney(a.AppraisalAmount.StringFixed(2))),
		term("Tasa de interés:", a.InterestRate.StringFixed(2)+" %"),
		term("Plazo:", fmt.Sprintf("%d meses", a.TermMonths)),
		term("Modalidad de pago:", nonEmpty(a.Modality, "—")),
	)
	return rows
}

// footerRow: quién asignó y leyenda.
func footerRow(a *entity.Assignment) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("Asignado por: "+nonEmpty(a.AssignedByName, "—"), props.Text{
				Size: 8, Top: 2, Color: colorGray,
			}),
			text.New(
				"Este documento resume los términos pactados entre las partes. "+
					"Conserve esta constancia como soporte de la operación.",
				props.Text{Size: 6.5, Color: colorGray, Top: 8},
			),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// shortID toma el primer bloque de un UUID para exhibirlo como número corto.
func shortID(id string) string {
	if len(id) > 8 {
		return "AS-" + id[:8]
	}
	return "AS-" + id
}

// formatMoney inserta comas de miles en la parte entera de un string
// numérico con decimales. Ej: "25000.00" → "25,000.00"
func formatMoney(s string) string {
	intPart, frac := s, ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			intPart, frac = s[:i], s[i:]
			break
		}
	}
	n := len(intPart)
	if n <= 3 {
		return intPart + frac
	}
	buf := make([]byte, 0, n+n/3+len(frac))
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, intPart[i])
	}
	return string(buf) + frac
}
