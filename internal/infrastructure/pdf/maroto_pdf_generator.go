// Package pdf implementa la generación del Certificado de Retención del
// Impuesto a las Ganancias (RG AFIP 830), la constancia que el agente de
// retención entrega al proveedor junto con el pago.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Agente de retención + CUIT  │  N° Cert. + Fecha    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SUJETO RETENIDO: Razón social + CUIT + condición Ganancias │
//	│  COMPROBANTE: Referencia + fecha                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  IMPORTES: Total / Neto / IVA / Régimen / RETENCIÓN         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL A PAGAR + Leyenda legal RG 830                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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

	"github.com/tu-usuario/gestion-pyme/internal/application/retenciones"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ retenciones.CertificadoPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa retenciones.CertificadoPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateCertificadoPDF genera el PDF del certificado y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateCertificadoPDF(
	_ context.Context,
	cert *entity.CertificadoRetencion,
	empresa *entity.Empresa,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Certificado de Retención - Impuesto a las Ganancias", true).
		WithAuthor(empresa.RazonSocial, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(cert, empresa))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(sujetoRetenidoRow(cert))
	m.AddRows(comprobanteRow(cert))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(importesHeaderRow())
	for _, r := range importesRows(cert) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(cert))
	m.AddRows(line.NewRow(3))
	for _, r := range footerRows() {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: agente de retención + CUIT (izq) y N° de certificado + fecha (der).
func headerRow(cert *entity.CertificadoRetencion, empresa *entity.Empresa) core.Row {
	fecha := cert.FechaEmision.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(empresa.RazonSocial, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("CUIT: "+empresa.CUIT+"   |   Agente de Retención", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("CERTIFICADO DE RETENCIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(cert.Numero, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha de emisión: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// sujetoRetenidoRow: datos del proveedor al que se le practicó la retención.
func sujetoRetenidoRow(cert *entity.CertificadoRetencion) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("SUJETO RETENIDO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(cert.ProveedorNombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("CUIT: %s   |   Condición frente a Ganancias: %s",
				cert.ProveedorCUIT, cert.CondicionGanancias,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// comprobanteRow: comprobante de origen de la retención.
func comprobanteRow(cert *entity.CertificadoRetencion) core.Row {
	fecha := "—"
	if !cert.FechaComprobante.IsZero() {
		fecha = cert.FechaComprobante.Format("02/01/2006")
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("COMPROBANTE DE ORIGEN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Referencia: %s   |   Fecha: %s", cert.NumeroComprobante, fecha),
				props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// importesHeaderRow: cabecera de la tabla de importes.
func importesHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Concepto", 7, align.Left),
		h("Importe", 5, align.Right),
	)
}

// importesRows: una fila por concepto.
func importesRows(cert *entity.CertificadoRetencion) []core.Row {
	fila := func(concepto, importe string, destacado bool) core.Row {
		estilo := props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1}
		valor := props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}
		if destacado {
			estilo.Style = fontstyle.Bold
			valor.Style = fontstyle.Bold
			estilo.Color = colorPrimary
			valor.Color = colorPrimary
		}
		return row.New(7).Add(
			col.New(7).Add(text.New(concepto, estilo)),
			col.New(5).Add(text.New(importe, valor)),
		)
	}
	regimen := fmt.Sprintf("Régimen %s — %s", cert.CodigoRegimen, cert.DetalleRegimen)
	return []core.Row{
		fila("Importe total del comprobante", "$ "+cert.ImporteTotal.StringFixed(2), false),
		fila("Importe neto gravado", "$ "+cert.ImporteNeto.StringFixed(2), false),
		fila("IVA", "$ "+cert.IVA.StringFixed(2), false),
		fila(regimen, "", false),
		fila("IMPORTE RETENIDO", "$ "+cert.ImporteRetenido.StringFixed(2), true),
	}
}

// totalRow: total a pagar luego de la retención.
func totalRow(cert *entity.CertificadoRetencion) core.Row {
	return row.New(12).Add(
		col.New(7).Add(text.New("TOTAL A PAGAR AL PROVEEDOR", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Left,
			Color: colorPrimary, Top: 3, Left: 1,
		})),
		col.New(5).Add(text.New("$ "+cert.TotalAPagar.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 3, Right: 1,
		})),
	)
}

// footerRows: leyenda legal.
func footerRows() []core.Row {
	return []core.Row{
		row.New(1).Add(col.New(12)),
		row.New(8).Add(col.New(12).Add(
			text.New(
				"Certificado emitido en carácter de agente de retención del Impuesto a las "+
					"Ganancias conforme a la Resolución General AFIP N° 830. "+
					"Conserve este documento como constancia de la retención practicada.",
				props.Text{Size: 6.5, Color: colorGray, Top: 2},
			),
		)),
	}
}
