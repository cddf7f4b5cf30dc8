// Package pdf genera la representación imprimible de la lista de notas de
// frais con Maroto v2.
//
// Layout de la página A4:
//
//	┌──────────────────────────────────────────────────────────┐
//	│  HEADER: "Notes de frais" + dueño   │  Fecha de emisión  │
//	│  ──────────────────────────────────────────────────────  │
//	│  TABLA: Type | Nom | Date | Montant | Statut             │
//	│  ──────────────────────────────────────────────────────  │
//	│  PIE: total de notas                                     │
//	└──────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/jhoicas/billed-client/internal/application/dto"
	"github.com/jhoicas/billed-client/internal/application/export"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ export.BillsPDFGenerator = (*MarotoGenerator)(nil)

// MarotoGenerator implementa export.BillsPDFGenerator usando Maroto v2.
type MarotoGenerator struct{}

// NewMarotoGenerator construye el generador.
func NewMarotoGenerator() *MarotoGenerator { return &MarotoGenerator{} }

// GenerateBillsPDF genera el PDF y devuelve sus bytes. Recibe la misma
// proyección normalizada que consume la vista de lista.
func (g *MarotoGenerator) GenerateBillsPDF(_ context.Context, owner string, bills []dto.BillView) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Notes de frais", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(owner))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, b := range bills {
		m.AddRows(billRow(b))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(bills)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + dueño (izq) y fecha de emisión (der).
func headerRow(owner string) core.Row {
	if owner == "" {
		owner = "Toutes les notes"
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New("Notes de frais", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(owner, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Émis le "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de notas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
	}
	return row.New(8).Add(
		h("Type", 2, align.Left),
		h("Nom", 4, align.Left),
		h("Date", 2, align.Center),
		h("Montant", 2, align.Right),
		h("Statut", 2, align.Center),
	)
}

// billRow: una fila por nota, con la fecha y el estado ya normalizados.
func billRow(b dto.BillView) core.Row {
	return row.New(7).Add(
		col.New(2).Add(text.New(b.Type, props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(4).Add(text.New(b.Name, props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(2).Add(text.New(b.Date, props.Text{
			Size: 8, Align: align.Center, Top: 1,
		})),
		col.New(2).Add(text.New(b.Amount+" €", props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
		col.New(2).Add(text.New(b.Status, props.Text{
			Size: 8, Align: align.Center, Top: 1,
		})),
	)
}

// footerRow: total de notas incluidas en el documento.
func footerRow(count int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(
			fmt.Sprintf("%d note(s) de frais", count),
			props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Right: 1, Color: colorPrimary},
		)),
	)
}
