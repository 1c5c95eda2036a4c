// Package pdf genera la versión imprimible del reporte de ventas por
// producto usando Maroto v2.
package pdf

import (
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

	"github.com/ignaciodev/inventario-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// SalesReportGenerator renderiza el reporte de ventas por producto en PDF A4.
type SalesReportGenerator struct{}

// NewSalesReportGenerator construye el generador.
func NewSalesReportGenerator() *SalesReportGenerator { return &SalesReportGenerator{} }

// Generate produce el PDF y devuelve sus bytes. empresa es la razón social
// mostrada en el encabezado ("Todas las empresas" para el superusuario).
func (g *SalesReportGenerator) Generate(empresa string, rowsData []dto.SalesByProductDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de ventas por producto", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(empresa))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range rowsData {
		m.AddRows(tableRow(r))
	}
	m.AddRows(totalRow(rowsData))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF del reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(empresa string) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Reporte de ventas por producto", props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
			text.New(empresa, props.Text{Top: 7, Size: 10, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	headerStyle := props.Text{Size: 9, Style: fontstyle.Bold, Color: colorWhite}
	return row.New(8).Add(
		col.New(6).Add(text.New("Producto", headerStyle)),
		col.New(3).Add(text.New("Código", headerStyle)),
		col.New(3).Add(text.New("Total vendido", mergeAlign(headerStyle, align.Right))),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func tableRow(r dto.SalesByProductDTO) core.Row {
	return row.New(7).Add(
		col.New(6).Add(text.New(r.NombreProducto, props.Text{Size: 9})),
		col.New(3).Add(text.New(r.Codigo, props.Text{Size: 9, Color: colorGray})),
		col.New(3).Add(text.New(fmt.Sprintf("%d", r.TotalVendido), props.Text{Size: 9, Align: align.Right})),
	)
}

func totalRow(rowsData []dto.SalesByProductDTO) core.Row {
	var total int64
	for _, r := range rowsData {
		total += r.TotalVendido
	}
	return row.New(9).Add(
		col.New(9).Add(text.New("TOTAL UNIDADES", props.Text{
			Size: 10, Style: fontstyle.Bold, Align: align.Right,
		})),
		col.New(3).Add(text.New(fmt.Sprintf("%d", total), props.Text{
			Size: 10, Style: fontstyle.Bold, Align: align.Right, Color: colorPrimary,
		})),
	)
}

func mergeAlign(t props.Text, a align.Type) props.Text {
	t.Align = a
	return t
}
