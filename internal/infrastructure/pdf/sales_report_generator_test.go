package pdf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignaciodev/inventario-api/internal/application/dto"
	"github.com/ignaciodev/inventario-api/internal/infrastructure/pdf"
)

func TestGenerate_ProduceUnPDF(t *testing.T) {
	gen := pdf.NewSalesReportGenerator()

	doc, err := gen.Generate("Comercial Los Andes SpA", []dto.SalesByProductDTO{
		{NombreProducto: "Arroz grado 1", Codigo: "ARR-001", TotalVendido: 180},
		{NombreProducto: "Leche entera", Codigo: "LCH-001", TotalVendido: 95},
	})
	require.NoError(t, err)
	require.NotEmpty(t, doc)
	assert.Equal(t, "%PDF", string(doc[:4]), "los bytes deben ser un documento PDF")
}

func TestGenerate_SinFilas(t *testing.T) {
	gen := pdf.NewSalesReportGenerator()

	doc, err := gen.Generate("Todas las empresas", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, doc, "el reporte vacío igual lleva encabezado y total en cero")
}
