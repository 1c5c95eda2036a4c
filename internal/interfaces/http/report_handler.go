package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ignaciodev/inventario-api/internal/application/auth"
	"github.com/ignaciodev/inventario-api/internal/application/inventory"
	"github.com/ignaciodev/inventario-api/internal/infrastructure/pdf"
)

// ReportHandler expone los reportes de ventas.
type ReportHandler struct {
	reports *inventory.ReportsUseCase
	authUC  *auth.AuthUseCase
	pdfGen  *pdf.SalesReportGenerator
}

func NewReportHandler(reports *inventory.ReportsUseCase, authUC *auth.AuthUseCase, pdfGen *pdf.SalesReportGenerator) *ReportHandler {
	return &ReportHandler{reports: reports, authUC: authUC, pdfGen: pdfGen}
}

// SalesByProduct godoc
// @Summary      Ventas acumuladas por producto
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SalesByProductDTO
// @Router       /api/reportes/ventas [get]
func (h *ReportHandler) SalesByProduct(c *fiber.Ctx) error {
	rows, err := h.reports.SalesByProduct(c.Context(), GetScope(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

// SalesSummary godoc
// @Summary      Resumen diario de ventas
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SalesSummaryDTO
// @Router       /api/reportes/resumen [get]
func (h *ReportHandler) SalesSummary(c *fiber.Ctx) error {
	rows, err := h.reports.SalesSummary(c.Context(), GetScope(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

// SalesPDF godoc
// @Summary      Reporte de ventas en PDF
// @Tags         reportes
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reportes/ventas/pdf [get]
func (h *ReportHandler) SalesPDF(c *fiber.Ctx) error {
	rows, err := h.reports.SalesByProduct(c.Context(), GetScope(c))
	if err != nil {
		return respondError(c, err)
	}

	empresa := "Sin Empresa"
	if info, err := h.authUC.UserInfo(c.Context(), GetUserID(c)); err == nil {
		empresa = info.Empresa
	}

	doc, err := h.pdfGen.Generate(empresa, rows)
	if err != nil {
		return respondError(c, err)
	}

	filename := fmt.Sprintf("reporte_ventas_%s.pdf", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(doc)
}
