package dto

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
// KPIs del tenant: conteos sobre productos y sobre el libro de movimientos.
type DashboardStatsDTO struct {
	TotalProductos  int64 `json:"total_productos"`
	StockCritico    int64 `json:"stock_critico"`   // productos con stock <= 10
	PorVencer       int64 `json:"por_vencer"`      // perecederos que vencen en 7 días
	MovimientosHoy  int64 `json:"movimientos_hoy"` // entradas del libro de hoy
}
