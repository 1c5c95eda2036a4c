package dto

// SalesByProductDTO fila de GET /api/reportes/ventas: total vendido por
// producto (solo movimientos de tipo salida), ordenado de mayor a menor.
type SalesByProductDTO struct {
	NombreProducto string `json:"nombre_producto"`
	Codigo         string `json:"codigo"`
	TotalVendido   int64  `json:"total_vendido"`
}

// SalesSummaryDTO fila de GET /api/reportes/resumen: ventas agrupadas por
// día calendario, ordenadas de la fecha más reciente a la más antigua.
type SalesSummaryDTO struct {
	Fecha        string `json:"fecha"` // YYYY-MM-DD
	NOperaciones int64  `json:"n_operaciones"`
	TotalVenta   int64  `json:"total_venta"`
}
