package dto

import "time"

// CreateMovementRequest body de POST /api/movimientos.
// La cantidad siempre es positiva; la dirección la da tipo_movimiento.
type CreateMovementRequest struct {
	Producto       string `json:"producto"`
	TipoMovimiento string `json:"tipo_movimiento"` // ingreso | salida | ajuste
	Cantidad       int64  `json:"cantidad"`
}

// MovementResponse entrada del libro tal como se expone por la API.
type MovementResponse struct {
	ID             int64     `json:"id"`
	FechaHora      time.Time `json:"fecha_hora"`
	TipoMovimiento string    `json:"tipo_movimiento"`
	Cantidad       int64     `json:"cantidad"`
	Producto       string    `json:"producto"`
	ProductoNombre string    `json:"producto_nombre,omitempty"`
	ProductoCodigo string    `json:"producto_codigo,omitempty"`
}

// ListMovementsRequest query params de GET /api/movimientos.
type ListMovementsRequest struct {
	Producto    string `query:"producto"`
	Tipo        string `query:"tipo"`
	FechaInicio string `query:"fecha_inicio"` // YYYY-MM-DD
	FechaFin    string `query:"fecha_fin"`    // YYYY-MM-DD
	Search      string `query:"search"`
	Ordering    string `query:"ordering"` // fecha_hora | cantidad, prefijo "-" = descendente
	PageRequest
}
