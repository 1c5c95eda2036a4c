package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body de POST /api/productos.
// stock_actual solo se acepta como saldo inicial al crear; después únicamente
// lo modifica el motor de inventario.
type CreateProductRequest struct {
	Codigo           string          `json:"codigo"`
	Nombre           string          `json:"nombre"`
	Tipo             *string         `json:"tipo"`
	FechaVencimiento *string         `json:"fecha_vencimiento"` // YYYY-MM-DD
	PrecioVenta      decimal.Decimal `json:"precio_venta"`
	PrecioCompra     decimal.Decimal `json:"precio_compra"`
	StockActual      int64           `json:"stock_actual"`
	StockMinimo      int64           `json:"stock_minimo"`
}

// UpdateProductRequest body de PUT /api/productos/:id. No incluye stock_actual.
type UpdateProductRequest struct {
	Nombre           string          `json:"nombre"`
	Tipo             *string         `json:"tipo"`
	FechaVencimiento *string         `json:"fecha_vencimiento"`
	PrecioVenta      decimal.Decimal `json:"precio_venta"`
	PrecioCompra     decimal.Decimal `json:"precio_compra"`
	StockMinimo      int64           `json:"stock_minimo"`
}

// ProductResponse producto tal como se expone por la API.
type ProductResponse struct {
	ID               string          `json:"id"`
	Empresa          string          `json:"empresa"`
	Tipo             *string         `json:"tipo"`
	Codigo           string          `json:"codigo"`
	Nombre           string          `json:"nombre"`
	FechaVencimiento *string         `json:"fecha_vencimiento,omitempty"`
	PrecioVenta      decimal.Decimal `json:"precio_venta"`
	PrecioCompra     decimal.Decimal `json:"precio_compra"`
	StockActual      int64           `json:"stock_actual"`
	StockMinimo      int64           `json:"stock_minimo"`
	CreatedAt        time.Time       `json:"created_at"`
}

// ListProductsRequest query params de GET /api/productos.
type ListProductsRequest struct {
	Search   string `query:"search"`
	Ordering string `query:"ordering"` // nombre | codigo | stock_actual | precio_venta, prefijo "-"
	PageRequest
}
