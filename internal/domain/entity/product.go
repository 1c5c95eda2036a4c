package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario de una empresa.
// StockActual es la proyección materializada del libro de movimientos: solo
// el motor de inventario puede modificarlo (dentro de su sección crítica).
type Product struct {
	ID               string
	CompanyID        string
	TypeID           *string // tipo de producto; nil si la categoría fue eliminada (SET NULL)
	Codigo           string  // código único por empresa
	Nombre           string
	FechaVencimiento *time.Time
	PrecioVenta      decimal.Decimal // >= 0
	PrecioCompra     decimal.Decimal // >= 0
	StockInicial     int64           // saldo de apertura; inmutable después de crear
	StockActual      int64           // invariante: >= 0 y == stock_inicial + suma de deltas
	StockMinimo      int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
