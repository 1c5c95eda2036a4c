package repository

import (
	"context"
	"time"

	"github.com/ignaciodev/inventario-api/internal/domain"
	"github.com/ignaciodev/inventario-api/internal/domain/entity"
)

// MovementFilter filtros del listado del libro de movimientos.
type MovementFilter struct {
	ProductID   string
	Tipo        entity.MovementType // vacío = todos
	FechaInicio *time.Time
	FechaFin    *time.Time
	Search      string // nombre o código del producto (sin distinguir acentos)
	OrderBy     string // fecha_hora (default) o cantidad
	Desc        bool   // default true (más reciente primero)
	Limit       int
	Offset      int
}

// MovementWithProduct entrada del libro junto con los datos del producto
// necesarios para el listado.
type MovementWithProduct struct {
	entity.Movement
	ProductoNombre string
	ProductoCodigo string
}

// SalesByProductRow total vendido por producto (tipo salida).
type SalesByProductRow struct {
	NombreProducto string
	Codigo         string
	TotalVendido   int64
}

// SalesSummaryRow resumen de ventas por día calendario.
type SalesSummaryRow struct {
	Fecha        time.Time // truncada a día
	NOperaciones int64
	TotalVenta   int64
}

// ProductBalanceRow saldo del libro por producto, para la auditoría de
// consistencia proyección/libro.
type ProductBalanceRow struct {
	ProductID   string
	Codigo      string
	StockActual int64 // proyección cacheada en products
	LedgerSum   int64 // stock_inicial + suma de deltas con signo del libro
}

// MovementRepository define el puerto de persistencia para el libro de
// movimientos. Create solo inserta (append-only): no existen Update/Delete.
type MovementRepository interface {
	// Create inserta la entrada y completa ID y FechaHora asignados por el servidor.
	Create(ctx context.Context, movement *entity.Movement) error
	List(ctx context.Context, scope domain.TenantScope, filter MovementFilter) ([]*MovementWithProduct, error)

	// Agregados de reporte sobre el libro.
	SalesByProduct(ctx context.Context, scope domain.TenantScope) ([]SalesByProductRow, error)
	SalesSummary(ctx context.Context, scope domain.TenantScope) ([]SalesSummaryRow, error)

	// ProductBalances recalcula la suma del libro por producto y la compara
	// con la proyección (auditoría nocturna).
	ProductBalances(ctx context.Context) ([]ProductBalanceRow, error)
}
