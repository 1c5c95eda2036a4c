package repository

import (
	"context"

	"github.com/ignaciodev/inventario-api/internal/domain"
	"github.com/ignaciodev/inventario-api/internal/domain/entity"
)

// ProductFilter filtros de listado de productos.
type ProductFilter struct {
	Search  string // busca en nombre y código
	OrderBy string // nombre (default), codigo, stock_actual, precio_venta
	Desc    bool
	Limit   int
	Offset  int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las lecturas reciben el TenantScope explícito; scope vacío = sin filas.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, scope domain.TenantScope, id string) (*entity.Product, error)
	List(ctx context.Context, scope domain.TenantScope, filter ProductFilter) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, scope domain.TenantScope, id string) error

	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) y devuelve
	// su estado fresco. Solo tiene sentido dentro de una transacción del TxRunner.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	// UpdateStock escribe la proyección de stock. Uso exclusivo del motor de
	// inventario: ningún otro camino puede tocar stock_actual.
	UpdateStock(ctx context.Context, productID string, stockActual int64) error
}
