package repository

import (
	"context"

	"github.com/ignaciodev/inventario-api/internal/domain/entity"
)

// ProductTypeRepository define el puerto de persistencia para ProductType.
// El catálogo de tipos es global (no pertenece a un tenant).
type ProductTypeRepository interface {
	Create(ctx context.Context, pt *entity.ProductType) error
	GetByID(ctx context.Context, id string) (*entity.ProductType, error)
	List(ctx context.Context, limit, offset int) ([]*entity.ProductType, error)
	// Delete pone en NULL el tipo de los productos que lo referencian
	// (lo garantiza el FK ON DELETE SET NULL), nunca borra productos.
	Delete(ctx context.Context, id string) error
}
