package repository

import (
	"context"

	"github.com/ignaciodev/inventario-api/internal/domain"
	"github.com/ignaciodev/inventario-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, scope domain.TenantScope, id string) (*entity.Customer, error)
	List(ctx context.Context, scope domain.TenantScope, limit, offset int) ([]*entity.Customer, error)
	Delete(ctx context.Context, scope domain.TenantScope, id string) error
}
