package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ignaciodev/inventario-api/internal/application/dto"
	"github.com/ignaciodev/inventario-api/internal/domain"
	"github.com/ignaciodev/inventario-api/internal/domain/entity"
	"github.com/ignaciodev/inventario-api/internal/domain/repository"
)

// CustomerUseCase CRUD de clientes de una empresa.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customerRepo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo}
}

// Create registra un cliente en la empresa del caller.
func (uc *CustomerUseCase) Create(ctx context.Context, scope domain.TenantScope, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	if scope.Empty() || scope.All {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(in.RUN) == "" {
		return nil, domain.NewValidationError("run", "el RUN es obligatorio")
	}
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.NewValidationError("nombre", "el nombre es obligatorio")
	}

	customer := &entity.Customer{
		ID:        uuid.New().String(),
		CompanyID: scope.CompanyID,
		RUN:       strings.TrimSpace(in.RUN),
		Nombre:    strings.TrimSpace(in.Nombre),
		Edad:      in.Edad,
		Telefono:  in.Telefono,
		CreatedAt: time.Now(),
	}
	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List clientes visibles en el scope.
func (uc *CustomerUseCase) List(ctx context.Context, scope domain.TenantScope, page dto.PageRequest) ([]dto.CustomerResponse, error) {
	if scope.Empty() {
		return []dto.CustomerResponse{}, nil
	}
	page.DefaultPage()
	customers, err := uc.customerRepo.List(ctx, scope, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, *toCustomerResponse(c))
	}
	return out, nil
}

// Delete elimina un cliente visible en el scope.
func (uc *CustomerUseCase) Delete(ctx context.Context, scope domain.TenantScope, id string) error {
	return uc.customerRepo.Delete(ctx, scope, id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:       c.ID,
		Empresa:  c.CompanyID,
		RUN:      c.RUN,
		Nombre:   c.Nombre,
		Edad:     c.Edad,
		Telefono: c.Telefono,
	}
}
