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

// ProductTypeUseCase CRUD del catálogo global de tipos de producto.
type ProductTypeUseCase struct {
	typeRepo repository.ProductTypeRepository
}

// NewProductTypeUseCase construye el caso de uso.
func NewProductTypeUseCase(typeRepo repository.ProductTypeRepository) *ProductTypeUseCase {
	return &ProductTypeUseCase{typeRepo: typeRepo}
}

// Create registra un tipo de producto.
func (uc *ProductTypeUseCase) Create(ctx context.Context, in dto.ProductTypeRequest) (*dto.ProductTypeResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.NewValidationError("nombre", "el nombre es obligatorio")
	}
	pt := &entity.ProductType{
		ID:           uuid.New().String(),
		Nombre:       strings.TrimSpace(in.Nombre),
		Descripcion:  in.Descripcion,
		EsPerecedero: in.EsPerecedero,
		CreatedAt:    time.Now(),
	}
	if err := uc.typeRepo.Create(ctx, pt); err != nil {
		return nil, err
	}
	return toProductTypeResponse(pt), nil
}

// List tipos de producto (catálogo global).
func (uc *ProductTypeUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.ProductTypeResponse, error) {
	page.DefaultPage()
	types, err := uc.typeRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, *toProductTypeResponse(t))
	}
	return out, nil
}

// Delete elimina el tipo; los productos que lo referencian quedan sin tipo
// (SET NULL), nunca se eliminan.
func (uc *ProductTypeUseCase) Delete(ctx context.Context, id string) error {
	return uc.typeRepo.Delete(ctx, id)
}

func toProductTypeResponse(t *entity.ProductType) *dto.ProductTypeResponse {
	return &dto.ProductTypeResponse{
		ID:           t.ID,
		Nombre:       t.Nombre,
		Descripcion:  t.Descripcion,
		EsPerecedero: t.EsPerecedero,
	}
}
