package inventory

import (
	"context"

	"github.com/ignaciodev/inventario-api/internal/application/dto"
	"github.com/ignaciodev/inventario-api/internal/domain"
	"github.com/ignaciodev/inventario-api/internal/domain/repository"
)

// ReportsUseCase agregados de venta sobre el libro de movimientos.
// Consumidores externos del núcleo: no imponen invariantes adicionales.
type ReportsUseCase struct {
	movRepo repository.MovementRepository
}

// NewReportsUseCase construye el caso de uso.
func NewReportsUseCase(movRepo repository.MovementRepository) *ReportsUseCase {
	return &ReportsUseCase{movRepo: movRepo}
}

// SalesByProduct total vendido por producto (solo salidas), de mayor a menor.
func (uc *ReportsUseCase) SalesByProduct(ctx context.Context, scope domain.TenantScope) ([]dto.SalesByProductDTO, error) {
	if scope.Empty() {
		return []dto.SalesByProductDTO{}, nil
	}
	rows, err := uc.movRepo.SalesByProduct(ctx, scope)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalesByProductDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SalesByProductDTO{
			NombreProducto: r.NombreProducto,
			Codigo:         r.Codigo,
			TotalVendido:   r.TotalVendido,
		})
	}
	return out, nil
}

// SalesSummary operaciones y unidades vendidas por día, fecha descendente.
func (uc *ReportsUseCase) SalesSummary(ctx context.Context, scope domain.TenantScope) ([]dto.SalesSummaryDTO, error) {
	if scope.Empty() {
		return []dto.SalesSummaryDTO{}, nil
	}
	rows, err := uc.movRepo.SalesSummary(ctx, scope)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalesSummaryDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SalesSummaryDTO{
			Fecha:        r.Fecha.Format("2006-01-02"),
			NOperaciones: r.NOperaciones,
			TotalVenta:   r.TotalVenta,
		})
	}
	return out, nil
}
