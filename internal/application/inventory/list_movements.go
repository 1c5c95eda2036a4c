package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/ignaciodev/inventario-api/internal/application/dto"
	"github.com/ignaciodev/inventario-api/internal/domain"
	"github.com/ignaciodev/inventario-api/internal/domain/entity"
	"github.com/ignaciodev/inventario-api/internal/domain/repository"
)

// ListMovementsUseCase lecturas del libro de movimientos con filtros,
// búsqueda y orden estables (mismos filtros sin escrituras intermedias =
// misma secuencia).
type ListMovementsUseCase struct {
	movRepo repository.MovementRepository
}

// NewListMovementsUseCase construye el caso de uso.
func NewListMovementsUseCase(movRepo repository.MovementRepository) *ListMovementsUseCase {
	return &ListMovementsUseCase{movRepo: movRepo}
}

// List traduce el request HTTP a un MovementFilter y consulta el libro.
// Scope vacío devuelve la lista vacía (sin error): un usuario sin empresa
// simplemente no tiene datos accesibles.
func (uc *ListMovementsUseCase) List(ctx context.Context, scope domain.TenantScope, in dto.ListMovementsRequest) ([]dto.MovementResponse, error) {
	if scope.Empty() {
		return []dto.MovementResponse{}, nil
	}
	in.DefaultPage()

	filter, verr := buildFilter(in)
	if verr != nil {
		return nil, verr
	}

	rows, err := uc.movRepo.List(ctx, scope, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MovementResponse{
			ID:             r.ID,
			FechaHora:      r.FechaHora,
			TipoMovimiento: string(r.Tipo),
			Cantidad:       r.Cantidad,
			Producto:       r.ProductID,
			ProductoNombre: r.ProductoNombre,
			ProductoCodigo: r.ProductoCodigo,
		})
	}
	return out, nil
}

// buildFilter valida tipo, fechas y ordering del request.
func buildFilter(in dto.ListMovementsRequest) (repository.MovementFilter, *domain.ValidationError) {
	filter := repository.MovementFilter{
		ProductID: in.Producto,
		Search:    in.Search,
		OrderBy:   "fecha_hora",
		Desc:      true,
		Limit:     in.Limit,
		Offset:    in.Offset,
	}

	if in.Tipo != "" {
		tipo, err := entity.ParseMovementType(in.Tipo)
		if err != nil {
			return filter, domain.NewValidationError("tipo", "tipo inválido (ingreso, salida o ajuste)")
		}
		filter.Tipo = tipo
	}

	if in.FechaInicio != "" {
		t, err := time.Parse("2006-01-02", in.FechaInicio)
		if err != nil {
			return filter, domain.NewValidationError("fecha_inicio", "formato esperado YYYY-MM-DD")
		}
		filter.FechaInicio = &t
	}
	if in.FechaFin != "" {
		t, err := time.Parse("2006-01-02", in.FechaFin)
		if err != nil {
			return filter, domain.NewValidationError("fecha_fin", "formato esperado YYYY-MM-DD")
		}
		// Rango inclusivo: el fin cubre el día completo.
		end := t.Add(24*time.Hour - time.Nanosecond)
		filter.FechaFin = &end
	}

	if in.Ordering != "" {
		field := strings.TrimPrefix(in.Ordering, "-")
		switch field {
		case "fecha_hora", "cantidad":
			filter.OrderBy = field
			filter.Desc = strings.HasPrefix(in.Ordering, "-")
		default:
			return filter, domain.NewValidationError("ordering", "campos válidos: fecha_hora, cantidad")
		}
	}
	return filter, nil
}
