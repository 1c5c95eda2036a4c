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

// CompanyUseCase CRUD de empresas. Crear/eliminar es de superusuario; un
// empleado solo ve su propia empresa.
type CompanyUseCase struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(companyRepo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{companyRepo: companyRepo}
}

// Create registra una empresa nueva (solo superusuario).
func (uc *CompanyUseCase) Create(ctx context.Context, scope domain.TenantScope, in dto.CompanyRequest) (*dto.CompanyResponse, error) {
	if !scope.All {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(in.RUT) == "" {
		return nil, domain.NewValidationError("rut_empresa", "el RUT es obligatorio")
	}
	if strings.TrimSpace(in.RazonSocial) == "" {
		return nil, domain.NewValidationError("razon_social", "la razón social es obligatoria")
	}
	inicio, verr := parseOptionalDate("fecha_inicio_contrato", in.FechaInicioContrato)
	if verr != nil {
		return nil, verr
	}
	pago, verr := parseOptionalDate("fecha_proximo_pago", in.FechaProximoPago)
	if verr != nil {
		return nil, verr
	}

	estado := in.EstadoServicio
	if estado == "" {
		estado = entity.ServicioActivo
	}
	now := time.Now()
	company := &entity.Company{
		ID:                  uuid.New().String(),
		RUT:                 strings.TrimSpace(in.RUT),
		RazonSocial:         strings.TrimSpace(in.RazonSocial),
		Nombre:              in.Nombre,
		Email:               in.Email,
		Telefono:            in.Telefono,
		PlanContratado:      in.PlanContratado,
		EstadoServicio:      estado,
		FechaInicioContrato: inicio,
		FechaProximoPago:    pago,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa visible en el scope.
func (uc *CompanyUseCase) GetByID(ctx context.Context, scope domain.TenantScope, id string) (*dto.CompanyResponse, error) {
	if !scope.Allows(id) {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// List superusuario ve todas; un empleado, solo la suya; sin empresa, ninguna.
func (uc *CompanyUseCase) List(ctx context.Context, scope domain.TenantScope, page dto.PageRequest) ([]dto.CompanyResponse, error) {
	if scope.Empty() {
		return []dto.CompanyResponse{}, nil
	}
	page.DefaultPage()
	companies, err := uc.companyRepo.List(ctx, scope, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, *toCompanyResponse(c))
	}
	return out, nil
}

// Delete elimina una empresa con todos sus productos y movimientos (cascada).
func (uc *CompanyUseCase) Delete(ctx context.Context, scope domain.TenantScope, id string) error {
	if !scope.All {
		return domain.ErrForbidden
	}
	return uc.companyRepo.Delete(ctx, id)
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	resp := &dto.CompanyResponse{
		ID:             c.ID,
		RUT:            c.RUT,
		RazonSocial:    c.RazonSocial,
		Nombre:         c.Nombre,
		Email:          c.Email,
		Telefono:       c.Telefono,
		PlanContratado: c.PlanContratado,
		EstadoServicio: c.EstadoServicio,
		CreatedAt:      c.CreatedAt,
	}
	if c.FechaInicioContrato != nil {
		s := c.FechaInicioContrato.Format("2006-01-02")
		resp.FechaInicioContrato = &s
	}
	if c.FechaProximoPago != nil {
		s := c.FechaProximoPago.Format("2006-01-02")
		resp.FechaProximoPago = &s
	}
	return resp
}
