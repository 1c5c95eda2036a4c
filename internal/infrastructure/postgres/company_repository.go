package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ignaciodev/inventario-api/internal/domain"
	"github.com/ignaciodev/inventario-api/internal/domain/entity"
	"github.com/ignaciodev/inventario-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación de CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, rut, razon_social, nombre, email, telefono, plan_contratado,
	estado_servicio, fecha_inicio_contrato, fecha_proximo_pago, created_at, updated_at`

// Create persiste una empresa nueva. RUT duplicado -> ErrDuplicate.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		company.ID, company.RUT, company.RazonSocial, company.Nombre, company.Email,
		company.Telefono, company.PlanContratado, company.EstadoServicio,
		company.FechaInicioContrato, company.FechaProximoPago,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	c, err := scanCompany(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// List empresas visibles en el scope (el superusuario las ve todas).
func (r *CompanyRepo) List(ctx context.Context, scope domain.TenantScope, limit, offset int) ([]*entity.Company, error) {
	if scope.Empty() {
		return nil, nil
	}
	query := `
		SELECT ` + companyColumns + `
		FROM companies WHERE ($1::uuid IS NULL OR id = $1::uuid)
		ORDER BY razon_social, id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, scopeParam(scope), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza una empresa existente.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	query := `
		UPDATE companies
		SET razon_social = $2, nombre = $3, email = $4, telefono = $5,
		    plan_contratado = $6, estado_servicio = $7, fecha_inicio_contrato = $8,
		    fecha_proximo_pago = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		company.ID, company.RazonSocial, company.Nombre, company.Email, company.Telefono,
		company.PlanContratado, company.EstadoServicio, company.FechaInicioContrato,
		company.FechaProximoPago, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// Delete elimina una empresa; productos, movimientos y clientes caen en
// cascada (FK).
func (r *CompanyRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(
		&c.ID, &c.RUT, &c.RazonSocial, &c.Nombre, &c.Email, &c.Telefono,
		&c.PlanContratado, &c.EstadoServicio, &c.FechaInicioContrato,
		&c.FechaProximoPago, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
