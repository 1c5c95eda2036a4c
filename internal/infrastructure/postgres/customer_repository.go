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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un cliente nuevo. RUN duplicado en la empresa -> ErrDuplicate.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, company_id, run, nombre, edad, telefono, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.CompanyID, customer.RUN, customer.Nombre,
		customer.Edad, customer.Telefono, customer.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente visible en el scope.
func (r *CustomerRepo) GetByID(ctx context.Context, scope domain.TenantScope, id string) (*entity.Customer, error) {
	if scope.Empty() {
		return nil, nil
	}
	query := `
		SELECT id, company_id, run, nombre, edad, telefono, created_at
		FROM customers WHERE id = $1 AND ($2::uuid IS NULL OR company_id = $2::uuid)`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, id, scopeParam(scope)).Scan(
		&c.ID, &c.CompanyID, &c.RUN, &c.Nombre, &c.Edad, &c.Telefono, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// List clientes visibles en el scope.
func (r *CustomerRepo) List(ctx context.Context, scope domain.TenantScope, limit, offset int) ([]*entity.Customer, error) {
	if scope.Empty() {
		return nil, nil
	}
	query := `
		SELECT id, company_id, run, nombre, edad, telefono, created_at
		FROM customers WHERE ($1::uuid IS NULL OR company_id = $1::uuid)
		ORDER BY nombre, id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, scopeParam(scope), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.RUN, &c.Nombre, &c.Edad, &c.Telefono, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un cliente visible en el scope.
func (r *CustomerRepo) Delete(ctx context.Context, scope domain.TenantScope, id string) error {
	if scope.Empty() {
		return domain.ErrNotFound
	}
	cmd, err := r.q.Exec(ctx,
		`DELETE FROM customers WHERE id = $1 AND ($2::uuid IS NULL OR company_id = $2::uuid)`,
		id, scopeParam(scope),
	)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
