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

var _ repository.ProductTypeRepository = (*ProductTypeRepo)(nil)

// ProductTypeRepo implementación de ProductTypeRepository sobre PostgreSQL.
type ProductTypeRepo struct {
	q Querier
}

// NewProductTypeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductTypeRepository(q Querier) *ProductTypeRepo {
	return &ProductTypeRepo{q: q}
}

// Create persiste un tipo de producto.
func (r *ProductTypeRepo) Create(ctx context.Context, pt *entity.ProductType) error {
	query := `
		INSERT INTO product_types (id, nombre, descripcion, es_perecedero, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, pt.ID, pt.Nombre, pt.Descripcion, pt.EsPerecedero, pt.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product type: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo por ID.
func (r *ProductTypeRepo) GetByID(ctx context.Context, id string) (*entity.ProductType, error) {
	query := `
		SELECT id, nombre, descripcion, es_perecedero, created_at
		FROM product_types WHERE id = $1`
	var pt entity.ProductType
	err := r.q.QueryRow(ctx, query, id).Scan(&pt.ID, &pt.Nombre, &pt.Descripcion, &pt.EsPerecedero, &pt.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product type: %w", err)
	}
	return &pt, nil
}

// List tipos de producto (catálogo global).
func (r *ProductTypeRepo) List(ctx context.Context, limit, offset int) ([]*entity.ProductType, error) {
	query := `
		SELECT id, nombre, descripcion, es_perecedero, created_at
		FROM product_types ORDER BY nombre, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list product types: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProductType
	for rows.Next() {
		var pt entity.ProductType
		if err := rows.Scan(&pt.ID, &pt.Nombre, &pt.Descripcion, &pt.EsPerecedero, &pt.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product type: %w", err)
		}
		list = append(list, &pt)
	}
	return list, rows.Err()
}

// Delete elimina el tipo. El FK de products es ON DELETE SET NULL: los
// productos quedan sin tipo, nunca se eliminan en cascada.
func (r *ProductTypeRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM product_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product type: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
