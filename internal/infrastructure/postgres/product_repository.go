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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL (usable
// con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, company_id, type_id, codigo, nombre, fecha_vencimiento,
	precio_venta, precio_compra, stock_inicial, stock_actual, stock_minimo, created_at, updated_at`

// scopeParam devuelve el company_id del scope como parámetro SQL: nil para
// superusuario (sin filtro). Los scopes vacíos deben cortarse antes de llegar aquí.
func scopeParam(scope domain.TenantScope) *string {
	if scope.All {
		return nil
	}
	id := scope.CompanyID
	return &id
}

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.CompanyID, product.TypeID, product.Codigo, product.Nombre,
		product.FechaVencimiento, product.PrecioVenta, product.PrecioCompra,
		product.StockInicial, product.StockActual, product.StockMinimo,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto visible en el scope. Un producto de otro tenant
// se comporta como inexistente.
func (r *ProductRepo) GetByID(ctx context.Context, scope domain.TenantScope, id string) (*entity.Product, error) {
	if scope.Empty() {
		return nil, nil
	}
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE id = $1 AND ($2::uuid IS NULL OR company_id = $2::uuid)`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id, scopeParam(scope)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) y devuelve su
// estado fresco. El caller ya validó el scope; aquí solo importa serializar.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE id = $1
		FOR UPDATE`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return p, nil
}

// UpdateStock escribe la proyección de stock. Solo el motor de inventario
// llama este método, siempre con la fila ya bloqueada.
func (r *ProductRepo) UpdateStock(ctx context.Context, productID string, stockActual int64) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET stock_actual = $2, updated_at = now() WHERE id = $1`,
		productID, stockActual,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// Update actualiza los campos editables. No toca stock_inicial ni stock_actual.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET nombre = $2, type_id = $3, fecha_vencimiento = $4, precio_venta = $5,
		    precio_compra = $6, stock_minimo = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Nombre, product.TypeID, product.FechaVencimiento,
		product.PrecioVenta, product.PrecioCompra, product.StockMinimo, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista productos del scope con búsqueda (nombre/código, acentos
// plegados) y orden estable.
func (r *ProductRepo) List(ctx context.Context, scope domain.TenantScope, filter repository.ProductFilter) ([]*entity.Product, error) {
	if scope.Empty() {
		return nil, nil
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE ($1::uuid IS NULL OR company_id = $1::uuid)`
	args := []any{scopeParam(scope)}
	pos := 2

	if filter.Search != "" {
		query += fmt.Sprintf(" AND (nombre ILIKE ANY($%d) OR codigo ILIKE ANY($%d))", pos, pos)
		args = append(args, searchPatterns(filter.Search))
		pos++
	}

	orderBy := "nombre"
	switch filter.OrderBy {
	case "codigo", "stock_actual", "precio_venta":
		orderBy = filter.OrderBy
	}
	dir := "ASC"
	if filter.Desc {
		dir = "DESC"
	}
	// id como desempate: mismo filtro, misma secuencia.
	query += fmt.Sprintf(" ORDER BY %s %s, id LIMIT $%d OFFSET $%d", orderBy, dir, pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete elimina un producto del scope; los movimientos caen en cascada (FK).
func (r *ProductRepo) Delete(ctx context.Context, scope domain.TenantScope, id string) error {
	if scope.Empty() {
		return domain.ErrNotFound
	}
	cmd, err := r.q.Exec(ctx,
		`DELETE FROM products WHERE id = $1 AND ($2::uuid IS NULL OR company_id = $2::uuid)`,
		id, scopeParam(scope),
	)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.TypeID, &p.Codigo, &p.Nombre, &p.FechaVencimiento,
		&p.PrecioVenta, &p.PrecioCompra, &p.StockInicial, &p.StockActual, &p.StockMinimo,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
