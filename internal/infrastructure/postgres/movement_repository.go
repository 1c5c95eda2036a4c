package postgres

import (
	"context"
	"fmt"

	"github.com/ignaciodev/inventario-api/internal/domain"
	"github.com/ignaciodev/inventario-api/internal/domain/entity"
	"github.com/ignaciodev/inventario-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL (usable
// con pool o tx). La tabla movements es append-only: este adaptador no
// expone UPDATE ni DELETE.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta la entrada del libro. El id (identity) y fecha_hora (now())
// los asigna el servidor; se devuelven al caller vía RETURNING.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	query := `
		INSERT INTO movements (product_id, tipo, cantidad)
		VALUES ($1, $2, $3)
		RETURNING id, fecha_hora`
	err := r.q.QueryRow(ctx, query,
		movement.ProductID, string(movement.Tipo), movement.Cantidad,
	).Scan(&movement.ID, &movement.FechaHora)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// List consulta el libro con filtros y scope de tenant (vía la propiedad del
// producto). Orden por defecto: fecha_hora descendente; id como desempate
// para que la secuencia sea estable.
func (r *MovementRepo) List(ctx context.Context, scope domain.TenantScope, filter repository.MovementFilter) ([]*repository.MovementWithProduct, error) {
	if scope.Empty() {
		return nil, nil
	}
	query := `
		SELECT m.id, m.product_id, m.tipo, m.cantidad, m.fecha_hora, p.nombre, p.codigo
		FROM movements m
		JOIN products p ON p.id = m.product_id
		WHERE ($1::uuid IS NULL OR p.company_id = $1::uuid)`
	args := []any{scopeParam(scope)}
	pos := 2

	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND m.product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.Tipo != "" {
		query += fmt.Sprintf(" AND m.tipo = $%d", pos)
		args = append(args, string(filter.Tipo))
		pos++
	}
	if filter.FechaInicio != nil {
		query += fmt.Sprintf(" AND m.fecha_hora >= $%d", pos)
		args = append(args, *filter.FechaInicio)
		pos++
	}
	if filter.FechaFin != nil {
		query += fmt.Sprintf(" AND m.fecha_hora <= $%d", pos)
		args = append(args, *filter.FechaFin)
		pos++
	}
	if filter.Search != "" {
		query += fmt.Sprintf(" AND (p.nombre ILIKE ANY($%d) OR p.codigo ILIKE ANY($%d))", pos, pos)
		args = append(args, searchPatterns(filter.Search))
		pos++
	}

	orderBy := "m.fecha_hora"
	if filter.OrderBy == "cantidad" {
		orderBy = "m.cantidad"
	}
	dir := "ASC"
	if filter.Desc {
		dir = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s, m.id %s LIMIT $%d OFFSET $%d", orderBy, dir, dir, pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*repository.MovementWithProduct
	for rows.Next() {
		var m repository.MovementWithProduct
		var tipo string
		if err := rows.Scan(&m.ID, &m.ProductID, &tipo, &m.Cantidad, &m.FechaHora,
			&m.ProductoNombre, &m.ProductoCodigo); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.Tipo = entity.MovementType(tipo)
		list = append(list, &m)
	}
	return list, rows.Err()
}

// SalesByProduct total vendido por producto (solo salidas), de mayor a menor.
func (r *MovementRepo) SalesByProduct(ctx context.Context, scope domain.TenantScope) ([]repository.SalesByProductRow, error) {
	if scope.Empty() {
		return nil, nil
	}
	const query = `
		SELECT p.nombre, p.codigo, SUM(m.cantidad) AS total_vendido
		FROM movements m
		JOIN products p ON p.id = m.product_id
		WHERE m.tipo = 'salida' AND ($1::uuid IS NULL OR p.company_id = $1::uuid)
		GROUP BY p.id, p.nombre, p.codigo
		ORDER BY total_vendido DESC`
	rows, err := r.q.Query(ctx, query, scopeParam(scope))
	if err != nil {
		return nil, fmt.Errorf("sales by product: %w", err)
	}
	defer rows.Close()

	var list []repository.SalesByProductRow
	for rows.Next() {
		var row repository.SalesByProductRow
		if err := rows.Scan(&row.NombreProducto, &row.Codigo, &row.TotalVendido); err != nil {
			return nil, fmt.Errorf("scan sales row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// SalesSummary operaciones y unidades vendidas por día calendario, fecha
// descendente.
func (r *MovementRepo) SalesSummary(ctx context.Context, scope domain.TenantScope) ([]repository.SalesSummaryRow, error) {
	if scope.Empty() {
		return nil, nil
	}
	const query = `
		SELECT date_trunc('day', m.fecha_hora) AS fecha,
		       COUNT(m.id) AS n_operaciones,
		       SUM(m.cantidad) AS total_venta
		FROM movements m
		JOIN products p ON p.id = m.product_id
		WHERE m.tipo = 'salida' AND ($1::uuid IS NULL OR p.company_id = $1::uuid)
		GROUP BY fecha
		ORDER BY fecha DESC`
	rows, err := r.q.Query(ctx, query, scopeParam(scope))
	if err != nil {
		return nil, fmt.Errorf("sales summary: %w", err)
	}
	defer rows.Close()

	var list []repository.SalesSummaryRow
	for rows.Next() {
		var row repository.SalesSummaryRow
		if err := rows.Scan(&row.Fecha, &row.NOperaciones, &row.TotalVenta); err != nil {
			return nil, fmt.Errorf("scan summary row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// ProductBalances compara la proyección con el fold del libro por producto:
// stock_inicial + Σ(ingreso: +cantidad; salida/ajuste: -cantidad).
func (r *MovementRepo) ProductBalances(ctx context.Context) ([]repository.ProductBalanceRow, error) {
	const query = `
		SELECT p.id, p.codigo, p.stock_actual,
		       p.stock_inicial + COALESCE(SUM(
		           CASE WHEN m.tipo = 'ingreso' THEN m.cantidad ELSE -m.cantidad END
		       ), 0) AS ledger_sum
		FROM products p
		LEFT JOIN movements m ON m.product_id = p.id
		GROUP BY p.id, p.codigo, p.stock_actual, p.stock_inicial`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("product balances: %w", err)
	}
	defer rows.Close()

	var list []repository.ProductBalanceRow
	for rows.Next() {
		var row repository.ProductBalanceRow
		if err := rows.Scan(&row.ProductID, &row.Codigo, &row.StockActual, &row.LedgerSum); err != nil {
			return nil, fmt.Errorf("scan balance row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
