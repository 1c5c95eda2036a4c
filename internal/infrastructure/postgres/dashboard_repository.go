package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ignaciodev/inventario-api/internal/domain"
	"github.com/ignaciodev/inventario-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para los KPIs del dashboard.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// CountProducts total de productos visibles en el scope.
func (r *DashboardRepo) CountProducts(ctx context.Context, scope domain.TenantScope) (int64, error) {
	const query = `SELECT COUNT(*) FROM products WHERE ($1::uuid IS NULL OR company_id = $1::uuid)`
	return r.count(ctx, "count products", query, scopeParam(scope))
}

// CountCriticalStock productos con stock_actual <= threshold.
func (r *DashboardRepo) CountCriticalStock(ctx context.Context, scope domain.TenantScope, threshold int64) (int64, error) {
	const query = `
		SELECT COUNT(*) FROM products
		WHERE stock_actual <= $2 AND ($1::uuid IS NULL OR company_id = $1::uuid)`
	return r.count(ctx, "count critical stock", query, scopeParam(scope), threshold)
}

// CountExpiring productos perecederos con vencimiento en [from, to].
func (r *DashboardRepo) CountExpiring(ctx context.Context, scope domain.TenantScope, from, to time.Time) (int64, error) {
	const query = `
		SELECT COUNT(*) FROM products p
		JOIN product_types t ON t.id = p.type_id
		WHERE t.es_perecedero
		  AND p.fecha_vencimiento BETWEEN $2 AND $3
		  AND ($1::uuid IS NULL OR p.company_id = $1::uuid)`
	return r.count(ctx, "count expiring", query, scopeParam(scope), from, to)
}

// CountMovementsBetween movimientos registrados en [from, to).
func (r *DashboardRepo) CountMovementsBetween(ctx context.Context, scope domain.TenantScope, from, to time.Time) (int64, error) {
	const query = `
		SELECT COUNT(*) FROM movements m
		JOIN products p ON p.id = m.product_id
		WHERE m.fecha_hora >= $2 AND m.fecha_hora < $3
		  AND ($1::uuid IS NULL OR p.company_id = $1::uuid)`
	return r.count(ctx, "count movements", query, scopeParam(scope), from, to)
}

func (r *DashboardRepo) count(ctx context.Context, op, query string, args ...any) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}
