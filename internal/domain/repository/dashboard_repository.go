package repository

import (
	"context"
	"time"

	"github.com/ignaciodev/inventario-api/internal/domain"
)

// DashboardRepository consultas de solo lectura para los KPIs del dashboard.
// Consumen el estado del libro y la proyección sin imponer invariantes propios.
type DashboardRepository interface {
	// CountProducts total de productos visibles en el scope.
	CountProducts(ctx context.Context, scope domain.TenantScope) (int64, error)
	// CountCriticalStock productos con stock_actual <= threshold.
	CountCriticalStock(ctx context.Context, scope domain.TenantScope, threshold int64) (int64, error)
	// CountExpiring productos perecederos con vencimiento en [from, to].
	CountExpiring(ctx context.Context, scope domain.TenantScope, from, to time.Time) (int64, error)
	// CountMovementsBetween movimientos registrados en [from, to).
	CountMovementsBetween(ctx context.Context, scope domain.TenantScope, from, to time.Time) (int64, error)
}
