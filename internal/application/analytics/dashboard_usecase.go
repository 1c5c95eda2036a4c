// Package analytics contiene los casos de uso de solo lectura para los KPIs
// del dashboard de inventario.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/ignaciodev/inventario-api/internal/application/dto"
	"github.com/ignaciodev/inventario-api/internal/domain"
	"github.com/ignaciodev/inventario-api/internal/domain/repository"
)

const (
	criticalStockThreshold = 10 // umbral fijo de stock crítico
	expiryWindowDays       = 7  // ventana de alerta de vencimiento
)

// DashboardUseCase genera los contadores del dashboard para un tenant.
//
// Fuente de datos: DashboardRepository (consultas read-only sobre productos
// y libro de movimientos).
type DashboardUseCase struct {
	dashRepo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashRepo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{dashRepo: dashRepo}
}

// GetStats construye el DashboardStatsDTO del scope indicado.
//
// Cuatro consultas en paralelo:
//  1. CountProducts            → total_productos
//  2. CountCriticalStock (≤10) → stock_critico
//  3. CountExpiring (7 días)   → por_vencer
//  4. CountMovementsBetween    → movimientos_hoy
func (uc *DashboardUseCase) GetStats(ctx context.Context, scope domain.TenantScope) (*dto.DashboardStatsDTO, error) {
	if scope.Empty() {
		return &dto.DashboardStatsDTO{}, nil
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24 * time.Hour)
	expiryLimit := todayStart.AddDate(0, 0, expiryWindowDays)

	type countResult struct {
		n   int64
		err error
	}
	totalCh := make(chan countResult, 1)
	criticalCh := make(chan countResult, 1)
	expiringCh := make(chan countResult, 1)
	todayCh := make(chan countResult, 1)

	go func() {
		n, err := uc.dashRepo.CountProducts(ctx, scope)
		totalCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.dashRepo.CountCriticalStock(ctx, scope, criticalStockThreshold)
		criticalCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.dashRepo.CountExpiring(ctx, scope, todayStart, expiryLimit)
		expiringCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.dashRepo.CountMovementsBetween(ctx, scope, todayStart, todayEnd)
		todayCh <- countResult{n, err}
	}()

	total := <-totalCh
	critical := <-criticalCh
	expiring := <-expiringCh
	today := <-todayCh

	if total.err != nil {
		return nil, fmt.Errorf("dashboard: total productos: %w", total.err)
	}
	if critical.err != nil {
		return nil, fmt.Errorf("dashboard: stock crítico: %w", critical.err)
	}
	if expiring.err != nil {
		return nil, fmt.Errorf("dashboard: por vencer: %w", expiring.err)
	}
	if today.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos de hoy: %w", today.err)
	}

	return &dto.DashboardStatsDTO{
		TotalProductos: total.n,
		StockCritico:   critical.n,
		PorVencer:      expiring.n,
		MovimientosHoy: today.n,
	}, nil
}
