package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignaciodev/inventario-api/internal/application/analytics"
	"github.com/ignaciodev/inventario-api/internal/domain"
)

const testCompanyID = "00000000-0000-0000-0000-000000000002"

type dashStub struct {
	total, critical, expiring, today int64
	failCritical                     bool

	gotThreshold        int64
	gotExpiryFrom       time.Time
	gotExpiryTo         time.Time
	gotMovementsFrom    time.Time
	gotMovementsTo      time.Time
}

func (s *dashStub) CountProducts(context.Context, domain.TenantScope) (int64, error) {
	return s.total, nil
}

func (s *dashStub) CountCriticalStock(_ context.Context, _ domain.TenantScope, threshold int64) (int64, error) {
	s.gotThreshold = threshold
	if s.failCritical {
		return 0, errors.New("count critical: conexión perdida")
	}
	return s.critical, nil
}

func (s *dashStub) CountExpiring(_ context.Context, _ domain.TenantScope, from, to time.Time) (int64, error) {
	s.gotExpiryFrom, s.gotExpiryTo = from, to
	return s.expiring, nil
}

func (s *dashStub) CountMovementsBetween(_ context.Context, _ domain.TenantScope, from, to time.Time) (int64, error) {
	s.gotMovementsFrom, s.gotMovementsTo = from, to
	return s.today, nil
}

func TestGetStats_CombinaContadores(t *testing.T) {
	repo := &dashStub{total: 42, critical: 5, expiring: 3, today: 17}
	uc := analytics.NewDashboardUseCase(repo)

	stats, err := uc.GetStats(context.Background(), domain.ScopeCompany(testCompanyID))
	require.NoError(t, err)

	assert.Equal(t, int64(42), stats.TotalProductos)
	assert.Equal(t, int64(5), stats.StockCritico)
	assert.Equal(t, int64(3), stats.PorVencer)
	assert.Equal(t, int64(17), stats.MovimientosHoy)

	// Parámetros de las consultas: umbral fijo de 10, ventana de vencimiento
	// de siete días y movimientos del día calendario en curso.
	assert.Equal(t, int64(10), repo.gotThreshold)
	assert.Equal(t, repo.gotExpiryFrom.AddDate(0, 0, 7), repo.gotExpiryTo)
	assert.Equal(t, 24*time.Hour, repo.gotMovementsTo.Sub(repo.gotMovementsFrom))
	assert.Equal(t, 0, repo.gotMovementsFrom.Hour(), "el rango de hoy parte a medianoche")
}

func TestGetStats_ScopeVacioDevuelveCeros(t *testing.T) {
	repo := &dashStub{total: 42}
	uc := analytics.NewDashboardUseCase(repo)

	stats, err := uc.GetStats(context.Background(), domain.ScopeNone())
	require.NoError(t, err)
	assert.Zero(t, *stats, "un usuario sin empresa ve el panel en cero")
	assert.Zero(t, repo.gotThreshold, "no debe consultarse el repositorio")
}

func TestGetStats_PropagaErrores(t *testing.T) {
	repo := &dashStub{failCritical: true}
	uc := analytics.NewDashboardUseCase(repo)

	_, err := uc.GetStats(context.Background(), domain.ScopeCompany(testCompanyID))
	assert.Error(t, err)
}
