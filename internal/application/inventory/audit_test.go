package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignaciodev/inventario-api/internal/application/inventory"
	"github.com/ignaciodev/inventario-api/internal/domain/repository"
	"github.com/ignaciodev/inventario-api/pkg/logger"
)

type balancesStub struct {
	fakeMovementRepo
	balances []repository.ProductBalanceRow
}

func (s *balancesStub) ProductBalances(context.Context) ([]repository.ProductBalanceRow, error) {
	return s.balances, nil
}

func TestAudit_DetectaDivergencias(t *testing.T) {
	repo := &balancesStub{balances: []repository.ProductBalanceRow{
		{ProductID: "p1", Codigo: "ARR-001", StockActual: 120, LedgerSum: 120},
		{ProductID: "p2", Codigo: "LCH-001", StockActual: 36, LedgerSum: 34},
		{ProductID: "p3", Codigo: "FID-001", StockActual: 0, LedgerSum: 0},
	}}
	uc := inventory.NewAuditUseCase(repo, logger.New(logger.Config{Level: "error"}))

	divergent, err := uc.Audit(context.Background())
	require.NoError(t, err)
	require.Len(t, divergent, 1, "solo p2 tiene la proyección descuadrada")
	assert.Equal(t, "p2", divergent[0].ProductID)
}

func TestAudit_SinDivergencias(t *testing.T) {
	repo := &balancesStub{balances: []repository.ProductBalanceRow{
		{ProductID: "p1", Codigo: "ARR-001", StockActual: 50, LedgerSum: 50},
	}}
	uc := inventory.NewAuditUseCase(repo, logger.New(logger.Config{Level: "error"}))

	divergent, err := uc.Audit(context.Background())
	require.NoError(t, err)
	assert.Empty(t, divergent)
}
