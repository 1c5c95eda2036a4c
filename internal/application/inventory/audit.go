package inventory

import (
	"context"

	"github.com/ignaciodev/inventario-api/internal/domain/repository"
	"github.com/ignaciodev/inventario-api/pkg/logger"
)

// AuditUseCase verifica que la proyección stock_actual de cada producto
// coincida con el fold del libro (suma de deltas con signo). Es solo
// detección: registra divergencias, no las corrige.
//
// Se ejecuta como job nocturno programado desde cmd/api.
type AuditUseCase struct {
	movRepo repository.MovementRepository
	log     *logger.Logger
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(movRepo repository.MovementRepository, log *logger.Logger) *AuditUseCase {
	return &AuditUseCase{movRepo: movRepo, log: log}
}

// Audit recalcula los saldos del libro y devuelve los productos divergentes.
func (uc *AuditUseCase) Audit(ctx context.Context) ([]repository.ProductBalanceRow, error) {
	balances, err := uc.movRepo.ProductBalances(ctx)
	if err != nil {
		return nil, err
	}

	var divergent []repository.ProductBalanceRow
	for _, b := range balances {
		if b.StockActual != b.LedgerSum {
			divergent = append(divergent, b)
			uc.log.Error().
				Str("product_id", b.ProductID).
				Str("codigo", b.Codigo).
				Int64("stock_actual", b.StockActual).
				Int64("suma_libro", b.LedgerSum).
				Msg("proyección divergente del libro de movimientos")
		}
	}
	if len(divergent) == 0 {
		uc.log.Info().Int("productos", len(balances)).Msg("auditoría de consistencia sin divergencias")
	}
	return divergent, nil
}
