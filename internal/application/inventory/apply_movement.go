package inventory

import (
	"context"

	"github.com/ignaciodev/inventario-api/internal/domain"
	"github.com/ignaciodev/inventario-api/internal/domain/entity"
	"github.com/ignaciodev/inventario-api/internal/domain/repository"
)

// ApplyMovementUseCase es el único camino autorizado para cambiar el
// stock_actual de un producto. Serializa las escrituras por producto con un
// bloqueo de fila (SELECT FOR UPDATE) y registra cada cambio como una entrada
// inmutable del libro, dentro de la misma transacción.
type ApplyMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewApplyMovementUseCase construye el caso de uso.
func NewApplyMovementUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *ApplyMovementUseCase {
	return &ApplyMovementUseCase{txRunner: txRunner, productRepo: productRepo}
}

// ApplyMovementInput entrada para registrar un movimiento.
// Cantidad siempre positiva; la dirección la codifica Tipo.
type ApplyMovementInput struct {
	ProductoID string
	Tipo       string
	Cantidad   int64
}

// Apply valida, bloquea la fila del producto, revalida bajo el lock y aplica
// el delta junto con el append al libro en una sola transacción.
//
// La comprobación previa al lock es solo un fail-fast: el valor puede quedar
// obsoleto entre la lectura y el lock. La garantía real es la revalidación
// con el valor recién bloqueado dentro de la transacción.
func (uc *ApplyMovementUseCase) Apply(ctx context.Context, scope domain.TenantScope, in ApplyMovementInput) (*entity.Movement, error) {
	tipo, verr := validateInput(in)
	if verr != nil {
		return nil, verr
	}

	// Escrituras exigen un caller con tenant resoluble.
	if scope.Empty() {
		return nil, domain.ErrForbidden
	}

	// Resolver el producto dentro del scope del caller. Un producto de otro
	// tenant se reporta como no encontrado, nunca como prohibido.
	product, err := uc.productRepo.GetByID(ctx, scope, in.ProductoID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	// Comprobación preliminar sin lock (optimista, no autoritativa).
	if product.StockActual+tipo.Delta(in.Cantidad) < 0 {
		return nil, domain.ErrInsufficientStock
	}

	var created *entity.Movement
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto: apply concurrentes sobre el mismo
		// producto esperan aquí, en orden de concesión del lock.
		locked, err := productRepo.GetForUpdate(ctx, product.ID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}

		// Revalidación con el valor fresco: esta es la garantía de no-negativo.
		newStock := locked.StockActual + tipo.Delta(in.Cantidad)
		if newStock < 0 {
			return domain.ErrInsufficientStock
		}

		if err := productRepo.UpdateStock(ctx, locked.ID, newStock); err != nil {
			return err
		}

		mov := &entity.Movement{
			ProductID: locked.ID,
			Tipo:      tipo,
			Cantidad:  in.Cantidad,
		}
		// El INSERT completa ID y FechaHora (asignados por el servidor).
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		created = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// validateInput aplica las reglas de entrada previas a cualquier acceso a BD.
func validateInput(in ApplyMovementInput) (entity.MovementType, *domain.ValidationError) {
	var verr *domain.ValidationError
	if in.ProductoID == "" {
		verr = appendField(verr, "producto", "el producto es obligatorio")
	}
	tipo, err := entity.ParseMovementType(in.Tipo)
	if err != nil {
		verr = appendField(verr, "tipo_movimiento", "tipo inválido (ingreso, salida o ajuste)")
	}
	if in.Cantidad <= 0 {
		verr = appendField(verr, "cantidad", "la cantidad debe ser mayor que cero")
	}
	if verr != nil {
		return "", verr
	}
	return tipo, nil
}

func appendField(verr *domain.ValidationError, field, message string) *domain.ValidationError {
	if verr == nil {
		return domain.NewValidationError(field, message)
	}
	return verr.Add(field, message)
}
