package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignaciodev/inventario-api/internal/application/inventory"
	"github.com/ignaciodev/inventario-api/internal/domain"
	"github.com/ignaciodev/inventario-api/internal/domain/entity"
	"github.com/ignaciodev/inventario-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba
//
// fakeStore simula la base con un mutex en el papel del lock de fila: Run
// serializa las transacciones y ante error restaura el snapshot (rollback).
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	mu        sync.Mutex
	products  map[string]*entity.Product
	movements []*entity.Movement
	nextMovID int64

	// staleStock hace que GetByID (lectura sin lock) devuelva un stock
	// desactualizado, simulando una escritura concurrente entre la lectura
	// optimista y la toma del lock.
	staleStock map[string]int64
	// failMovementInsert fuerza el fallo del append al libro dentro de la tx.
	failMovementInsert bool
}

func newFakeStore(products ...*entity.Product) *fakeStore {
	s := &fakeStore{
		products:   make(map[string]*entity.Product),
		staleStock: make(map[string]int64),
	}
	for _, p := range products {
		cp := *p
		s.products[p.ID] = &cp
	}
	return s
}

func (s *fakeStore) stockOf(id string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id].StockActual
}

// ledgerSum reproduce el pliegue del libro: stock_inicial + suma de deltas.
func (s *fakeStore) ledgerSum(id string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	sum := s.products[id].StockInicial
	for _, m := range s.movements {
		if m.ProductID == id {
			sum += m.Tipo.Delta(m.Cantidad)
		}
	}
	return sum
}

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(context.Context, *entity.Product) error { return nil }
func (r *fakeProductRepo) Update(context.Context, *entity.Product) error { return nil }
func (r *fakeProductRepo) Delete(context.Context, domain.TenantScope, string) error {
	return nil
}
func (r *fakeProductRepo) List(context.Context, domain.TenantScope, repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, scope domain.TenantScope, id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok || !scope.Allows(p.CompanyID) {
		return nil, nil
	}
	cp := *p
	if stale, ok := r.s.staleStock[id]; ok {
		cp.StockActual = stale
	}
	return &cp, nil
}

// GetForUpdate se invoca con el mutex de la tx ya tomado: devuelve el valor
// fresco, como haría SELECT FOR UPDATE.
func (r *fakeProductRepo) GetForUpdate(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) UpdateStock(_ context.Context, id string, stockActual int64) error {
	r.s.products[id].StockActual = stockActual
	return nil
}

type fakeMovementRepo struct{ s *fakeStore }

var errInsertFailed = errors.New("insert movements: conexión perdida")

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	if r.s.failMovementInsert {
		return errInsertFailed
	}
	r.s.nextMovID++
	m.ID = r.s.nextMovID
	m.FechaHora = time.Now()
	r.s.movements = append(r.s.movements, m)
	return nil
}

func (r *fakeMovementRepo) List(context.Context, domain.TenantScope, repository.MovementFilter) ([]*repository.MovementWithProduct, error) {
	return nil, nil
}
func (r *fakeMovementRepo) SalesByProduct(context.Context, domain.TenantScope) ([]repository.SalesByProductRow, error) {
	return nil, nil
}
func (r *fakeMovementRepo) SalesSummary(context.Context, domain.TenantScope) ([]repository.SalesSummaryRow, error) {
	return nil, nil
}
func (r *fakeMovementRepo) ProductBalances(context.Context) ([]repository.ProductBalanceRow, error) {
	return nil, nil
}

type fakeTxRunner struct{ s *fakeStore }

func (t *fakeTxRunner) Run(_ context.Context, fn func(repository.MovementRepository, repository.ProductRepository) error) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	// Snapshot para simular el rollback.
	snapProducts := make(map[string]*entity.Product, len(t.s.products))
	for id, p := range t.s.products {
		cp := *p
		snapProducts[id] = &cp
	}
	snapMovs := append([]*entity.Movement(nil), t.s.movements...)
	snapNext := t.s.nextMovID

	err := fn(&fakeMovementRepo{s: t.s}, &fakeProductRepo{s: t.s})
	if err != nil {
		t.s.products = snapProducts
		t.s.movements = snapMovs
		t.s.nextMovID = snapNext
	}
	return err
}

const (
	testCompanyID = "00000000-0000-0000-0000-000000000002"
	testProductID = "00000000-0000-0000-0000-000000000010"
)

func newProduct(stock int64) *entity.Product {
	return &entity.Product{
		ID:           testProductID,
		CompanyID:    testCompanyID,
		Codigo:       "ARR-001",
		Nombre:       "Arroz grado 1",
		StockInicial: stock,
		StockActual:  stock,
	}
}

func newUseCase(s *fakeStore) *inventory.ApplyMovementUseCase {
	return inventory.NewApplyMovementUseCase(&fakeTxRunner{s: s}, &fakeProductRepo{s: s})
}

func apply(t *testing.T, uc *inventory.ApplyMovementUseCase, tipo string, cantidad int64) (*entity.Movement, error) {
	t.Helper()
	return uc.Apply(context.Background(), domain.ScopeCompany(testCompanyID), inventory.ApplyMovementInput{
		ProductoID: testProductID,
		Tipo:       tipo,
		Cantidad:   cantidad,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario de referencia: el stock nunca baja de cero y cada cambio queda
// en el libro.
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_SecuenciaDeMovimientos(t *testing.T) {
	store := newFakeStore(newProduct(100))
	uc := newUseCase(store)

	// ingreso 50: 100 -> 150
	mov, err := apply(t, uc, "ingreso", 50)
	require.NoError(t, err)
	assert.Equal(t, int64(150), store.stockOf(testProductID))
	assert.NotZero(t, mov.ID, "el insert debe completar el id")
	assert.False(t, mov.FechaHora.IsZero(), "el insert debe completar fecha_hora")

	// salida 200: rechazada, stock intacto
	_, err = apply(t, uc, "salida", 200)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(150), store.stockOf(testProductID))

	// salida 150: 150 -> 0 (llegar a cero exacto es válido)
	_, err = apply(t, uc, "salida", 150)
	require.NoError(t, err)
	assert.Equal(t, int64(0), store.stockOf(testProductID))

	// salida 1 con stock cero: rechazada
	_, err = apply(t, uc, "salida", 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// ajuste 1 con stock cero: también rechazada (el ajuste resta)
	_, err = apply(t, uc, "ajuste", 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// El libro cuadra con la proyección en todo momento.
	assert.Equal(t, store.stockOf(testProductID), store.ledgerSum(testProductID),
		"stock_actual debe ser igual al pliegue del libro")
	assert.Len(t, store.movements, 2, "solo los movimientos aceptados entran al libro")
}

func TestApply_ValidacionDeEntrada(t *testing.T) {
	store := newFakeStore(newProduct(100))
	uc := newUseCase(store)

	cases := []struct {
		name  string
		in    inventory.ApplyMovementInput
		field string
	}{
		{"producto vacío", inventory.ApplyMovementInput{Tipo: "ingreso", Cantidad: 1}, "producto"},
		{"tipo desconocido", inventory.ApplyMovementInput{ProductoID: testProductID, Tipo: "devolucion", Cantidad: 1}, "tipo_movimiento"},
		{"cantidad cero", inventory.ApplyMovementInput{ProductoID: testProductID, Tipo: "ingreso", Cantidad: 0}, "cantidad"},
		{"cantidad negativa", inventory.ApplyMovementInput{ProductoID: testProductID, Tipo: "salida", Cantidad: -5}, "cantidad"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Apply(context.Background(), domain.ScopeCompany(testCompanyID), tc.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			fields := make([]string, 0, len(verr.Fields))
			for _, f := range verr.Fields {
				fields = append(fields, f.Field)
			}
			assert.Contains(t, fields, tc.field)
		})
	}

	// Nada debe tocar la base ante entrada inválida.
	assert.Equal(t, int64(100), store.stockOf(testProductID))
	assert.Empty(t, store.movements)
}

func TestApply_ScopeVacioEsForbidden(t *testing.T) {
	store := newFakeStore(newProduct(100))
	uc := newUseCase(store)

	_, err := uc.Apply(context.Background(), domain.ScopeNone(), inventory.ApplyMovementInput{
		ProductoID: testProductID,
		Tipo:       "ingreso",
		Cantidad:   1,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestApply_ProductoDeOtroTenant(t *testing.T) {
	store := newFakeStore(newProduct(100))
	uc := newUseCase(store)

	otro := domain.ScopeCompany("00000000-0000-0000-0000-000000000099")
	_, err := uc.Apply(context.Background(), otro, inventory.ApplyMovementInput{
		ProductoID: testProductID,
		Tipo:       "ingreso",
		Cantidad:   1,
	})
	// Cruce de tenant se reporta como inexistente, no como prohibido.
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Si el append al libro falla, la actualización de stock de la misma tx debe
// deshacerse: nunca queda un cambio de proyección sin su entrada en el libro.
func TestApply_RollbackSiFallaElLibro(t *testing.T) {
	store := newFakeStore(newProduct(100))
	store.failMovementInsert = true
	uc := newUseCase(store)

	_, err := apply(t, uc, "salida", 30)
	require.Error(t, err)

	assert.Equal(t, int64(100), store.stockOf(testProductID), "el stock debe quedar como antes de la tx")
	assert.Empty(t, store.movements)
}

// La comprobación previa al lock es solo fail-fast: la decisión vinculante se
// toma con el valor releído bajo el lock. Aquí la lectura optimista ve stock
// de sobra pero otro proceso ya lo drenó.
func TestApply_RevalidacionBajoLock(t *testing.T) {
	for _, tipo := range []string{"salida", "ajuste"} {
		t.Run(tipo, func(t *testing.T) {
			store := newFakeStore(newProduct(10))
			store.staleStock[testProductID] = 100
			uc := newUseCase(store)

			_, err := apply(t, uc, tipo, 50)
			assert.ErrorIs(t, err, domain.ErrInsufficientStock)
			assert.Equal(t, int64(10), store.stockOf(testProductID))
			assert.Empty(t, store.movements)
		})
	}
}

// Bajo concurrencia las salidas se serializan por el lock de fila: con stock
// 100 y veinte salidas de 10, exactamente diez deben aceptarse.
func TestApply_SalidasConcurrentes(t *testing.T) {
	store := newFakeStore(newProduct(100))
	uc := newUseCase(store)

	const workers = 20
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := apply(t, uc, "salida", 10)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, rejected int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrInsufficientStock):
			rejected++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}

	assert.Equal(t, 10, ok, "deben aceptarse exactamente diez salidas")
	assert.Equal(t, 10, rejected)
	assert.Equal(t, int64(0), store.stockOf(testProductID))
	assert.Equal(t, store.stockOf(testProductID), store.ledgerSum(testProductID))
}
