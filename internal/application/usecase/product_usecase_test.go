package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignaciodev/inventario-api/internal/application/dto"
	"github.com/ignaciodev/inventario-api/internal/application/usecase"
	"github.com/ignaciodev/inventario-api/internal/domain"
	"github.com/ignaciodev/inventario-api/internal/domain/entity"
	"github.com/ignaciodev/inventario-api/internal/domain/repository"
)

const testCompanyID = "00000000-0000-0000-0000-000000000002"

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba
// ──────────────────────────────────────────────────────────────────────────────

type productRepoStub struct {
	byID    map[string]*entity.Product
	created *entity.Product
	updated *entity.Product
}

func newProductRepoStub(products ...*entity.Product) *productRepoStub {
	s := &productRepoStub{byID: make(map[string]*entity.Product)}
	for _, p := range products {
		s.byID[p.ID] = p
	}
	return s
}

func (s *productRepoStub) Create(_ context.Context, p *entity.Product) error {
	s.created = p
	s.byID[p.ID] = p
	return nil
}

func (s *productRepoStub) GetByID(_ context.Context, scope domain.TenantScope, id string) (*entity.Product, error) {
	p, ok := s.byID[id]
	if !ok || !scope.Allows(p.CompanyID) {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *productRepoStub) List(context.Context, domain.TenantScope, repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}

func (s *productRepoStub) Update(_ context.Context, p *entity.Product) error {
	s.updated = p
	s.byID[p.ID] = p
	return nil
}

func (s *productRepoStub) Delete(context.Context, domain.TenantScope, string) error { return nil }
func (s *productRepoStub) GetForUpdate(context.Context, string) (*entity.Product, error) {
	return nil, nil
}
func (s *productRepoStub) UpdateStock(context.Context, string, int64) error { return nil }

type typeRepoStub struct{ byID map[string]*entity.ProductType }

func (s *typeRepoStub) Create(context.Context, *entity.ProductType) error { return nil }
func (s *typeRepoStub) GetByID(_ context.Context, id string) (*entity.ProductType, error) {
	return s.byID[id], nil
}
func (s *typeRepoStub) List(context.Context, int, int) ([]*entity.ProductType, error) {
	return nil, nil
}
func (s *typeRepoStub) Delete(context.Context, string) error { return nil }

func newUC(productRepo *productRepoStub) *usecase.ProductUseCase {
	return usecase.NewProductUseCase(productRepo, &typeRepoStub{byID: map[string]*entity.ProductType{}})
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_CongelaStockInicial(t *testing.T) {
	repo := newProductRepoStub()
	uc := newUC(repo)

	resp, err := uc.Create(context.Background(), domain.ScopeCompany(testCompanyID), dto.CreateProductRequest{
		Codigo:      "ARR-001",
		Nombre:      "Arroz grado 1",
		PrecioVenta: decimal.NewFromInt(1890),
		StockActual: 80,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(80), resp.StockActual)
	require.NotNil(t, repo.created)
	assert.Equal(t, int64(80), repo.created.StockInicial, "el saldo de apertura queda congelado")
	assert.Equal(t, int64(80), repo.created.StockActual)
	assert.Equal(t, testCompanyID, repo.created.CompanyID, "el producto nace en la empresa del caller")
}

// Crear exige una empresa concreta: ni superusuario global ni scope vacío.
func TestProductCreate_RequiereEmpresaConcreta(t *testing.T) {
	uc := newUC(newProductRepoStub())
	in := dto.CreateProductRequest{Codigo: "ARR-001", Nombre: "Arroz"}

	_, err := uc.Create(context.Background(), domain.ScopeAll(), in)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Create(context.Background(), domain.ScopeNone(), in)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestProductCreate_Validacion(t *testing.T) {
	uc := newUC(newProductRepoStub())
	scope := domain.ScopeCompany(testCompanyID)

	_, err := uc.Create(context.Background(), scope, dto.CreateProductRequest{
		Codigo:      "",
		Nombre:      "  ",
		PrecioVenta: decimal.NewFromInt(-1),
		StockActual: -3,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 4, "código, nombre, precio y stock inválidos a la vez")
}

func TestProductCreate_TipoInexistente(t *testing.T) {
	uc := newUC(newProductRepoStub())
	tipo := "no-existe"

	_, err := uc.Create(context.Background(), domain.ScopeCompany(testCompanyID), dto.CreateProductRequest{
		Codigo: "ARR-001",
		Nombre: "Arroz",
		Tipo:   &tipo,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

// El update de producto jamás toca el stock: ese camino es exclusivo del
// motor de inventario.
func TestProductUpdate_NoTocaElStock(t *testing.T) {
	existing := &entity.Product{
		ID:           "p1",
		CompanyID:    testCompanyID,
		Codigo:       "ARR-001",
		Nombre:       "Arroz grado 1",
		StockInicial: 100,
		StockActual:  73,
		StockMinimo:  10,
	}
	repo := newProductRepoStub(existing)
	uc := newUC(repo)

	resp, err := uc.Update(context.Background(), domain.ScopeCompany(testCompanyID), "p1", dto.UpdateProductRequest{
		Nombre:      "Arroz grado 1 premium",
		PrecioVenta: decimal.NewFromInt(2100),
		StockMinimo: 15,
	})
	require.NoError(t, err)

	assert.Equal(t, "Arroz grado 1 premium", resp.Nombre)
	assert.Equal(t, int64(73), resp.StockActual, "stock_actual intacto tras el update")
	require.NotNil(t, repo.updated)
	assert.Equal(t, int64(73), repo.updated.StockActual)
	assert.Equal(t, int64(100), repo.updated.StockInicial)
}

func TestProductUpdate_FueraDelScopeEsNotFound(t *testing.T) {
	existing := &entity.Product{ID: "p1", CompanyID: testCompanyID, Codigo: "ARR-001", Nombre: "Arroz"}
	uc := newUC(newProductRepoStub(existing))

	otro := domain.ScopeCompany("00000000-0000-0000-0000-000000000099")
	_, err := uc.Update(context.Background(), otro, "p1", dto.UpdateProductRequest{Nombre: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestProductList_ScopeVacio(t *testing.T) {
	uc := newUC(newProductRepoStub())

	out, err := uc.List(context.Background(), domain.ScopeNone(), dto.ListProductsRequest{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestProductList_OrderingInvalido(t *testing.T) {
	uc := newUC(newProductRepoStub())

	_, err := uc.List(context.Background(), domain.ScopeCompany(testCompanyID), dto.ListProductsRequest{
		Ordering: "codigo_barras",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
