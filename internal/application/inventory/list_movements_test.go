package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignaciodev/inventario-api/internal/application/dto"
	"github.com/ignaciodev/inventario-api/internal/application/inventory"
	"github.com/ignaciodev/inventario-api/internal/domain"
	"github.com/ignaciodev/inventario-api/internal/domain/entity"
	"github.com/ignaciodev/inventario-api/internal/domain/repository"
)

// listRecorder captura el filtro que recibe el repositorio para poder
// inspeccionar la traducción request -> MovementFilter.
type listRecorder struct {
	fakeMovementRepo
	gotFilter repository.MovementFilter
	rows      []*repository.MovementWithProduct
}

func (r *listRecorder) List(_ context.Context, _ domain.TenantScope, filter repository.MovementFilter) ([]*repository.MovementWithProduct, error) {
	r.gotFilter = filter
	return r.rows, nil
}

func listWith(t *testing.T, repo *listRecorder, in dto.ListMovementsRequest) []dto.MovementResponse {
	t.Helper()
	uc := inventory.NewListMovementsUseCase(repo)
	out, err := uc.List(context.Background(), domain.ScopeCompany(testCompanyID), in)
	require.NoError(t, err)
	return out
}

func TestListMovements_DefaultsDeFiltro(t *testing.T) {
	repo := &listRecorder{}
	listWith(t, repo, dto.ListMovementsRequest{})

	assert.Equal(t, "fecha_hora", repo.gotFilter.OrderBy, "orden por defecto: fecha_hora")
	assert.True(t, repo.gotFilter.Desc, "más reciente primero por defecto")
	assert.Equal(t, 20, repo.gotFilter.Limit, "paginación por defecto")
}

func TestListMovements_OrderingAscendente(t *testing.T) {
	repo := &listRecorder{}
	listWith(t, repo, dto.ListMovementsRequest{Ordering: "cantidad"})

	assert.Equal(t, "cantidad", repo.gotFilter.OrderBy)
	assert.False(t, repo.gotFilter.Desc, "sin prefijo - el orden es ascendente")
}

func TestListMovements_FechaFinInclusiva(t *testing.T) {
	repo := &listRecorder{}
	listWith(t, repo, dto.ListMovementsRequest{FechaInicio: "2026-03-01", FechaFin: "2026-03-31"})

	require.NotNil(t, repo.gotFilter.FechaInicio)
	require.NotNil(t, repo.gotFilter.FechaFin)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *repo.gotFilter.FechaInicio)
	// El fin cubre el 31 completo, no solo la medianoche.
	assert.Equal(t, 31, repo.gotFilter.FechaFin.Day())
	assert.Equal(t, 23, repo.gotFilter.FechaFin.Hour())
}

func TestListMovements_RequestInvalido(t *testing.T) {
	uc := inventory.NewListMovementsUseCase(&listRecorder{})
	scope := domain.ScopeCompany(testCompanyID)

	cases := []struct {
		name string
		in   dto.ListMovementsRequest
	}{
		{"tipo desconocido", dto.ListMovementsRequest{Tipo: "devolucion"}},
		{"fecha_inicio mal formada", dto.ListMovementsRequest{FechaInicio: "01-03-2026"}},
		{"fecha_fin mal formada", dto.ListMovementsRequest{FechaFin: "2026/03/31"}},
		{"ordering desconocido", dto.ListMovementsRequest{Ordering: "producto"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.List(context.Background(), scope, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// Un usuario sin empresa no tiene datos accesibles: lista vacía, sin error y
// sin tocar el repositorio.
func TestListMovements_ScopeVacio(t *testing.T) {
	repo := &listRecorder{rows: []*repository.MovementWithProduct{{
		Movement: entity.Movement{ID: 1, Tipo: entity.MovementIngreso, Cantidad: 5},
	}}}
	uc := inventory.NewListMovementsUseCase(repo)

	out, err := uc.List(context.Background(), domain.ScopeNone(), dto.ListMovementsRequest{})
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Zero(t, repo.gotFilter, "con scope vacío no debe consultarse el repositorio")
}

func TestListMovements_MapeaRespuesta(t *testing.T) {
	hora := time.Date(2026, 8, 30, 14, 5, 0, 0, time.UTC)
	repo := &listRecorder{rows: []*repository.MovementWithProduct{{
		Movement: entity.Movement{
			ID:        7,
			ProductID: testProductID,
			Tipo:      entity.MovementSalida,
			Cantidad:  3,
			FechaHora: hora,
		},
		ProductoNombre: "Arroz grado 1",
		ProductoCodigo: "ARR-001",
	}}}

	out := listWith(t, repo, dto.ListMovementsRequest{})
	require.Len(t, out, 1)
	assert.Equal(t, int64(7), out[0].ID)
	assert.Equal(t, "salida", out[0].TipoMovimiento)
	assert.Equal(t, int64(3), out[0].Cantidad)
	assert.Equal(t, testProductID, out[0].Producto)
	assert.Equal(t, "Arroz grado 1", out[0].ProductoNombre)
	assert.Equal(t, "ARR-001", out[0].ProductoCodigo)
	assert.Equal(t, hora, out[0].FechaHora)
}
