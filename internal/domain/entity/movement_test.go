package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignaciodev/inventario-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// ParseMovementType: el conjunto de tipos es cerrado; cualquier otra cadena
// es un error, sin normalización de mayúsculas ni espacios.
// ──────────────────────────────────────────────────────────────────────────────

func TestParseMovementType_TiposValidos(t *testing.T) {
	cases := map[string]entity.MovementType{
		"ingreso": entity.MovementIngreso,
		"salida":  entity.MovementSalida,
		"ajuste":  entity.MovementAjuste,
	}
	for raw, want := range cases {
		got, err := entity.ParseMovementType(raw)
		require.NoError(t, err, "el tipo %q debe parsearse", raw)
		assert.Equal(t, want, got)
	}
}

func TestParseMovementType_TiposInvalidos(t *testing.T) {
	for _, raw := range []string{"", "entrada", "INGRESO", "Salida", " ajuste", "devolucion"} {
		_, err := entity.ParseMovementType(raw)
		assert.Error(t, err, "el tipo %q debe rechazarse", raw)
	}
}

// Delta codifica la dirección del movimiento: ingreso suma, salida y ajuste
// restan. El ajuste es solo-resta: una corrección al alza se registra como
// ingreso.
func TestMovementType_Delta(t *testing.T) {
	assert.Equal(t, int64(50), entity.MovementIngreso.Delta(50))
	assert.Equal(t, int64(-50), entity.MovementSalida.Delta(50))
	assert.Equal(t, int64(-50), entity.MovementAjuste.Delta(50))
}

func TestMovementType_Valid(t *testing.T) {
	assert.True(t, entity.MovementIngreso.Valid())
	assert.True(t, entity.MovementSalida.Valid())
	assert.True(t, entity.MovementAjuste.Valid())
	assert.False(t, entity.MovementType("devolucion").Valid())
	assert.False(t, entity.MovementType("").Valid())
}
