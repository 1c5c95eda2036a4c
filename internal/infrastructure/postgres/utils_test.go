package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/ignaciodev/inventario-api/internal/domain"
)

func TestFoldAccents(t *testing.T) {
	cases := map[string]string{
		"almacén":   "almacen",
		"AZÚCAR":    "AZUCAR",
		"ñandú":     "nandu",
		"sin-tilde": "sin-tilde",
		"":          "",
	}
	for in, want := range cases {
		assert.Equal(t, want, foldAccents(in), "plegado de %q", in)
	}
}

func TestSearchPatterns(t *testing.T) {
	// Término con acento: patrón literal más el plegado.
	assert.Equal(t, []string{"%almacén%", "%almacen%"}, searchPatterns(" almacén "))
	// Sin acentos no se duplica el patrón.
	assert.Equal(t, []string{"%arroz%"}, searchPatterns("arroz"))
}

func TestMapLockError(t *testing.T) {
	lockErr := &pgconn.PgError{Code: "55P03"}
	assert.ErrorIs(t, mapLockError(lockErr), domain.ErrLockTimeout)

	otro := errors.New("otro error")
	assert.Equal(t, otro, mapLockError(otro))
	assert.Nil(t, mapLockError(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("no es pg")))
}
