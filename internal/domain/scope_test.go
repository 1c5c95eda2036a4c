package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ignaciodev/inventario-api/internal/domain"
)

const testCompanyID = "00000000-0000-0000-0000-000000000002"

func TestTenantScope_Empty(t *testing.T) {
	assert.False(t, domain.ScopeAll().Empty(), "el scope de superusuario no es vacío")
	assert.False(t, domain.ScopeCompany(testCompanyID).Empty())
	assert.True(t, domain.ScopeNone().Empty(), "usuario sin empresa = scope vacío")
}

func TestTenantScope_Allows(t *testing.T) {
	otro := "00000000-0000-0000-0000-000000000099"

	assert.True(t, domain.ScopeAll().Allows(testCompanyID), "superusuario ve cualquier empresa")
	assert.True(t, domain.ScopeCompany(testCompanyID).Allows(testCompanyID))
	assert.False(t, domain.ScopeCompany(testCompanyID).Allows(otro), "empleado no cruza de tenant")
	assert.False(t, domain.ScopeNone().Allows(testCompanyID), "scope vacío no ve nada")
}
