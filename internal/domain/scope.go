package domain

// TenantScope delimita qué datos puede ver/modificar un caller.
// Es un valor explícito que se pasa a cada consulta: reemplaza la detección
// implícita de "sin empresa" por un comportamiento definido (resultados vacíos
// en lecturas, ErrForbidden en escrituras).
type TenantScope struct {
	All       bool   // superusuario: sin restricción de empresa
	CompanyID string // empresa del empleado; vacío y !All = sin datos accesibles
}

// ScopeAll acceso a todos los tenants (superusuario).
func ScopeAll() TenantScope { return TenantScope{All: true} }

// ScopeCompany acceso restringido a una empresa.
func ScopeCompany(companyID string) TenantScope { return TenantScope{CompanyID: companyID} }

// ScopeNone usuario sin empresa asociada: ninguna fila es visible.
func ScopeNone() TenantScope { return TenantScope{} }

// Empty indica que el scope no da acceso a ningún dato.
func (s TenantScope) Empty() bool { return !s.All && s.CompanyID == "" }

// Allows indica si el scope permite operar sobre recursos de companyID.
func (s TenantScope) Allows(companyID string) bool {
	return s.All || (s.CompanyID != "" && s.CompanyID == companyID)
}
