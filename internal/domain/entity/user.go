package entity

import "time"

// User usuario del sistema. Un empleado tiene CompanyID apuntando a su
// empresa; el superusuario opera sin empresa (IsSuperuser) y ve todos los
// tenants. Un usuario sin empresa y sin flag de superusuario no tiene datos
// accesibles.
type User struct {
	ID           string
	Username     string // único
	PasswordHash string // bcrypt; nunca en claro después de persistir
	Nombre       string
	IsSuperuser  bool
	CompanyID    *string // nil = sin empresa asociada
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CompanyIDOrEmpty devuelve la empresa del usuario o cadena vacía.
// El TenantScope se resuelve una vez en el login y viaja en el JWT; las
// consultas nunca vuelven a deducirlo.
func (u *User) CompanyIDOrEmpty() string {
	if u.CompanyID == nil {
		return ""
	}
	return *u.CompanyID
}
