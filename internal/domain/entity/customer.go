package entity

import "time"

// Customer cliente final de una empresa (directorio comercial, sin relación
// con el libro de movimientos).
type Customer struct {
	ID        string
	CompanyID string
	RUN       string
	Nombre    string
	Edad      *int
	Telefono  string
	CreatedAt time.Time
}
