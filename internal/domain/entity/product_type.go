package entity

import "time"

// ProductType categoría de productos (catálogo global, como en el sistema original).
// Al eliminarla, los productos que la referencian quedan con tipo nulo (SET NULL),
// nunca se eliminan en cascada.
type ProductType struct {
	ID           string
	Nombre       string
	Descripcion  string
	EsPerecedero bool // habilita la alerta de vencimiento en el dashboard
	CreatedAt    time.Time
}
