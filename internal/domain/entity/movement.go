package entity

import (
	"fmt"
	"time"
)

// MovementType tipo cerrado de movimiento de inventario.
// El signo del delta lo decide Delta(), nunca el caller: la cantidad siempre
// viaja positiva y la dirección la codifica el tipo.
type MovementType string

const (
	MovementIngreso MovementType = "ingreso" // entrada de stock
	MovementSalida  MovementType = "salida"  // salida (venta)
	MovementAjuste  MovementType = "ajuste"  // ajuste: siempre resta (merma, corrección a la baja)
)

// ParseMovementType valida y normaliza el tipo recibido por la API.
func ParseMovementType(s string) (MovementType, error) {
	switch MovementType(s) {
	case MovementIngreso:
		return MovementIngreso, nil
	case MovementSalida:
		return MovementSalida, nil
	case MovementAjuste:
		return MovementAjuste, nil
	default:
		return "", fmt.Errorf("tipo_movimiento desconocido: %q", s)
	}
}

// Delta devuelve el efecto con signo del movimiento sobre el stock.
// ingreso: +cantidad; salida y ajuste: -cantidad.
func (t MovementType) Delta(cantidad int64) int64 {
	switch t {
	case MovementIngreso:
		return cantidad
	case MovementSalida, MovementAjuste:
		return -cantidad
	}
	return 0
}

// Valid indica si el tipo es uno de los tres reconocidos.
func (t MovementType) Valid() bool {
	switch t {
	case MovementIngreso, MovementSalida, MovementAjuste:
		return true
	}
	return false
}

// Movement una entrada inmutable del libro de movimientos de un producto.
// Se crea una sola vez (append-only); nunca se actualiza ni se borra salvo
// el cascade al eliminar el producto.
type Movement struct {
	ID        int64        // BIGINT identity: orden de inserción en el libro
	ProductID string
	Tipo      MovementType
	Cantidad  int64     // siempre > 0
	FechaHora time.Time // asignada por el servidor al crear
}
