package entity

import "time"

// Estados de servicio de una empresa.
const (
	ServicioActivo    = "activo"
	ServicioSuspendido = "suspendido"
)

// Company representa una empresa/tenant del sistema. Cada producto y cada
// empleado pertenecen a exactamente una empresa.
type Company struct {
	ID                  string
	RUT                 string // RUT chileno, único
	RazonSocial         string
	Nombre              string
	Email               string
	Telefono            string
	PlanContratado      string
	EstadoServicio      string // activo, suspendido
	FechaInicioContrato *time.Time
	FechaProximoPago    *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
