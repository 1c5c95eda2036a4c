package dto

import "time"

// CompanyRequest body de creación/actualización de empresas.
type CompanyRequest struct {
	RUT                 string  `json:"rut_empresa"`
	RazonSocial         string  `json:"razon_social"`
	Nombre              string  `json:"nombre"`
	Email               string  `json:"email"`
	Telefono            string  `json:"telefono"`
	PlanContratado      string  `json:"plan_contratado"`
	EstadoServicio      string  `json:"estado_servicio"`
	FechaInicioContrato *string `json:"fecha_inicio_contrato"` // YYYY-MM-DD
	FechaProximoPago    *string `json:"fecha_proximo_pago"`
}

// CompanyResponse empresa tal como se expone por la API.
type CompanyResponse struct {
	ID                  string    `json:"id"`
	RUT                 string    `json:"rut_empresa"`
	RazonSocial         string    `json:"razon_social"`
	Nombre              string    `json:"nombre"`
	Email               string    `json:"email"`
	Telefono            string    `json:"telefono"`
	PlanContratado      string    `json:"plan_contratado"`
	EstadoServicio      string    `json:"estado_servicio"`
	FechaInicioContrato *string   `json:"fecha_inicio_contrato,omitempty"`
	FechaProximoPago    *string   `json:"fecha_proximo_pago,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

// CustomerRequest body de creación de clientes.
type CustomerRequest struct {
	RUN      string `json:"run"`
	Nombre   string `json:"nombre"`
	Edad     *int   `json:"edad"`
	Telefono string `json:"telefono"`
}

// CustomerResponse cliente tal como se expone por la API.
type CustomerResponse struct {
	ID       string `json:"id"`
	Empresa  string `json:"empresa"`
	RUN      string `json:"run"`
	Nombre   string `json:"nombre"`
	Edad     *int   `json:"edad,omitempty"`
	Telefono string `json:"telefono"`
}

// ProductTypeRequest body de creación de tipos de producto.
type ProductTypeRequest struct {
	Nombre       string `json:"nombre"`
	Descripcion  string `json:"descripcion"`
	EsPerecedero bool   `json:"es_perecedero"`
}

// ProductTypeResponse tipo de producto tal como se expone por la API.
type ProductTypeResponse struct {
	ID           string `json:"id_tipo"`
	Nombre       string `json:"nombre"`
	Descripcion  string `json:"descripcion"`
	EsPerecedero bool   `json:"es_perecedero"`
}
