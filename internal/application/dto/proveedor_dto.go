package dto

// CreateProveedorRequest body para POST /api/proveedores.
// CondicionGanancias: "Inscripto" o "No inscripto"; define la alícuota de
// retención de Ganancias aplicable.
type CreateProveedorRequest struct {
	RazonSocial        string `json:"razon_social"`
	CUIT               string `json:"cuit"`
	CondicionGanancias string `json:"condicion_ganancias"`
	Email              string `json:"email,omitempty"`
	Telefono           string `json:"telefono,omitempty"`
	Direccion          string `json:"direccion,omitempty"`
}

// UpdateProveedorRequest body para PUT /api/proveedores/:id.
type UpdateProveedorRequest struct {
	RazonSocial        string `json:"razon_social,omitempty"`
	CondicionGanancias string `json:"condicion_ganancias,omitempty"`
	Email              string `json:"email,omitempty"`
	Telefono           string `json:"telefono,omitempty"`
	Direccion          string `json:"direccion,omitempty"`
}

// ProveedorResponse proveedor en respuestas.
type ProveedorResponse struct {
	ID                 string `json:"id"`
	EmpresaID          string `json:"empresa_id"`
	RazonSocial        string `json:"razon_social"`
	CUIT               string `json:"cuit"`
	CondicionGanancias string `json:"condicion_ganancias"`
	Email              string `json:"email,omitempty"`
	Telefono           string `json:"telefono,omitempty"`
	Direccion          string `json:"direccion,omitempty"`
}
