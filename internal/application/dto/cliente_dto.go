package dto

// CreateClienteRequest body para POST /api/clientes.
type CreateClienteRequest struct {
	RazonSocial  string `json:"razon_social"`
	CUIT         string `json:"cuit,omitempty"`
	CondicionIVA string `json:"condicion_iva,omitempty"`
	Email        string `json:"email,omitempty"`
	Telefono     string `json:"telefono,omitempty"`
	Direccion    string `json:"direccion,omitempty"`
}

// UpdateClienteRequest body para PUT /api/clientes/:id.
type UpdateClienteRequest struct {
	RazonSocial  string `json:"razon_social,omitempty"`
	CondicionIVA string `json:"condicion_iva,omitempty"`
	Email        string `json:"email,omitempty"`
	Telefono     string `json:"telefono,omitempty"`
	Direccion    string `json:"direccion,omitempty"`
}

// ClienteResponse cliente en respuestas.
type ClienteResponse struct {
	ID           string `json:"id"`
	EmpresaID    string `json:"empresa_id"`
	RazonSocial  string `json:"razon_social"`
	CUIT         string `json:"cuit,omitempty"`
	CondicionIVA string `json:"condicion_iva,omitempty"`
	Email        string `json:"email,omitempty"`
	Telefono     string `json:"telefono,omitempty"`
	Direccion    string `json:"direccion,omitempty"`
}
