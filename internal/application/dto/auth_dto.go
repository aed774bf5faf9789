package dto

import "time"

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	EmpresaID string `json:"empresa_id"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Nombre    string `json:"nombre,omitempty"`
	Role      string `json:"role,omitempty"` // admin, contador, operador
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse usuario en respuestas (sin hash de password).
type UserResponse struct {
	ID        string    `json:"id"`
	EmpresaID string    `json:"empresa_id"`
	Email     string    `json:"email"`
	Nombre    string    `json:"nombre"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateEmpresaRequest body para POST /api/empresas.
type CreateEmpresaRequest struct {
	RazonSocial  string `json:"razon_social"`
	CUIT         string `json:"cuit"`
	CondicionIVA string `json:"condicion_iva,omitempty"`
	Direccion    string `json:"direccion,omitempty"`
	Email        string `json:"email,omitempty"`
}

// EmpresaResponse empresa en respuestas.
type EmpresaResponse struct {
	ID           string `json:"id"`
	RazonSocial  string `json:"razon_social"`
	CUIT         string `json:"cuit"`
	CondicionIVA string `json:"condicion_iva,omitempty"`
	Direccion    string `json:"direccion,omitempty"`
	Email        string `json:"email,omitempty"`
}
