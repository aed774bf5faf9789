package entity

import "time"

// Roles válidos para Usuario.
const (
	RoleAdmin    = "admin"
	RoleContador = "contador"
	RoleOperador = "operador"
)

// Usuario representa un usuario del sistema (pertenece a una Empresa).
type Usuario struct {
	ID           string
	EmpresaID    string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Nombre       string
	Role         string // admin, contador, operador
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
