package repository

import "github.com/tu-usuario/gestion-pyme/internal/domain/entity"

// EmpresaRepository define el puerto de persistencia para Empresa.
type EmpresaRepository interface {
	Create(empresa *entity.Empresa) error
	GetByID(id string) (*entity.Empresa, error)
	List(limit, offset int) ([]*entity.Empresa, error)
}
